package interval

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for interval operations. Returned errors wrap these with the
// offending position; match with errors.Is.
var (
	// ErrNonFinite indicates an endpoint is NaN or ±Inf.
	ErrNonFinite = errors.New("interval: endpoints must be finite")
	// ErrInverted indicates Start > End.
	ErrInverted = errors.New("interval: start must not exceed end")
	// ErrShortPair indicates a raw pair with fewer than two components.
	ErrShortPair = errors.New("interval: pair needs a start and an end")
)

// Interval is the closed range [Start, End].
type Interval struct {
	Start, End float64
}

// Validate reports whether iv is a finite, non-inverted range.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Start) || math.IsInf(iv.Start, 0) ||
		math.IsNaN(iv.End) || math.IsInf(iv.End, 0) {
		return ErrNonFinite
	}
	if iv.Start > iv.End {
		return ErrInverted
	}

	return nil
}

// Overlaps reports whether iv and other share more than a single boundary
// point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Contains reports whether x lies in [Start, End].
func (iv Interval) Contains(x float64) bool {
	return iv.Start <= x && x <= iv.End
}

// String renders iv as "[start, end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Start, iv.End)
}

// FromPairs converts raw [start, end] pairs into validated intervals.
// Components past the second are ignored.
//
// Errors:
//   - ErrShortPair, ErrNonFinite, ErrInverted, wrapped with the pair index.
func FromPairs(pairs [][]float64) ([]Interval, error) {
	out := make([]Interval, len(pairs))
	for i, p := range pairs {
		if len(p) < 2 {
			return nil, fmt.Errorf("pair %d: %w", i, ErrShortPair)
		}
		out[i] = Interval{Start: p[0], End: p[1]}
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
	}

	return out, nil
}

// validateAll checks every interval before anything is reordered.
func validateAll(ivs []Interval) error {
	for i, iv := range ivs {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("interval %d %v: %w", i, iv, err)
		}
	}

	return nil
}
