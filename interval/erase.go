package interval

import (
	"math"

	"github.com/sirupsen/logrus"
)

// EraseOverlaps returns the minimum number of intervals to delete so that no
// two of the remaining ones overlap. Intervals that only touch at an endpoint
// are compatible.
//
// Algorithm (activity selection):
//  1. Sort by End ascending, ties by Start.
//  2. lastEnd = −∞. For each interval: if Start ≥ lastEnd keep it and set
//     lastEnd = End; otherwise drop it.
//  3. Return len(ivs) − kept.
//
// Complexity: O(n log n) time, O(1) extra memory (O(n) with WithPreserveOrder).
//
// Errors:
//   - ErrNonFinite, ErrInverted (wrapped with the interval index).
func EraseOverlaps(ivs []Interval, opts ...Option) (int, error) {
	o := gatherOptions(opts...)
	if err := validateAll(ivs); err != nil {
		return 0, err
	}
	if len(ivs) <= 1 {
		return 0, nil
	}

	sorted := sortByEnd(ivs, o)
	kept := 0
	lastEnd := math.Inf(-1)
	for _, iv := range sorted {
		if iv.Start >= lastEnd {
			kept++
			lastEnd = iv.End
		}
	}
	removed := len(sorted) - kept
	o.debug("interval: overlaps erased", logrus.Fields{
		"size":    len(sorted),
		"kept":    kept,
		"removed": removed,
	})

	return removed, nil
}

// KeepNonOverlapping returns a maximum set of pairwise non-overlapping
// intervals, in End order. Its length is len(ivs) − EraseOverlaps(ivs).
//
// Errors:
//   - ErrNonFinite, ErrInverted (wrapped with the interval index).
func KeepNonOverlapping(ivs []Interval, opts ...Option) ([]Interval, error) {
	o := gatherOptions(opts...)
	if err := validateAll(ivs); err != nil {
		return nil, err
	}

	sorted := sortByEnd(ivs, o)
	kept := make([]Interval, 0, len(sorted))
	lastEnd := math.Inf(-1)
	for _, iv := range sorted {
		if iv.Start >= lastEnd {
			kept = append(kept, iv)
			lastEnd = iv.End
		}
	}
	o.debug("interval: compatible set selected", logrus.Fields{
		"size":    len(sorted),
		"kept":    len(kept),
		"removed": len(sorted) - len(kept),
	})

	return kept, nil
}
