package interval

import "github.com/sirupsen/logrus"

// MinArrows returns the minimum number of points such that every range
// contains at least one of them.
//
// Algorithm:
//  1. Sort by End ascending, ties by Start.
//  2. Place the first point at the first range's End.
//  3. For each later range: if Start > current point, place a new point at
//     its End. A range with Start ≤ current already contains the point since
//     its End ≥ current by sort order.
//
// Complexity: O(n log n) time, O(1) extra memory (O(n) with WithPreserveOrder).
//
// Errors:
//   - ErrNonFinite, ErrInverted (wrapped with the interval index).
func MinArrows(ranges []Interval, opts ...Option) (int, error) {
	points, err := pierce(ranges, gatherOptions(opts...), false)
	if err != nil {
		return 0, err
	}

	return points.count, nil
}

// PiercingPoints returns the coordinates chosen by the MinArrows sweep in
// ascending order. Every range contains at least one of them.
//
// Errors:
//   - ErrNonFinite, ErrInverted (wrapped with the interval index).
func PiercingPoints(ranges []Interval, opts ...Option) ([]float64, error) {
	points, err := pierce(ranges, gatherOptions(opts...), true)
	if err != nil {
		return nil, err
	}
	if points.coords == nil {
		return []float64{}, nil
	}

	return points.coords, nil
}

// piercing is the outcome of one sweep; coords is filled only on request.
type piercing struct {
	count  int
	coords []float64
}

func pierce(ranges []Interval, o Options, collect bool) (piercing, error) {
	var res piercing
	if err := validateAll(ranges); err != nil {
		return res, err
	}
	sorted := sortByEnd(ranges, o)
	if len(sorted) == 0 {
		return res, nil
	}

	current := sorted[0].End
	res.count = 1
	if collect {
		res.coords = append(res.coords, current)
	}
	for _, r := range sorted[1:] {
		if r.Start > current {
			res.count++
			current = r.End
			if collect {
				res.coords = append(res.coords, current)
			}
		}
	}
	o.debug("interval: ranges pierced", logrus.Fields{
		"size":   len(sorted),
		"points": res.count,
	})

	return res, nil
}
