package interval

import (
	"cmp"
	"slices"
)

// byEnd orders by End ascending, ties by Start ascending.
func byEnd(a, b Interval) int {
	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}

	return cmp.Compare(a.Start, b.Start)
}

// sortByEnd returns ivs ordered by byEnd. The result aliases ivs unless
// o.preserveOrder is set. Callers validate first.
func sortByEnd(ivs []Interval, o Options) []Interval {
	if o.preserveOrder {
		ivs = slices.Clone(ivs)
	}
	slices.SortFunc(ivs, byEnd)

	return ivs
}
