package interval_test

import (
	"math/bits"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/interval"
)

// propertySeed keeps the randomized checks reproducible.
const propertySeed int64 = 1

// randomIntervals draws n integer-aligned ranges in [0, 24] so touching and
// degenerate ranges show up often.
func randomIntervals(rng *rand.Rand, n int) []interval.Interval {
	ivs := make([]interval.Interval, n)
	for i := range ivs {
		start := float64(rng.Intn(20))
		ivs[i] = interval.Interval{Start: start, End: start + float64(rng.Intn(5))}
	}

	return ivs
}

// bruteMaxCompatible returns the size of the largest pairwise non-overlapping
// subset by exhausting every subset.
func bruteMaxCompatible(ivs []interval.Interval) int {
	best := 0
	for mask := uint(0); mask < 1<<len(ivs); mask++ {
		ok := true
		for i := 0; i < len(ivs) && ok; i++ {
			if mask&(1<<i) == 0 {
				continue
			}
			for j := i + 1; j < len(ivs); j++ {
				if mask&(1<<j) != 0 && ivs[i].Overlaps(ivs[j]) {
					ok = false
					break
				}
			}
		}
		if ok {
			best = max(best, bits.OnesCount(mask))
		}
	}

	return best
}

// bruteMinPiercing returns the smallest number of right endpoints that pierce
// every range. Some optimal solution only uses right endpoints.
func bruteMinPiercing(ivs []interval.Interval) int {
	if len(ivs) == 0 {
		return 0
	}
	best := len(ivs)
	for mask := uint(1); mask < 1<<len(ivs); mask++ {
		count := bits.OnesCount(mask)
		if count >= best {
			continue
		}
		covered := true
		for _, r := range ivs {
			hit := false
			for k := range ivs {
				if mask&(1<<k) != 0 && r.Contains(ivs[k].End) {
					hit = true
					break
				}
			}
			if !hit {
				covered = false
				break
			}
		}
		if covered {
			best = count
		}
	}

	return best
}

// TestGreedy_MatchesBruteForce compares both sweeps with exhaustive search.
func TestGreedy_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed))
	for trial := 0; trial < 300; trial++ {
		ivs := randomIntervals(rng, rng.Intn(10))

		removed, err := interval.EraseOverlaps(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		require.Equal(t, len(ivs)-bruteMaxCompatible(ivs), removed, "EraseOverlaps(%v)", ivs)

		arrows, err := interval.MinArrows(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		require.Equal(t, bruteMinPiercing(ivs), arrows, "MinArrows(%v)", ivs)
	}
}

// TestGreedy_WitnessesAreValid checks the kept set and the points returned.
func TestGreedy_WitnessesAreValid(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed))
	for trial := 0; trial < 200; trial++ {
		ivs := randomIntervals(rng, rng.Intn(40))

		kept, err := interval.KeepNonOverlapping(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		for i := range kept {
			for j := i + 1; j < len(kept); j++ {
				require.False(t, kept[i].Overlaps(kept[j]), "%v overlaps %v", kept[i], kept[j])
			}
		}
		removed, err := interval.EraseOverlaps(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		require.Equal(t, len(ivs)-removed, len(kept))

		points, err := interval.PiercingPoints(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		arrows, err := interval.MinArrows(ivs, interval.WithPreserveOrder())
		require.NoError(t, err)
		require.Len(t, points, arrows)
		require.True(t, slices.IsSorted(points))
		assertPierced(t, ivs, points)
	}
}

// TestGreedy_OrderInvariant shuffles the same input and expects equal results.
func TestGreedy_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed))
	base := randomIntervals(rng, 50)

	wantRemoved, err := interval.EraseOverlaps(base, interval.WithPreserveOrder())
	require.NoError(t, err)
	wantArrows, err := interval.MinArrows(base, interval.WithPreserveOrder())
	require.NoError(t, err)

	for trial := 0; trial < 50; trial++ {
		perm := slices.Clone(base)
		rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

		removed, err := interval.EraseOverlaps(slices.Clone(perm))
		require.NoError(t, err)
		assert.Equal(t, wantRemoved, removed)

		arrows, err := interval.MinArrows(perm)
		require.NoError(t, err)
		assert.Equal(t, wantArrows, arrows)
	}
}
