// Package interval implements greedy scheduling over closed ranges
// [Start, End] on the real line.
//
// What:
//
//   - EraseOverlaps      — minimum removals so no two intervals overlap.
//   - KeepNonOverlapping — the maximum compatible subset that remains.
//   - MinArrows          — minimum points so every range contains one.
//   - PiercingPoints     — the coordinates of those points.
//
// Both families share one shape: sort ascending by End (ties by Start), then
// sweep once and commit greedily. Touching endpoints ([1,2] and [2,3]) do not
// overlap, yet a single point at 2 pierces both.
//
// Input order:
//
//	By default the input slice is sorted in place; pass WithPreserveOrder()
//	to sort a private copy and leave the caller's slice untouched.
//
// Complexity:
//
//   - All operations: O(n log n) time for the sort, O(n) for the sweep.
//   - Memory: O(1) extra in place, O(n) with WithPreserveOrder or when the
//     kept set / points are returned.
//
// Errors:
//
//   - ErrNonFinite: Start or End is NaN or ±Inf.
//   - ErrInverted: Start > End.
//   - ErrShortPair: FromPairs got a pair with fewer than two components.
//
// Validation happens before any sorting; a rejected call leaves the input
// untouched.
package interval
