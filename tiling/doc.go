// Package tiling counts the tilings of a 2×n board by 1×2 dominoes and
// L-shaped trominoes.
//
// What:
//
//   - Count   — bottom-up DP over T(i) = 2·T(i−1) + T(i−3), O(n) time/memory.
//   - Table   — the full DP table T(0..n), same cost as Count.
//   - CountFast — the same value via 3×3 companion-matrix powering,
//     O(log n) time, O(1) memory.
//
// All results are reduced modulo Modulus (1 000 000 007).
//
// Base cases:
//
//	T(0) = 1   (empty board, one trivial tiling)
//	T(1) = 1   (one vertical domino)
//	T(2) = 2   (two vertical or two horizontal dominoes)
//
// Small boards:
//
//	n:    0  1  2  3   4   5   6
//	T(n): 1  1  2  5  11  24  53
//
// Errors:
//
//   - ErrNegativeSize: n < 0.
//   - ErrTableTooLarge: Table asked for n > MaxTableSize. Count switches to
//     the matrix-power path instead of failing.
//
// Options:
//
//   - WithLogger: emit one Debug entry with the board size and the result.
package tiling
