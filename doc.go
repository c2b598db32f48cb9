// Package algolab is a small set of self-contained algorithm exercises,
// each a pure function over caller-supplied input.
//
// What's inside:
//
//	tiling/   — count 2×n board tilings by dominoes and L-trominoes (mod 1e9+7):
//	            bottom-up DP and an O(log n) companion-matrix variant
//	interval/ — greedy interval scheduling: minimum removals to eliminate
//	            overlaps, minimum piercing points ("arrow shots")
//	examples/ — a runnable walkthrough of both packages
//
// Every package validates its input up front and reports failures through
// package-level sentinel errors (errors.Is). Nothing is shared between calls;
// functions are safe for concurrent use as long as callers do not share the
// slices they pass in.
//
// Quick ASCII example, the two tilings of a 2×2 board:
//
//	┌─┬─┐   ┌───┐
//	│ │ │   ├───┤
//	└─┴─┘   └───┘
//
//	go get github.com/katalvlaran/algolab
package algolab
