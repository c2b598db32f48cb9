package tiling

import "errors"

// Modulus is the prime every tiling count is reduced by.
const Modulus = 1_000_000_007

// MaxTableSize is the widest board the DP table is built for (16 Mi entries).
const MaxTableSize = 1 << 24

var (
	// ErrNegativeSize indicates a negative board width was requested.
	ErrNegativeSize = errors.New("tiling: board size must be non-negative")
	// ErrTableTooLarge indicates Table was asked for more than MaxTableSize entries.
	ErrTableTooLarge = errors.New("tiling: board size exceeds MaxTableSize")
)
