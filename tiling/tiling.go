package tiling

// Count returns the number of tilings of a 2×n board modulo Modulus.
//
// Algorithm:
//  1. Allocate dp[0..n].
//  2. dp[0] = 1, dp[1] = 1 (n ≥ 1), dp[2] = 2 (n ≥ 2).
//  3. For i = 3..n: dp[i] = (2·dp[i−1] + dp[i−3]) mod Modulus.
//  4. Return dp[n].
//
// Boards wider than MaxTableSize skip the table and use the matrix-power
// path of CountFast; the result is the same.
//
// Complexity: O(n) time, O(n) memory (O(log n), O(1) above MaxTableSize).
//
// Errors:
//   - ErrNegativeSize if n < 0.
func Count(n int, opts ...Option) (int, error) {
	if n < 0 {
		return 0, ErrNegativeSize
	}

	var result int
	if n > MaxTableSize {
		result = power(n)
	} else {
		dp, err := fill(n)
		if err != nil {
			return 0, err
		}
		result = int(dp[n])
	}
	gatherOptions(opts...).debug("count", n, result)

	return result, nil
}

// Table returns T(0..n): entry i is the number of tilings of a 2×i board
// modulo Modulus. The returned slice is owned by the caller.
//
// Complexity: O(n) time, O(n) memory.
//
// Errors:
//   - ErrNegativeSize if n < 0.
//   - ErrTableTooLarge if n > MaxTableSize.
func Table(n int, opts ...Option) ([]int, error) {
	dp, err := fill(n)
	if err != nil {
		return nil, err
	}
	table := make([]int, len(dp))
	for i, v := range dp {
		table[i] = int(v)
	}
	gatherOptions(opts...).debug("table", n, table[n])

	return table, nil
}

// fill builds the DP table. Values are kept in int64 so 2·dp[i−1]+dp[i−3]
// stays below 3·Modulus without overflow on 32-bit platforms.
func fill(n int) ([]int64, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if n > MaxTableSize {
		return nil, ErrTableTooLarge
	}

	dp := make([]int64, n+1)
	dp[0] = 1
	if n >= 1 {
		dp[1] = 1
	}
	if n >= 2 {
		dp[2] = 2
	}
	for i := 3; i <= n; i++ {
		dp[i] = (2*dp[i-1] + dp[i-3]) % Modulus
	}

	return dp, nil
}
