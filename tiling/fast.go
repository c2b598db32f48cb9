package tiling

// mat3 is a 3×3 matrix over Z/Modulus, row-major.
type mat3 [3][3]int64

// step advances the state (T(i), T(i−1), T(i−2)) to (T(i+1), T(i), T(i−1)):
//
//	T(i+1) = 2·T(i) + 0·T(i−1) + 1·T(i−2)
var step = mat3{
	{2, 0, 1},
	{1, 0, 0},
	{0, 1, 0},
}

var identity = mat3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// mul returns a·b mod Modulus. Each product is below Modulus², which fits
// int64, and the running sum is reduced after every term.
func (a mat3) mul(b mat3) mat3 {
	var c mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s int64
			for k := 0; k < 3; k++ {
				s = (s + a[i][k]*b[k][j]) % Modulus
			}
			c[i][j] = s
		}
	}

	return c
}

// pow raises m to e ≥ 0 by successive squaring.
func (m mat3) pow(e int) mat3 {
	result := identity
	for e > 0 {
		if e&1 == 1 {
			result = result.mul(m)
		}
		m = m.mul(m)
		e >>= 1
	}

	return result
}

// CountFast returns the same value as Count in O(log n) time and O(1)
// memory by raising the recurrence's companion matrix to the (n−2)-th power
// and applying it to the base state (T(2), T(1), T(0)) = (2, 1, 1).
//
// Errors:
//   - ErrNegativeSize if n < 0.
func CountFast(n int, opts ...Option) (int, error) {
	if n < 0 {
		return 0, ErrNegativeSize
	}

	result := power(n)
	gatherOptions(opts...).debug("count_fast", n, result)

	return result, nil
}

// power returns T(n) for n ≥ 0 from step^(n−2)·(2, 1, 1).
func power(n int) int {
	switch n {
	case 0, 1:
		return 1
	case 2:
		return 2
	}
	p := step.pow(n - 2)

	return int((2*p[0][0] + p[0][1] + p[0][2]) % Modulus)
}
