package custommath

import "math"

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x float64) float64 {
	switch {
	case isNaN(x) || x < 0:
		return nan()
	case math.IsInf(x, 1) || x == 0:
		return x
	}

	// Newton's method on t*t = x starting from the guess x. After the first
	// step the iterates decrease monotonically toward the root, so an iterate
	// that fails to decrease marks the floating-point fixed point.
	t := (x + 1) / 2
	for step := 0; step < sqrtConvergence.MaxSteps; step++ {
		next := (t + x/t) / 2
		if next >= t {
			break
		}
		diff := t - next
		t = next
		if diff <= sqrtConvergence.Tolerance*t {
			break
		}
	}
	return t
}
