package custommath

// Abs returns the absolute value of x. Abs(math.MinInt) wraps to
// math.MinInt.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Fabs returns the absolute value of x. NaN is returned unchanged.
func Fabs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Factorial returns x! accumulated in floating point. It returns NaN for
// negative x and +Inf once the product leaves the float64 range (x > 170).
func Factorial(x int) float64 {
	if x < 0 {
		return nan()
	}
	res := 1.0
	for i := 2; i <= x; i++ {
		res *= float64(i)
	}
	return res
}
