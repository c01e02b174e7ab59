package custommath

import "math"

// trunc rounds x toward zero. Magnitudes of 2^52 and above carry no
// fractional bits, so int64 conversion is only used below that bound.
func trunc(x float64) float64 {
	if Fabs(x) >= integralAbove {
		return x
	}
	return float64(int64(x))
}

// Floor returns the greatest integer value less than or equal to x.
//
// Special cases are:
//
//	Floor(±Inf) = ±Inf
//	Floor(NaN) = NaN
func Floor(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return x
	}
	t := trunc(x)
	if x >= 0 || t == x {
		return t
	}
	return t - 1
}

// Ceil returns the least integer value greater than or equal to x.
//
// Special cases are:
//
//	Ceil(±Inf) = ±Inf
//	Ceil(NaN) = NaN
func Ceil(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return x
	}
	t := trunc(x)
	if x <= 0 || t == x {
		return t
	}
	return t + 1
}

// Fmod returns the floating-point remainder of x/y. The quotient is rounded
// toward zero, so the result has the sign of x and is smaller than |y|.
// The remainder is exact for every finite x and y.
//
// Special cases are:
//
//	Fmod(x, 0) = NaN
//	Fmod(±Inf, y) = NaN
//	Fmod(NaN, y) = NaN
//	Fmod(x, NaN) = NaN
//	Fmod(x, ±Inf) = x
func Fmod(x, y float64) float64 {
	switch {
	case y == 0 || isNaN(x) || isNaN(y) || isInf(x):
		return nan()
	case isInf(y):
		return x
	}

	// Long division: subtract y shifted to the leading binary digit of r
	// until r < y. Each subtraction is exact.
	y = Fabs(y)
	yfr, yexp := math.Frexp(y)
	r := Fabs(x)
	for r >= y {
		rfr, rexp := math.Frexp(r)
		if rfr < yfr {
			rexp--
		}
		r -= math.Ldexp(y, rexp-yexp)
	}
	if x < 0 || (x == 0 && math.Signbit(x)) {
		return -r
	}
	return r
}
