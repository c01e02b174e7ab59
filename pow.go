package custommath

import "math"

// Pow returns base**exp.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x
//	Pow(1, y) = 1 for any y
//	Pow(x, y) = NaN if x or y is NaN
//	Pow(-1, ±Inf) = 1
//	Pow(x, +Inf) = +Inf for |x| > 1, 0 for |x| < 1
//	Pow(x, -Inf) = 0 for |x| > 1, +Inf for |x| < 1
//	Pow(+Inf, y) = +Inf for y > 0, 0 for y < 0
//	Pow(-Inf, y) = Pow(-0, -y)
//	Pow(x, y) = NaN for finite x < 0 and finite non-integer y
//
// Integer exponents are computed exactly by repeated squaring; any other
// exponent goes through Exp(Log(base) * exp).
func Pow(base, exp float64) float64 {
	switch {
	case exp == 0 || base == 1:
		return 1
	case isNaN(base) || isNaN(exp):
		return nan()
	case isInf(exp):
		return powInfExponent(base, exp)
	case isInf(base):
		return powInfBase(base, exp)
	case isInteger(exp):
		return powInt(base, exp)
	case base < 0:
		return nan()
	}
	return Exp(Log(base) * exp)
}

func powInfExponent(base, exp float64) float64 {
	switch {
	case base == -1:
		return 1
	case (Fabs(base) < 1) == (exp > 0):
		return 0
	}
	return math.Inf(1)
}

func powInfBase(base, exp float64) float64 {
	odd := base < 0 && isOddInteger(exp)
	if exp < 0 {
		if odd {
			return math.Copysign(0, -1)
		}
		return 0
	}
	if odd {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

// powInt computes base**n for integral n by exponentiation by squaring.
func powInt(base, n float64) float64 {
	if n < 0 {
		base = 1 / base
		n = -n
	}
	res := 1.0
	for n > 0 {
		if Fmod(n, 2) == 1 {
			res *= base
		}
		base *= base
		n = Floor(n / 2)
	}
	return res
}
