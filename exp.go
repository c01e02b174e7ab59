package custommath

import "math"

// expReduceAbove is the largest argument handed to the exponential series.
// Beyond it 300 terms no longer reach ExpTolerance, so the argument is halved
// and the series result squared back.
const expReduceAbove = 64

// logNearOne is the distance from 1 inside which the Newton step of Log
// would cancel. There Log sums 2*atanh((x-1)/(x+1)) instead.
const logNearOne = 1e-3

// Exp returns e**x, the base-e exponential of x.
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(-Inf) = 0
//	Exp(NaN) = NaN
//
// Very large values overflow to +Inf. Below about -708 the result is
// subnormal, and below about -745 it underflows to 0.
func Exp(x float64) float64 {
	switch {
	case isNaN(x):
		return x
	case math.IsInf(x, 1):
		return x
	case math.IsInf(x, -1):
		return 0
	}

	// e**-x is summed as 1/e**x: the alternating series cancels badly.
	negative := x < 0
	if negative {
		x = Fabs(x)
	}

	halvings := 0
	for x > expReduceAbove {
		x /= 2
		halvings++
	}

	// The reciprocal is taken before squaring back, so results below the
	// normal range reach the subnormals instead of 1/+Inf.
	res := expSeries(x)
	if negative {
		res = 1 / res
	}
	for ; halvings > 0; halvings-- {
		res *= res
	}
	return res
}

// expSeries sums x**i/i!, deriving each term from the previous one.
func expSeries(x float64) float64 {
	sum, add := 1.0, 1.0
	for i := 1; expConvergence.more(add, i-1); i++ {
		add *= x / float64(i)
		sum += add
	}
	return sum
}

// Log returns the natural logarithm of x. Arguments within logNearOne of 1
// keep full relative precision.
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf
//	Log(x < 0) = NaN
//	Log(NaN) = NaN
//	Log(1) = 0
func Log(x float64) float64 {
	switch {
	case isNaN(x):
		return x
	case x < 0:
		return nan()
	case x == 0:
		return math.Inf(-1)
	case math.IsInf(x, 1):
		return x
	case x == 1:
		return 0
	case Fabs(x-1) < logNearOne:
		return logOnePlus(x)
	}

	// Subnormals lose a bit on every multiplication by E.
	offset := 0.0
	if x < smallestNormal {
		x *= subnormalScale
		offset = 54 * Ln2
	}

	// Reduce into [1/E, E) and remember how many factors of E were removed.
	base, power := x, 0
	for base >= E {
		base /= E
		power++
	}
	for base < 1/E {
		base *= E
		power--
	}

	// Newton's method on exp(res) = base.
	res := 0.0
	for step := 0; logConvergence.more(res, step); step++ {
		e := Exp(res)
		res += 2 * (base - e) / (base + e)
	}

	return res + float64(power) - offset
}

// logOnePlus sums 2*(s + s**3/3 + s**5/5 + ...) with s = (x-1)/(x+1).
// x-1 is exact near 1 and |s| < 5e-4, so ten terms pass float64 precision.
func logOnePlus(x float64) float64 {
	s := (x - 1) / (x + 1)
	s2 := s * s
	sum, power := s, s
	for i := 3; i <= 21; i += 2 {
		power *= s2
		sum += power / float64(i)
	}
	return 2 * sum
}
