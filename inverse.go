package custommath

import "math"

// halfAngleAbove is the magnitude past which the arcsine series are fed
// sqrt((1-|x|)/2) instead of x.
const halfAngleAbove = 0.5

// Asin returns the arcsine, in radians, of x.
//
// Special cases are:
//
//	Asin(±0) = ±0
//	Asin(±1) = ±Pi/2
//	Asin(x) = NaN if x < -1 or x > 1
//	Asin(NaN) = NaN
func Asin(x float64) float64 {
	switch {
	case isNaN(x) || x < -1 || x > 1:
		return nan()
	case x == 0:
		return x
	case x == -1:
		return -halfPi
	case x == 1:
		return halfPi
	}

	a := Fabs(x)
	if a <= halfAngleAbove {
		return asinSeries(x)
	}

	// asin(a) = Pi/2 - 2*asin(sqrt((1-a)/2))
	res := halfPi - 2*asinSeries(Sqrt((1-a)/2))
	if x < 0 {
		return -res
	}
	return res
}

// asinSeries sums the binomial expansion of arcsine for a fixed number of
// terms: (2i)! / (4**i * (i!)**2) * x**(2i+1) / (2i+1).
func asinSeries(x float64) float64 {
	sum, term := 0.0, 0.0
	for i := 0; asinConvergence.more(term, i); i++ {
		fi := Factorial(i)
		coeff := Factorial(2*i) / (Pow(4, float64(i)) * fi * fi)
		term = coeff * (Pow(x, float64(2*i+1)) / float64(2*i+1))
		sum += term
	}
	return sum
}

// Acos returns the arccosine, in radians, of x.
//
// Special cases are:
//
//	Acos(1) = 0
//	Acos(-1) = Pi
//	Acos(x) = NaN if x < -1 or x > 1
//	Acos(NaN) = NaN
func Acos(x float64) float64 {
	switch {
	case isNaN(x) || x < -1 || x > 1:
		return nan()
	case x == 1:
		return 0
	case x == -1:
		return Pi
	}

	switch {
	case x > halfAngleAbove:
		return 2 * arcsineSum(Sqrt((1-x)/2))
	case x < -halfAngleAbove:
		return Pi - 2*arcsineSum(Sqrt((1+x)/2))
	}
	return halfPi - arcsineSum(x)
}

// arcsineSum evaluates the arcsine series by recurrence: each coefficient
// gains (2i)(2i-1)/(4i**2) and each power gains x**2. It stops at
// TrigTolerance rather than after a fixed count.
func arcsineSum(x float64) float64 {
	sum, coeff, power := x, 1.0, x
	term := x
	for i := 1; acosConvergence.more(term, i); i++ {
		coeff *= float64(2*i*(2*i-1)) / float64(4*i*i)
		power *= x * x
		term = coeff * power / float64(2*i+1)
		sum += term
	}
	return sum
}

// Atan returns the arctangent, in radians, of x.
//
// Special cases are:
//
//	Atan(±0) = ±0
//	Atan(±Inf) = ±Pi/2
//	Atan(±1) = AtanOne, AtanMinusOne
//	Atan(NaN) = NaN
func Atan(x float64) float64 {
	switch {
	case isNaN(x) || x == 0:
		return x
	case isInf(x) && x > 0:
		return halfPi
	case isInf(x):
		return -halfPi
	case x == 1:
		return AtanOne
	case x == -1:
		return AtanMinusOne
	}

	if x > -1 && x < 1 {
		return reducedAtan(x)
	}
	// atan(x) = sign(x)*Pi/2 - atan(1/x)
	return halfPi*(x/Fabs(x)) - reducedAtan(1/x)
}

// reducedAtan halves the angle until |u| <= 1/2 using
// atan(u) = 2*atan(u / (1 + sqrt(1 + u*u))), sums the series there and
// doubles the result back.
func reducedAtan(u float64) float64 {
	halvings := 0
	for Fabs(u) > halfAngleAbove {
		u /= 1 + Sqrt(1+u*u)
		halvings++
	}
	res := atanSeries(u)
	for ; halvings > 0; halvings-- {
		res *= 2
	}
	return res
}

// atanSeries sums u - u**3/3 + u**5/5 - ... for |u| < 1.
func atanSeries(u float64) float64 {
	res, power := u, u
	sign := -1.0
	// term starts infinite so at least one step always runs.
	term := math.Inf(1)
	for i := 3; atanConvergence.more(term, (i-3)/2); i += 2 {
		power *= u * u
		term = power / float64(i)
		res += sign * term
		sign = -sign
	}
	return res
}
