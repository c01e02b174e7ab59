package custommath

// normalizeAngle reduces phi modulo 2*Pi. A reduced angle above Pi is
// moved down by Pi; shifted reports that the sine of the result must be
// negated, since sin(phi) = -sin(phi - Pi).
func normalizeAngle(phi float64) (reduced float64, shifted bool) {
	reduced = Fmod(phi, twoPi)
	if reduced > Pi {
		return reduced - Pi, true
	}
	return reduced, false
}

// Sin returns the sine of the radian argument x.
//
// Special cases are:
//
//	Sin(±Inf) = NaN
//	Sin(NaN) = NaN
func Sin(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}

	base, shifted := normalizeAngle(x)
	res, term := base, base
	for i := 2; sinConvergence.more(term, i/2-1); i += 2 {
		term *= (base * -base) / float64(i*i+i)
		res += term
	}

	if shifted {
		return -res
	}
	return res
}

// Cos returns the cosine of the radian argument x.
//
// Special cases are:
//
//	Cos(±Inf) = NaN
//	Cos(NaN) = NaN
func Cos(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}

	x = Fmod(x, twoPi)
	if x < 0 {
		x += twoPi
	}

	// The leading 1 counts as the first term.
	cos, term := 1.0, 1.0
	for i := 1; cosConvergence.more(term, i); i++ {
		term *= -x * x / float64((2*i-1)*(2*i))
		cos += term
	}
	return cos
}

// Tan returns the tangent of the radian argument x.
//
// Special cases are:
//
//	Tan(±Inf) = NaN
//	Tan(NaN) = NaN
//	Tan(x) = NaN where the reduced cosine is exactly 0
func Tan(x float64) float64 {
	if isNaN(x) || isInf(x) {
		return nan()
	}

	x = Fmod(x, Pi)
	cos := Cos(x)
	if cos == 0 {
		return nan()
	}
	return Sin(x) / cos
}
