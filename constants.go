package custommath

import "math"

// Mathematical constants.
const (
	E  = 2.71828182845904523536028747135266249775724709369995957496696763
	Pi = 3.14159265358979323846264338327950288419716939937510582097494459

	// AtanOne and AtanMinusOne are atan(1) and atan(-1). The arctangent
	// series converges too slowly at the edge of its radius to be summed there.
	AtanOne      = 0.78539816339744830961566084581987572104929234984377645524373614
	AtanMinusOne = -AtanOne

	// Ln2 undoes the power-of-two prescaling Log applies to subnormals.
	Ln2 = 0.693147180559945309417232121458176568075500134360255254120680009
)

// Precision thresholds shared by the iterative algorithms.
const (
	// TrigTolerance is the coarse stopping threshold of the sine and
	// arccosine series.
	TrigTolerance = 1e-6
	// FineTolerance stops the arctangent series.
	FineTolerance = 1e-16
	// RootTolerance is the relative refinement threshold of Sqrt.
	RootTolerance = 1e-18
	// ExpTolerance stops the exponential series.
	ExpTolerance = 1e-17
)

const (
	halfPi = Pi / 2
	twoPi  = 2 * Pi

	// smallestNormal is the smallest positive normal float64.
	smallestNormal = 0x1p-1022
	// subnormalScale lifts subnormals into the normal range exactly.
	subnormalScale = 1 << 54
	// integralAbove is the magnitude from which every float64 is an integer.
	integralAbove = 1 << 52
)

func nan() float64 { return math.NaN() }

func isNaN(x float64) bool { return x != x }

func isInf(x float64) bool { return math.IsInf(x, 0) }

// isInteger reports whether x is a finite integral value.
func isInteger(x float64) bool {
	if isNaN(x) || isInf(x) {
		return false
	}
	return trunc(x) == x
}

func isOddInteger(x float64) bool {
	return isInteger(x) && Fmod(x, 2) != 0
}
