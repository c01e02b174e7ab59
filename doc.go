// Package custommath implements a small set of standard scalar math
// functions from first principles: no routine of the platform math library
// is used to compute a result.
//
// The package is organized by function family:
//   - Primitives: Abs, Fabs, Factorial
//   - Rounding and modulo: Floor, Ceil, Fmod
//   - Exponential family: Exp, Log, Pow
//   - Roots: Sqrt
//   - Trigonometry: Sin, Cos, Tan
//   - Inverse trigonometry: Asin, Acos, Atan
//
// Errors are encoded in the IEEE-754 value space. A domain violation
// (Sqrt(-1), Log(-1), Asin(2)) or a singular input (Fmod(x, 0)) yields NaN,
// and NaN or infinite inputs propagate according to each function's special
// cases. No function returns a Go error and no function holds state, so every
// function is safe for concurrent use.
//
// Accumulation happens in float64, the widest floating-point type Go offers.
// Every series or iteration is bounded by a per-function Convergence, see
// ConvergenceOf.
//
// Example Usage:
//
//	custommath.Pow(2, 10)   // 1024
//	custommath.Fmod(-7, 2)  // -1
//	custommath.Asin(1)      // Pi / 2
package custommath
