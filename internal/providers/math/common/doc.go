// Package common holds the parameter extraction and result helpers shared by
// the math tool groups.
//
// Results carry two keys: "result" with the float64 value and "class" with
// its IEEE class (finite, +inf, -inf). A NaN result is reported as a failed
// Result rather than a value, so callers see domain errors as errors.
//
// Example Usage:
//
//	ops := common.NewMathOps(logger)
//	x, ok := common.GetNumber(params, "x")
//	if !ok {
//	    return common.Failure("x parameter required")
//	}
//	return ops.Number("math.sqrt", custommath.Sqrt(x), x)
package common
