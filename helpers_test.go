package custommath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"
)

// sweep returns from, from+step, ... up to and including to.
func sweep(from, to, step float64) []float64 {
	var xs []float64
	for x := from; x <= to; x += step {
		xs = append(xs, x)
	}
	return xs
}

// assertClose compares got with want within an absolute or relative
// tolerance. NaN matches only NaN and infinities must match exactly.
func assertClose(t *testing.T, want, got, absTol, relTol float64, msgAndArgs ...interface{}) bool {
	t.Helper()
	if math.IsNaN(want) {
		return assert.True(t, math.IsNaN(got), append([]interface{}{"expected NaN, got %v", got}, msgAndArgs...)...)
	}
	if scalar.EqualWithinAbsOrRel(want, got, absTol, relTol) {
		return true
	}
	return assert.Fail(t, "values differ beyond tolerance",
		append([]interface{}{"want %v got %v (abs %g rel %g)", want, got, absTol, relTol}, msgAndArgs...)...)
}

func assertNaN(t *testing.T, got float64, msgAndArgs ...interface{}) bool {
	t.Helper()
	return assert.True(t, math.IsNaN(got), msgAndArgs...)
}
