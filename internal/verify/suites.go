package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/GriffinCanCode/custommath"
)

// Check is the acceptance rule for one case. A case passes when Got is
// within Abs or within Rel of Want. Exact requires bitwise-equal values up to
// the sign of zero; Signed additionally requires zeros to agree in sign.
type Check struct {
	Abs    float64
	Rel    float64
	Exact  bool
	Signed bool
}

// Case is one evaluated input with its reference value.
type Case struct {
	Inputs []float64
	Got    float64
	Want   float64
	Check  Check
}

// Evaluate reports whether the case passes and its absolute error.
// Equal values, including matching infinities, have zero error; a NaN on
// either side makes the error NaN.
func (c Case) Evaluate() (bool, float64) {
	if c.Got == c.Want {
		if c.Check.Signed && math.Signbit(c.Got) != math.Signbit(c.Want) {
			return false, 0
		}
		return true, 0
	}

	absErr := math.Abs(c.Got - c.Want)
	switch {
	case math.IsNaN(c.Want):
		return math.IsNaN(c.Got), absErr
	case math.IsNaN(c.Got), math.IsInf(c.Want, 0), c.Check.Exact:
		return false, absErr
	}
	return scalar.EqualWithinAbsOrRel(c.Want, c.Got, c.Check.Abs, c.Check.Rel), absErr
}

// Suite generates the cases for one library function.
type Suite struct {
	Function string
	Cases    func() []Case
}

var (
	exact = Check{Exact: true}

	trigCheck  = Check{Abs: custommath.TrigTolerance}
	fineCheck  = Check{Abs: 1e-12}
	powCheck   = Check{Rel: 1e-13}
	rootCheck  = Check{Rel: 1e-15}
	modCheck   = Check{Abs: custommath.FineTolerance}
	expCheck   = Check{Abs: 1e-6, Rel: 1e-12}
	factCheck  = Check{Rel: 1e-10}
	tanCheck   = Check{Abs: 10 * custommath.TrigTolerance}
	asinCheck  = Check{Abs: 1e-12}
	asinEdge   = Check{Abs: 1e-9}
	latticeCmp = Check{Rel: 1e-13, Signed: true}
	nearOne    = Check{Rel: 1e-13}
	signedZero = Check{Exact: true, Signed: true}
)

var (
	nan, inf = math.NaN(), math.Inf(1)
	negZero  = math.Copysign(0, -1)
)

// All returns every suite in report order.
func All() []Suite {
	return []Suite{
		{"abs", absCases},
		{"fabs", func() []Case {
			return unary(custommath.Fabs, math.Abs, withSpecials(steps(-1000, 1000, 0.25)), exact)
		}},
		{"floor", func() []Case {
			return unary(custommath.Floor, math.Floor, withSpecials(steps(-1000, 1000, 0.25)), exact)
		}},
		{"ceil", func() []Case {
			return unary(custommath.Ceil, math.Ceil, withSpecials(steps(-1000, 1000, 0.25)), exact)
		}},
		{"fmod", fmodCases},
		{"exp", func() []Case {
			cases := unary(custommath.Exp, math.Exp, steps(-75, 75, 0.25), expCheck)
			return append(cases, unary(custommath.Exp, math.Exp, []float64{nan, inf, -inf, 1000, -1000, -745}, exact)...)
		}},
		{"log", func() []Case {
			cases := unary(custommath.Log, math.Log, steps(0.25, 1000, 0.25), fineCheck)
			cases = append(cases, unary(custommath.Log, math.Log, steps(0.99902, 1.00098, 2e-5), nearOne)...)
			return append(cases, unary(custommath.Log, math.Log, []float64{nan, inf, 0, -1, 1}, exact)...)
		}},
		{"factorial", factorialCases},
		{"pow", powCases},
		{"sqrt", func() []Case {
			cases := unary(custommath.Sqrt, math.Sqrt, steps(0.25, 1000, 0.25), rootCheck)
			return append(cases, unary(custommath.Sqrt, math.Sqrt, []float64{0, -231.41, nan, inf, -inf}, exact)...)
		}},
		{"sin", func() []Case {
			cases := unary(custommath.Sin, math.Sin, steps(-1000, 1000, 0.25), trigCheck)
			return append(cases, unary(custommath.Sin, math.Sin, []float64{nan, inf, -inf}, exact)...)
		}},
		{"cos", func() []Case {
			cases := unary(custommath.Cos, math.Cos, steps(-1000, 1000, 0.25), trigCheck)
			return append(cases, unary(custommath.Cos, math.Cos, []float64{nan, inf, -inf}, exact)...)
		}},
		{"tan", tanCases},
		{"asin", func() []Case {
			cases := unary(custommath.Asin, math.Asin, ratios(-100, 100, 100), asinCheck)
			cases = append(cases, unary(custommath.Asin, math.Asin, []float64{0.999, 0.999999, -0.9999999}, asinEdge)...)
			cases = append(cases, unary(custommath.Asin, math.Asin, []float64{1.0001, -1.0001, 2, nan, inf, -inf}, exact)...)
			return append(cases, unary(custommath.Asin, math.Asin, []float64{0, negZero}, signedZero)...)
		}},
		{"acos", func() []Case {
			cases := unary(custommath.Acos, math.Acos, ratios(-100, 100, 100), trigCheck)
			return append(cases, unary(custommath.Acos, math.Acos, []float64{1.0001, -1.0001, nan, inf, -inf}, exact)...)
		}},
		{"atan", func() []Case {
			cases := unary(custommath.Atan, math.Atan, ratios(-10, 10, 10), trigCheck)
			cases = append(cases, unary(custommath.Atan, math.Atan, steps(-1000, 1000, 0.25), fineCheck)...)
			cases = append(cases, unary(custommath.Atan, math.Atan, []float64{nan, inf, -inf}, exact)...)
			return append(cases, unary(custommath.Atan, math.Atan, []float64{0, negZero}, signedZero)...)
		}},
	}
}

// Names lists the suite names in report order.
func Names() []string {
	suites := All()
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Function
	}
	return names
}

// Select filters suites by name, keeping report order. No names selects all.
func Select(suites []Suite, names []string) ([]Suite, error) {
	if len(names) == 0 {
		return suites, nil
	}

	known := make(map[string]bool, len(suites))
	for _, s := range suites {
		known[s.Function] = true
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if !known[n] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, n)
		}
		want[n] = true
	}

	selected := make([]Suite, 0, len(names))
	for _, s := range suites {
		if want[s.Function] {
			selected = append(selected, s)
		}
	}
	return selected, nil
}

func unary(fn, ref func(float64) float64, xs []float64, chk Check) []Case {
	cases := make([]Case, 0, len(xs))
	for _, x := range xs {
		cases = append(cases, Case{Inputs: []float64{x}, Got: fn(x), Want: ref(x), Check: chk})
	}
	return cases
}

// steps returns from, from+step, ... through to. Steps are computed by
// multiplication so no rounding accumulates.
func steps(from, to, step float64) []float64 {
	n := int(math.Round((to - from) / step))
	xs := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		xs = append(xs, from+float64(i)*step)
	}
	return xs
}

// ratios returns lo/den ... hi/den.
func ratios(lo, hi int, den float64) []float64 {
	xs := make([]float64, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		xs = append(xs, float64(i)/den)
	}
	return xs
}

func withSpecials(xs []float64) []float64 {
	return append(xs, nan, inf, -inf, 1e300, -1e300, 4503599627370495.5)
}

func absCases() []Case {
	cases := make([]Case, 0, 2001)
	for i := -1000; i <= 1000; i++ {
		want := i
		if want < 0 {
			want = -want
		}
		cases = append(cases, Case{
			Inputs: []float64{float64(i)},
			Got:    float64(custommath.Abs(i)),
			Want:   float64(want),
			Check:  exact,
		})
	}
	return cases
}

func fmodCases() []Case {
	xs, ys := steps(-100, 100, 0.25), steps(-50, 50, 0.25)
	cases := make([]Case, 0, len(xs)*len(ys)+10)
	for _, x := range xs {
		for _, y := range ys {
			want := math.Mod(x, y)
			cases = append(cases, Case{Inputs: []float64{x, y}, Got: custommath.Fmod(x, y), Want: want, Check: modCheck})
		}
	}
	specials := [][2]float64{
		{inf, 1}, {1, nan}, {nan, 1}, {3, inf}, {-3, -inf}, {-inf, 2},
		{1e300, 1e-300}, {1e18, 2 * custommath.Pi}, {-1e300, custommath.Pi}, {math.MaxFloat64, 3},
	}
	for _, in := range specials {
		cases = append(cases, Case{
			Inputs: in[:],
			Got:    custommath.Fmod(in[0], in[1]),
			Want:   math.Mod(in[0], in[1]),
			Check:  exact,
		})
	}
	return cases
}

func factorialCases() []Case {
	cases := make([]Case, 0, 30)
	for n := 0; n <= 25; n++ {
		cases = append(cases, Case{
			Inputs: []float64{float64(n)},
			Got:    custommath.Factorial(n),
			Want:   math.Gamma(float64(n) + 1),
			Check:  factCheck,
		})
	}
	for _, n := range []int{-1, -2, -100} {
		cases = append(cases, Case{Inputs: []float64{float64(n)}, Got: custommath.Factorial(n), Want: nan, Check: exact})
	}
	cases = append(cases, Case{Inputs: []float64{171}, Got: custommath.Factorial(171), Want: inf, Check: exact})
	return cases
}

func powCases() []Case {
	var cases []Case
	add := func(x, y float64, chk Check) {
		cases = append(cases, Case{Inputs: []float64{x, y}, Got: custommath.Pow(x, y), Want: math.Pow(x, y), Check: chk})
	}

	for _, p := range [][2]float64{{2, 2}, {-2, 3}, {0, 0}, {1, -1}, {-1, -2}, {0.5, 0.5}, {2, 10}, {2, -3}} {
		add(p[0], p[1], Check{Abs: 1e-15})
	}

	lattice := []float64{nan, inf, -inf, 0, math.Copysign(0, -1), 1, -1, 0.5, -0.5, 2, -2, 3, -3, 2.5, -2.5}
	for _, x := range lattice {
		for _, y := range lattice {
			add(x, y, latticeCmp)
		}
	}

	for _, base := range []float64{2.5, -2.5, 3, -3, 0.5, -0.5, 1.1, 10, -10, 7} {
		for n := -30; n <= 30; n++ {
			add(base, float64(n), powCheck)
		}
	}
	for _, base := range []float64{0.1, 0.5, 2, 3.3, 10, 100} {
		for _, y := range []float64{0.5, 1.5, -0.5, -2.25, 3.7, 0.1} {
			add(base, y, powCheck)
		}
	}
	return cases
}

func tanCases() []Case {
	var xs []float64
	for _, x := range steps(-1000, 1000, 0.25) {
		if math.Abs(math.Cos(x)) >= 0.1 {
			xs = append(xs, x)
		}
	}
	cases := unary(custommath.Tan, math.Tan, xs, tanCheck)
	cases = append(cases, unary(custommath.Tan, math.Tan, []float64{0, custommath.Pi, -14.96, 6987000, 1, -1, 0.5}, trigCheck)...)
	return append(cases, unary(custommath.Tan, math.Tan, []float64{nan, inf, -inf}, exact)...)
}
