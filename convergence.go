package custommath

// Convergence bounds an iterative algorithm. Iteration continues while the
// magnitude of the last term exceeds Tolerance and fewer than MaxSteps steps
// have run. A zero Tolerance selects a fixed step count.
type Convergence struct {
	Tolerance float64
	MaxSteps  int
}

func (c Convergence) more(term float64, steps int) bool {
	if steps >= c.MaxSteps {
		return false
	}
	return c.Tolerance == 0 || Fabs(term) > c.Tolerance
}

var (
	expConvergence  = Convergence{Tolerance: ExpTolerance, MaxSteps: 300}
	logConvergence  = Convergence{MaxSteps: 100}
	sqrtConvergence = Convergence{Tolerance: RootTolerance, MaxSteps: 2048}
	sinConvergence  = Convergence{Tolerance: TrigTolerance, MaxSteps: 100}
	cosConvergence  = Convergence{MaxSteps: 50}
	asinConvergence = Convergence{MaxSteps: 50}
	acosConvergence = Convergence{Tolerance: TrigTolerance, MaxSteps: 1000}
	atanConvergence = Convergence{Tolerance: FineTolerance, MaxSteps: 1000}
)

// ConvergenceOf returns the iteration bounds used by the named function
// ("exp", "log", "sqrt", "sin", "cos", "asin", "acos" or "atan").
func ConvergenceOf(name string) (Convergence, bool) {
	switch name {
	case "exp":
		return expConvergence, true
	case "log":
		return logConvergence, true
	case "sqrt":
		return sqrtConvergence, true
	case "sin":
		return sinConvergence, true
	case "cos":
		return cosConvergence, true
	case "asin":
		return asinConvergence, true
	case "acos":
		return acosConvergence, true
	case "atan":
		return atanConvergence, true
	default:
		return Convergence{}, false
	}
}
