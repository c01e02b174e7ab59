package common

import (
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/custommath/internal/logging"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// Value classes reported alongside every numeric result.
const (
	ClassFinite = "finite"
	ClassPosInf = "+inf"
	ClassNegInf = "-inf"
	ClassNaN    = "nan"
)

const (
	resultKey = "result"
	classKey  = "class"

	// maxExactInt bounds the floats GetInt accepts as integers.
	maxExactInt = 1 << 53
)

// MathOps provides helpers shared by every operation group
type MathOps struct {
	Log *logging.Logger
}

// NewMathOps returns helpers logging through log, or a no-op logger if nil
func NewMathOps(log *logging.Logger) *MathOps {
	if log == nil {
		log = logging.NewNop()
	}
	return &MathOps{Log: log}
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Number wraps a library result. NaN becomes a Failure naming the tool and
// its inputs; infinities are returned as values.
func (m *MathOps) Number(tool string, x float64, inputs ...float64) (*types.Result, error) {
	if x != x {
		m.Log.Debug("domain error",
			zap.String("tool", tool),
			zap.Float64s("inputs", inputs),
		)
		return Failure(fmt.Sprintf("%s: result is not a number for inputs %v", tool, inputs))
	}
	return Success(map[string]interface{}{
		resultKey: x,
		classKey:  Classify(x),
	})
}

// Classify names the IEEE class of x
func Classify(x float64) string {
	switch {
	case x != x:
		return ClassNaN
	case gomath.IsInf(x, 1):
		return ClassPosInf
	case gomath.IsInf(x, -1):
		return ClassNegInf
	default:
		return ClassFinite
	}
}

// GetNumber extracts float64 from params. NaN and infinities pass through,
// the library defines results for them.
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt extracts an integer from params. Floats are accepted when they hold
// an exactly representable integral value.
func GetInt(params map[string]interface{}, key string) (int, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		if int64(int(v)) != v {
			return 0, false
		}
		return int(v), true
	case float64:
		if v != gomath.Trunc(v) || gomath.Abs(v) > maxExactInt {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}

// GetString extracts string from params
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	return val, ok
}
