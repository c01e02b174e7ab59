// Package math exposes the custommath library as a tool provider. Tools are
// addressed as "math.<function>" and take a map of named parameters.
package math

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/custommath/internal/logging"
	"github.com/GriffinCanCode/custommath/internal/providers/math/common"
	"github.com/GriffinCanCode/custommath/internal/providers/math/operations"
	"github.com/GriffinCanCode/custommath/internal/providers/math/utilities"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// Provider implements the math tools
type Provider struct {
	arithmetic  *operations.ArithmeticOps
	exponential *operations.ExponentialOps
	trig        *operations.TrigOps
	constants   *utilities.ConstantsOps
	log         *logging.Logger
}

// NewProvider creates a math provider. A nil logger discards output.
func NewProvider(log *logging.Logger) *Provider {
	ops := common.NewMathOps(log)

	return &Provider{
		arithmetic:  &operations.ArithmeticOps{MathOps: ops},
		exponential: &operations.ExponentialOps{MathOps: ops},
		trig:        &operations.TrigOps{MathOps: ops},
		constants:   &utilities.ConstantsOps{MathOps: ops},
		log:         ops.Log,
	}
}

// Definition returns service metadata with all tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.arithmetic.GetTools()...)
	tools = append(tools, m.exponential.GetTools()...)
	tools = append(tools, m.trig.GetTools()...)
	tools = append(tools, m.constants.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Elementary functions computed by series, Newton iteration and range reduction",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"arithmetic",
			"exponential",
			"trigonometry",
			"constants",
		},
		Tools: tools,
	}
}

// Execute routes toolID to its operation
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("execute %s: %w", toolID, err)
	}

	switch toolID {
	// Arithmetic
	case "math.abs":
		return m.arithmetic.Abs(ctx, params, appCtx)
	case "math.fabs":
		return m.arithmetic.Fabs(ctx, params, appCtx)
	case "math.floor":
		return m.arithmetic.Floor(ctx, params, appCtx)
	case "math.ceil":
		return m.arithmetic.Ceil(ctx, params, appCtx)
	case "math.fmod":
		return m.arithmetic.Fmod(ctx, params, appCtx)
	case "math.factorial":
		return m.arithmetic.Factorial(ctx, params, appCtx)

	// Exponential
	case "math.exp":
		return m.exponential.Exp(ctx, params, appCtx)
	case "math.log":
		return m.exponential.Log(ctx, params, appCtx)
	case "math.pow":
		return m.exponential.Pow(ctx, params, appCtx)
	case "math.sqrt":
		return m.exponential.Sqrt(ctx, params, appCtx)

	// Trig
	case "math.sin":
		return m.trig.Sin(ctx, params, appCtx)
	case "math.cos":
		return m.trig.Cos(ctx, params, appCtx)
	case "math.tan":
		return m.trig.Tan(ctx, params, appCtx)
	case "math.asin":
		return m.trig.Asin(ctx, params, appCtx)
	case "math.acos":
		return m.trig.Acos(ctx, params, appCtx)
	case "math.atan":
		return m.trig.Atan(ctx, params, appCtx)

	// Constants
	case "math.pi":
		return m.constants.Pi(ctx, params, appCtx)
	case "math.e":
		return m.constants.E(ctx, params, appCtx)
	case "math.tolerance":
		return m.constants.Tolerance(ctx, params, appCtx)

	default:
		m.log.Warn("unknown tool", zap.String("tool", toolID))
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
