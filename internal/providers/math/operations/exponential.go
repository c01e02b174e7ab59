package operations

import (
	"context"

	"github.com/GriffinCanCode/custommath"
	"github.com/GriffinCanCode/custommath/internal/providers/math/common"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// ExponentialOps handles exp, log, pow and sqrt
type ExponentialOps struct {
	*common.MathOps
}

// GetTools returns exponential tool definitions
func (e *ExponentialOps) GetTools() []types.Tool {
	unary := func(id, name, desc, param string) types.Tool {
		return types.Tool{
			ID:          id,
			Name:        name,
			Description: desc,
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: param, Required: true},
			},
			Returns: "number",
		}
	}

	return []types.Tool{
		unary("math.exp", "Exponential", "Calculate e^x", "Exponent"),
		unary("math.log", "Natural Logarithm", "Calculate ln(x) for x >= 0", "Number"),
		{
			ID:          "math.pow",
			Name:        "Power",
			Description: "Raise base to exponent; negative bases need an integer exponent",
			Parameters: []types.Parameter{
				{Name: "base", Type: "number", Description: "Base", Required: true},
				{Name: "exponent", Type: "number", Description: "Exponent", Required: true},
			},
			Returns: "number",
		},
		unary("math.sqrt", "Square Root", "Calculate the square root of x >= 0", "Number"),
	}
}

// Exp calculates e^x
func (e *ExponentialOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return e.Number("math.exp", custommath.Exp(x), x)
}

// Log calculates the natural logarithm
func (e *ExponentialOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return e.Number("math.log", custommath.Log(x), x)
}

// Pow raises base to exponent
func (e *ExponentialOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	base, ok := common.GetNumber(params, "base")
	if !ok {
		return common.Failure("base parameter required")
	}
	exponent, ok := common.GetNumber(params, "exponent")
	if !ok {
		return common.Failure("exponent parameter required")
	}
	return e.Number("math.pow", custommath.Pow(base, exponent), base, exponent)
}

// Sqrt calculates the square root
func (e *ExponentialOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return e.Number("math.sqrt", custommath.Sqrt(x), x)
}
