package operations

import (
	"context"

	"github.com/GriffinCanCode/custommath"
	"github.com/GriffinCanCode/custommath/internal/providers/math/common"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// TrigOps handles trigonometric functions and their inverses
type TrigOps struct {
	*common.MathOps
}

var trigFuncs = []struct {
	id, name, desc string
}{
	{"math.sin", "Sine", "Sine of an angle in radians"},
	{"math.cos", "Cosine", "Cosine of an angle in radians"},
	{"math.tan", "Tangent", "Tangent of an angle in radians"},
	{"math.asin", "Arcsine", "Arcsine in radians for x in [-1, 1]"},
	{"math.acos", "Arccosine", "Arccosine in radians for x in [-1, 1]"},
	{"math.atan", "Arctangent", "Arctangent in radians"},
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	tools := make([]types.Tool, 0, len(trigFuncs))
	for _, f := range trigFuncs {
		tools = append(tools, types.Tool{
			ID:          f.id,
			Name:        f.name,
			Description: f.desc,
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Argument", Required: true},
			},
			Returns: "number",
		})
	}
	return tools
}

func (t *TrigOps) apply(id string, fn func(float64) float64, params map[string]interface{}) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return t.Number(id, fn(x), x)
}

// Sin calculates sine
func (t *TrigOps) Sin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.sin", custommath.Sin, params)
}

// Cos calculates cosine
func (t *TrigOps) Cos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.cos", custommath.Cos, params)
}

// Tan calculates tangent
func (t *TrigOps) Tan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.tan", custommath.Tan, params)
}

// Asin calculates arcsine
func (t *TrigOps) Asin(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.asin", custommath.Asin, params)
}

// Acos calculates arccosine
func (t *TrigOps) Acos(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.acos", custommath.Acos, params)
}

// Atan calculates arctangent
func (t *TrigOps) Atan(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return t.apply("math.atan", custommath.Atan, params)
}
