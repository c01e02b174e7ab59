package utilities

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/custommath"
	"github.com/GriffinCanCode/custommath/internal/providers/math/common"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// ConstantsOps exposes library constants and iteration bounds
type ConstantsOps struct {
	*common.MathOps
}

// GetTools returns constant tool definitions
func (c *ConstantsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.pi",
			Name:        "Pi (π)",
			Description: "Get value of π",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.e",
			Name:        "Euler's Number (e)",
			Description: "Get value of e",
			Parameters:  []types.Parameter{},
			Returns:     "number",
		},
		{
			ID:          "math.tolerance",
			Name:        "Convergence Bounds",
			Description: "Stopping tolerance and step cap of an iterative function",
			Parameters: []types.Parameter{
				{Name: "function", Type: "string", Description: "exp, log, sqrt, sin, cos, asin, acos or atan", Required: true},
			},
			Returns: "object",
		},
	}
}

// Pi returns π
func (c *ConstantsOps) Pi(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Number("math.pi", custommath.Pi)
}

// E returns e
func (c *ConstantsOps) E(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return c.Number("math.e", custommath.E)
}

// Tolerance reports the convergence bounds of one function
func (c *ConstantsOps) Tolerance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	name, ok := common.GetString(params, "function")
	if !ok || name == "" {
		return common.Failure("function parameter required")
	}
	conv, ok := custommath.ConvergenceOf(name)
	if !ok {
		return common.Failure(fmt.Sprintf("no convergence bounds for %q", name))
	}
	return common.Success(map[string]interface{}{
		"function":  name,
		"tolerance": conv.Tolerance,
		"max_steps": conv.MaxSteps,
		"fixed":     conv.Tolerance == 0,
	})
}
