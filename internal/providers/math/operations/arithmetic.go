package operations

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/custommath"
	"github.com/GriffinCanCode/custommath/internal/providers/math/common"
	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// MaxFactorial is the largest argument math.factorial accepts. Anything
// above 170 already overflows to +Inf.
const MaxFactorial = 1000

// ArithmeticOps handles absolute values, rounding, remainders and factorial
type ArithmeticOps struct {
	*common.MathOps
}

// GetTools returns arithmetic tool definitions
func (a *ArithmeticOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.abs",
			Name:        "Integer Absolute Value",
			Description: "Absolute value of an integer",
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Integer", Required: true},
			},
			Returns: "integer",
		},
		{
			ID:          "math.fabs",
			Name:        "Absolute Value",
			Description: "Absolute value of a floating-point number",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.floor",
			Name:        "Floor",
			Description: "Largest integer not greater than x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.ceil",
			Name:        "Ceiling",
			Description: "Smallest integer not less than x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Number", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.fmod",
			Name:        "Floating Remainder",
			Description: "Remainder of x/y truncated toward zero, with the sign of x",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Dividend", Required: true},
				{Name: "y", Type: "number", Description: "Divisor", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.factorial",
			Name:        "Factorial",
			Description: fmt.Sprintf("n! for 0 <= n <= %d", MaxFactorial),
			Parameters: []types.Parameter{
				{Name: "n", Type: "integer", Description: "Non-negative integer", Required: true},
			},
			Returns: "number",
		},
	}
}

// Abs returns |n| for an integer n
func (a *ArithmeticOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}
	return common.Success(map[string]interface{}{"result": custommath.Abs(n)})
}

// Fabs returns |x|
func (a *ArithmeticOps) Fabs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return a.Number("math.fabs", custommath.Fabs(x), x)
}

// Floor rounds down
func (a *ArithmeticOps) Floor(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return a.Number("math.floor", custommath.Floor(x), x)
}

// Ceil rounds up
func (a *ArithmeticOps) Ceil(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	return a.Number("math.ceil", custommath.Ceil(x), x)
}

// Fmod computes the truncated remainder of x/y
func (a *ArithmeticOps) Fmod(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumber(params, "x")
	if !ok {
		return common.Failure("x parameter required")
	}
	y, ok := common.GetNumber(params, "y")
	if !ok {
		return common.Failure("y parameter required")
	}
	return a.Number("math.fmod", custommath.Fmod(x, y), x, y)
}

// Factorial computes n!
func (a *ArithmeticOps) Factorial(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}
	if n > MaxFactorial {
		return common.Failure(fmt.Sprintf("n must be at most %d", MaxFactorial))
	}
	return a.Number("math.factorial", custommath.Factorial(n), float64(n))
}
