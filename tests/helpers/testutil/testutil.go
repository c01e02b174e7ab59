// Package testutil provides assertions and mocks shared by provider and
// harness tests.
package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// MockExecutor is a testify mock of a tool provider.
type MockExecutor struct {
	mock.Mock
}

// Definition mocks the Definition method.
func (m *MockExecutor) Definition() types.Service {
	args := m.Called()
	return args.Get(0).(types.Service)
}

// Execute mocks the Execute method.
func (m *MockExecutor) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	args := m.Called(ctx, toolID, params, appCtx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Result), args.Error(1)
}

// NewMockExecutor returns a mock whose Definition lists the given tool IDs.
func NewMockExecutor(t *testing.T, toolIDs ...string) *MockExecutor {
	t.Helper()
	m := new(MockExecutor)

	tools := make([]types.Tool, 0, len(toolIDs))
	for _, id := range toolIDs {
		tools = append(tools, types.Tool{ID: id, Name: id, Returns: "number"})
	}
	m.On("Definition").Return(types.Service{
		ID:       "math",
		Name:     "Mock Math Service",
		Category: types.CategoryMath,
		Tools:    tools,
	}).Maybe()

	return m
}

// NumberResult builds a successful result carrying x.
func NumberResult(x float64) *types.Result {
	return &types.Result{Success: true, Data: map[string]interface{}{"result": x}}
}

// FailedResult builds a failed result with msg.
func FailedResult(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}

// AssertSuccess is a helper to assert a successful result.
func AssertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if !result.Success {
		msg := "<nil>"
		if result.Error != nil {
			msg = *result.Error
		}
		t.Fatalf("Expected success, got error: %s", msg)
	}
}

// AssertError is a helper to assert an error result.
func AssertError(t *testing.T, result *types.Result) {
	t.Helper()
	if result == nil {
		t.Fatal("Result is nil")
	}
	if result.Success {
		t.Fatalf("Expected error, got success: %v", result.Data)
	}
	if result.Error == nil {
		t.Fatal("Expected error message, got nil")
	}
}

// ResultNumber asserts success and returns the float64 under "result".
func ResultNumber(t *testing.T, result *types.Result) float64 {
	t.Helper()
	AssertSuccess(t, result)

	raw, ok := result.Data["result"]
	if !ok {
		t.Fatal("Field result not found in result data")
	}
	x, ok := raw.(float64)
	if !ok {
		t.Fatalf("Field result: expected float64, got %T", raw)
	}
	return x
}

// AssertDataField asserts a data field exists and matches expected value.
func AssertDataField(t *testing.T, result *types.Result, field string, expected interface{}) {
	t.Helper()
	AssertSuccess(t, result)

	actual, ok := result.Data[field]
	if !ok {
		t.Fatalf("Field %s not found in result data", field)
	}
	if actual != expected {
		t.Fatalf("Field %s: expected %v, got %v", field, expected, actual)
	}
}
