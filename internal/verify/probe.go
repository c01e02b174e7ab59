package verify

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/custommath/internal/shared/types"
)

// Executor is the tool surface probed after the suites run.
type Executor interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// ToolProbe records one tool call with in-domain sample arguments.
type ToolProbe struct {
	Tool  string `json:"tool" yaml:"tool" toml:"tool"`
	OK    bool   `json:"ok" yaml:"ok" toml:"ok"`
	Error string `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

// sampleParams picks an argument inside every tool's domain.
func sampleParams(tool types.Tool) map[string]interface{} {
	params := make(map[string]interface{}, len(tool.Parameters))
	for _, p := range tool.Parameters {
		switch p.Type {
		case "integer":
			params[p.Name] = 3
		case "string":
			params[p.Name] = "exp"
		default:
			params[p.Name] = 0.5
		}
	}
	return params
}

// ProbeTools calls every listed tool once and reports which succeeded.
func ProbeTools(ctx context.Context, exec Executor, runID string) ([]ToolProbe, error) {
	svc := exec.Definition()
	appCtx := &types.Context{RunID: &runID}

	probes := make([]ToolProbe, 0, len(svc.Tools))
	for _, tool := range svc.Tools {
		if err := ctx.Err(); err != nil {
			return probes, err
		}

		probe := ToolProbe{Tool: tool.ID}
		result, err := exec.Execute(ctx, tool.ID, sampleParams(tool), appCtx)
		switch {
		case err != nil:
			probe.Error = err.Error()
		case result == nil:
			probe.Error = "nil result"
		case !result.Success:
			probe.Error = "tool reported failure"
			if result.Error != nil {
				probe.Error = *result.Error
			}
		default:
			probe.OK = true
		}
		probes = append(probes, probe)
	}
	return probes, nil
}

func probeFailures(probes []ToolProbe) int {
	n := 0
	for _, p := range probes {
		if !p.OK {
			n++
		}
	}
	return n
}

func (p ToolProbe) String() string {
	if p.OK {
		return p.Tool + ": ok"
	}
	return fmt.Sprintf("%s: %s", p.Tool, p.Error)
}
