package verify

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/custommath/internal/infrastructure/config"
)

// Report is the outcome of one verification run.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id" toml:"run_id"`
	Started    time.Time     `json:"started" yaml:"started" toml:"started"`
	DurationMS float64       `json:"duration_ms" yaml:"duration_ms" toml:"duration_ms"`
	Passed     bool          `json:"passed" yaml:"passed" toml:"passed"`
	Stopped    bool          `json:"stopped,omitempty" yaml:"stopped,omitempty" toml:"stopped,omitempty"`
	Cases      int           `json:"cases" yaml:"cases" toml:"cases"`
	Failures   int           `json:"failures" yaml:"failures" toml:"failures"`
	Suites     []SuiteResult `json:"suites" yaml:"suites" toml:"suites"`
	Tools      []ToolProbe   `json:"tools,omitempty" yaml:"tools,omitempty" toml:"tools,omitempty"`
}

// SuiteResult summarizes one function. Error statistics cover the cases
// whose absolute error is finite.
type SuiteResult struct {
	Function     string    `json:"function" yaml:"function" toml:"function"`
	Cases        int       `json:"cases" yaml:"cases" toml:"cases"`
	Failures     int       `json:"failures" yaml:"failures" toml:"failures"`
	MaxAbsError  float64   `json:"max_abs_error" yaml:"max_abs_error" toml:"max_abs_error"`
	MeanAbsError float64   `json:"mean_abs_error" yaml:"mean_abs_error" toml:"mean_abs_error"`
	P99AbsError  float64   `json:"p99_abs_error" yaml:"p99_abs_error" toml:"p99_abs_error"`
	DurationMS   float64   `json:"duration_ms" yaml:"duration_ms" toml:"duration_ms"`
	Samples      []Failure `json:"samples,omitempty" yaml:"samples,omitempty" toml:"samples,omitempty"`
}

// Failure records one failing case. Values are formatted strings since NaN
// and infinities have no JSON or TOML number form.
type Failure struct {
	Inputs []string `json:"inputs" yaml:"inputs" toml:"inputs"`
	Got    string   `json:"got" yaml:"got" toml:"got"`
	Want   string   `json:"want" yaml:"want" toml:"want"`
}

func newFailure(c Case) Failure {
	inputs := make([]string, len(c.Inputs))
	for i, x := range c.Inputs {
		inputs[i] = formatFloat(x)
	}
	return Failure{Inputs: inputs, Got: formatFloat(c.Got), Want: formatFloat(c.Want)}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Encode writes the report to w in the given format.
func (r *Report) Encode(w io.Writer, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case config.FormatJSON:
		data, err = sonic.ConfigStd.MarshalIndent(r, "", "  ")
	case config.FormatYAML:
		data, err = yaml.Marshal(r)
	case config.FormatTOML:
		data, err = toml.Marshal(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode %s report: %w", format, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}
	if format == config.FormatJSON {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// Decode parses a report previously written by Encode.
func Decode(data []byte, format string) (*Report, error) {
	var (
		r   Report
		err error
	)

	switch format {
	case config.FormatJSON:
		err = sonic.ConfigStd.Unmarshal(data, &r)
	case config.FormatYAML:
		err = yaml.Unmarshal(data, &r)
	case config.FormatTOML:
		err = toml.Unmarshal(data, &r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s report: %w", format, err)
	}
	return &r, nil
}
