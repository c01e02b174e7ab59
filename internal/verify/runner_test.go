package verify

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/custommath/internal/infrastructure/config"
	"github.com/GriffinCanCode/custommath/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/custommath/internal/logging"
	mathprovider "github.com/GriffinCanCode/custommath/internal/providers/math"
	"github.com/GriffinCanCode/custommath/internal/shared/id"
	helpers "github.com/GriffinCanCode/custommath/tests/helpers/testutil"
)

func constantSuite(name string, n int, got, want float64) Suite {
	return Suite{Function: name, Cases: func() []Case {
		cases := make([]Case, n)
		for i := range cases {
			cases[i] = Case{Inputs: []float64{float64(i)}, Got: got, Want: want, Check: Check{Abs: 1e-9}}
		}
		return cases
	}}
}

func testConfig() config.VerifyConfig {
	return config.Default().Verify
}

func TestRunPassing(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	core, logs := observer.New(zapcore.InfoLevel)

	runner := NewRunner(testConfig(), logging.FromCore(core), metrics,
		WithSuites([]Suite{
			constantSuite("one", 10, 1, 1),
			constantSuite("two", 5, 2, 2+1e-12),
		}),
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Passed)
	assert.False(t, report.Stopped)
	assert.Equal(t, 15, report.Cases)
	assert.Zero(t, report.Failures)
	require.Len(t, report.Suites, 2)
	assert.Equal(t, "one", report.Suites[0].Function)
	assert.Equal(t, "two", report.Suites[1].Function)
	assert.InDelta(t, 1e-12, report.Suites[1].MaxAbsError, 1e-15)
	assert.Empty(t, report.Suites[1].Samples)

	_, err = id.RunID(report.RunID).ULID()
	require.NoError(t, err)

	assert.Equal(t, 15.0, testutil.ToFloat64(metrics.CasesTotal.WithLabelValues("one", monitoring.OutcomePass))+
		testutil.ToFloat64(metrics.CasesTotal.WithLabelValues("two", monitoring.OutcomePass)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunsTotal.WithLabelValues(monitoring.StatusPassed)))
	assert.Equal(t, int64(2), metrics.GetSnapshot().Suites)
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.SuiteDuration))

	finished := logs.FilterMessage("verification finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, report.RunID, finished[0].ContextMap()["run_id"])
	assert.Equal(t, 2, logs.FilterMessage("suite finished").Len())
}

func TestRunFailures(t *testing.T) {
	cfg := testConfig()
	cfg.MaxFailures = 3
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	core, logs := observer.New(zapcore.DebugLevel)

	runner := NewRunner(cfg, logging.FromCore(core), metrics,
		WithSuites([]Suite{
			constantSuite("good", 4, 1, 1),
			constantSuite("bad", 10, 1.5, 1),
			constantSuite("nan", 2, math.NaN(), 1),
		}),
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Passed)
	assert.Equal(t, 12, report.Failures)

	bad := report.Suites[1]
	assert.Equal(t, 10, bad.Failures)
	assert.Len(t, bad.Samples, 3)
	assert.Equal(t, "1.5", bad.Samples[0].Got)
	assert.Equal(t, "1", bad.Samples[0].Want)
	assert.Equal(t, []string{"0"}, bad.Samples[0].Inputs)
	assert.Equal(t, 0.5, bad.MaxAbsError)
	assert.Equal(t, 0.5, bad.MeanAbsError)

	nanSuite := report.Suites[2]
	assert.Equal(t, 2, nanSuite.Failures)
	assert.Equal(t, "NaN", nanSuite.Samples[0].Got)
	assert.Zero(t, nanSuite.MaxAbsError)

	assert.Equal(t, 10.0, testutil.ToFloat64(metrics.CasesTotal.WithLabelValues("bad", monitoring.OutcomeFail)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunsTotal.WithLabelValues(monitoring.StatusFailed)))

	assert.Equal(t, 12, logs.FilterMessage("case failed").Len())
	assert.Equal(t, 2, logs.FilterMessage("suite finished").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestRunFailFast(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 1
	cfg.FailFast = true

	runner := NewRunner(cfg, nil, nil,
		WithSuites([]Suite{
			constantSuite("bad", 3, 2, 1),
			constantSuite("never", 3, 1, 1),
		}),
	)

	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Stopped)
	assert.False(t, report.Passed)
	require.Len(t, report.Suites, 1)
	assert.Equal(t, "bad", report.Suites[0].Function)
}

func TestRunSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Functions = []string{"two"}

	runner := NewRunner(cfg, nil, nil, WithSuites([]Suite{
		constantSuite("one", 1, 1, 1),
		constantSuite("two", 1, 1, 1),
	}))
	report, err := runner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Suites, 1)
	assert.Equal(t, "two", report.Suites[0].Function)

	cfg.Functions = []string{"three"}
	_, err = NewRunner(cfg, nil, nil).Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestRunCancelled(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(testConfig(), nil, metrics, WithSuites([]Suite{constantSuite("one", 10, 1, 1)}))
	report, err := runner.Run(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, report)
	assert.False(t, report.Passed)
	assert.Empty(t, report.Suites)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RunsTotal.WithLabelValues(monitoring.StatusCancelled)))
}

func TestRunProbesTools(t *testing.T) {
	t.Run("real provider", func(t *testing.T) {
		runner := NewRunner(testConfig(), nil, nil,
			WithSuites([]Suite{constantSuite("one", 1, 1, 1)}),
			WithExecutor(mathprovider.NewProvider(nil)),
		)

		report, err := runner.Run(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Passed)
		require.Len(t, report.Tools, 19)
		for _, p := range report.Tools {
			assert.True(t, p.OK, p.String())
		}
	})

	t.Run("failing tool", func(t *testing.T) {
		exec := helpers.NewMockExecutor(t, "math.sqrt", "math.log")
		exec.On("Execute", mock.Anything, "math.sqrt", mock.Anything, mock.Anything).
			Return(helpers.NumberResult(0.7), nil)
		exec.On("Execute", mock.Anything, "math.log", mock.Anything, mock.Anything).
			Return(helpers.FailedResult("math.log: broken"), nil)

		runner := NewRunner(testConfig(), nil, nil,
			WithSuites([]Suite{constantSuite("one", 1, 1, 1)}),
			WithExecutor(exec),
		)

		report, err := runner.Run(context.Background())
		require.NoError(t, err)
		assert.False(t, report.Passed)
		assert.Zero(t, report.Failures)
		require.Len(t, report.Tools, 2)
		assert.True(t, report.Tools[0].OK)
		assert.Equal(t, "math.log: broken", report.Tools[1].Error)
		exec.AssertExpectations(t)
	})

	t.Run("executor error", func(t *testing.T) {
		exec := helpers.NewMockExecutor(t, "math.pi")
		exec.On("Execute", mock.Anything, "math.pi", mock.Anything, mock.Anything).
			Return(nil, errors.New("provider down"))

		probes, err := ProbeTools(context.Background(), exec, "run_test")
		require.NoError(t, err)
		require.Len(t, probes, 1)
		assert.False(t, probes[0].OK)
		assert.Equal(t, "math.pi: provider down", probes[0].String())
	})
}

func TestSummarize(t *testing.T) {
	var res SuiteResult
	summarize(&res, nil)
	assert.Zero(t, res.MaxAbsError)
	assert.Zero(t, res.MeanAbsError)

	errs := make([]float64, 100)
	for i := range errs {
		errs[i] = float64(100 - i)
	}
	summarize(&res, errs)
	assert.Equal(t, 100.0, res.MaxAbsError)
	assert.Equal(t, 50.5, res.MeanAbsError)
	assert.Equal(t, 99.0, res.P99AbsError)
}
