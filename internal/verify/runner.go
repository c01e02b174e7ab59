// Package verify checks the custommath functions against the standard
// library over fixed input grids.
//
// Each suite evaluates one function; suites run concurrently up to the
// configured worker count and each produces a SuiteResult with its failure
// count, error statistics and a bounded sample of failing cases. A run is
// identified by a ULID run ID and recorded in Prometheus metrics.
//
// Example Usage:
//
//	runner := verify.NewRunner(cfg.Verify, logger, metrics)
//	report, err := runner.Run(ctx)
//	if err != nil {
//	    return err
//	}
//	report.Encode(os.Stdout, cfg.Verify.Format)
package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/GriffinCanCode/custommath/internal/infrastructure/config"
	"github.com/GriffinCanCode/custommath/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/custommath/internal/logging"
	"github.com/GriffinCanCode/custommath/internal/shared/id"
)

// cancelCheckEvery is how many cases run between context checks.
const cancelCheckEvery = 1024

// Runner executes verification suites.
type Runner struct {
	cfg      config.VerifyConfig
	log      *logging.Logger
	metrics  *monitoring.Metrics
	suites   []Suite
	executor Executor
}

// Option configures a Runner.
type Option func(*Runner)

// WithSuites replaces the default suites.
func WithSuites(suites []Suite) Option {
	return func(r *Runner) { r.suites = suites }
}

// WithExecutor probes the given tool provider after the suites.
func WithExecutor(exec Executor) Option {
	return func(r *Runner) { r.executor = exec }
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.VerifyConfig, log *logging.Logger, metrics *monitoring.Metrics, opts ...Option) *Runner {
	if log == nil {
		log = logging.NewNop()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	r := &Runner{
		cfg:     cfg,
		log:     log,
		metrics: metrics,
		suites:  All(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates the selected suites. A failing case is not an error: it is
// counted in the report. Run returns an error for an unknown selection or
// when ctx is cancelled, in which case the partial report is returned too.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	suites, err := Select(r.suites, r.cfg.Functions)
	if err != nil {
		return nil, err
	}

	runID := id.Default().NewRun()
	log := r.log.ForRun(runID.String())
	started := time.Now()
	log.Info("verification started",
		zap.Int("suites", len(suites)),
		zap.Int("workers", r.cfg.Workers),
	)

	results := make([]SuiteResult, len(suites))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

	for i, suite := range suites {
		g.Go(func() error {
			res, err := r.runSuite(gctx, suite, log.ForFunction(suite.Function))
			if err != nil {
				return err
			}
			results[i] = res
			if r.cfg.FailFast && res.Failures > 0 {
				return fmt.Errorf("%w: %s", errFailFast, suite.Function)
			}
			return nil
		})
	}
	waitErr := g.Wait()

	report := &Report{
		RunID:   runID.String(),
		Started: started.UTC(),
		Suites:  make([]SuiteResult, 0, len(results)),
	}
	for _, res := range results {
		if res.Function == "" {
			continue
		}
		report.Suites = append(report.Suites, res)
		report.Cases += res.Cases
		report.Failures += res.Failures
	}

	switch {
	case waitErr == nil:
	case errors.Is(waitErr, errFailFast):
		report.Stopped = true
		log.Warn("verification stopped early", zap.Error(waitErr))
	default:
		report.DurationMS = millis(time.Since(started))
		r.record(monitoring.StatusCancelled)
		log.Warn("verification cancelled", zap.Error(waitErr))
		return report, fmt.Errorf("verification run %s: %w", runID, waitErr)
	}

	if r.executor != nil && !report.Stopped {
		probes, err := ProbeTools(ctx, r.executor, runID.String())
		report.Tools = probes
		if err != nil {
			report.DurationMS = millis(time.Since(started))
			r.record(monitoring.StatusCancelled)
			return report, fmt.Errorf("verification run %s: %w", runID, err)
		}
		for _, p := range probes {
			if !p.OK {
				log.Error("tool probe failed", zap.Stringer("probe", p))
			}
		}
	}

	report.DurationMS = millis(time.Since(started))
	report.Passed = report.Failures == 0 && probeFailures(report.Tools) == 0 && !report.Stopped

	status := monitoring.StatusPassed
	if !report.Passed {
		status = monitoring.StatusFailed
	}
	r.record(status)

	log.Info("verification finished",
		zap.Bool("passed", report.Passed),
		zap.Int("cases", report.Cases),
		zap.Int("failures", report.Failures),
		zap.Float64("duration_ms", report.DurationMS),
	)
	return report, nil
}

func (r *Runner) record(status string) {
	if r.metrics != nil {
		r.metrics.RecordRun(status)
	}
}

func (r *Runner) runSuite(ctx context.Context, suite Suite, log *logging.Logger) (SuiteResult, error) {
	timer := monitoring.NewTimer(r.metrics, suite.Function)
	cases := suite.Cases()

	res := SuiteResult{Function: suite.Function, Cases: len(cases)}
	errs := make([]float64, 0, len(cases))

	for i, c := range cases {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return SuiteResult{}, err
			}
		}

		ok, absErr := c.Evaluate()
		if r.metrics != nil {
			r.metrics.RecordCase(suite.Function, ok, absErr)
		}
		if !math.IsNaN(absErr) && !math.IsInf(absErr, 0) {
			errs = append(errs, absErr)
		}
		if ok {
			continue
		}

		res.Failures++
		if len(res.Samples) < r.cfg.MaxFailures {
			res.Samples = append(res.Samples, newFailure(c))
		}
		log.Debug("case failed",
			zap.Float64s("inputs", c.Inputs),
			zap.Float64("got", c.Got),
			zap.Float64("want", c.Want),
		)
	}

	summarize(&res, errs)

	res.DurationMS = millis(timer.Stop())

	level := log.Info
	if res.Failures > 0 {
		level = log.Warn
	}
	level("suite finished",
		zap.Int("cases", res.Cases),
		zap.Int("failures", res.Failures),
		zap.Float64("max_abs_error", res.MaxAbsError),
	)
	return res, nil
}

// summarize fills the error statistics. errs is sorted in place.
func summarize(res *SuiteResult, errs []float64) {
	if len(errs) == 0 {
		return
	}
	sort.Float64s(errs)
	res.MaxAbsError = floats.Max(errs)
	res.MeanAbsError = stat.Mean(errs, nil)
	res.P99AbsError = stat.Quantile(0.99, stat.Empirical, errs, nil)
}
