package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Case outcomes recorded on custommath_verify_cases_total.
const (
	OutcomePass = "pass"
	OutcomeFail = "fail"
)

// Run statuses recorded on custommath_verify_runs_total.
const (
	StatusPassed    = "passed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Metrics holds the Prometheus collectors for verification runs
type Metrics struct {
	CasesTotal    *prometheus.CounterVec
	AbsError      *prometheus.HistogramVec
	SuiteDuration *prometheus.HistogramVec
	RunsTotal     *prometheus.CounterVec

	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for in-process reads
type Snapshot struct {
	Cases    int64
	Failures int64
	Suites   int64
	Runs     int64
	Duration time.Duration
}

// NewMetrics registers the collectors on reg. Pass a fresh
// prometheus.NewRegistry() per test to keep registrations apart.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CasesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "custommath_verify_cases_total",
				Help: "Total number of verification cases evaluated",
			},
			[]string{"function", "outcome"},
		),
		AbsError: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "custommath_verify_abs_error",
				Help:    "Absolute error against the reference implementation",
				Buckets: []float64{0, 1e-16, 1e-14, 1e-12, 1e-10, 1e-8, 1e-6, 1e-4, 1e-2, 1},
			},
			[]string{"function"},
		),
		SuiteDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "custommath_verify_suite_duration_seconds",
				Help:    "Wall time spent evaluating one suite",
				Buckets: []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"function"},
		),
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "custommath_verify_runs_total",
				Help: "Total number of verification runs by final status",
			},
			[]string{"status"},
		),
	}
}

// RecordCase records one evaluated case. NaN errors are not observed.
func (m *Metrics) RecordCase(function string, passed bool, absErr float64) {
	outcome := OutcomePass
	if !passed {
		outcome = OutcomeFail
	}
	m.CasesTotal.WithLabelValues(function, outcome).Inc()
	if absErr == absErr {
		m.AbsError.WithLabelValues(function).Observe(absErr)
	}

	m.mu.Lock()
	m.snapshot.Cases++
	if !passed {
		m.snapshot.Failures++
	}
	m.mu.Unlock()
}

// RecordSuite records the duration of a finished suite
func (m *Metrics) RecordSuite(function string, duration time.Duration) {
	m.SuiteDuration.WithLabelValues(function).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Suites++
	m.snapshot.Duration += duration
	m.mu.Unlock()
}

// RecordRun records the final status of a run
func (m *Metrics) RecordRun(status string) {
	m.RunsTotal.WithLabelValues(status).Inc()

	m.mu.Lock()
	m.snapshot.Runs++
	m.mu.Unlock()
}

// GetSnapshot returns a copy of the running totals
func (m *Metrics) GetSnapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Timer measures one suite
type Timer struct {
	start    time.Time
	metrics  *Metrics
	function string
}

// NewTimer starts timing a suite
func NewTimer(metrics *Metrics, function string) *Timer {
	return &Timer{
		start:    time.Now(),
		metrics:  metrics,
		function: function,
	}
}

// Stop records the elapsed time and returns it. A timer without metrics
// only measures.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	if t.metrics != nil {
		t.metrics.RecordSuite(t.function, elapsed)
	}
	return elapsed
}
