/*
Package monitoring records verification metrics with Prometheus.

# Metrics

  - custommath_verify_cases_total{function,outcome}
  - custommath_verify_abs_error{function}
  - custommath_verify_suite_duration_seconds{function}
  - custommath_verify_runs_total{status}

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	timer := monitoring.NewTimer(metrics, "sqrt")
	metrics.RecordCase("sqrt", true, 2.2e-16)
	timer.Stop()

	metrics.RecordRun(monitoring.StatusPassed)

Collectors live on the registry the caller supplies, so they can be gathered
or exposed with promhttp.HandlerFor(reg, ...) without touching the global
default registry.
*/
package monitoring
