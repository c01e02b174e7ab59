package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/custommath/internal/infrastructure/config"
	"github.com/GriffinCanCode/custommath/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/custommath/internal/logging"
	mathprovider "github.com/GriffinCanCode/custommath/internal/providers/math"
	"github.com/GriffinCanCode/custommath/internal/verify"
)

// Exit codes.
const (
	exitPassed = 0
	exitFailed = 1
	exitError  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "verify: %v\n", err)
		return exitError
	}

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(stderr, "verify: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	runner := verify.NewRunner(cfg.Verify, logger, metrics,
		verify.WithExecutor(mathprovider.NewProvider(logger)),
	)

	report, err := runner.Run(ctx)
	if err != nil {
		logger.Error("verification aborted", zap.Error(err))
		if report == nil {
			if errors.Is(err, verify.ErrUnknownFunction) {
				fmt.Fprintf(stderr, "verify: %v (available: %s)\n", err, strings.Join(verify.Names(), ", "))
			}
			return exitError
		}
	}

	if encErr := report.Encode(stdout, cfg.Verify.Format); encErr != nil {
		logger.Error("failed to write report", zap.Error(encErr))
		return exitError
	}

	snap := metrics.GetSnapshot()
	logger.Debug("metrics snapshot",
		zap.Int64("cases", snap.Cases),
		zap.Int64("failures", snap.Failures),
		zap.Duration("suite_time", snap.Duration),
	)

	switch {
	case err != nil:
		return exitError
	case !report.Passed:
		return exitFailed
	default:
		return exitPassed
	}
}
