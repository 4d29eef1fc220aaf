package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/KaiCodesWithGithub/vector-operations/internal/batch"
	"github.com/KaiCodesWithGithub/vector-operations/internal/cli"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
	"github.com/KaiCodesWithGithub/vector-operations/internal/logging"
	"github.com/KaiCodesWithGithub/vector-operations/internal/server"
	"github.com/KaiCodesWithGithub/vector-operations/internal/tui"
)

// outputConfig derives the cli output settings from the app configuration.
func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{JSON: a.Config.JSON, Quiet: a.Config.Quiet}
}

// runSingle evaluates the one operation given on the command line.
func (a *Application) runSingle(out io.Writer) int {
	req := eval.Request{Op: a.Config.Op, Operands: a.Config.Operands}

	a.Logger.Debug("evaluating operation",
		logging.String("op", req.Op),
		logging.Int("operands", len(req.Operands)))

	res, err := eval.Evaluate(req)
	if err != nil {
		a.Logger.Error("evaluation failed", err, logging.String("op", req.Op))
		cli.DisplayError(a.ErrWriter, err)
		return ExitCodeFor(err)
	}
	a.Logger.Debug("operation evaluated",
		logging.String("op", res.Op),
		logging.Int64("duration_us", res.Duration.Microseconds()))

	if err := cli.DisplayResult(out, res, a.outputConfig()); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runBatch evaluates a file of operations with a bounded worker pool.
// Results are written in input order; a failing line is reported and counted
// but does not abort the rest of the file.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	file, err := os.Open(a.Config.BatchFile)
	if err != nil {
		cli.DisplayError(a.ErrWriter, apperrors.WrapError(err, "opening batch file"))
		return apperrors.ExitErrorConfig
	}
	defer file.Close()

	metrics := a.startMetrics(ctx)

	progressEnabled := !a.Config.Quiet && !a.Config.JSON
	var progress cli.Spinner
	onProgress := func(done, total int) {
		if progress != nil {
			cli.UpdateBatchProgress(progress, done, total)
		}
	}
	progress = cli.NewBatchProgress(a.ErrWriter, progressEnabled, 0)
	defer progress.Stop()

	start := time.Now()
	entries, err := batch.Run(ctx, file, runtime.GOMAXPROCS(0), onProgress)
	progress.Stop()
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return ExitCodeFor(err)
	}

	exitCode := apperrors.ExitSuccess
	failed := 0
	for _, entry := range entries {
		if metrics != nil {
			op := entry.Op
			if op == "" {
				op = "invalid"
			}
			metrics.RecordOperation(op, entry.Result.Duration, entry.Err)
		}
		if entry.Err != nil {
			failed++
			fmt.Fprintf(a.ErrWriter, "line %d: %v\n", entry.Line, entry.Err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = ExitCodeFor(entry.Err)
			}
			continue
		}
		if err := cli.DisplayResult(out, entry.Result, a.outputConfig()); err != nil {
			return apperrors.ExitErrorGeneric
		}
	}

	a.Logger.Info("batch finished",
		logging.String("file", a.Config.BatchFile),
		logging.Int("operations", len(entries)),
		logging.Int("failed", failed),
		logging.Float64("seconds", time.Since(start).Seconds()))
	return exitCode
}

// runREPL starts the interactive session.
func (a *Application) runREPL(ctx context.Context) int {
	return tui.Run(ctx, a.startMetrics(ctx))
}

// startMetrics creates the Prometheus collectors and serves them when a
// metrics address is configured. Returns nil when metrics are disabled.
func (a *Application) startMetrics(ctx context.Context) *server.Metrics {
	if a.Config.MetricsAddr == "" {
		return nil
	}
	metrics := server.NewMetrics()
	go metrics.Serve(ctx, a.Config.MetricsAddr, a.Logger)
	return metrics
}
