// Package app wires configuration, logging, metrics and evaluation into the
// vecops application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	"github.com/KaiCodesWithGithub/vector-operations/internal/config"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
	"github.com/KaiCodesWithGithub/vector-operations/internal/logging"
)

// Version is the application version, overridable at build time with
// -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Application represents a vecops invocation.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "vecops %s\n", Version)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "vecops"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, eval.Ops())
	if err != nil {
		if !IsHelpError(err) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    newLogger(cfg, errWriter),
	}, nil
}

// newLogger builds the application logger: debug level with -verbose,
// silent in quiet mode, warnings and errors otherwise.
func newLogger(cfg config.AppConfig, errWriter io.Writer) logging.Logger {
	if cfg.Quiet {
		return logging.NopLogger{}
	}
	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	return logging.NewLogger(errWriter, "vecops", level)
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	switch {
	case a.Config.REPL:
		return a.runREPL(ctx)
	case a.Config.BatchFile != "":
		return a.runBatch(ctx, out)
	default:
		return a.runSingle(out)
	}
}

// ExitCodeFor maps an error to the process exit code declared in apperrors.
func ExitCodeFor(err error) int {
	var (
		shapeErr    vecops.ShapeMismatchError
		overflowErr vecops.OverflowError
		configErr   apperrors.ConfigError
		parseErr    apperrors.ParseError
	)
	switch {
	case err == nil:
		return apperrors.ExitSuccess
	case apperrors.IsContextError(err):
		return apperrors.ExitErrorCanceled
	case errors.As(err, &shapeErr):
		return apperrors.ExitErrorShape
	case errors.As(err, &overflowErr):
		return apperrors.ExitErrorOverflow
	case errors.As(err, &configErr):
		return apperrors.ExitErrorConfig
	case errors.As(err, &parseErr):
		return apperrors.ExitErrorParse
	default:
		return apperrors.ExitErrorGeneric
	}
}
