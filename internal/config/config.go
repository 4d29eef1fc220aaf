// Package config defines the vecops command-line configuration and its
// resolution chain. Values are resolved with the following priority, highest
// first:
//
//  1. CLI flags (-op, -json, ...)
//  2. Environment variables (VECOPS_OP, VECOPS_JSON, ...)
//  3. YAML configuration file (-config, or VECOPS_CONFIG)
//  4. Static defaults
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"

	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
)

// EnvPrefix is the prefix of every environment variable read by vecops.
const EnvPrefix = "VECOPS_"

// AppConfig holds the full resolved configuration of a vecops invocation.
type AppConfig struct {
	// Op is the operation to evaluate: add, sub, scale, dot, matvecmul or
	// transpose. Empty when running in batch or REPL mode.
	Op string
	// Operands are the positional vector/matrix/scalar literals.
	Operands []string
	// JSON switches the result rendering from plain text to JSON.
	JSON bool
	// Quiet suppresses everything except the bare result.
	Quiet bool
	// Verbose enables debug logging to stderr.
	Verbose bool
	// BatchFile evaluates a file of one-operation-per-line requests
	// instead of a single operation.
	BatchFile string
	// REPL starts the interactive terminal session.
	REPL bool
	// MetricsAddr serves Prometheus metrics on this address when non-empty
	// (batch and REPL modes only; one-shot invocations exit too quickly
	// for scraping to be useful).
	MetricsAddr string
	// ConfigFile is the YAML defaults file, if any.
	ConfigFile string
}

// ParseConfig parses command-line arguments into an AppConfig, applying the
// file and environment override chain afterwards.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The raw arguments, without the program name.
//   - errWriter: Destination for usage output.
//   - availableOps: The operation names accepted by -op.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError for invalid values, or flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableOps []string) (AppConfig, error) {
	var cfg AppConfig

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Op, "op", "", fmt.Sprintf("operation to evaluate (%s)", strings.Join(availableOps, ", ")))
	fs.BoolVar(&cfg.JSON, "json", false, "render the result as JSON")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the bare result")
	fs.BoolVar(&cfg.Quiet, "q", false, "print only the bare result (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "enable debug logging")
	fs.BoolVar(&cfg.Verbose, "v", false, "enable debug logging (shorthand)")
	fs.StringVar(&cfg.BatchFile, "batch", "", "evaluate operations from `file`, one per line")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive session")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on `addr` (batch/REPL modes)")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML defaults `file`")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] [operand ...]\n\n", programName)
		fmt.Fprintf(errWriter, "Evaluates integer vector operations, e.g.:\n")
		fmt.Fprintf(errWriter, "  %s -op add '[1,2,3]' '[4,5,6]'\n", programName)
		fmt.Fprintf(errWriter, "  %s -op scale '[1,2,3]' 2\n", programName)
		fmt.Fprintf(errWriter, "  %s -op matvecmul '[[1,2],[3,4]]' '[5,6]'\n\n", programName)
		fmt.Fprintf(errWriter, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	cfg.Operands = fs.Args()

	if err := applyFileDefaults(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)

	if err := Validate(cfg, availableOps); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration for contradictions: unknown
// operations, wrong operand counts, and mode combinations that cannot be
// served together.
func Validate(cfg AppConfig, availableOps []string) error {
	modes := 0
	if cfg.Op != "" {
		modes++
	}
	if cfg.BatchFile != "" {
		modes++
	}
	if cfg.REPL {
		modes++
	}
	if modes == 0 {
		return apperrors.NewConfigError("nothing to do: pass -op, -batch or -repl")
	}
	if modes > 1 {
		return apperrors.NewConfigError("-op, -batch and -repl are mutually exclusive")
	}

	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("-quiet and -verbose are mutually exclusive")
	}

	if cfg.Op != "" {
		if !slices.Contains(availableOps, cfg.Op) {
			return apperrors.NewConfigError("unknown operation %q (available: %s)", cfg.Op, strings.Join(availableOps, ", "))
		}
		if want := eval.OperandCount(cfg.Op); len(cfg.Operands) != want {
			return apperrors.NewConfigError("operation %q takes %d operand(s), got %d", cfg.Op, want, len(cfg.Operands))
		}
	} else if len(cfg.Operands) != 0 {
		return apperrors.NewConfigError("positional operands are only valid with -op")
	}

	return nil
}
