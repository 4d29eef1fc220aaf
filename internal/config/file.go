// This file contains YAML configuration file support.

package config

import (
	"flag"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
)

// fileConfig mirrors the subset of AppConfig that may be defaulted from a
// YAML file. Mode selection (op, batch, repl) and operands are deliberately
// excluded: a defaults file must not make the binary do work by itself.
type fileConfig struct {
	JSON        *bool  `yaml:"json"`
	Quiet       *bool  `yaml:"quiet"`
	Verbose     *bool  `yaml:"verbose"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// applyFileDefaults loads the YAML defaults file named by -config (or
// VECOPS_CONFIG) and applies its values to every setting that was not
// explicitly given on the command line. A missing -config flag means no file
// is read; a named but unreadable or malformed file is a ConfigError.
func applyFileDefaults(cfg *AppConfig, fs *flag.FlagSet) error {
	path := cfg.ConfigFile
	if path == "" && !isFlagSet(fs, "config") {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path == "" {
		return nil
	}
	cfg.ConfigFile = path

	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.NewConfigError("reading config file %s: %v", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}

	if fc.JSON != nil && !isFlagSet(fs, "json") {
		cfg.JSON = *fc.JSON
	}
	if fc.Quiet != nil && !isFlagSetAny(fs, "quiet", "q") {
		cfg.Quiet = *fc.Quiet
	}
	if fc.Verbose != nil && !isFlagSetAny(fs, "verbose", "v") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.MetricsAddr != "" && !isFlagSet(fs, "metrics-addr") {
		cfg.MetricsAddr = fc.MetricsAddr
	}

	return nil
}
