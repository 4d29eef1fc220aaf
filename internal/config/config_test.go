package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
)

var testOps = []string{"add", "sub", "scale", "dot", "matvecmul", "transpose"}

func parse(t *testing.T, args ...string) (AppConfig, error) {
	t.Helper()
	return ParseConfig("vecops", args, io.Discard, testOps)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want AppConfig
	}{
		{
			name: "add with two operands",
			args: []string{"-op", "add", "[1,2,3]", "[4,5,6]"},
			want: AppConfig{Op: "add", Operands: []string{"[1,2,3]", "[4,5,6]"}},
		},
		{
			name: "transpose takes one operand",
			args: []string{"-op", "transpose", "[[1,2],[3,4]]"},
			want: AppConfig{Op: "transpose", Operands: []string{"[[1,2],[3,4]]"}},
		},
		{
			name: "json and quiet flags",
			args: []string{"-op", "dot", "-json", "-q", "[1]", "[2]"},
			want: AppConfig{Op: "dot", JSON: true, Quiet: true, Operands: []string{"[1]", "[2]"}},
		},
		{
			name: "batch mode",
			args: []string{"-batch", "ops.txt", "-metrics-addr", "localhost:9090"},
			want: AppConfig{BatchFile: "ops.txt", MetricsAddr: "localhost:9090", Operands: []string{}},
		},
		{
			name: "repl mode",
			args: []string{"-repl"},
			want: AppConfig{REPL: true, Operands: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no mode selected", nil},
		{"unknown operation", []string{"-op", "cross", "[1]", "[2]"}},
		{"too few operands", []string{"-op", "add", "[1,2]"}},
		{"too many operands", []string{"-op", "transpose", "[[1]]", "[[2]]"}},
		{"operands without op", []string{"-repl", "[1,2]"}},
		{"conflicting modes", []string{"-op", "add", "-repl", "[1]", "[2]"}},
		{"quiet and verbose", []string{"-op", "add", "-q", "-v", "[1]", "[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			require.Error(t, err)

			var configErr apperrors.ConfigError
			assert.True(t, errors.As(err, &configErr), "expected ConfigError, got %v", err)
		})
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Run("env fills unset flags", func(t *testing.T) {
		t.Setenv("VECOPS_OP", "add")
		t.Setenv("VECOPS_JSON", "true")

		cfg, err := parse(t, "[1]", "[2]")
		require.NoError(t, err)
		assert.Equal(t, "add", cfg.Op)
		assert.True(t, cfg.JSON)
	})

	t.Run("explicit flag wins over env", func(t *testing.T) {
		t.Setenv("VECOPS_OP", "sub")

		cfg, err := parse(t, "-op", "add", "[1]", "[2]")
		require.NoError(t, err)
		assert.Equal(t, "add", cfg.Op)
	})

	t.Run("unrecognized bool value keeps default", func(t *testing.T) {
		t.Setenv("VECOPS_QUIET", "maybe")

		cfg, err := parse(t, "-op", "add", "[1]", "[2]")
		require.NoError(t, err)
		assert.False(t, cfg.Quiet)
	})
}

func TestParseConfig_FileDefaults(t *testing.T) {
	writeConfig := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "vecops.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("file fills unset flags", func(t *testing.T) {
		path := writeConfig(t, "json: true\nmetrics_addr: localhost:9100\n")

		cfg, err := parse(t, "-config", path, "-op", "add", "[1]", "[2]")
		require.NoError(t, err)
		assert.True(t, cfg.JSON)
		assert.Equal(t, "localhost:9100", cfg.MetricsAddr)
	})

	t.Run("explicit flag wins over file", func(t *testing.T) {
		path := writeConfig(t, "quiet: true\n")

		cfg, err := parse(t, "-config", path, "-op", "add", "-quiet=false", "[1]", "[2]")
		require.NoError(t, err)
		assert.False(t, cfg.Quiet)
	})

	t.Run("file named by env", func(t *testing.T) {
		path := writeConfig(t, "verbose: true\n")
		t.Setenv("VECOPS_CONFIG", path)

		cfg, err := parse(t, "-op", "add", "[1]", "[2]")
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
	})

	t.Run("malformed file is a config error", func(t *testing.T) {
		path := writeConfig(t, "json: [not a bool\n")

		_, err := parse(t, "-config", path, "-op", "add", "[1]", "[2]")
		require.Error(t, err)

		var configErr apperrors.ConfigError
		assert.True(t, errors.As(err, &configErr))
	})

	t.Run("missing named file is a config error", func(t *testing.T) {
		_, err := parse(t, "-config", "/nonexistent/vecops.yaml", "-op", "add", "[1]", "[2]")
		require.Error(t, err)
	})
}
