// Package apperrors provides tests for application error types.
package apperrors

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("unknown operation %q", "cross"),
			expected: `unknown operation "cross"`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	err := ParseError{Input: "[1,2,x]", Pos: 5, Message: "expected integer"}

	msg := err.Error()
	for _, want := range []string{"offset 5", `"[1,2,x]"`, "expected integer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ParseError message %q should contain %q", msg, want)
		}
	}
}

func TestEvalError(t *testing.T) {
	t.Parallel()
	cause := errors.New("shape mismatch")
	err := EvalError{Op: "add", Cause: cause}

	if !strings.Contains(err.Error(), "add") || !strings.Contains(err.Error(), "shape mismatch") {
		t.Errorf("EvalError message %q should contain the op and the cause", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("EvalError should unwrap to its cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if got := WrapError(nil, "context"); got != nil {
			t.Errorf("WrapError(nil, ...) = %v, want nil", got)
		}
	})

	t.Run("wrapped error preserves cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("boom")
		wrapped := WrapError(cause, "while evaluating %q", "add")
		if !errors.Is(wrapped, cause) {
			t.Error("wrapped error should match its cause with errors.Is")
		}
		if !strings.Contains(wrapped.Error(), `while evaluating "add"`) {
			t.Errorf("wrapped message %q missing context", wrapped.Error())
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", WrapError(context.Canceled, "op"), true},
		{"other error", errors.New("other"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
