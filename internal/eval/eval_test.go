package eval

import (
	"errors"
	"reflect"
	"testing"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		req  Request
		want Result
	}{
		{
			name: "add",
			req:  Request{Op: "add", Operands: []string{"[1,2,3]", "[4,5,6]"}},
			want: Result{Op: "add", Kind: KindVector, Vector: vecops.Vector{5, 7, 9}},
		},
		{
			name: "sub",
			req:  Request{Op: "sub", Operands: []string{"[1,2,3]", "[4,5,6]"}},
			want: Result{Op: "sub", Kind: KindVector, Vector: vecops.Vector{-3, -3, -3}},
		},
		{
			name: "scale",
			req:  Request{Op: "scale", Operands: []string{"[1,2,3]", "2"}},
			want: Result{Op: "scale", Kind: KindVector, Vector: vecops.Vector{2, 4, 6}},
		},
		{
			name: "dot",
			req:  Request{Op: "dot", Operands: []string{"[1,2,3]", "[4,5,6]"}},
			want: Result{Op: "dot", Kind: KindScalar, Scalar: 32},
		},
		{
			name: "matvecmul",
			req:  Request{Op: "matvecmul", Operands: []string{"[[1,2],[-3,4]]", "[5,7]"}},
			want: Result{Op: "matvecmul", Kind: KindVector, Vector: vecops.Vector{-16, 38}},
		},
		{
			name: "transpose",
			req:  Request{Op: "transpose", Operands: []string{"[[1,2,3],[4,5,6]]"}},
			want: Result{Op: "transpose", Kind: KindMatrix, Matrix: vecops.Matrix{{1, 4}, {2, 5}, {3, 6}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(tt.req)
			if err != nil {
				t.Fatalf("Evaluate(%v) returned error: %v", tt.req, err)
			}
			got.Duration = 0 // not comparable
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%v) = %+v, want %+v", tt.req, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(Request{Op: "cross", Operands: []string{"[1]", "[2]"}})
		var configErr apperrors.ConfigError
		if !errors.As(err, &configErr) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
	})

	t.Run("wrong operand count", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(Request{Op: "add", Operands: []string{"[1]"}})
		var configErr apperrors.ConfigError
		if !errors.As(err, &configErr) {
			t.Fatalf("expected ConfigError, got %v", err)
		}
	})

	t.Run("malformed operand", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(Request{Op: "add", Operands: []string{"[1,x]", "[2,3]"}})
		var parseErr apperrors.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected ParseError, got %v", err)
		}
	})

	t.Run("shape mismatch keeps its type through wrapping", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(Request{Op: "add", Operands: []string{"[1,2,3]", "[1,2]"}})

		var evalErr apperrors.EvalError
		if !errors.As(err, &evalErr) {
			t.Fatalf("expected EvalError, got %v", err)
		}
		var shapeErr vecops.ShapeMismatchError
		if !errors.As(err, &shapeErr) {
			t.Fatalf("expected wrapped ShapeMismatchError, got %v", err)
		}
		if shapeErr.Want != 3 || shapeErr.Got != 2 {
			t.Errorf("ShapeMismatchError reports %d and %d, want 3 and 2", shapeErr.Want, shapeErr.Got)
		}
	})

	t.Run("overflow keeps its type through wrapping", func(t *testing.T) {
		t.Parallel()
		_, err := Evaluate(Request{Op: "scale", Operands: []string{"[9223372036854775807]", "2"}})

		var overflowErr vecops.OverflowError
		if !errors.As(err, &overflowErr) {
			t.Fatalf("expected wrapped OverflowError, got %v", err)
		}
	})
}

func TestParseLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want Request
	}{
		{
			name: "two vector operands",
			line: "add [1,2] [3,4]",
			want: Request{Op: "add", Operands: []string{"[1,2]", "[3,4]"}},
		},
		{
			name: "spaces inside brackets",
			line: "matvecmul [[1, 2], [3, 4]] [5, 6]",
			want: Request{Op: "matvecmul", Operands: []string{"[[1, 2], [3, 4]]", "[5, 6]"}},
		},
		{
			name: "scalar operand",
			line: "scale [1,2,3]   -2",
			want: Request{Op: "scale", Operands: []string{"[1,2,3]", "-2"}},
		},
		{
			name: "bare op",
			line: "transpose",
			want: Request{Op: "transpose", Operands: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLine(tt.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) returned error: %v", tt.line, err)
			}
			if got.Op != tt.want.Op {
				t.Errorf("ParseLine(%q).Op = %q, want %q", tt.line, got.Op, tt.want.Op)
			}
			if !reflect.DeepEqual(append([]string{}, got.Operands...), append([]string{}, tt.want.Operands...)) {
				t.Errorf("ParseLine(%q).Operands = %v, want %v", tt.line, got.Operands, tt.want.Operands)
			}
		})
	}

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		for _, line := range []string{"", "   ", "add [1,2", "add 1]"} {
			_, err := ParseLine(line)
			var parseErr apperrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("ParseLine(%q) = %v, want ParseError", line, err)
			}
		}
	})
}
