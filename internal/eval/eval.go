// Package eval maps textual operation requests onto the vecops primitives.
// It is the single evaluation path shared by one-shot invocations, batch
// files and the REPL.
package eval

import (
	"strings"
	"time"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/parse"
)

// Kind identifies the type of an evaluation result.
type Kind int

const (
	// KindVector marks a vector-valued result.
	KindVector Kind = iota
	// KindScalar marks a scalar-valued result (dot).
	KindScalar
	// KindMatrix marks a matrix-valued result (transpose).
	KindMatrix
)

// Request is a single operation to evaluate: an operation name and its
// operand literals.
type Request struct {
	Op       string
	Operands []string
}

// Result is the outcome of a successful evaluation. Exactly one of Vector,
// Scalar and Matrix is meaningful, selected by Kind.
type Result struct {
	Op       string
	Kind     Kind
	Vector   vecops.Vector
	Scalar   int64
	Matrix   vecops.Matrix
	Duration time.Duration
}

// Ops returns the available operation names in sorted order.
func Ops() []string {
	return []string{"add", "dot", "matvecmul", "scale", "sub", "transpose"}
}

// OperandCount returns how many operand literals the named operation takes.
// Unknown operations return -1.
func OperandCount(op string) int {
	switch op {
	case "add", "sub", "scale", "dot", "matvecmul":
		return 2
	case "transpose":
		return 1
	default:
		return -1
	}
}

// Evaluate parses the request operands and applies the operation. Parse
// failures surface as apperrors.ParseError; evaluation failures keep their
// vecops error type wrapped in an apperrors.EvalError.
func Evaluate(req Request) (Result, error) {
	want := OperandCount(req.Op)
	if want < 0 {
		return Result{}, apperrors.NewConfigError("unknown operation %q (available: %s)", req.Op, strings.Join(Ops(), ", "))
	}
	if len(req.Operands) != want {
		return Result{}, apperrors.NewConfigError("operation %q takes %d operand(s), got %d", req.Op, want, len(req.Operands))
	}

	start := time.Now()
	res := Result{Op: req.Op}
	var err error

	switch req.Op {
	case "add", "sub":
		var a, b vecops.Vector
		if a, err = parse.Vector(req.Operands[0]); err != nil {
			return Result{}, err
		}
		if b, err = parse.Vector(req.Operands[1]); err != nil {
			return Result{}, err
		}
		if req.Op == "add" {
			res.Vector, err = vecops.Add(a, b)
		} else {
			res.Vector, err = vecops.Sub(a, b)
		}

	case "scale":
		var a vecops.Vector
		var k int64
		if a, err = parse.Vector(req.Operands[0]); err != nil {
			return Result{}, err
		}
		if k, err = parse.Scalar(req.Operands[1]); err != nil {
			return Result{}, err
		}
		res.Vector, err = vecops.Scale(a, k)

	case "dot":
		var a, b vecops.Vector
		if a, err = parse.Vector(req.Operands[0]); err != nil {
			return Result{}, err
		}
		if b, err = parse.Vector(req.Operands[1]); err != nil {
			return Result{}, err
		}
		res.Kind = KindScalar
		res.Scalar, err = vecops.Dot(a, b)

	case "matvecmul":
		var m vecops.Matrix
		var v vecops.Vector
		if m, err = parse.Matrix(req.Operands[0]); err != nil {
			return Result{}, err
		}
		if v, err = parse.Vector(req.Operands[1]); err != nil {
			return Result{}, err
		}
		res.Vector, err = vecops.MatVecMul(m, v)

	case "transpose":
		var m vecops.Matrix
		if m, err = parse.Matrix(req.Operands[0]); err != nil {
			return Result{}, err
		}
		res.Kind = KindMatrix
		res.Matrix, err = vecops.Transpose(m)
	}

	if err != nil {
		return Result{}, apperrors.EvalError{Op: req.Op, Cause: err}
	}
	res.Duration = time.Since(start)
	return res, nil
}

// ParseLine splits a request line of the form "add [1,2] [3,4]" into a
// Request. Operand literals are separated by whitespace outside brackets, so
// "matvecmul [[1, 2], [3, 4]] [5, 6]" splits into exactly two operands.
func ParseLine(line string) (Request, error) {
	tokens, err := splitLine(line)
	if err != nil {
		return Request{}, err
	}
	if len(tokens) == 0 {
		return Request{}, apperrors.ParseError{Input: line, Pos: 0, Message: "empty request"}
	}
	return Request{Op: tokens[0], Operands: tokens[1:]}, nil
}

// splitLine tokenizes on whitespace at bracket depth zero.
func splitLine(line string) ([]string, error) {
	var tokens []string
	depth := 0
	start := -1
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return nil, apperrors.ParseError{Input: line, Pos: i, Message: "unbalanced ']'"}
			}
		case ' ', '\t':
			if depth == 0 {
				if start >= 0 {
					tokens = append(tokens, line[start:i])
					start = -1
				}
				continue
			}
		}
		if start < 0 {
			start = i
		}
	}
	if depth != 0 {
		return nil, apperrors.ParseError{Input: line, Pos: len(line), Message: "unbalanced '['"}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}
	return tokens, nil
}
