// Package parse converts vector and matrix literals such as "[1,2,3]" and
// "[[1,2],[3,4]]" into vecops values. It is used by the command-line flags,
// batch files and the REPL; the core vecops package itself never deals with
// text.
package parse

import (
	"strconv"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
)

// Vector parses a vector literal of the form "[1,-2,3]". Whitespace is
// allowed around brackets, commas and elements. "[]" is the zero-length
// vector.
func Vector(input string) (vecops.Vector, error) {
	s := &scanner{input: input}
	v, err := s.vector()
	if err != nil {
		return nil, err
	}
	if err := s.end(); err != nil {
		return nil, err
	}
	return v, nil
}

// Matrix parses a matrix literal of the form "[[1,2],[3,4]]": a bracketed,
// comma-separated list of row-vector literals. "[]" is the zero-row matrix.
// Rectangularity is not checked here; the vecops operations validate shape.
func Matrix(input string) (vecops.Matrix, error) {
	s := &scanner{input: input}
	if err := s.expect('['); err != nil {
		return nil, err
	}
	m := vecops.Matrix{}
	s.skipSpace()
	if s.peek() == ']' {
		s.pos++
		if err := s.end(); err != nil {
			return nil, err
		}
		return m, nil
	}
	for {
		row, err := s.vector()
		if err != nil {
			return nil, err
		}
		m = append(m, row)
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			if err := s.end(); err != nil {
				return nil, err
			}
			return m, nil
		default:
			return nil, s.errorf("expected ',' or ']'")
		}
	}
}

// Scalar parses a signed 64-bit integer.
func Scalar(input string) (int64, error) {
	k, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, apperrors.ParseError{Input: input, Pos: 0, Message: "expected 64-bit integer"}
	}
	return k, nil
}

// scanner walks a literal byte by byte. Positions in errors are byte offsets
// into the original input.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) errorf(msg string) error {
	return apperrors.ParseError{Input: s.input, Pos: s.pos, Message: msg}
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) expect(c byte) error {
	s.skipSpace()
	if s.peek() != c {
		return s.errorf("expected " + strconv.QuoteRune(rune(c)))
	}
	s.pos++
	return nil
}

// end verifies that only trailing whitespace remains.
func (s *scanner) end() error {
	s.skipSpace()
	if s.pos != len(s.input) {
		return s.errorf("unexpected trailing input")
	}
	return nil
}

// vector scans a single "[...]" group of integers.
func (s *scanner) vector() (vecops.Vector, error) {
	if err := s.expect('['); err != nil {
		return nil, err
	}
	v := vecops.Vector{}
	s.skipSpace()
	if s.peek() == ']' {
		s.pos++
		return v, nil
	}
	for {
		x, err := s.int64()
		if err != nil {
			return nil, err
		}
		v = append(v, x)
		s.skipSpace()
		switch s.peek() {
		case ',':
			s.pos++
		case ']':
			s.pos++
			return v, nil
		default:
			return nil, s.errorf("expected ',' or ']'")
		}
	}
}

// int64 scans one signed decimal integer and rejects values outside the
// int64 range.
func (s *scanner) int64() (int64, error) {
	s.skipSpace()
	start := s.pos
	if c := s.peek(); c == '-' || c == '+' {
		s.pos++
	}
	for s.pos < len(s.input) && s.input[s.pos] >= '0' && s.input[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start || (s.pos == start+1 && !isDigit(s.input[start])) {
		s.pos = start
		return 0, s.errorf("expected integer")
	}
	x, err := strconv.ParseInt(s.input[start:s.pos], 10, 64)
	if err != nil {
		s.pos = start
		return 0, s.errorf("integer out of int64 range")
	}
	return x, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
