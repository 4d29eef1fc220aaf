// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their
// behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic.
//     Examples: [DisplayResult], [DisplayError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatResult], [FormatVector], [FormatExecutionDuration].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	vecops "github.com/KaiCodesWithGithub/vector-operations"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// JSON renders results as one JSON object per result.
	JSON bool
	// Quiet suppresses everything except the bare result.
	Quiet bool
}

// FormatVector renders a vector in literal form: "[1,2,3]".
func FormatVector(v vecops.Vector) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(x, 10))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatMatrix renders a matrix in literal form: "[[1,2],[3,4]]".
func FormatMatrix(m vecops.Matrix) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(FormatVector(row))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatResult renders the bare value of an evaluation result.
func FormatResult(res eval.Result) string {
	switch res.Kind {
	case eval.KindScalar:
		return strconv.FormatInt(res.Scalar, 10)
	case eval.KindMatrix:
		return FormatMatrix(res.Matrix)
	default:
		return FormatVector(res.Vector)
	}
}

// FormatExecutionDuration formats a time.Duration for display. It shows
// microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// jsonResult is the wire shape of a JSON-rendered result.
type jsonResult struct {
	Op         string `json:"op"`
	Result     any    `json:"result"`
	DurationUS int64  `json:"duration_us"`
}

// DisplayResult writes one evaluation result to w according to the output
// configuration: bare value in quiet mode, a JSON object in JSON mode, and
// an annotated line otherwise.
func DisplayResult(w io.Writer, res eval.Result, cfg OutputConfig) error {
	if cfg.JSON {
		out := jsonResult{Op: res.Op, DurationUS: res.Duration.Microseconds()}
		switch res.Kind {
		case eval.KindScalar:
			out.Result = res.Scalar
		case eval.KindMatrix:
			out.Result = res.Matrix
		default:
			out.Result = res.Vector
		}
		enc := json.NewEncoder(w)
		return enc.Encode(out)
	}

	if cfg.Quiet {
		_, err := fmt.Fprintln(w, FormatResult(res))
		return err
	}

	_, err := fmt.Fprintf(w, "%s = %s (%s)\n", res.Op, FormatResult(res), FormatExecutionDuration(res.Duration))
	return err
}

// DisplayError writes an evaluation failure to w.
func DisplayError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
