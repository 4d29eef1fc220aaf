// Package batch evaluates a file of operation requests, one per line, using
// a bounded worker pool. Line order is preserved in the results regardless of
// completion order.
package batch

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
)

// Entry is the outcome of one request line. Err is per-entry: a failing line
// never aborts the rest of the batch.
type Entry struct {
	// Line is the 1-based line number in the input.
	Line int
	// Input is the raw request line.
	Input string
	// Op is the requested operation name, when the line parsed far enough
	// to know it.
	Op string
	// Result is the evaluation result when Err is nil.
	Result eval.Result
	// Err is the parse or evaluation failure for this line.
	Err error
}

// Run reads request lines from r and evaluates them with at most workers
// goroutines. Blank lines and lines starting with '#' are skipped. The
// returned entries are in input order.
//
// Run fails as a whole only when reading the input fails or ctx is canceled;
// per-line failures are reported in the entries.
func Run(ctx context.Context, r io.Reader, workers int, onProgress func(done, total int)) ([]Entry, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if onProgress == nil {
		onProgress = func(int, int) {}
	}

	entries := make([]Entry, len(lines))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = evaluateLine(line)
			onProgress(int(done.Add(1)), len(lines))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.WrapError(err, "batch evaluation aborted")
	}
	return entries, nil
}

// numberedLine pairs a request with its position in the input file.
type numberedLine struct {
	number int
	text   string
}

func readLines(r io.Reader) ([]numberedLine, error) {
	var lines []numberedLine
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, numberedLine{number: number, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.WrapError(err, "reading batch input")
	}
	return lines, nil
}

func evaluateLine(line numberedLine) Entry {
	entry := Entry{Line: line.number, Input: line.text}

	req, err := eval.ParseLine(line.text)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Op = req.Op

	res, err := eval.Evaluate(req)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Result = res
	return entry
}
