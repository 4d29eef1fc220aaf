package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the batch progress
// spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples batch progress display from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner wraps spinner.Spinner to implement the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix writes the suffix under the spinner's own lock: the render
// goroutine reads Suffix concurrently, and batch workers update progress
// concurrently with each other.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// nopSpinner is used when progress display is disabled (quiet or JSON mode).
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

// newSpinner is swappable in tests.
var newSpinner = func(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}

// NewBatchProgress returns a started spinner reporting batch progress to w,
// or a no-op spinner when disabled. Callers must Stop it when done.
func NewBatchProgress(w io.Writer, enabled bool, total int) Spinner {
	if !enabled {
		return nopSpinner{}
	}
	sp := newSpinner(w)
	sp.UpdateSuffix(fmt.Sprintf(" evaluating 0/%d operations", total))
	sp.Start()
	return sp
}

// UpdateBatchProgress refreshes the spinner suffix with the number of
// completed operations.
func UpdateBatchProgress(sp Spinner, done, total int) {
	sp.UpdateSuffix(fmt.Sprintf(" evaluating %d/%d operations", done, total))
}
