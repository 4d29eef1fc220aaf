// Package tui implements the interactive vecops session: a prompt that
// evaluates one operation per line and keeps a scrollback of results.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KaiCodesWithGithub/vector-operations/internal/cli"
	apperrors "github.com/KaiCodesWithGithub/vector-operations/internal/errors"
	"github.com/KaiCodesWithGithub/vector-operations/internal/eval"
	"github.com/KaiCodesWithGithub/vector-operations/internal/server"
)

// historyLimit bounds the scrollback kept in memory.
const historyLimit = 500

// KeyMap defines the key bindings of the session.
type KeyMap struct {
	Submit  key.Binding
	PrevCmd key.Binding
	NextCmd key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		PrevCmd: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous input")),
		NextCmd: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next input")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c", "quit")),
	}
}

// historyEntry is one evaluated line in the scrollback.
type historyEntry struct {
	input  string
	output string
	failed bool
}

// Model is the bubbletea model of the interactive session.
type Model struct {
	input   textinput.Model
	history []historyEntry

	// past inputs for up/down recall; recall == len(past) means "editing
	// a fresh line".
	past   []string
	recall int

	keymap  KeyMap
	metrics *server.Metrics
	width   int

	quitting bool
}

// NewModel creates the initial session model. metrics may be nil.
func NewModel(metrics *server.Metrics) Model {
	input := textinput.New()
	input.Placeholder = "add [1,2,3] [4,5,6]"
	input.Prompt = promptStyle.Render("vecops> ")
	input.Focus()

	return Model{
		input:   input,
		keymap:  DefaultKeyMap(),
		metrics: metrics,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len("vecops> ") - 2
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Submit):
			return m.submit()

		case key.Matches(msg, m.keymap.PrevCmd):
			if m.recall > 0 {
				m.recall--
				m.input.SetValue(m.past[m.recall])
				m.input.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, m.keymap.NextCmd):
			if m.recall < len(m.past) {
				m.recall++
				if m.recall == len(m.past) {
					m.input.SetValue("")
				} else {
					m.input.SetValue(m.past[m.recall])
					m.input.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit evaluates the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m, nil
	}
	m.input.SetValue("")
	m.past = append(m.past, line)
	m.recall = len(m.past)

	switch line {
	case "quit", "exit":
		m.quitting = true
		return m, tea.Quit
	case "help":
		m.push(historyEntry{input: line, output: helpText()})
		return m, nil
	}

	entry := evaluateLine(line, m.metrics)
	m.push(entry)
	return m, nil
}

func (m *Model) push(entry historyEntry) {
	m.history = append(m.history, entry)
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// evaluateLine runs one request and renders its outcome, recording metrics
// when a collector is attached.
func evaluateLine(line string, metrics *server.Metrics) historyEntry {
	entry := historyEntry{input: line}

	req, err := eval.ParseLine(line)
	if err != nil {
		entry.output = err.Error()
		entry.failed = true
		return entry
	}

	res, err := eval.Evaluate(req)
	if metrics != nil {
		metrics.RecordOperation(req.Op, res.Duration, err)
	}
	if err != nil {
		entry.output = err.Error()
		entry.failed = true
		return entry
	}

	entry.output = fmt.Sprintf("%s (%s)", cli.FormatResult(res), cli.FormatExecutionDuration(res.Duration))
	return entry
}

func helpText() string {
	var b strings.Builder
	b.WriteString("operations:\n")
	for _, op := range eval.Ops() {
		operands := "<matrix>"
		switch op {
		case "add", "sub", "dot":
			operands = "<vector> <vector>"
		case "scale":
			operands = "<vector> <scalar>"
		case "matvecmul":
			operands = "<matrix> <vector>"
		}
		fmt.Fprintf(&b, "  %s %s\n", op, operands)
	}
	b.WriteString("commands: help, quit")
	return b.String()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("vecops interactive session"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(inputEchoStyle.Render("> " + entry.input))
		b.WriteByte('\n')
		style := resultStyle
		if entry.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(entry.output))
		b.WriteByte('\n')
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: evaluate • ↑/↓: recall • help • ctrl+c: quit"))
	return b.String()
}

// Run drives the interactive session until the user quits or ctx is
// canceled. metrics may be nil.
func Run(ctx context.Context, metrics *server.Metrics) int {
	program := tea.NewProgram(NewModel(metrics), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
