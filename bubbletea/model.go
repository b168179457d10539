package bubbletea

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chat"
)

// errNotDone is returned by Reply before the call has completed.
var errNotDone = errors.New("completion still in flight")

// CallFunc performs the blocking completion call.
type CallFunc func() (string, error)

// completedMsg delivers the outcome of the call to the model.
type completedMsg struct {
	reply string
	err   error
}

// Model is the Bubble Tea model of the waiting indicator. It starts the call
// on Init and quits as soon as the call returns.
type Model struct {
	call    CallFunc
	spinner spinner.Model
	label   lipgloss.Style
	text    string

	done  bool
	reply string
	err   error
}

// NewModel creates a Model that runs call.
func NewModel(call CallFunc, theme chat.Theme, label string) Model {
	return Model{
		call: call,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ansiColor(theme.Accent))),
		),
		label: lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		text:  label,
	}
}

// Init starts the spinner and the call.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, run(m.call))
}

// Update advances the spinner and records the call's outcome.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case completedMsg:
		m.done = true
		m.reply, m.err = msg.reply, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line, or nothing once the call has returned.
func (m Model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label.Render(m.text)
}

// Done reports whether the call has returned.
func (m Model) Done() bool { return m.done }

// Reply returns the outcome of the call.
func (m Model) Reply() (string, error) {
	if !m.done {
		return "", errNotDone
	}
	return m.reply, m.err
}

// run wraps call in a command. A panic in call is reported as an error so it
// surfaces through the completer rather than tearing down the program.
func run(call CallFunc) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = completedMsg{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		reply, err := call()
		return completedMsg{reply: reply, err: err}
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
