// Package bubbletea shows a Bubble Tea waiting indicator while a completion
// is in flight.
package bubbletea

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/chat"
)

// DefaultLabel is shown beside the spinner.
const DefaultLabel = "Waiting for response..."

// Interface compliance check.
var _ chat.Completer = (*Spinner)(nil)

// Spinner decorates a [chat.Completer] with an animated indicator written to
// out for the duration of each call. The indicator line is cleared before
// Complete returns.
type Spinner struct {
	next  chat.Completer
	out   io.Writer
	theme chat.Theme
	label string
}

// Option configures a [Spinner].
type Option func(*Spinner)

// WithLabel sets the text shown beside the spinner.
func WithLabel(label string) Option {
	return func(s *Spinner) { s.label = label }
}

// NewSpinner wraps next so that calls to Complete animate on out.
func NewSpinner(next chat.Completer, out io.Writer, theme chat.Theme, opts ...Option) *Spinner {
	s := &Spinner{next: next, out: out, theme: theme, label: DefaultLabel}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Complete runs the wrapped completer while a Bubble Tea program animates the
// indicator. The program reads no input and installs no signal handler, so
// interrupts reach the caller's context.
func (s *Spinner) Complete(ctx context.Context, req chat.Request) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(func() (string, error) {
		return s.next.Complete(ctx, req)
	}, s.theme, s.label)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithOutput(s.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("bubbletea: %w", err)
	}
	fm, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("bubbletea: unexpected final model %T", final)
	}
	return fm.Reply()
}
