package chat

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// State is a state of the session loop.
type State int

const (
	StateAwaitingInput State = iota // waiting for the next submission
	StateDispatching                // completion call in flight
	StateRendering                  // displaying the reply
	StateTerminated                 // ended by /quit, interrupt or end of input
	StateAborted                    // ended by an interrupt outside input framing
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting-input"
	case StateDispatching:
		return "dispatching"
	case StateRendering:
		return "rendering"
	case StateTerminated:
		return "terminated"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session runs the read-eval-print cycle of one conversation.
type Session struct {
	ID         string
	Config     Config
	Transcript *Transcript

	completer Completer
	renderer  Renderer
	console   Console
	logger    *slog.Logger
	state     State
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithID sets the session ID used to correlate log records.
func WithID(id string) SessionOption {
	return func(s *Session) { s.ID = id }
}

// WithLogger sets the logger. By default log records are discarded.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a Session. The system prompt from cfg, if any, becomes
// the first transcript message.
func NewSession(cfg Config, completer Completer, renderer Renderer, console Console, opts ...SessionOption) *Session {
	s := &Session{
		Config:     cfg,
		Transcript: NewTranscript(cfg.System),
		completer:  completer,
		renderer:   renderer,
		console:    console,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	if s.ID != "" {
		s.logger = s.logger.With("session", s.ID)
	}
	return s
}

// State returns the current state of the loop.
func (s *Session) State() State {
	return s.state
}

// Run drives the session until the user quits, interrupts or closes the
// input. Failed turns are reported on the console and never end the session.
// Run returns an error only when input can no longer be read.
func (s *Session) Run(ctx context.Context, lines LineReader) error {
	framer := NewFramer(lines, s.console)
	s.state = StateAwaitingInput
	s.logger.Info("session started", "model", s.Config.Model, "max_tokens", s.Config.MaxTokens)

	var (
		text, reply string
		readErr     error
	)
	for {
		switch s.state {
		case StateAwaitingInput:
			s.state, text, readErr = s.awaitInput(ctx, framer)
		case StateDispatching:
			s.state, reply = s.dispatch(ctx, text)
		case StateRendering:
			s.state = s.render(text, reply)
		case StateTerminated, StateAborted:
			s.logger.Info("session ended", "state", s.state, "turns", s.Transcript.Turns())
			s.console.Farewell()
			return readErr
		}
	}
}

func (s *Session) awaitInput(ctx context.Context, framer *Framer) (State, string, error) {
	in, err := framer.Read(ctx)
	if err != nil {
		s.logger.Error("reading input failed", "error", err)
		return StateTerminated, "", err
	}
	switch in.Kind {
	case InputCancel, InputQuit:
		return StateTerminated, "", nil
	}
	if in.Blank() {
		// A closed input stream yields blank submissions forever.
		if in.EOF {
			return StateTerminated, "", nil
		}
		return StateAwaitingInput, "", nil
	}
	return StateDispatching, in.Text, nil
}

func (s *Session) dispatch(ctx context.Context, text string) (State, string) {
	req := Request{
		Model:     s.Config.Model,
		MaxTokens: s.Config.MaxTokens,
		Messages:  s.Transcript.Outbound(text),
	}
	turn := s.Transcript.Turns() + 1
	s.logger.Debug("dispatching turn", "turn", turn, "messages", len(req.Messages))

	start := time.Now()
	reply, err := s.complete(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			s.logger.Info("interrupted during dispatch", "turn", turn)
			return StateAborted, ""
		}
		s.logger.Warn("turn failed", "turn", turn, "class", ErrorClass(err), "error", err)
		s.console.Diagnostic(err)
		return StateAwaitingInput, ""
	}
	s.logger.Debug("turn completed", "turn", turn, "duration", time.Since(start), "reply_bytes", len(reply))
	return StateRendering, reply
}

// complete calls the completer, converting a panic into an error so that a
// faulty collaborator cannot take the transcript down with it.
func (s *Session) complete(ctx context.Context, req Request) (reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("completer panicked: %v", r)
		}
	}()
	return s.completer.Complete(ctx, req)
}

func (s *Session) render(text, reply string) State {
	rendered, err := s.renderReply(reply)
	if err != nil {
		s.logger.Warn("rendering failed", "error", err)
		s.console.Diagnostic(err)
		return StateAwaitingInput
	}
	s.console.Reply(rendered)
	s.Transcript.Record(text, reply)
	return StateAwaitingInput
}

func (s *Session) renderReply(reply string) (rendered string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("renderer panicked: %v", r)
		}
	}()
	return s.renderer.Render(reply), nil
}
