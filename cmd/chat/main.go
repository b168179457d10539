// Command chat is a terminal conversation with a language model.
//
// Usage:
//
//	chat [flags]
//
// Flags:
//
//	-model string       Model ID (default: provider default)
//	-max-tokens int     Maximum tokens in each reply (default 1024)
//	-system string      System prompt that opens the conversation
//	-provider string    Provider: anthropic, gemini (auto-detected from env vars if omitted)
//	-env-file string    Path of the .env file holding the API key
//	-log-level string   Log level: debug, info, warn, error (default warn)
//
// Type a message over any number of lines and finish it with /// on a line
// of its own (or Ctrl+D). /quit or Ctrl+C ends the conversation.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fwojciec/chat"
	"github.com/fwojciec/chat/bubbletea"
	"github.com/fwojciec/chat/dotenv"
	"github.com/fwojciec/chat/goldmark"
	"github.com/fwojciec/chat/lipgloss"
	"github.com/google/uuid"
	"golang.org/x/term"
)

const defaultWidth = 80

// env is the process environment. Only main reads the real one; everything
// else receives it as a value.
type env struct {
	getenv    func(string) string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stdinFd   int  // terminal file descriptor of stdin, -1 when not a terminal
	stdoutTTY bool // stdout is a terminal
	width     int  // terminal width in columns
	configDir string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], systemEnv())
	stop()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat: %v\n", err)
		os.Exit(1)
	}
}

func systemEnv() env {
	inFd := int(os.Stdin.Fd())
	if !term.IsTerminal(inFd) {
		inFd = -1
	}
	outFd := int(os.Stdout.Fd())
	outTTY := term.IsTerminal(outFd)
	width := defaultWidth
	if outTTY {
		if w, _, err := term.GetSize(outFd); err == nil && w > 0 {
			width = w
		}
	}
	configDir, _ := os.UserConfigDir()
	return env{
		getenv:    os.Getenv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stdinFd:   inFd,
		stdoutTTY: outTTY,
		width:     width,
		configDir: configDir,
	}
}

// run wires the collaborators together and runs one session. An interrupt
// at any point ends the program normally.
func run(ctx context.Context, args []string, e env) error {
	opts, err := parseOptions(args, e)
	if err != nil {
		return err
	}
	logger := newLogger(opts.logLevel, e.stderr)

	p, err := resolveProvider(opts.provider, e.getenv)
	if err != nil {
		return err
	}
	if opts.Model == "" {
		opts.Model = p.model
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	theme := chat.DefaultTheme()
	console := lipgloss.New(e.stdout, theme,
		lipgloss.WithAssistantName(p.label),
		lipgloss.WithWidth(e.width),
	)
	lines := chat.NewLines(e.stdin)

	store := dotenv.NewStore(opts.envFile, p.envVar)
	key, err := resolveKey(ctx, p, e, store, console, lines)
	if err != nil {
		if ctx.Err() != nil {
			console.Farewell()
			return nil
		}
		return err
	}

	var completer chat.Completer
	completer, err = p.connect(ctx, key, e.getenv)
	if err != nil {
		return err
	}
	if e.stdoutTTY {
		completer = bubbletea.NewSpinner(completer, e.stdout, theme)
	}

	id := uuid.NewString()
	logger.Info("starting session", "session", id, "provider", p.name, "model", opts.Model)

	console.Welcome(p.name, opts.Model)
	session := chat.NewSession(opts.Config, completer,
		goldmark.New(theme, goldmark.WithWidth(e.width)),
		console,
		chat.WithID(id),
		chat.WithLogger(logger),
	)
	return session.Run(ctx, lines)
}
