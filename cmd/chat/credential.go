package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/chat"
	"github.com/fwojciec/chat/dotenv"
	"github.com/fwojciec/chat/lipgloss"
	"golang.org/x/term"
)

// resolveKey returns the provider's API key. The environment variable wins;
// otherwise the key comes from the store, and failing that from the user,
// in which case it is saved for next time.
func resolveKey(ctx context.Context, p provider, e env, store *dotenv.Store, console *lipgloss.Console, lines chat.LineReader) (string, error) {
	if key := strings.TrimSpace(e.getenv(p.envVar)); key != "" {
		return key, nil
	}
	key, saved, err := chat.EnsureCredential(ctx, store, func(ctx context.Context) (string, error) {
		console.MissingKey(p.envVar, p.keysURL)
		console.KeyPrompt()
		return readSecret(ctx, e.stdinFd, lines, e.stdout)
	})
	if err != nil {
		return "", err
	}
	if saved {
		console.KeySaved(store.Path())
	}
	return key, nil
}

// readSecret reads one line of input. On a terminal the line is not echoed
// and the terminal state is restored if ctx is cancelled mid-read.
func readSecret(ctx context.Context, fd int, lines chat.LineReader, out io.Writer) (string, error) {
	if fd < 0 {
		line, err := lines.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return line, err
	}

	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	type result struct {
		secret []byte
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := term.ReadPassword(fd)
		ch <- result{b, err}
	}()

	select {
	case r := <-ch:
		fmt.Fprintln(out)
		if r.err != nil {
			return "", fmt.Errorf("read key: %w", r.err)
		}
		return string(r.secret), nil
	case <-ctx.Done():
		_ = term.Restore(fd, state)
		fmt.Fprintln(out)
		return "", ctx.Err()
	}
}
