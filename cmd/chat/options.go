package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fwojciec/chat"
)

// options are the parsed command-line flags.
type options struct {
	chat.Config
	provider string
	envFile  string
	logLevel string
}

func parseOptions(args []string, e env) (options, error) {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	var o options
	fs.StringVar(&o.Model, "model", "", "Model ID (default: provider default)")
	fs.IntVar(&o.MaxTokens, "max-tokens", chat.DefaultMaxTokens, "Maximum tokens in each reply")
	fs.StringVar(&o.System, "system", "", "System prompt that opens the conversation")
	fs.StringVar(&o.provider, "provider", "", "Provider: anthropic, gemini (auto-detected from env vars if omitted)")
	fs.StringVar(&o.envFile, "env-file", defaultEnvFile(e.configDir), "Path of the .env file holding the API key")
	fs.StringVar(&o.logLevel, "log-level", cmp.Or(e.getenv("CHAT_LOG_LEVEL"), "warn"), "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected arguments %q", chat.ErrValidation, fs.Args())
	}
	return o, nil
}

// defaultEnvFile places the key file in the user's config directory, or the
// working directory when there is none.
func defaultEnvFile(configDir string) string {
	if configDir == "" {
		return ".env"
	}
	return filepath.Join(configDir, "chat", ".env")
}

// newLogger returns a text logger on w. Unknown levels select warn.
func newLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
