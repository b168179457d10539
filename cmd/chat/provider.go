package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/chat"
	"github.com/fwojciec/chat/anthropic"
	"github.com/fwojciec/chat/gemini"
)

// provider describes a completion service the command can talk to.
type provider struct {
	name    string
	label   string // assistant label above replies
	envVar  string // API key variable, also the key name in the .env file
	keysURL string // where keys are issued
	model   string // default model
	connect func(ctx context.Context, key string, getenv func(string) string) (chat.Completer, error)
}

var providers = map[string]provider{
	"anthropic": {
		name:    "anthropic",
		label:   "Claude",
		envVar:  "ANTHROPIC_API_KEY",
		keysURL: "https://console.anthropic.com/settings/keys",
		model:   anthropic.DefaultModel,
		connect: func(_ context.Context, key string, getenv func(string) string) (chat.Completer, error) {
			var opts []anthropic.Option
			if u := getenv("ANTHROPIC_BASE_URL"); u != "" {
				opts = append(opts, anthropic.WithBaseURL(u))
			}
			return anthropic.New(key, opts...), nil
		},
	},
	"gemini": {
		name:    "gemini",
		label:   "Gemini",
		envVar:  "GEMINI_API_KEY",
		keysURL: "https://aistudio.google.com/apikey",
		model:   gemini.DefaultModel,
		connect: func(ctx context.Context, key string, getenv func(string) string) (chat.Completer, error) {
			var opts []gemini.Option
			if u := getenv("GEMINI_BASE_URL"); u != "" {
				opts = append(opts, gemini.WithBaseURL(u))
			}
			return gemini.New(ctx, key, opts...)
		},
	},
}

// resolveProvider selects the provider named by the flag. Without a flag,
// gemini is chosen only when its key is the only one in the environment.
func resolveProvider(name string, getenv func(string) string) (provider, error) {
	if name == "" {
		name = "anthropic"
		if getenv("ANTHROPIC_API_KEY") == "" && getenv("GEMINI_API_KEY") != "" {
			name = "gemini"
		}
	}
	p, ok := providers[strings.ToLower(name)]
	if !ok {
		return provider{}, fmt.Errorf("%w: unknown provider %q: must be \"anthropic\" or \"gemini\"", chat.ErrValidation, name)
	}
	return p, nil
}
