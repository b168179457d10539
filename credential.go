package chat

import (
	"context"
	"fmt"
	"strings"
)

// CredentialStore loads and saves a single secret.
type CredentialStore interface {
	// Get returns the stored secret; ok is false when none is stored.
	Get() (secret string, ok bool, err error)
	// Set persists the secret, readable only by the current user.
	Set(secret string) error
}

// EnsureCredential returns the secret held by store. When none is stored it
// asks prompt for one, rejects an empty answer with ErrMissingCredential and
// persists the answer. saved reports whether a new secret was written.
func EnsureCredential(ctx context.Context, store CredentialStore, prompt func(context.Context) (string, error)) (secret string, saved bool, err error) {
	secret, ok, err := store.Get()
	if err != nil {
		return "", false, fmt.Errorf("load credential: %w", err)
	}
	if ok && secret != "" {
		return secret, false, nil
	}

	secret, err = prompt(ctx)
	if err != nil {
		return "", false, err
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return "", false, ErrMissingCredential
	}
	if err := store.Set(secret); err != nil {
		return "", false, fmt.Errorf("save credential: %w", err)
	}
	return secret, true, nil
}
