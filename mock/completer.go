// Package mock provides test doubles for chat interfaces using function fields.
package mock

import (
	"context"

	"github.com/fwojciec/chat"
)

// Interface compliance checks.
var (
	_ chat.Completer       = (*Completer)(nil)
	_ chat.Renderer        = (*Renderer)(nil)
	_ chat.LineReader      = (*LineReader)(nil)
	_ chat.CredentialStore = (*CredentialStore)(nil)
)

// Completer is a test double for chat.Completer.
// Set CompleteFn before calling Complete.
type Completer struct {
	CompleteFn func(ctx context.Context, req chat.Request) (string, error)
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req chat.Request) (string, error) {
	return c.CompleteFn(ctx, req)
}

// Renderer is a test double for chat.Renderer.
// Set RenderFn before calling Render.
type Renderer struct {
	RenderFn func(text string) string
}

// Render delegates to RenderFn.
func (r *Renderer) Render(text string) string {
	return r.RenderFn(text)
}

// LineReader is a test double for chat.LineReader.
// Set ReadLineFn before calling ReadLine.
type LineReader struct {
	ReadLineFn func(ctx context.Context) (string, error)
}

// ReadLine delegates to ReadLineFn.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	return l.ReadLineFn(ctx)
}

// CredentialStore is a test double for chat.CredentialStore.
// Set GetFn and SetFn before use.
type CredentialStore struct {
	GetFn func() (string, bool, error)
	SetFn func(secret string) error
}

// Get delegates to GetFn.
func (s *CredentialStore) Get() (string, bool, error) {
	return s.GetFn()
}

// Set delegates to SetFn.
func (s *CredentialStore) Set(secret string) error {
	return s.SetFn(secret)
}
