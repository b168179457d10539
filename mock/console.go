package mock

import "github.com/fwojciec/chat"

var _ chat.Console = (*Console)(nil)

// Console is a test double for chat.Console that records every call instead
// of printing. The zero value is ready to use.
type Console struct {
	Prompts     int
	PromptLines int
	Submissions int
	Replies     []string
	Diagnostics []error
	Farewells   int
}

// Prompt counts the call.
func (c *Console) Prompt() { c.Prompts++ }

// PromptLine counts the call.
func (c *Console) PromptLine() { c.PromptLines++ }

// Submitted counts the call.
func (c *Console) Submitted() { c.Submissions++ }

// Reply records the rendered reply.
func (c *Console) Reply(rendered string) { c.Replies = append(c.Replies, rendered) }

// Diagnostic records the error.
func (c *Console) Diagnostic(err error) { c.Diagnostics = append(c.Diagnostics, err) }

// Farewell counts the call.
func (c *Console) Farewell() { c.Farewells++ }
