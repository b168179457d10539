package chat

import "context"

// Request carries model selection, generation parameters and the conversation
// to complete.
type Request struct {
	Model     string
	MaxTokens int
	Messages  []Message
}

// Completer sends a conversation to a completion service and returns the text
// of the reply. It makes exactly one blocking call: no retries and no
// streaming. Failures are reported as *TransportError or *ServiceError where
// the implementation can tell them apart.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Renderer converts raw reply text to its display form.
type Renderer interface {
	Render(text string) string
}
