package chat

import "fmt"

// DefaultMaxTokens is the response size bound used when none is configured.
const DefaultMaxTokens = 1024

// Config carries the session parameters. It is set once at startup and not
// modified afterwards.
type Config struct {
	Model     string // model ID, provider-specific
	MaxTokens int    // upper bound on the response size, in tokens
	System    string // optional system prompt
}

// Validate checks the constraints on Config.
func (c Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model must not be empty: %w", ErrValidation)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d: %w", c.MaxTokens, ErrValidation)
	}
	return nil
}
