package chat

import "fmt"

// Validate checks universal constraints on Request: a non-negative token
// bound and a conversation that ends with a user message, with system
// messages only at its head. Providers may apply additional checks.
func (r Request) Validate() error {
	if r.MaxTokens < 0 {
		return fmt.Errorf("max_tokens must be non-negative, got %d: %w", r.MaxTokens, ErrValidation)
	}
	if len(r.Messages) == 0 {
		return fmt.Errorf("request has no messages: %w", ErrValidation)
	}
	head := true
	for i, m := range r.Messages {
		if err := ValidateMessage(m); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		if m.Role != RoleSystem {
			head = false
		} else if !head {
			return fmt.Errorf("message %d: system message after conversation start: %w", i, ErrValidation)
		}
	}
	if last := r.Messages[len(r.Messages)-1]; last.Role != RoleUser {
		return fmt.Errorf("last message must be from the user, got %s: %w", last.Role, ErrValidation)
	}
	return nil
}

// ValidateMessage checks that a message has a known role.
func ValidateMessage(m Message) error {
	switch m.Role {
	case RoleSystem, RoleUser, RoleAssistant:
		return nil
	default:
		return fmt.Errorf("unknown role %q: %w", m.Role, ErrValidation)
	}
}
