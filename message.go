package chat

import "strings"

// Message is a single entry of a conversation. Messages are values: once
// created they are never mutated, only copied into or out of a Transcript.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage returns a message with RoleSystem.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a message with RoleUser.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns a message with RoleAssistant.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// SplitSystem separates the leading system messages from the rest of the
// conversation. Providers whose API carries system content in a dedicated
// field use it to lift the system prompt out of the message list. Multiple
// leading system messages are joined with a blank line. System messages that
// appear after the first non-system message are left in place.
func SplitSystem(msgs []Message) (system string, rest []Message) {
	i := 0
	var parts []string
	for ; i < len(msgs) && msgs[i].Role == RoleSystem; i++ {
		parts = append(parts, msgs[i].Content)
	}
	return strings.Join(parts, "\n\n"), msgs[i:]
}
