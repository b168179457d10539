package chat

// Transcript is the ordered conversation history sent with every request.
//
// Invariant: an optional leading system message, followed by user/assistant
// pairs in the order the turns completed. The transcript is append-only and
// only grows by whole exchanges, so a failed turn never leaves a dangling
// user message behind.
type Transcript struct {
	messages []Message
}

// NewTranscript creates a transcript. A non-empty system prompt becomes the
// first message.
func NewTranscript(system string) *Transcript {
	t := &Transcript{}
	if system != "" {
		t.messages = append(t.messages, SystemMessage(system))
	}
	return t
}

// Outbound returns the message list for a request carrying text as the new
// user message. The returned slice is freshly allocated: appending to it or
// modifying it does not affect the transcript.
func (t *Transcript) Outbound(text string) []Message {
	out := make([]Message, len(t.messages), len(t.messages)+1)
	copy(out, t.messages)
	return append(out, UserMessage(text))
}

// Record appends a completed exchange: the user message, then the assistant
// reply.
func (t *Transcript) Record(user, assistant string) {
	t.messages = append(t.messages, UserMessage(user), AssistantMessage(assistant))
}

// Messages returns a copy of the transcript.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages, including the system message.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Turns returns the number of completed exchanges.
func (t *Transcript) Turns() int {
	n := len(t.messages)
	if n > 0 && t.messages[0].Role == RoleSystem {
		n--
	}
	return n / 2
}
