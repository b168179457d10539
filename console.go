package chat

// Console is the user-facing output of a session. It is constructed once per
// process and passed explicitly to everything that writes to the terminal.
type Console interface {
	// Prompt announces a new input round.
	Prompt()
	// PromptLine prints the indentation before each input line.
	PromptLine()
	// Submitted acknowledges a non-blank submission.
	Submitted()
	// Reply prints the assistant's rendered reply.
	Reply(rendered string)
	// Diagnostic reports a failed turn.
	Diagnostic(err error)
	// Farewell is printed once when the session ends.
	Farewell()
}
