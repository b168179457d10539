// Package gemini implements [chat.Completer] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between chat's
// transcript and the Gemini content types. System messages at the head of
// the transcript become the request's system instruction.
package gemini

// DefaultModel is the model used when a request does not name one.
const DefaultModel = "gemini-2.5-flash"
