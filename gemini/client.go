package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/chat"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ chat.Completer = (*Client)(nil)

// Client implements [chat.Completer] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

type settings struct {
	model   string
	baseURL string
}

// Option configures a [Client].
type Option func(*settings)

// WithModel sets the model used when a request does not name one.
func WithModel(model string) Option {
	return func(s *settings) { s.model = model }
}

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(s *settings) { s.baseURL = url }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	s := settings{model: DefaultModel}
	for _, o := range opts {
		o(&s)
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if s.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}
	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: s.model}, nil
}

// Complete sends the conversation to GenerateContent and returns the text of
// the first candidate.
func (c *Client) Complete(ctx context.Context, req chat.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	model := req.Model
	if model == "" {
		model = c.model
	}
	system, rest := chat.SplitSystem(req.Messages)

	resp, err := c.client.Models.GenerateContent(ctx, model, ConvertMessages(rest), BuildConfig(system, req.MaxTokens))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", classify(err))
	}
	return ReplyText(resp)
}

// BuildConfig returns the generation config for a request.
// Exported for testing.
func BuildConfig(system string, maxTokens int) *genai.GenerateContentConfig {
	if maxTokens == 0 {
		maxTokens = chat.DefaultMaxTokens
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

// ConvertMessages converts transcript messages to genai Contents. Assistant
// messages take the "model" role; everything else is sent as "user".
// Exported for testing.
func ConvertMessages(msgs []chat.Message) []*genai.Content {
	result := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		role := string(genai.RoleUser)
		if m.Role == chat.RoleAssistant {
			role = string(genai.RoleModel)
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return result
}

// ReplyText joins the non-thought text parts of the first candidate.
// Exported for testing.
func ReplyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini: response contained no candidates")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("gemini: response contained no text (finish reason %q)", cand.FinishReason)
	}
	var sb strings.Builder
	found := false
	for _, p := range cand.Content.Parts {
		if p == nil || p.Thought || p.Text == "" {
			continue
		}
		sb.WriteString(p.Text)
		found = true
	}
	if !found {
		return "", fmt.Errorf("gemini: response contained no text (finish reason %q)", cand.FinishReason)
	}
	return sb.String(), nil
}

// classify maps SDK errors to the chat error taxonomy.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &chat.ServiceError{StatusCode: apiErr.Code, Type: apiErr.Status, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return &chat.ServiceError{StatusCode: apiErrPtr.Code, Type: apiErrPtr.Status, Message: apiErrPtr.Message}
	}
	return &chat.TransportError{Err: err}
}
