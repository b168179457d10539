package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/chat"
)

// Interface compliance check.
var _ chat.Completer = (*Client)(nil)

// Client implements [chat.Completer] for the Anthropic Messages API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a new Anthropic [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends the conversation to the Messages API and returns the text of
// the reply. Network failures are reported as [chat.TransportError], errors
// returned by the API as [chat.ServiceError].
func (c *Client) Complete(ctx context.Context, req chat.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", &chat.TransportError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parseHTTPError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", &chat.TransportError{Err: err})
	}
	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return "", fmt.Errorf("anthropic: decode response: %w", err)
	}
	return replyText(apiResp)
}

func buildRequest(req chat.Request) apiRequest {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = chat.DefaultMaxTokens
	}
	system, rest := chat.SplitSystem(req.Messages)

	apiReq := apiRequest{
		Model:     model,
		MaxTokens: maxTokens,
		System:    convertSystem(system),
		Messages:  convertMessages(rest),
	}
	injectCacheMarkers(&apiReq)
	return apiReq
}

// convertSystem converts a system prompt to the content block array accepted
// by the API. Returns nil when the prompt is empty.
func convertSystem(prompt string) []apiContentBlock {
	if prompt == "" {
		return nil
	}
	return []apiContentBlock{{Type: "text", Text: prompt}}
}

// convertMessages maps transcript messages to API messages. System messages
// that survive SplitSystem (i.e. not at the head of the conversation) have no
// place in the messages array and are sent as user turns.
func convertMessages(msgs []chat.Message) []apiMessage {
	result := make([]apiMessage, 0, len(msgs))
	for _, m := range msgs {
		role := "user"
		if m.Role == chat.RoleAssistant {
			role = "assistant"
		}
		result = append(result, apiMessage{
			Role:    role,
			Content: []apiContentBlock{{Type: "text", Text: m.Content}},
		})
	}
	return result
}

// injectCacheMarkers sets cache_control breakpoints on the request:
//  1. System prompt last block: stable content breakpoint.
//  2. Last message: the transcript only grows, so each turn reuses the
//     prefix cached by the previous one.
func injectCacheMarkers(req *apiRequest) {
	// cc is shared across all breakpoints; safe because it is read-only after assignment.
	cc := &apiCacheControl{Type: "ephemeral"}

	if len(req.System) > 0 {
		req.System[len(req.System)-1].CacheControl = cc
	}
	if n := len(req.Messages); n > 0 {
		blocks := req.Messages[n-1].Content
		if len(blocks) > 0 {
			blocks[len(blocks)-1].CacheControl = cc
		}
	}
}

// replyText concatenates the text blocks of a response.
func replyText(resp apiResponse) (string, error) {
	var sb strings.Builder
	found := false
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("anthropic: response contained no text (stop reason %q)", resp.StopReason)
	}
	return sb.String(), nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("anthropic: %w", &chat.TransportError{
			Err: fmt.Errorf("HTTP %d (failed to read body: %w)", resp.StatusCode, err),
		})
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Type == "" {
		return fmt.Errorf("anthropic: %w", &chat.ServiceError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		})
	}
	return fmt.Errorf("anthropic: %w", &chat.ServiceError{
		StatusCode: resp.StatusCode,
		Type:       apiErr.Error.Type,
		Message:    apiErr.Error.Message,
	})
}
