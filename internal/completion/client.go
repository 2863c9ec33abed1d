package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/graphnote/ai-server/internal/config"
)

const (
	chatCompletionsPath = "/v1/chat/completions"

	// Fixed generation parameters; the prompt contract assumes these.
	temperature = 0.2
	maxTokens   = 1200

	requestTimeout    = 45 * time.Second
	maxErrorBodyChars = 600
	maxResponseBytes  = 4 << 20
)

// Client calls a remote OpenAI-compatible chat-completion endpoint and
// returns the first completion's text content. It performs no retries: a
// single failed attempt fails the whole request.
type Client struct {
	cfg        config.Config
	httpClient *http.Client
}

// NewClient creates a Client bound to the given configuration. The embedded
// HTTP client carries the fixed request timeout.
func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// WithHTTPClient replaces the underlying HTTP client. Mostly useful in tests.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Complete sends a {system, user} message pair to the remote model and
// returns the raw completion text untouched; extracting JSON from it is the
// caller's concern. The model id resolves as: override > configured > default.
// All failures are surfaced as *UpstreamError.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt, model string) (string, error) {
	target := strings.TrimSpace(model)
	if target == "" {
		target = c.cfg.VLLMModel
	}

	payload := chatRequest{
		Model: target,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &UpstreamError{Kind: KindBadPayload, Message: "failed to encode request", Err: err}
	}

	url := strings.TrimRight(c.cfg.VLLMBaseURL, "/") + chatCompletionsPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", &UpstreamError{Kind: KindTransport, Message: "request failed", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.VLLMAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.VLLMAPIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Kind: KindTransport, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", &UpstreamError{Kind: KindTransport, Message: "request failed", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := truncate(strings.TrimSpace(string(respBody)), maxErrorBodyChars)
		return "", &UpstreamError{Kind: KindStatus, Message: "remote error: " + detail}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UpstreamError{Kind: KindBadPayload, Message: "invalid JSON from remote", Err: err}
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == nil {
		return "", &UpstreamError{Kind: KindBadPayload, Message: "missing completion content"}
	}

	// A present but non-string content (null, number, object) counts as
	// empty, same as a blank string.
	var content string
	if err := json.Unmarshal(parsed.Choices[0].Message.Content, &content); err != nil {
		return "", &UpstreamError{Kind: KindEmptyContent, Message: "empty completion content"}
	}
	if strings.TrimSpace(content) == "" {
		return "", &UpstreamError{Kind: KindEmptyContent, Message: "empty completion content"}
	}

	return content, nil
}

// truncate shortens s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
