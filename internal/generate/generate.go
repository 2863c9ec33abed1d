// Package generate orchestrates the completion-to-graph pipeline: validate
// the request, render the system prompt, call the model, extract the JSON
// object from the completion text and shape-check the resulting document.
// Any stage failing short-circuits the rest.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/graphnote/ai-server/internal/completion"
	"github.com/graphnote/ai-server/internal/extract"
	"github.com/graphnote/ai-server/internal/graph"
	"github.com/graphnote/ai-server/internal/prompt"
)

// Request bounds communicated to the model and enforced on input.
const (
	DefaultMaxNodes = 28
	MaxMaxNodes     = 80
	MaxPromptChars  = 4000
)

// Client input errors, surfaced verbatim to the caller as HTTP 400.
var (
	ErrEmptyPrompt   = errors.New("prompt is required")
	ErrPromptTooLong = errors.New("prompt is too long")
)

// Completer produces a raw completion for a {system, user} message pair.
// Satisfied by [completion.Client]; tests substitute fakes.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt, model string) (string, error)
}

// Request is one graph-generation request. Immutable once received.
type Request struct {
	Prompt   string `json:"prompt"`
	MaxNodes int    `json:"maxNodes"`
	Model    string `json:"model,omitempty"`
}

// Service runs the generation pipeline against a completion backend.
type Service struct {
	completer Completer
}

// NewService creates a Service backed by the given completer.
func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Generate turns a prompt into a shape-valid graph document. The returned
// map is the model's document exactly as extracted; beyond the top-level
// shape nothing is normalized or re-validated.
func (s *Service) Generate(ctx context.Context, req Request) (map[string]any, error) {
	trimmed := strings.TrimSpace(req.Prompt)
	if trimmed == "" {
		return nil, ErrEmptyPrompt
	}
	// Characters, not bytes: a multibyte prompt must not hit the limit early.
	if utf8.RuneCountInString(trimmed) > MaxPromptChars {
		return nil, ErrPromptTooLong
	}

	systemPrompt := prompt.Build(clampMaxNodes(req.MaxNodes))

	content, err := s.completer.Complete(ctx, systemPrompt, trimmed, req.Model)
	if err != nil {
		return nil, err
	}

	block, err := extract.Object(content)
	if err != nil {
		return nil, &completion.UpstreamError{Kind: completion.KindBadPayload, Message: "failed to parse graph JSON", Err: err}
	}

	var doc any
	if err := json.Unmarshal([]byte(block), &doc); err != nil {
		return nil, &completion.UpstreamError{Kind: completion.KindBadPayload, Message: "failed to parse graph JSON", Err: err}
	}

	if err := graph.Validate(doc); err != nil {
		return nil, &completion.UpstreamError{Kind: completion.KindBadPayload, Err: err}
	}

	return doc.(map[string]any), nil
}

// clampMaxNodes forces the node ceiling into [1, MaxMaxNodes]. Missing or
// non-positive values mean the default ceiling.
func clampMaxNodes(value int) int {
	if value <= 0 {
		return DefaultMaxNodes
	}
	if value > MaxMaxNodes {
		return MaxMaxNodes
	}
	return value
}
