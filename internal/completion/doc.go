// Package completion is the client for the remote chat-completion endpoint
// (an OpenAI-compatible vLLM server). Every failure - transport, HTTP status,
// malformed response, missing or blank content - is surfaced as an
// [UpstreamError] with an explicit [Kind], so callers map the whole closed
// taxonomy to a single upstream-dependency failure without inspecting error
// strings.
package completion
