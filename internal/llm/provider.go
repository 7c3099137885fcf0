// Package llm abstracts the Content Generation Collaborator behind a single
// Provider interface with structured-output support, so classification code
// never sees provider-specific request shapes.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the outbound generation contract. Implementations wrap a
// vendor SDK; decorators add retry and telemetry.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema the returned Content is JSON validated
	// against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the collaborator's role and constraints.
	System string

	// Messages is the conversation. Classification uses single-turn
	// requests: one user message per call.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and the response is validated against it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case.
	Name string

	// Description tells the collaborator what the schema represents.
	Description string

	// Definition is the JSON Schema body.
	Definition map[string]any
}

// Response is the collaborator's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
