package llm

import (
	"context"
	"encoding/json"
)

// Provider is the capability interface for the text-generation collaborator.
// It is injected once at startup; a nil Provider means "no key configured"
// and consumers must degrade to their deterministic fallbacks.
type Provider interface {
	// Generate sends a single-shot request and returns the response.
	// When the request carries a Schema, Content is JSON validated against
	// it. Without a Schema, Content is the raw text of the reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Messages is the conversation. Mathflow only ever sends one user
	// message per request.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output
	// conforming to the definition. Left nil for free-text requests
	// (the quiz question format is line-delimited text, not JSON).
	Schema *Schema

	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "remediation").
	Name string

	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the provider's reply.
type Response struct {
	// Content is raw reply text, or validated JSON when a Schema was set.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
