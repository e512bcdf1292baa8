package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for text generation.
// The rest of the app treats generation as an opaque remote operation:
// send a persona plus a message history, get text (or schema-validated
// JSON) back.
type Provider interface {
	// Generate sends a request to the model and returns its response.
	// When the request carries a Schema the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON. When Schema is nil the Content is the raw reply
	// text; callers parse it themselves.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. For student calls this is the fully
	// rendered persona; the engine never inspects it.
	System string

	// Messages is the conversation history. Test administration sends a
	// single user message; the teaching dialogue sends the whole running
	// exchange.
	Messages []Message

	// Schema, when set, constrains the response to the given JSON Schema.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls sampling randomness. Providers pass it through
	// EffectiveTemperature, so models with fixed sampling (see
	// capabilities.go) silently override it.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "learning-summary".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw reply text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
