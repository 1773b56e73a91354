package llm

import "context"

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Request is a single completion call. When Schema is set the provider must
// return a JSON document conforming to it.
type Request struct {
	Messages    []Message
	Schema      *Schema
	SchemaName  string
	Temperature *float32
	MaxTokens   int
}

// Response carries the raw text returned by the provider.
type Response struct {
	Text  string
	Model string
}

// Completer is the completion service consumed by the analyzer and synthesizer.
// Implementations are safe for concurrent use and honour ctx cancellation.
type Completer interface {
	Complete(ctx context.Context, req Request) (Response, error)
}
