package llm

import "context"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn passed to a model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes a completion request. Temperature below zero means
// "provider default".
type Request struct {
	System      []string
	Messages    []Message
	MaxTokens   int32
	Temperature float32
	TopP        float32
}

// Response is the provider-agnostic completion result.
type Response struct {
	Text       string
	StopReason string
}

// Client is implemented by each hosted language-model provider.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}
