// Package llm defines the provider-neutral LLM contract the runtime depends
// on, plus the Anthropic-backed implementation.
package llm

import (
	"context"
	"encoding/json"

	"github.com/loomchat/companion/pkg/models"
)

// ToolDefinition is the provider-facing projection of a registered tool.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema json.RawMessage // JSON Schema
}

// GenerateInput is a tool-enabled text generation request.
type GenerateInput struct {
	Model       string
	System      string
	Messages    []models.ConversationMessage
	Tools       []ToolDefinition
	Temperature float64
	MaxTokens   int
}

// GenerateResult carries the assistant text and any tool calls. Text and
// ToolCalls may both be present in one response.
type GenerateResult struct {
	Text      string
	ToolCalls []models.ToolCall
	Usage     TokenUsage
}

// ObjectInput is a structured-output request. The provider is forced to emit
// a value conforming to Schema, which is unmarshalled into Out.
type ObjectInput struct {
	Model       string
	Messages    []models.ConversationMessage
	Schema      json.RawMessage
	SchemaName  string
	Temperature float64
	MaxTokens   int
}

// TokenUsage aggregates token consumption for one call.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Client is the LLM collaborator contract.
type Client interface {
	// GenerateWithTools sends a conversation with bound tools and returns the
	// assistant turn.
	GenerateWithTools(ctx context.Context, input GenerateInput) (*GenerateResult, error)

	// GenerateObject forces a schema-conforming structured response and
	// unmarshals it into out.
	GenerateObject(ctx context.Context, input ObjectInput, out any) error
}
