// Package llm provides chat completion clients for the supported model
// providers behind a single Client interface.
package llm

import (
	"context"
	"errors"
)

// ProviderID identifies a supported model provider.
type ProviderID string

// Supported providers.
const (
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderMistral   ProviderID = "mistral"
)

// ErrProviderUnavailable indicates no credential is configured for the
// requested provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single turn in a conversation. Assistant turns that requested
// tools carry those calls so clients can echo them back to the provider;
// both supported APIs reject tool results whose call has no prior
// assistant-side record.
type Message struct {
	Role       Role       `json:"role"`
	Content    string     `json:"content"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
}

// ToolSchema describes a tool the model may call.
type ToolSchema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// ToolCall is a model request to execute a tool.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// StopReason indicates why the model stopped generating.
type StopReason string

// Stop reasons.
const (
	StopReasonEnd     StopReason = "end"
	StopReasonToolUse StopReason = "tool_use"
	StopReasonLength  StopReason = "length"
)

// Response is a completed model turn.
type Response struct {
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	StopReason StopReason `json:"stop_reason"`
}

// Client generates chat completions for a single provider and model.
type Client interface {
	Generate(ctx context.Context, messages []Message, tools []ToolSchema) (*Response, error)
}
