package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"propsight/internal/llm"
)

// toolConversation is a second-round-trip history: the assistant requested a
// tool and the runner supplies its result.
var toolConversation = []llm.Message{
	{Role: llm.RoleSystem, Content: "You are a market analyst."},
	{Role: llm.RoleUser, Content: "Value 500 Congress Ave."},
	{
		Role:    llm.RoleAssistant,
		Content: "Looking up comps.",
		ToolCalls: []llm.ToolCall{{
			ID:        "call-1",
			Name:      "comparative-market-analysis",
			Arguments: map[string]any{"property_id": "abc", "radius": 1.0},
		}},
	},
	{Role: llm.RoleTool, Content: `{"estimated_value":400000}`, ToolCallID: "call-1"},
}

func captureRequest(t *testing.T, reply string) (*httptest.Server, func() map[string]any) {
	t.Helper()
	requests := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		var captured map[string]any
		if err := json.Unmarshal(body, &captured); err != nil {
			t.Errorf("unmarshal body: %v", err)
		}
		requests <- captured
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, func() map[string]any { return <-requests }
}

func TestOpenAIEchoesToolCalls(t *testing.T) {
	srv, recorded := captureRequest(t, `{"choices":[{"message":{"content":"done"},"finish_reason":"stop"}]}`)
	client := llm.NewOpenAI("test-key", llm.WithOpenAIBaseURL(srv.URL))

	resp, err := client.Generate(context.Background(), toolConversation, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Content != "done" {
		t.Errorf("content = %q", resp.Content)
	}

	sent := recorded()
	messages := sent["messages"].([]any)
	if len(messages) != 4 {
		t.Fatalf("messages = %d, want 4", len(messages))
	}

	assistant := messages[2].(map[string]any)
	if assistant["role"] != "assistant" {
		t.Fatalf("messages[2] role = %v, want assistant", assistant["role"])
	}
	calls, ok := assistant["tool_calls"].([]any)
	if !ok || len(calls) != 1 {
		t.Fatalf("assistant message must carry tool_calls, got %v", assistant["tool_calls"])
	}
	call := calls[0].(map[string]any)
	if call["id"] != "call-1" || call["type"] != "function" {
		t.Errorf("tool call = %v", call)
	}
	fn := call["function"].(map[string]any)
	if fn["name"] != "comparative-market-analysis" {
		t.Errorf("function name = %v", fn["name"])
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(fn["arguments"].(string)), &args); err != nil {
		t.Fatalf("arguments must be a JSON string: %v", err)
	}
	if args["property_id"] != "abc" {
		t.Errorf("arguments = %v", args)
	}

	result := messages[3].(map[string]any)
	if result["role"] != "tool" || result["tool_call_id"] != "call-1" {
		t.Errorf("tool result message = %v", result)
	}
}

func TestAnthropicEchoesToolUseBlocks(t *testing.T) {
	srv, recorded := captureRequest(t, `{"content":[{"type":"text","text":"done"}],"stop_reason":"end_turn"}`)
	client := llm.NewAnthropic("test-key", llm.WithAnthropicBaseURL(srv.URL))

	resp, err := client.Generate(context.Background(), toolConversation, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Content != "done" {
		t.Errorf("content = %q", resp.Content)
	}

	sent := recorded()
	if sent["system"] != "You are a market analyst." {
		t.Errorf("system = %v", sent["system"])
	}
	messages := sent["messages"].([]any)
	if len(messages) != 3 {
		t.Fatalf("messages = %d, want 3 (system is lifted out)", len(messages))
	}

	assistant := messages[1].(map[string]any)
	if assistant["role"] != "assistant" {
		t.Fatalf("messages[1] role = %v, want assistant", assistant["role"])
	}
	blocks, ok := assistant["content"].([]any)
	if !ok || len(blocks) != 2 {
		t.Fatalf("assistant content must be text + tool_use blocks, got %v", assistant["content"])
	}
	text := blocks[0].(map[string]any)
	if text["type"] != "text" || text["text"] != "Looking up comps." {
		t.Errorf("text block = %v", text)
	}
	toolUse := blocks[1].(map[string]any)
	if toolUse["type"] != "tool_use" || toolUse["id"] != "call-1" ||
		toolUse["name"] != "comparative-market-analysis" {
		t.Errorf("tool_use block = %v", toolUse)
	}
	input := toolUse["input"].(map[string]any)
	if input["property_id"] != "abc" {
		t.Errorf("tool_use input = %v", input)
	}

	result := messages[2].(map[string]any)
	if result["role"] != "user" {
		t.Fatalf("tool results travel as user messages, got %v", result["role"])
	}
	resultBlocks := result["content"].([]any)
	block := resultBlocks[0].(map[string]any)
	if block["type"] != "tool_result" || block["tool_use_id"] != "call-1" {
		t.Errorf("tool_result block = %v", block)
	}
}
