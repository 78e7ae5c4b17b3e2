// Package agentlogs records every agent invocation for auditing. Writes are
// best effort: callers report log failures but never fail the invocation
// that produced them.
package agentlogs

import (
	"encoding/json"
	"time"
)

// Action classifies what an agent invocation produced.
type Action string

// Action constants.
const (
	ActionGenerate           Action = "generate"
	ActionGenerateStructured Action = "generate_structured"
)

// Entry is a single audit record for an agent invocation.
type Entry struct {
	ID           string          `json:"id"`
	AgentName    string          `json:"agent_name"`
	ActionType   Action          `json:"action_type"`
	Details      json.RawMessage `json:"details"`
	Success      bool            `json:"success"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
