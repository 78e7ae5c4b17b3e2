package agentlogs

import (
	"propsight/pkg/query"
	"propsight/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "ai_agent_logs", "al").
	Project("id", "ID").
	Project("agent_name", "AgentName").
	Project("action_type", "ActionType").
	Project("details", "Details").
	Project("success", "Success").
	Project("error_message", "ErrorMessage").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// DefaultLimit caps audit log queries when no explicit limit is provided.
const DefaultLimit = 25

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(
		&e.ID,
		&e.AgentName,
		&e.ActionType,
		&e.Details,
		&e.Success,
		&e.ErrorMessage,
		&e.CreatedAt,
	)
	return e, err
}
