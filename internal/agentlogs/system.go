package agentlogs

import "context"

// System defines the interface for agent invocation audit records.
type System interface {
	Insert(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, agentName string, limit int) ([]Entry, error)
}
