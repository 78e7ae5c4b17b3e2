package agentlogs

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"propsight/pkg/query"
	"propsight/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an audit log System backed by the given database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "agentlogs"),
	}
}

const insertEntry = `
INSERT INTO public.ai_agent_logs (id, agent_name, action_type, details, success, error_message)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *repo) Insert(ctx context.Context, entry Entry) error {
	_, err := r.db.ExecContext(ctx, insertEntry,
		entry.ID,
		entry.AgentName,
		entry.ActionType,
		entry.Details,
		entry.Success,
		entry.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert agent log: %w", err)
	}
	return nil
}

func (r *repo) Recent(ctx context.Context, agentName string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	builder := query.NewBuilder(projection, defaultSort)
	if agentName != "" {
		builder.WhereEquals("AgentName", agentName)
	}

	sql, args := builder.BuildList(limit)

	results, err := repository.QueryMany(ctx, r.db, sql, args, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query agent logs: %w", err)
	}

	return results, nil
}
