package trends

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

// New creates a trend System backed by the given database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "trends"),
	}
}

func (r *repo) Recent(ctx context.Context, region, regionType string, limit int) ([]Trend, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	builder := query.NewBuilder(projection, defaultSort)
	if region != "" {
		builder.WhereContains("Region", region)
	}
	if regionType != "" {
		builder.WhereEquals("RegionType", regionType)
	}

	sql, args := builder.BuildList(limit)

	results, err := repository.QueryMany(ctx, r.db, sql, args, scanTrend)
	if err != nil {
		return nil, fmt.Errorf("query trends: %w", err)
	}

	r.logger.Debug("trends queried", "region", region, "count", len(results))
	return results, nil
}
