package listings

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"propsight/pkg/query"
	"propsight/pkg/repository"

	"github.com/google/uuid"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a listing System backed by the given database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "listings"),
	}
}

func (r *repo) Search(ctx context.Context, filters Filters) ([]Listing, error) {
	filters.Normalize()

	builder := filters.Apply(query.NewBuilder(projection, defaultSort))
	sql, args := builder.BuildList(filters.Limit)

	results, err := repository.QueryMany(ctx, r.db, sql, args, scanListing)
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}

	r.logger.Debug("listings searched", "count", len(results))
	return results, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Listing, error) {
	sql, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("ID", id)

	listing, err := repository.QueryOne(ctx, r.db, sql, args, scanListing)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &listing, nil
}

func (r *repo) Deals(ctx context.Context, minScore *int, limit int) ([]Listing, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	builder := query.
		NewBuilder(projection, defaultSort).
		OrderBy(query.SortField{Field: "DealScore", Descending: true})

	score := 70
	if minScore != nil {
		score = *minScore
	}
	builder.WhereGte("DealScore", score)

	sql, args := builder.BuildList(limit)

	results, err := repository.QueryMany(ctx, r.db, sql, args, scanListing)
	if err != nil {
		return nil, fmt.Errorf("query deals: %w", err)
	}

	return results, nil
}
