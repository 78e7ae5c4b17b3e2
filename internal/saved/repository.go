package saved

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

// New creates a saved listing System backed by the given database.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "saved"),
	}
}

const insertSaved = `
INSERT INTO public.user_saved_listings (user_id, listing_id)
VALUES ($1, $2)
RETURNING id, user_id, listing_id, created_at`

const deleteSaved = `
DELETE FROM public.user_saved_listings
WHERE user_id = $1 AND listing_id = $2`

func (r *repo) Save(ctx context.Context, userID, listingID uuid.UUID) (*SavedListing, error) {
	result, err := repository.QueryOne(ctx, r.db, insertSaved, []any{userID, listingID}, scanSaved)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing saved", "user_id", userID, "listing_id", listingID)
	return &result, nil
}

func (r *repo) Unsave(ctx context.Context, userID, listingID uuid.UUID) error {
	if err := repository.ExecExpectOne(ctx, r.db, deleteSaved, userID, listingID); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("listing unsaved", "user_id", userID, "listing_id", listingID)
	return nil
}

func (r *repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]SavedListing, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sql, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("UserID", userID).
		BuildList(limit)

	results, err := repository.QueryMany(ctx, r.db, sql, args, scanSaved)
	if err != nil {
		return nil, fmt.Errorf("query saved listings: %w", err)
	}

	return results, nil
}
