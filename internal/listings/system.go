package listings

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for listing storage and retrieval operations.
type System interface {
	Search(ctx context.Context, filters Filters) ([]Listing, error)
	Find(ctx context.Context, id uuid.UUID) (*Listing, error)
	Deals(ctx context.Context, minScore *int, limit int) ([]Listing, error)
}
