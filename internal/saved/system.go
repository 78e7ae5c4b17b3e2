package saved

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for saved listing operations.
type System interface {
	Save(ctx context.Context, userID, listingID uuid.UUID) (*SavedListing, error)
	Unsave(ctx context.Context, userID, listingID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]SavedListing, error)
}
