// Package saved tracks listings that users have bookmarked.
package saved

import (
	"time"

	"github.com/google/uuid"
)

// SavedListing links a user to a bookmarked listing.
type SavedListing struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ListingID uuid.UUID `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
