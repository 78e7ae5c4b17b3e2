package saved

import (
	"propsight/pkg/query"
	"propsight/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "user_saved_listings", "s").
	Project("id", "ID").
	Project("user_id", "UserID").
	Project("listing_id", "ListingID").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// DefaultLimit caps saved listing queries when no explicit limit is provided.
const DefaultLimit = 50

func scanSaved(s repository.Scanner) (SavedListing, error) {
	var sl SavedListing
	err := s.Scan(
		&sl.ID,
		&sl.UserID,
		&sl.ListingID,
		&sl.CreatedAt,
	)
	return sl, err
}
