// Package listings provides the domain system for property listings stored
// in the relational database. It backs the data aggregation layer's database
// fallback tier and the property-database tool.
package listings

import (
	"time"

	"github.com/google/uuid"
)

// Listing represents a property listing row.
type Listing struct {
	ID            uuid.UUID `json:"id"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	Price         int64     `json:"price"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     float64   `json:"bathrooms"`
	SquareFeet    int       `json:"square_feet"`
	YearBuilt     int       `json:"year_built"`
	PropertyType  string    `json:"property_type"`
	ListingStatus string    `json:"listing_status"`
	ImageURL      *string   `json:"image_url,omitempty"`
	DealScore     *int      `json:"deal_score,omitempty"`
	DaysOnMarket  int       `json:"days_on_market"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
