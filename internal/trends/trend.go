// Package trends provides storage and retrieval of regional market trend
// statistics.
package trends

import (
	"time"

	"github.com/google/uuid"
)

// Trend represents a single month of market statistics for a region.
type Trend struct {
	ID              uuid.UUID `json:"id"`
	Region          string    `json:"region"`
	RegionType      string    `json:"region_type"`
	MedianPrice     int64     `json:"median_price"`
	PriceChangePct  float64   `json:"price_change_pct"`
	AvgDaysOnMarket int       `json:"avg_days_on_market"`
	InventoryCount  int       `json:"inventory_count"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	CreatedAt       time.Time `json:"created_at"`
}
