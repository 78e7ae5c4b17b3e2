package trends

import "context"

// System defines the interface for market trend retrieval operations.
type System interface {
	Recent(ctx context.Context, region, regionType string, limit int) ([]Trend, error)
}
