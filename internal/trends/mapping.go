package trends

import (
	"propsight/pkg/query"
	"propsight/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "market_trends", "t").
	Project("id", "ID").
	Project("region", "Region").
	Project("region_type", "RegionType").
	Project("median_price", "MedianPrice").
	Project("price_change_pct", "PriceChangePct").
	Project("avg_days_on_market", "AvgDaysOnMarket").
	Project("inventory_count", "InventoryCount").
	Project("month", "Month").
	Project("year", "Year").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// DefaultLimit caps trend queries when no explicit limit is provided.
const DefaultLimit = 12

func scanTrend(s repository.Scanner) (Trend, error) {
	var t Trend
	err := s.Scan(
		&t.ID,
		&t.Region,
		&t.RegionType,
		&t.MedianPrice,
		&t.PriceChangePct,
		&t.AvgDaysOnMarket,
		&t.InventoryCount,
		&t.Month,
		&t.Year,
		&t.CreatedAt,
	)
	return t, err
}
