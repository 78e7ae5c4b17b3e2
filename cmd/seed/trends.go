package main

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
	"time"
)

func init() {
	registerSeeder(&TrendSeeder{})
}

// TrendSeeder populates market_trends with one year of monthly history per
// region.
type TrendSeeder struct{}

// Name returns "trends" as the seeder identifier.
func (s *TrendSeeder) Name() string {
	return "trends"
}

// Description returns a human-readable description of this seeder.
func (s *TrendSeeder) Description() string {
	return "Seeds twelve months of market trend history per region"
}

var seedRegions = []struct {
	Region     string
	RegionType string
	Median     int64
	Inventory  int
}{
	{"Austin", "city", 540000, 2200},
	{"San Antonio", "city", 310000, 3100},
	{"Houston", "city", 340000, 5400},
	{"Dallas", "city", 410000, 4800},
	{"78704", "zip", 615000, 180},
}

// Seed inserts monthly trend rows walking backwards from the current
// month. Prices drift by a small seeded monthly change.
func (s *TrendSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	rng := rand.New(rand.NewSource(7))

	const insert = `INSERT INTO market_trends
		(region, region_type, median_price, price_change_pct, avg_days_on_market,
		 inventory_count, month, year)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()

	for _, region := range seedRegions {
		price := float64(region.Median)

		for i := 11; i >= 0; i-- {
			at := now.AddDate(0, -i, 0)
			change := rng.Float64()*3 - 1
			price *= 1 + change/100

			inventory := region.Inventory + rng.Intn(region.Inventory/4+1) - region.Inventory/8

			_, err := tx.ExecContext(ctx, insert,
				region.Region, region.RegionType,
				int64(math.Round(price)), math.Round(change*100)/100,
				15+rng.Intn(40), inventory,
				int(at.Month()), at.Year(),
			)
			if err != nil {
				return fmt.Errorf("insert trend %s %d/%d: %w", region.Region, at.Month(), at.Year(), err)
			}
		}
	}

	return nil
}
