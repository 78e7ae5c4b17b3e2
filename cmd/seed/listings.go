package main

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"math/rand"
)

func init() {
	registerSeeder(&ListingSeeder{})
}

// ListingSeeder populates real_estate_listings with generated development
// data. Generation uses a fixed seed so repeated runs against a fresh
// database produce the same rows.
type ListingSeeder struct{}

// Name returns "listings" as the seeder identifier.
func (s *ListingSeeder) Name() string {
	return "listings"
}

// Description returns a human-readable description of this seeder.
func (s *ListingSeeder) Description() string {
	return "Seeds property listings across Texas metro areas"
}

const listingCount = 50

var seedCities = []struct {
	City    string
	State   string
	ZipCode string
	Weight  int
	Base    int64
}{
	{"Austin", "TX", "78701", 5, 550000},
	{"Austin", "TX", "78704", 5, 620000},
	{"Austin", "TX", "78745", 4, 450000},
	{"Round Rock", "TX", "78664", 2, 380000},
	{"San Antonio", "TX", "78205", 2, 320000},
	{"Houston", "TX", "77002", 2, 350000},
	{"Dallas", "TX", "75201", 2, 420000},
}

var seedStreets = []string{
	"Oak Hollow Dr", "Cedar Bend Ln", "Riverside Ave", "Travis Heights Blvd",
	"Mesa Verde Ct", "Bluebonnet Way", "Lamar St", "Pecan Grove Rd",
}

var seedPropertyTypes = []string{"single_family", "condo", "townhouse", "multi_family"}

// Seed inserts generated listings. Roughly a third of the rows receive a
// deal score so the deals surface has data to serve.
func (s *ListingSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	rng := rand.New(rand.NewSource(42))

	var weighted []int
	for i, c := range seedCities {
		for range c.Weight {
			weighted = append(weighted, i)
		}
	}

	const insert = `INSERT INTO real_estate_listings
		(address, city, state, zip_code, price, bedrooms, bathrooms, square_feet,
		 year_built, property_type, listing_status, image_url, deal_score, days_on_market)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	for i := 0; i < listingCount; i++ {
		city := seedCities[weighted[rng.Intn(len(weighted))]]

		bedrooms := 2 + rng.Intn(4)
		bathrooms := float64(bedrooms) - 0.5 + float64(rng.Intn(2))
		squareFeet := 900 + bedrooms*350 + rng.Intn(600)

		price := city.Base + int64(rng.Intn(250000)) - 75000
		price = int64(math.Round(float64(price)/1000)) * 1000

		address := fmt.Sprintf("%d %s", 100+rng.Intn(9800), seedStreets[rng.Intn(len(seedStreets))])
		imageURL := fmt.Sprintf("/placeholder.svg?height=400&width=600&seed=%d", i)

		var dealScore *int
		if rng.Intn(3) == 0 {
			score := 60 + rng.Intn(36)
			dealScore = &score
		}

		_, err := tx.ExecContext(ctx, insert,
			address, city.City, city.State, city.ZipCode,
			price, bedrooms, bathrooms, squareFeet,
			1960+rng.Intn(64), seedPropertyTypes[rng.Intn(len(seedPropertyTypes))],
			"active", imageURL, dealScore, rng.Intn(90),
		)
		if err != nil {
			return fmt.Errorf("insert listing %d: %w", i, err)
		}
	}

	return nil
}
