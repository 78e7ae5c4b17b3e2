package listings

import (
	"net/url"
	"strconv"
	"strings"

	"propsight/pkg/query"
	"propsight/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "real_estate_listings", "l").
	Project("id", "ID").
	Project("address", "Address").
	Project("city", "City").
	Project("state", "State").
	Project("zip_code", "ZipCode").
	Project("price", "Price").
	Project("bedrooms", "Bedrooms").
	Project("bathrooms", "Bathrooms").
	Project("square_feet", "SquareFeet").
	Project("year_built", "YearBuilt").
	Project("property_type", "PropertyType").
	Project("listing_status", "ListingStatus").
	Project("image_url", "ImageURL").
	Project("deal_score", "DealScore").
	Project("days_on_market", "DaysOnMarket").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "Price"}

func scanListing(s repository.Scanner) (Listing, error) {
	var l Listing
	err := s.Scan(
		&l.ID, &l.Address, &l.City, &l.State, &l.ZipCode,
		&l.Price, &l.Bedrooms, &l.Bathrooms, &l.SquareFeet, &l.YearBuilt,
		&l.PropertyType, &l.ListingStatus, &l.ImageURL, &l.DealScore,
		&l.DaysOnMarket, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// DefaultLimit bounds searches that do not specify a limit.
const DefaultLimit = 10

// Filters contains optional filtering criteria for listing searches.
// Location matches city, state, or zip code case-insensitively.
type Filters struct {
	Location     *string  `json:"location,omitempty"`
	MinPrice     *int64   `json:"min_price,omitempty"`
	MaxPrice     *int64   `json:"max_price,omitempty"`
	Bedrooms     *int     `json:"bedrooms,omitempty"`
	Bathrooms    *float64 `json:"bathrooms,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Limit        int      `json:"limit,omitempty"`
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if v := values.Get("location"); v != "" {
		f.Location = &v
	}
	if v, err := strconv.ParseInt(values.Get("min_price"), 10, 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseInt(values.Get("max_price"), 10, 64); err == nil {
		f.MaxPrice = &v
	}
	if v, err := strconv.Atoi(values.Get("bedrooms")); err == nil {
		f.Bedrooms = &v
	}
	if v, err := strconv.ParseFloat(values.Get("bathrooms"), 64); err == nil {
		f.Bathrooms = &v
	}
	if v := values.Get("property_type"); v != "" {
		f.PropertyType = &v
	}
	if v, err := strconv.Atoi(values.Get("limit")); err == nil {
		f.Limit = v
	}

	return f
}

// Normalize bounds the limit to a usable value.
func (f *Filters) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
}

// Apply adds filter conditions to a query builder. "City, ST" locations
// filter city and state independently; anything else matches across city,
// state, and zip code.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.Location != nil && *f.Location != "" {
		if city, state, ok := splitLocation(*f.Location); ok {
			b.WhereContains("City", city).WhereContains("State", state)
		} else {
			b.WhereAnyContains(*f.Location, "City", "State", "ZipCode")
		}
	}
	if f.MinPrice != nil {
		b.WhereGte("Price", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		b.WhereLte("Price", *f.MaxPrice)
	}
	if f.Bedrooms != nil {
		b.WhereGte("Bedrooms", *f.Bedrooms)
	}
	if f.Bathrooms != nil {
		b.WhereGte("Bathrooms", *f.Bathrooms)
	}
	if f.PropertyType != nil && *f.PropertyType != "" {
		b.WhereEquals("PropertyType", *f.PropertyType)
	}
	return b
}

// splitLocation parses "City, ST" locations.
func splitLocation(location string) (city, state string, ok bool) {
	parts := strings.SplitN(location, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	city = strings.TrimSpace(parts[0])
	state = strings.TrimSpace(parts[1])
	return city, state, city != "" && state != ""
}
