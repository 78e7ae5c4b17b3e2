package listings_test

import (
	"net/url"
	"strings"
	"testing"

	"propsight/internal/listings"
	"propsight/pkg/query"
)

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, f listings.Filters)
	}{
		{
			"empty query",
			"",
			func(t *testing.T, f listings.Filters) {
				if f.Location != nil || f.MinPrice != nil || f.MaxPrice != nil ||
					f.Bedrooms != nil || f.Bathrooms != nil || f.PropertyType != nil {
					t.Errorf("filters should be unset, got %+v", f)
				}
				if f.Limit != 0 {
					t.Errorf("limit = %d, want 0", f.Limit)
				}
			},
		},
		{
			"all filters",
			"location=Austin&min_price=200000&max_price=600000&bedrooms=3&bathrooms=2.5&property_type=condo&limit=20",
			func(t *testing.T, f listings.Filters) {
				if f.Location == nil || *f.Location != "Austin" {
					t.Errorf("location = %v", f.Location)
				}
				if f.MinPrice == nil || *f.MinPrice != 200000 {
					t.Errorf("min_price = %v", f.MinPrice)
				}
				if f.MaxPrice == nil || *f.MaxPrice != 600000 {
					t.Errorf("max_price = %v", f.MaxPrice)
				}
				if f.Bedrooms == nil || *f.Bedrooms != 3 {
					t.Errorf("bedrooms = %v", f.Bedrooms)
				}
				if f.Bathrooms == nil || *f.Bathrooms != 2.5 {
					t.Errorf("bathrooms = %v", f.Bathrooms)
				}
				if f.PropertyType == nil || *f.PropertyType != "condo" {
					t.Errorf("property_type = %v", f.PropertyType)
				}
				if f.Limit != 20 {
					t.Errorf("limit = %d", f.Limit)
				}
			},
		},
		{
			"malformed numbers ignored",
			"min_price=cheap&bedrooms=many",
			func(t *testing.T, f listings.Filters) {
				if f.MinPrice != nil || f.Bedrooms != nil {
					t.Errorf("malformed values should be skipped, got %+v", f)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("parse query: %v", err)
			}
			tt.check(t, listings.FiltersFromQuery(values))
		})
	}
}

func TestFiltersNormalize(t *testing.T) {
	var f listings.Filters
	f.Normalize()
	if f.Limit != listings.DefaultLimit {
		t.Errorf("limit = %d, want %d", f.Limit, listings.DefaultLimit)
	}

	f.Limit = 25
	f.Normalize()
	if f.Limit != 25 {
		t.Errorf("limit = %d, explicit value should stand", f.Limit)
	}
}

func TestFiltersApply(t *testing.T) {
	location := "Austin"
	minPrice := int64(200000)
	propertyType := "condo"

	f := listings.Filters{
		Location:     &location,
		MinPrice:     &minPrice,
		PropertyType: &propertyType,
	}

	projection := query.
		NewProjectionMap("public", "real_estate_listings", "l").
		Project("city", "City").
		Project("state", "State").
		Project("zip_code", "ZipCode").
		Project("price", "Price").
		Project("property_type", "PropertyType")

	sql, args := f.Apply(query.NewBuilder(projection, query.SortField{Field: "Price"})).BuildList(10)

	for _, fragment := range []string{
		"(l.city ILIKE $1 OR l.state ILIKE $2 OR l.zip_code ILIKE $3)",
		"l.price >= $4",
		"l.property_type = $5",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("sql %q missing %q", sql, fragment)
		}
	}
	if len(args) != 5 {
		t.Errorf("args = %d, want 5", len(args))
	}
	if args[0] != "%Austin%" {
		t.Errorf("args[0] = %v", args[0])
	}
}

func TestFiltersApplySplitsCityState(t *testing.T) {
	location := "Austin, TX"
	minPrice := int64(300000)
	maxPrice := int64(500000)

	f := listings.Filters{
		Location: &location,
		MinPrice: &minPrice,
		MaxPrice: &maxPrice,
		Limit:    5,
	}
	f.Normalize()

	projection := query.
		NewProjectionMap("public", "real_estate_listings", "l").
		Project("city", "City").
		Project("state", "State").
		Project("zip_code", "ZipCode").
		Project("price", "Price")

	sql, args := f.Apply(query.NewBuilder(projection, query.SortField{Field: "Price"})).BuildList(f.Limit)

	// A combined "City, ST" value can never match a bare city or state
	// column, so the halves must filter independently.
	for _, fragment := range []string{
		"l.city ILIKE $1",
		"l.state ILIKE $2",
		"l.price >= $3",
		"l.price <= $4",
		"LIMIT 5",
	} {
		if !strings.Contains(sql, fragment) {
			t.Errorf("sql %q missing %q", sql, fragment)
		}
	}
	if strings.Contains(sql, " OR ") {
		t.Errorf("split location should not fall back to the OR group: %q", sql)
	}
	if args[0] != "%Austin%" || args[1] != "%TX%" {
		t.Errorf("location args = %v", args[:2])
	}
	if args[2] != minPrice || args[3] != maxPrice {
		t.Errorf("price args = %v", args[2:4])
	}
}
