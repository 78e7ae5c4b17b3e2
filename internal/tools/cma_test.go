package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"propsight/internal/listings"
	"propsight/internal/realestate"
)

type fakeAggregator struct {
	properties []realestate.Property
	searches   []realestate.SearchParams
}

func (f *fakeAggregator) SearchProperties(ctx context.Context, params realestate.SearchParams) ([]realestate.Property, error) {
	f.searches = append(f.searches, params)
	return f.properties, nil
}

func (f *fakeAggregator) MarketTrends(ctx context.Context, params realestate.TrendParams) ([]realestate.MarketTrend, error) {
	return nil, nil
}

func (f *fakeAggregator) PropertyValuation(ctx context.Context, propertyID string) (*realestate.Valuation, error) {
	return &realestate.Valuation{}, nil
}

func (f *fakeAggregator) NeighborhoodInfo(ctx context.Context, params realestate.NeighborhoodParams) (*realestate.NeighborhoodInfo, error) {
	return &realestate.NeighborhoodInfo{}, nil
}

func (f *fakeAggregator) MarketInsights(ctx context.Context, params realestate.InsightParams) (*realestate.MarketInsight, error) {
	return &realestate.MarketInsight{}, nil
}

func (f *fakeAggregator) PropertyAnalysis(ctx context.Context, propertyID string) (*realestate.PropertyAnalysis, error) {
	return &realestate.PropertyAnalysis{}, nil
}

func (f *fakeAggregator) OpportunityZones(ctx context.Context, params realestate.InsightParams) ([]realestate.OpportunityZone, error) {
	return nil, nil
}

type fakeListingStore struct {
	byID map[uuid.UUID]*listings.Listing
}

func (f *fakeListingStore) Search(ctx context.Context, filters listings.Filters) ([]listings.Listing, error) {
	return nil, nil
}

func (f *fakeListingStore) Find(ctx context.Context, id uuid.UUID) (*listings.Listing, error) {
	row, ok := f.byID[id]
	if !ok {
		return nil, listings.ErrNotFound
	}
	return row, nil
}

func (f *fakeListingStore) Deals(ctx context.Context, minScore *int, limit int) ([]listings.Listing, error) {
	return nil, nil
}

func TestCMAConclusion(t *testing.T) {
	subjectID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	// Two comps at $200/sqft put the estimated value of a 2000 sqft
	// subject at $400,000.
	comps := []realestate.Property{
		{ID: "comp-1", Address: "100 Oak St", Price: 200000, SquareFeet: 1000, DaysOnMarket: 20},
		{ID: "comp-2", Address: "200 Elm St", Price: 200000, SquareFeet: 1000, DaysOnMarket: 40},
	}

	tests := []struct {
		name           string
		subjectPrice   int64
		wantPct        int
		wantConclusion string
	}{
		{"undervalued at -5 pct", 380000, -5, undervaluedConclusion},
		{"overvalued at +5 pct", 420000, 5, overvaluedConclusion},
		{"fairly priced at +4 pct", 416000, 4, fairlyPricedConclusion},
		{"fairly priced at -4 pct", 384000, -4, fairlyPricedConclusion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeListingStore{byID: map[uuid.UUID]*listings.Listing{
				subjectID: {
					ID:         subjectID,
					Address:    "500 Congress Ave",
					City:       "Austin",
					State:      "TX",
					Price:      tt.subjectPrice,
					Bedrooms:   3,
					Bathrooms:  2,
					SquareFeet: 2000,
				},
			}}
			agg := &fakeAggregator{properties: comps}
			tool := cmaTool(agg, store)

			result, err := tool.Call(context.Background(), map[string]any{
				"property_id": subjectID.String(),
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			analysis := result.(map[string]any)["analysis"].(map[string]any)
			if got := analysis["price_difference_pct"].(int); got != tt.wantPct {
				t.Errorf("price_difference_pct = %d, want %d", got, tt.wantPct)
			}
			if got := analysis["conclusion"].(string); got != tt.wantConclusion {
				t.Errorf("conclusion = %q, want %q", got, tt.wantConclusion)
			}
		})
	}
}

func TestCMASearchWindowAndSelfExclusion(t *testing.T) {
	subjectID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	store := &fakeListingStore{byID: map[uuid.UUID]*listings.Listing{
		subjectID: {
			ID:         subjectID,
			Address:    "42 Travis Heights Blvd",
			City:       "Austin",
			State:      "TX",
			Price:      500000,
			Bedrooms:   4,
			Bathrooms:  2.5,
			SquareFeet: 2400,
		},
	}}

	agg := &fakeAggregator{properties: []realestate.Property{
		{ID: subjectID.String(), Address: "42 Travis Heights Blvd", Price: 500000, SquareFeet: 2400},
		{ID: "comp-1", Address: "100 Oak St", Price: 480000, SquareFeet: 2400},
	}}
	tool := cmaTool(agg, store)

	result, err := tool.Call(context.Background(), map[string]any{
		"property_id": subjectID.String(),
		"max_comps":   3.0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(agg.searches) != 1 {
		t.Fatalf("searches = %d, want 1", len(agg.searches))
	}

	params := agg.searches[0]
	if params.Location != "Austin, TX" {
		t.Errorf("location = %q", params.Location)
	}
	if params.MinPrice != 400000 || params.MaxPrice != 600000 {
		t.Errorf("price window = [%d, %d], want [400000, 600000]", params.MinPrice, params.MaxPrice)
	}
	if params.Limit != 4 {
		t.Errorf("limit = %d, want max_comps+1", params.Limit)
	}

	comps := result.(map[string]any)["comparable_properties"].([]map[string]any)
	if len(comps) != 1 {
		t.Fatalf("comps = %d, want subject excluded", len(comps))
	}
	if comps[0]["id"] != "comp-1" {
		t.Errorf("comp id = %v", comps[0]["id"])
	}
}

func TestCMAErrors(t *testing.T) {
	subjectID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	store := &fakeListingStore{byID: map[uuid.UUID]*listings.Listing{
		subjectID: {
			ID:         subjectID,
			City:       "Austin",
			State:      "TX",
			Price:      400000,
			SquareFeet: 2000,
		},
	}}

	t.Run("malformed id", func(t *testing.T) {
		tool := cmaTool(&fakeAggregator{}, store)
		_, err := tool.Call(context.Background(), map[string]any{"property_id": "not-a-uuid"})
		if err == nil || !strings.Contains(err.Error(), "property not found") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("unknown listing", func(t *testing.T) {
		tool := cmaTool(&fakeAggregator{}, store)
		_, err := tool.Call(context.Background(), map[string]any{
			"property_id": "44444444-4444-4444-4444-444444444444",
		})
		if err == nil || !strings.Contains(err.Error(), "property not found") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("no comparables", func(t *testing.T) {
		tool := cmaTool(&fakeAggregator{}, store)
		_, err := tool.Call(context.Background(), map[string]any{
			"property_id": subjectID.String(),
		})
		if err == nil || !strings.Contains(err.Error(), "no comparable properties") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("subject without square footage", func(t *testing.T) {
		noSqftID := uuid.MustParse("55555555-5555-5555-5555-555555555555")
		noSqftStore := &fakeListingStore{byID: map[uuid.UUID]*listings.Listing{
			noSqftID: {ID: noSqftID, City: "Austin", State: "TX", Price: 400000},
		}}
		agg := &fakeAggregator{properties: []realestate.Property{
			{ID: "comp-1", Address: "100 Oak St", Price: 200000, SquareFeet: 1000},
		}}

		tool := cmaTool(agg, noSqftStore)
		_, err := tool.Call(context.Background(), map[string]any{
			"property_id": noSqftID.String(),
		})
		if err == nil || !strings.Contains(err.Error(), "no square footage") {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("comps without square footage are skipped", func(t *testing.T) {
		agg := &fakeAggregator{properties: []realestate.Property{
			{ID: "comp-1", Address: "100 Oak St", Price: 200000},
			{ID: "comp-2", Address: "200 Elm St", Price: 200000, SquareFeet: 1000},
		}}

		tool := cmaTool(agg, store)
		result, err := tool.Call(context.Background(), map[string]any{
			"property_id": subjectID.String(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := result.(map[string]any)
		comps := got["comparable_properties"].([]map[string]any)
		if len(comps) != 1 {
			t.Fatalf("comparables = %d, want 1 (zero sqft comp excluded)", len(comps))
		}
		if comps[0]["id"] != "comp-2" {
			t.Errorf("kept comp = %v", comps[0]["id"])
		}
		// $200/sqft over 2000 sqft gives a clean estimate once the
		// zero sqft comp cannot poison the average.
		analysis := got["analysis"].(map[string]any)
		if v := analysis["estimated_value_sqft"].(int64); v != 400000 {
			t.Errorf("estimated value = %v, want 400000", v)
		}
	})
}
