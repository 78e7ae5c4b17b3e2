package realestate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"propsight/internal/cache"
	"propsight/internal/config"
	"propsight/internal/listings"
	"propsight/internal/trends"

	"github.com/google/uuid"
)

// SearchProvider serves property searches.
type SearchProvider interface {
	SearchProperties(ctx context.Context, params SearchParams) ([]Property, error)
}

// TrendProvider serves regional market trend statistics.
type TrendProvider interface {
	MarketTrends(ctx context.Context, params TrendParams) ([]MarketTrend, error)
}

// ValuationProvider serves property valuations.
type ValuationProvider interface {
	PropertyValuation(ctx context.Context, propertyID, address, zipCode string) (*Valuation, error)
}

// NeighborhoodProvider serves neighborhood profiles.
type NeighborhoodProvider interface {
	NeighborhoodInfo(ctx context.Context, params NeighborhoodParams) (*NeighborhoodInfo, error)
}

// InsightProvider serves market insights, property analysis, and opportunity
// zones. Only Repliers implements it.
type InsightProvider interface {
	MarketInsights(ctx context.Context, params InsightParams) (*MarketInsight, error)
	PropertyAnalysis(ctx context.Context, propertyID string) (*PropertyAnalysis, error)
	OpportunityZones(ctx context.Context, params InsightParams) ([]OpportunityZone, error)
}

// Providers holds the provider chains in priority order. Empty chains are
// valid: every operation still resolves through database and generated
// fallbacks.
type Providers struct {
	Search        []SearchProvider
	Trends        []TrendProvider
	Valuations    []ValuationProvider
	Neighborhoods []NeighborhoodProvider
	Insights      InsightProvider
}

// ConfigureProviders builds provider chains from configured credentials.
// Each provider joins only the chains for capabilities it serves, and only
// when its API key is present. When useRealAPIs is false every chain stays
// empty.
func ConfigureProviders(cfg *config.ProviderConfig, creds *config.Credentials, useRealAPIs bool) Providers {
	var p Providers
	if !useRealAPIs {
		return p
	}

	if creds.RepliersAPIKey != "" {
		repliers := NewRepliers(cfg.RepliersBaseURL, creds.RepliersAPIKey, cfg.RepliersRegion)
		p.Search = append(p.Search, repliers)
		p.Trends = append(p.Trends, repliers)
		p.Valuations = append(p.Valuations, repliers)
		p.Neighborhoods = append(p.Neighborhoods, repliers)
		p.Insights = repliers
	}

	if creds.RedfinAPIKey != "" {
		redfin := NewRedfin(cfg.RedfinBaseURL, creds.RedfinAPIKey)
		p.Search = append(p.Search, redfin)
		p.Trends = append(p.Trends, redfin)
		p.Neighborhoods = append(p.Neighborhoods, redfin)
	}

	if creds.ZillowAPIKey != "" {
		zillow := NewZillow(cfg.ZillowBaseURL, creds.ZillowAPIKey)
		p.Search = append(p.Search, zillow)
		p.Valuations = append(p.Valuations, zillow)
	}

	if creds.MLSAPIKey != "" {
		p.Search = append(p.Search, NewMLS(cfg.MLSBaseURL, creds.MLSAPIKey))
	}

	return p
}

// Options bundles the dependencies of the aggregation Service.
type Options struct {
	Cache     *cache.Cache
	Listings  listings.System
	Trends    trends.System
	Providers Providers
	Logger    *slog.Logger
	Now       func() time.Time
}

// Service aggregates market data across providers, the database, and
// generated fallbacks.
type Service struct {
	cache     *cache.Cache
	listings  listings.System
	trends    trends.System
	providers Providers
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates an aggregation Service.
func NewService(opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cache:     opts.Cache,
		listings:  opts.Listings,
		trends:    opts.Trends,
		providers: opts.Providers,
		logger:    opts.Logger.With("system", "realestate"),
		now:       now,
	}
}

// providerName labels chain log lines with the provider's source when it
// carries one.
func providerName(p any) string {
	if n, ok := p.(interface{ name() Source }); ok {
		return string(n.name())
	}
	return fmt.Sprintf("%T", p)
}

// cacheKey builds a cache key from the method name and its parameters.
func cacheKey(method string, params any) string {
	encoded, err := json.Marshal(params)
	if err != nil {
		return method
	}
	return method + ":" + string(encoded)
}

// SearchProperties resolves a property search through the provider chain
// with a database fallback. Database errors degrade to an empty result.
func (s *Service) SearchProperties(ctx context.Context, params SearchParams) ([]Property, error) {
	key := cacheKey("search_properties", params)
	if cached, ok := cache.Lookup[[]Property](s.cache, key); ok {
		return cached, nil
	}

	for _, provider := range s.providers.Search {
		results, err := provider.SearchProperties(ctx, params)
		if err != nil {
			s.logger.Warn("search provider failed", "provider", providerName(provider), "error", err)
			continue
		}
		if len(results) == 0 {
			continue
		}

		s.cache.Set(key, results)
		return results, nil
	}

	rows, err := s.listings.Search(ctx, searchFilters(params))
	if err != nil {
		s.logger.Error("listing fallback failed", "error", err)
		return []Property{}, nil
	}

	results := make([]Property, 0, len(rows))
	for _, row := range rows {
		results = append(results, s.fromListing(row))
	}

	s.cache.Set(key, results)
	return results, nil
}

// MarketTrends resolves regional trends through the provider chain with a
// database fallback. Database errors degrade to an empty result.
func (s *Service) MarketTrends(ctx context.Context, params TrendParams) ([]MarketTrend, error) {
	key := cacheKey("market_trends", params)
	if cached, ok := cache.Lookup[[]MarketTrend](s.cache, key); ok {
		return cached, nil
	}

	if params.Region != "" {
		for _, provider := range s.providers.Trends {
			results, err := provider.MarketTrends(ctx, params)
			if err != nil {
				s.logger.Warn("trend provider failed", "provider", providerName(provider), "error", err)
				continue
			}
			if len(results) == 0 {
				continue
			}

			s.cache.Set(key, results)
			return results, nil
		}
	}

	months := params.Months
	if months <= 0 {
		months = 12
	}

	rows, err := s.trends.Recent(ctx, params.Region, params.RegionType, months)
	if err != nil {
		s.logger.Error("trend fallback failed", "error", err)
		return []MarketTrend{}, nil
	}

	results := make([]MarketTrend, 0, len(rows))
	for _, row := range rows {
		results = append(results, MarketTrend{
			Region:          row.Region,
			RegionType:      row.RegionType,
			MedianPrice:     row.MedianPrice,
			PriceChangePct:  row.PriceChangePct,
			AvgDaysOnMarket: row.AvgDaysOnMarket,
			InventoryCount:  row.InventoryCount,
			Month:           row.Month,
			Year:            row.Year,
			Source:          SourceInternal,
		})
	}

	s.cache.Set(key, results)
	return results, nil
}

// PropertyValuation resolves a valuation for a known listing. The listing
// must exist; provider failures fall back to generated valuation data.
func (s *Service) PropertyValuation(ctx context.Context, propertyID string) (*Valuation, error) {
	key := cacheKey("property_valuation", propertyID)
	if cached, ok := cache.Lookup[*Valuation](s.cache, key); ok {
		return cached, nil
	}

	listing, err := s.findListing(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	for _, provider := range s.providers.Valuations {
		valuation, err := provider.PropertyValuation(ctx, propertyID, listing.Address, listing.ZipCode)
		if err != nil {
			s.logger.Warn("valuation provider failed", "provider", providerName(provider), "error", err)
			continue
		}

		s.cache.Set(key, valuation)
		return valuation, nil
	}

	valuation := syntheticValuation(propertyID, listing.Price, s.now())
	s.cache.Set(key, valuation)
	return valuation, nil
}

// NeighborhoodInfo resolves a neighborhood profile through the provider
// chain with a generated fallback.
func (s *Service) NeighborhoodInfo(ctx context.Context, params NeighborhoodParams) (*NeighborhoodInfo, error) {
	key := cacheKey("neighborhood_info", params)
	if cached, ok := cache.Lookup[*NeighborhoodInfo](s.cache, key); ok {
		return cached, nil
	}

	for _, provider := range s.providers.Neighborhoods {
		info, err := provider.NeighborhoodInfo(ctx, params)
		if err != nil {
			s.logger.Warn("neighborhood provider failed", "provider", providerName(provider), "error", err)
			continue
		}

		s.cache.Set(key, info)
		return info, nil
	}

	info := syntheticNeighborhood(params)
	s.cache.Set(key, info)
	return info, nil
}

// MarketInsights resolves a regional insight report with a generated
// fallback.
func (s *Service) MarketInsights(ctx context.Context, params InsightParams) (*MarketInsight, error) {
	key := cacheKey("market_insights", params)
	if cached, ok := cache.Lookup[*MarketInsight](s.cache, key); ok {
		return cached, nil
	}

	if s.providers.Insights != nil {
		insight, err := s.providers.Insights.MarketInsights(ctx, params)
		if err == nil {
			s.cache.Set(key, insight)
			return insight, nil
		}
		s.logger.Warn("insight provider failed", "provider", providerName(s.providers.Insights), "error", err)
	}

	insight := syntheticInsights(params, s.now())
	s.cache.Set(key, insight)
	return insight, nil
}

// PropertyAnalysis resolves an investment analysis for a known listing.
// The listing must exist when falling back to generated analysis.
func (s *Service) PropertyAnalysis(ctx context.Context, propertyID string) (*PropertyAnalysis, error) {
	key := cacheKey("property_analysis", propertyID)
	if cached, ok := cache.Lookup[*PropertyAnalysis](s.cache, key); ok {
		return cached, nil
	}

	if s.providers.Insights != nil {
		analysis, err := s.providers.Insights.PropertyAnalysis(ctx, propertyID)
		if err == nil {
			s.cache.Set(key, analysis)
			return analysis, nil
		}
		s.logger.Warn("analysis provider failed", "provider", providerName(s.providers.Insights), "error", err)
	}

	listing, err := s.findListing(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	analysis := syntheticAnalysis(
		propertyID,
		listing.Address,
		listing.Price,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.SquareFeet,
		listing.YearBuilt,
	)

	s.cache.Set(key, analysis)
	return analysis, nil
}

// OpportunityZones resolves opportunity zones for a region with a generated
// fallback.
func (s *Service) OpportunityZones(ctx context.Context, params InsightParams) ([]OpportunityZone, error) {
	key := cacheKey("opportunity_zones", params)
	if cached, ok := cache.Lookup[[]OpportunityZone](s.cache, key); ok {
		return cached, nil
	}

	if s.providers.Insights != nil {
		zones, err := s.providers.Insights.OpportunityZones(ctx, params)
		if err == nil && len(zones) > 0 {
			s.cache.Set(key, zones)
			return zones, nil
		}
		if err != nil {
			s.logger.Warn("opportunity zone provider failed", "provider", providerName(s.providers.Insights), "error", err)
		}
	}

	zones := syntheticZones(params)
	s.cache.Set(key, zones)
	return zones, nil
}

func (s *Service) findListing(ctx context.Context, propertyID string) (*listings.Listing, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", propertyID, listings.ErrNotFound)
	}

	listing, err := s.listings.Find(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", propertyID, err)
	}

	return listing, nil
}

// searchFilters maps provider search params onto database listing filters.
func searchFilters(params SearchParams) listings.Filters {
	var f listings.Filters

	if params.Location != "" {
		f.Location = &params.Location
	}
	if params.MinPrice > 0 {
		f.MinPrice = &params.MinPrice
	}
	if params.MaxPrice > 0 {
		f.MaxPrice = &params.MaxPrice
	}
	if params.Bedrooms > 0 {
		f.Bedrooms = &params.Bedrooms
	}
	if params.Bathrooms > 0 {
		f.Bathrooms = &params.Bathrooms
	}
	if params.PropertyType != "" {
		f.PropertyType = &params.PropertyType
	}
	f.Limit = params.Limit

	return f
}

// fromListing normalizes a database listing into the provider Property
// shape, filling the descriptive fields the database does not store.
func (s *Service) fromListing(row listings.Listing) Property {
	image := "/placeholder.svg?height=400&width=600"
	if row.ImageURL != nil && *row.ImageURL != "" {
		image = *row.ImageURL
	}

	daysOnMarket := row.DaysOnMarket
	if daysOnMarket <= 0 {
		rng := seededRand("days_on_market:" + row.ID.String())
		daysOnMarket = rng.Intn(60) + 1
	}

	return Property{
		ID:            row.ID.String(),
		Address:       row.Address,
		City:          row.City,
		State:         row.State,
		ZipCode:       row.ZipCode,
		Price:         row.Price,
		Bedrooms:      row.Bedrooms,
		Bathrooms:     row.Bathrooms,
		SquareFeet:    row.SquareFeet,
		YearBuilt:     row.YearBuilt,
		PropertyType:  row.PropertyType,
		ListingStatus: row.ListingStatus,
		Description:   "Beautiful property in a desirable neighborhood with modern amenities and convenient access to shopping and dining.",
		Features:      []string{"Central Air", "Garage", "Fireplace", "Updated Kitchen", "Hardwood Floors"},
		Images:        []string{image},
		DaysOnMarket:  daysOnMarket,
		ListingDate:   s.now().AddDate(0, 0, -daysOnMarket).Format(time.RFC3339),
		Source:        SourceInternal,
	}
}
