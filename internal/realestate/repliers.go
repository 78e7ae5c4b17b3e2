package realestate

import (
	"context"
	"fmt"
	"net/url"
)

// RepliersClient is the primary market data provider. It is the only
// provider that serves insights, analysis, and opportunity zone data.
type RepliersClient struct {
	client *apiClient
	region string
}

// NewRepliers creates a Repliers API client.
func NewRepliers(baseURL, apiKey, region string) *RepliersClient {
	return &RepliersClient{
		client: newAPIClient(baseURL, apiKey),
		region: region,
	}
}

func (r *RepliersClient) name() Source {
	return SourceRepliers
}

func (r *RepliersClient) withRegion(values url.Values) url.Values {
	values.Set("region", r.region)
	return values
}

// SearchProperties queries the Repliers listing search endpoint.
func (r *RepliersClient) SearchProperties(ctx context.Context, params SearchParams) ([]Property, error) {
	var resp struct {
		Listings []Property `json:"listings"`
	}

	if err := r.client.getJSON(ctx, "/listings/search", r.withRegion(searchValues(params)), &resp); err != nil {
		return nil, fmt.Errorf("repliers search: %w", err)
	}

	return tagProperties(resp.Listings, SourceRepliers), nil
}

// MarketTrends queries regional trend statistics.
func (r *RepliersClient) MarketTrends(ctx context.Context, params TrendParams) ([]MarketTrend, error) {
	var resp struct {
		Trends []MarketTrend `json:"trends"`
	}

	if err := r.client.getJSON(ctx, "/market/trends", r.withRegion(trendValues(params)), &resp); err != nil {
		return nil, fmt.Errorf("repliers trends: %w", err)
	}

	return tagTrends(resp.Trends, SourceRepliers), nil
}

// PropertyValuation queries the valuation endpoint for a property.
func (r *RepliersClient) PropertyValuation(ctx context.Context, propertyID, address, zipCode string) (*Valuation, error) {
	var valuation Valuation

	path := fmt.Sprintf("/properties/%s/valuation", url.PathEscape(propertyID))
	if err := r.client.getJSON(ctx, path, r.withRegion(url.Values{}), &valuation); err != nil {
		return nil, fmt.Errorf("repliers valuation: %w", err)
	}

	valuation.PropertyID = propertyID
	valuation.Source = SourceRepliers
	return &valuation, nil
}

// NeighborhoodInfo queries the neighborhood profile endpoint.
func (r *RepliersClient) NeighborhoodInfo(ctx context.Context, params NeighborhoodParams) (*NeighborhoodInfo, error) {
	values := url.Values{}
	values.Set("city", params.City)
	values.Set("state", params.State)
	if params.ZipCode != "" {
		values.Set("zip_code", params.ZipCode)
	}

	var info NeighborhoodInfo
	if err := r.client.getJSON(ctx, "/neighborhoods", r.withRegion(values), &info); err != nil {
		return nil, fmt.Errorf("repliers neighborhood: %w", err)
	}

	info.Source = SourceRepliers
	return &info, nil
}

// MarketInsights queries the regional insight endpoint.
func (r *RepliersClient) MarketInsights(ctx context.Context, params InsightParams) (*MarketInsight, error) {
	values := url.Values{}
	values.Set("region", params.Region)
	if params.RegionType != "" {
		values.Set("region_type", params.RegionType)
	}

	var insight MarketInsight
	if err := r.client.getJSON(ctx, "/market/insights", r.withRegion(values), &insight); err != nil {
		return nil, fmt.Errorf("repliers insights: %w", err)
	}

	insight.Source = SourceRepliers
	return &insight, nil
}

// PropertyAnalysis queries the property scoring endpoint.
func (r *RepliersClient) PropertyAnalysis(ctx context.Context, propertyID string) (*PropertyAnalysis, error) {
	var analysis PropertyAnalysis

	path := fmt.Sprintf("/properties/%s/analysis", url.PathEscape(propertyID))
	if err := r.client.getJSON(ctx, path, r.withRegion(url.Values{}), &analysis); err != nil {
		return nil, fmt.Errorf("repliers analysis: %w", err)
	}

	analysis.PropertyID = propertyID
	analysis.Source = SourceRepliers
	return &analysis, nil
}

// OpportunityZones queries the opportunity zone endpoint.
func (r *RepliersClient) OpportunityZones(ctx context.Context, params InsightParams) ([]OpportunityZone, error) {
	values := url.Values{}
	values.Set("region", params.Region)
	if params.RegionType != "" {
		values.Set("region_type", params.RegionType)
	}

	var resp struct {
		OpportunityZones []OpportunityZone `json:"opportunity_zones"`
	}
	if err := r.client.getJSON(ctx, "/market/opportunity-zones", r.withRegion(values), &resp); err != nil {
		return nil, fmt.Errorf("repliers opportunity zones: %w", err)
	}

	for i := range resp.OpportunityZones {
		resp.OpportunityZones[i].Source = SourceRepliers
	}
	return resp.OpportunityZones, nil
}
