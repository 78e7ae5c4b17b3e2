package realestate

import (
	"context"
	"fmt"
	"net/url"
)

// RedfinClient serves property search, market trends, and neighborhood
// profiles.
type RedfinClient struct {
	client *apiClient
}

// NewRedfin creates a Redfin API client.
func NewRedfin(baseURL, apiKey string) *RedfinClient {
	return &RedfinClient{
		client: newAPIClient(baseURL, apiKey),
	}
}

func (r *RedfinClient) name() Source {
	return SourceRedfin
}

// SearchProperties queries the Redfin property search endpoint.
func (r *RedfinClient) SearchProperties(ctx context.Context, params SearchParams) ([]Property, error) {
	var resp struct {
		Properties []Property `json:"properties"`
	}

	if err := r.client.getJSON(ctx, "/properties/search", searchValues(params), &resp); err != nil {
		return nil, fmt.Errorf("redfin search: %w", err)
	}

	return tagProperties(resp.Properties, SourceRedfin), nil
}

// MarketTrends queries regional trend statistics.
func (r *RedfinClient) MarketTrends(ctx context.Context, params TrendParams) ([]MarketTrend, error) {
	var resp struct {
		Trends []MarketTrend `json:"trends"`
	}

	if err := r.client.getJSON(ctx, "/market/trends", trendValues(params), &resp); err != nil {
		return nil, fmt.Errorf("redfin trends: %w", err)
	}

	return tagTrends(resp.Trends, SourceRedfin), nil
}

// NeighborhoodInfo queries the neighborhood profile endpoint.
func (r *RedfinClient) NeighborhoodInfo(ctx context.Context, params NeighborhoodParams) (*NeighborhoodInfo, error) {
	values := url.Values{}
	values.Set("city", params.City)
	values.Set("state", params.State)
	if params.ZipCode != "" {
		values.Set("zip_code", params.ZipCode)
	}

	var info NeighborhoodInfo
	if err := r.client.getJSON(ctx, "/neighborhoods", values, &info); err != nil {
		return nil, fmt.Errorf("redfin neighborhood: %w", err)
	}

	info.Source = SourceRedfin
	return &info, nil
}
