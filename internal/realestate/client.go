package realestate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultClientTimeout = 30 * time.Second

// apiClient is the shared HTTP plumbing for provider clients: bearer auth,
// query encoding, and JSON decoding.
type apiClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newAPIClient(baseURL, apiKey string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultClientTimeout,
		},
	}
}

func (c *apiClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("provider API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// searchValues encodes SearchParams as query parameters, omitting zero
// values.
func searchValues(p SearchParams) url.Values {
	values := url.Values{}

	if p.Location != "" {
		values.Set("location", p.Location)
	}
	if p.MinPrice > 0 {
		values.Set("min_price", strconv.FormatInt(p.MinPrice, 10))
	}
	if p.MaxPrice > 0 {
		values.Set("max_price", strconv.FormatInt(p.MaxPrice, 10))
	}
	if p.Bedrooms > 0 {
		values.Set("bedrooms", strconv.Itoa(p.Bedrooms))
	}
	if p.Bathrooms > 0 {
		values.Set("bathrooms", strconv.FormatFloat(p.Bathrooms, 'f', -1, 64))
	}
	if p.PropertyType != "" {
		values.Set("property_type", p.PropertyType)
	}

	limit := p.Limit
	if limit <= 0 {
		limit = 10
	}
	values.Set("limit", strconv.Itoa(limit))

	return values
}

// trendValues encodes TrendParams as query parameters.
func trendValues(p TrendParams) url.Values {
	values := url.Values{}

	values.Set("region", p.Region)
	if p.RegionType != "" {
		values.Set("region_type", p.RegionType)
	}

	months := p.Months
	if months <= 0 {
		months = 12
	}
	values.Set("months", strconv.Itoa(months))

	return values
}

func tagProperties(items []Property, source Source) []Property {
	for i := range items {
		items[i].Source = source
	}
	return items
}

func tagTrends(items []MarketTrend, source Source) []MarketTrend {
	for i := range items {
		items[i].Source = source
	}
	return items
}
