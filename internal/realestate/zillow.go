package realestate

import (
	"context"
	"fmt"
	"net/url"
)

// ZillowClient serves property search and address-based valuations.
type ZillowClient struct {
	client *apiClient
}

// NewZillow creates a Zillow API client.
func NewZillow(baseURL, apiKey string) *ZillowClient {
	return &ZillowClient{
		client: newAPIClient(baseURL, apiKey),
	}
}

func (z *ZillowClient) name() Source {
	return SourceZillow
}

// SearchProperties queries the Zillow listing endpoint.
func (z *ZillowClient) SearchProperties(ctx context.Context, params SearchParams) ([]Property, error) {
	var resp struct {
		Listings []Property `json:"listings"`
	}

	if err := z.client.getJSON(ctx, "/listings", searchValues(params), &resp); err != nil {
		return nil, fmt.Errorf("zillow search: %w", err)
	}

	return tagProperties(resp.Listings, SourceZillow), nil
}

// PropertyValuation queries the estimate endpoint by address.
func (z *ZillowClient) PropertyValuation(ctx context.Context, propertyID, address, zipCode string) (*Valuation, error) {
	values := url.Values{}
	values.Set("address", address)
	values.Set("zip_code", zipCode)

	var valuation Valuation
	if err := z.client.getJSON(ctx, "/estimates", values, &valuation); err != nil {
		return nil, fmt.Errorf("zillow valuation: %w", err)
	}

	valuation.PropertyID = propertyID
	valuation.Source = SourceZillow
	return &valuation, nil
}
