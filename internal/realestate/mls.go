package realestate

import (
	"context"
	"fmt"
)

// MLSClient serves property search only. It is the last resort in the
// provider chain.
type MLSClient struct {
	client *apiClient
}

// NewMLS creates an MLS grid API client.
func NewMLS(baseURL, apiKey string) *MLSClient {
	return &MLSClient{
		client: newAPIClient(baseURL, apiKey),
	}
}

func (m *MLSClient) name() Source {
	return SourceMLS
}

// SearchProperties queries the MLS property endpoint.
func (m *MLSClient) SearchProperties(ctx context.Context, params SearchParams) ([]Property, error) {
	var resp struct {
		Properties []Property `json:"properties"`
	}

	if err := m.client.getJSON(ctx, "/properties", searchValues(params), &resp); err != nil {
		return nil, fmt.Errorf("mls search: %w", err)
	}

	return tagProperties(resp.Properties, SourceMLS), nil
}
