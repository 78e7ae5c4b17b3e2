package tools

import (
	"context"
	"errors"
	"fmt"

	"propsight/internal/llm"
	"propsight/internal/listings"
	"propsight/internal/realestate"
	"propsight/internal/saved"
)

// ErrToolNotFound indicates a requested tool is not registered.
var ErrToolNotFound = errors.New("tool not found")

// Aggregator is the market data surface the tools query. It is implemented
// by the realestate Service.
type Aggregator interface {
	SearchProperties(ctx context.Context, params realestate.SearchParams) ([]realestate.Property, error)
	MarketTrends(ctx context.Context, params realestate.TrendParams) ([]realestate.MarketTrend, error)
	PropertyValuation(ctx context.Context, propertyID string) (*realestate.Valuation, error)
	NeighborhoodInfo(ctx context.Context, params realestate.NeighborhoodParams) (*realestate.NeighborhoodInfo, error)
	MarketInsights(ctx context.Context, params realestate.InsightParams) (*realestate.MarketInsight, error)
	PropertyAnalysis(ctx context.Context, propertyID string) (*realestate.PropertyAnalysis, error)
	OpportunityZones(ctx context.Context, params realestate.InsightParams) ([]realestate.OpportunityZone, error)
}

// Registry holds the full tool set by name.
type Registry struct {
	tools map[string]*Tool
}

// NewRegistry builds the standard tool set over the given data sources.
func NewRegistry(agg Aggregator, listingStore listings.System, savedStore saved.System) *Registry {
	r := &Registry{tools: make(map[string]*Tool)}

	r.register(investmentCalculatorTool())
	r.register(propertyDatabaseTool(agg, listingStore, savedStore))
	r.register(realEstateSearchTool(agg))
	r.register(cmaTool(agg, listingStore))
	r.register(marketInsightsTool(agg))
	r.register(propertyInvestmentAnalysisTool(agg))
	r.register(opportunityZoneAnalysisTool(agg))

	return r
}

func (r *Registry) register(t *Tool) {
	r.tools[t.Name] = t
}

// Resolve returns the named tool.
func (r *Registry) Resolve(name string) (*Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t, nil
}

// Schemas returns provider schemas for the named tools. Unknown names are
// skipped.
func (r *Registry) Schemas(names []string) []llm.ToolSchema {
	schemas := make([]llm.ToolSchema, 0, len(names))
	for _, name := range names {
		if t, ok := r.tools[name]; ok {
			schemas = append(schemas, t.Schema())
		}
	}
	return schemas
}

// Names lists every registered tool name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}
