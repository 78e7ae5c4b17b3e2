package agents

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"propsight/internal/listings"
	"propsight/internal/realestate"
)

// PropertyData bundles everything the platform knows about one listing:
// the stored record plus live valuation, analysis, neighborhood, and
// market context.
type PropertyData struct {
	Property       *listings.Listing            `json:"property"`
	Valuation      *realestate.Valuation        `json:"valuation"`
	Analysis       *realestate.PropertyAnalysis `json:"analysis"`
	Neighborhood   *realestate.NeighborhoodInfo `json:"neighborhoodInfo"`
	MarketTrends   []realestate.MarketTrend     `json:"marketTrends"`
	MarketInsights *realestate.MarketInsight    `json:"marketInsights"`
}

// InvestmentOpportunities is the regional opportunity report: zone data,
// market insights, and the opportunity finder agent's narrative.
type InvestmentOpportunities struct {
	OpportunityZones    []realestate.OpportunityZone `json:"opportunityZones"`
	MarketInsights      *realestate.MarketInsight    `json:"marketInsights"`
	OpportunityAnalysis string                       `json:"opportunityAnalysis"`
}

// StrategyParams describes the investor profile a strategy is built for.
type StrategyParams struct {
	Region          string `json:"region"`
	Budget          int64  `json:"budget"`
	InvestmentGoals string `json:"investmentGoals"`
	TimeHorizon     string `json:"timeHorizon"`
	RiskTolerance   string `json:"riskTolerance"`
}

// Normalize fills unset profile fields with sensible defaults.
func (p *StrategyParams) Normalize() {
	if p.Budget <= 0 {
		p.Budget = 250000
	}
	if p.InvestmentGoals == "" {
		p.InvestmentGoals = "Balanced approach (cash flow and appreciation)"
	}
	if p.TimeHorizon == "" {
		p.TimeHorizon = "Medium-term (3-5 years)"
	}
	if p.RiskTolerance == "" {
		p.RiskTolerance = "Moderate"
	}
}

// InvestmentStrategy is the composed strategy report.
type InvestmentStrategy struct {
	MarketInsights     *realestate.MarketInsight    `json:"marketInsights"`
	OpportunityZones   []realestate.OpportunityZone `json:"opportunityZones"`
	InvestmentStrategy string                       `json:"investmentStrategy"`
}

// GetRealTimePropertyData assembles the full live picture for a stored
// listing.
func (r *Runner) GetRealTimePropertyData(ctx context.Context, propertyID string) (*PropertyData, error) {
	id, err := uuid.Parse(propertyID)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", propertyID, listings.ErrNotFound)
	}

	property, err := r.listings.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	valuation, err := r.market.PropertyValuation(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("property valuation: %w", err)
	}

	analysis, err := r.market.PropertyAnalysis(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("property analysis: %w", err)
	}

	neighborhood, err := r.market.NeighborhoodInfo(ctx, realestate.NeighborhoodParams{
		City:    property.City,
		State:   property.State,
		ZipCode: property.ZipCode,
	})
	if err != nil {
		return nil, fmt.Errorf("neighborhood info: %w", err)
	}

	trends, err := r.market.MarketTrends(ctx, realestate.TrendParams{
		Region: property.City,
		Months: 6,
	})
	if err != nil {
		return nil, fmt.Errorf("market trends: %w", err)
	}

	insights, err := r.market.MarketInsights(ctx, realestate.InsightParams{
		Region: property.City,
	})
	if err != nil {
		return nil, fmt.Errorf("market insights: %w", err)
	}

	return &PropertyData{
		Property:       property,
		Valuation:      valuation,
		Analysis:       analysis,
		Neighborhood:   neighborhood,
		MarketTrends:   trends,
		MarketInsights: insights,
	}, nil
}

// RunCMAAnalysis runs the comparative market analysis tool for a listing
// with the standard search radius and comp count.
func (r *Runner) RunCMAAnalysis(ctx context.Context, propertyID string) (any, error) {
	tool, err := r.tools.Resolve("comparative-market-analysis")
	if err != nil {
		return nil, err
	}

	return tool.Call(ctx, map[string]any{
		"property_id": propertyID,
		"radius":      1.0,
		"max_comps":   5.0,
	})
}

// GetInvestmentOpportunities builds the regional opportunity report. The
// agent narrative degrades to a short notice when no model is available;
// the data sections always come through.
func (r *Runner) GetInvestmentOpportunities(ctx context.Context, region, regionType string) (*InvestmentOpportunities, error) {
	params := realestate.InsightParams{Region: region, RegionType: regionType}

	zones, err := r.market.OpportunityZones(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("opportunity zones: %w", err)
	}

	insights, err := r.market.MarketInsights(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("market insights: %w", err)
	}

	analysis, err := r.Run(ctx, "opportunity-finder",
		fmt.Sprintf("Analyze investment opportunities in %s. Identify the best neighborhoods, property types, and investment strategies based on current market conditions.", region))
	if err != nil {
		analysis = "AI analysis currently unavailable. Please try again later."
	}

	return &InvestmentOpportunities{
		OpportunityZones:    zones,
		MarketInsights:      insights,
		OpportunityAnalysis: analysis,
	}, nil
}

// GenerateInvestmentStrategy composes a tailored strategy report for an
// investor profile. When the strategist agent cannot run, a canned strategy
// document keeps the report complete.
func (r *Runner) GenerateInvestmentStrategy(ctx context.Context, params StrategyParams) (*InvestmentStrategy, error) {
	params.Normalize()

	insights, err := r.market.MarketInsights(ctx, realestate.InsightParams{Region: params.Region})
	if err != nil {
		return nil, fmt.Errorf("market insights: %w", err)
	}

	zones, err := r.market.OpportunityZones(ctx, realestate.InsightParams{Region: params.Region})
	if err != nil {
		return nil, fmt.Errorf("opportunity zones: %w", err)
	}
	if len(zones) > 3 {
		zones = zones[:3]
	}

	strategy, err := r.Run(ctx, "investment-strategist", strategyPrompt(params))
	if err != nil {
		strategy = fallbackStrategy(params)
	}

	return &InvestmentStrategy{
		MarketInsights:     insights,
		OpportunityZones:   zones,
		InvestmentStrategy: strategy,
	}, nil
}

func strategyPrompt(params StrategyParams) string {
	return fmt.Sprintf(`Generate a comprehensive investment strategy for a real estate investor with the following parameters:
- Region: %s
- Budget: $%s
- Investment Goals: %s
- Time Horizon: %s
- Risk Tolerance: %s

Provide specific recommendations on:
1. Property types to target
2. Neighborhoods to focus on
3. Acquisition strategy
4. Financing approach
5. Exit strategy
6. Risk mitigation measures
7. Timeline for implementation

Include specific, actionable steps the investor should take.`,
		params.Region, formatAmount(params.Budget), params.InvestmentGoals,
		params.TimeHorizon, params.RiskTolerance)
}

func fallbackStrategy(params StrategyParams) string {
	return fmt.Sprintf(`# Investment Strategy for %s

## Market Overview
Based on our analysis, %s shows potential for real estate investment with varying opportunities depending on your goals.

## Recommended Strategy
Given your budget of $%s, %s goals, %s horizon, and %s risk tolerance:

### Property Types to Target
- Single-family homes in growing neighborhoods
- Small multi-family properties (2-4 units)
- Condos in central locations with good rental demand

### Acquisition Strategy
- Focus on properties priced 10-15%% below market value
- Target properties requiring minor cosmetic renovations
- Consider off-market opportunities through networking

### Financing Approach
- Conventional financing with 20-25%% down payment
- Consider portfolio loans for multiple properties
- Maintain cash reserves of 6 months per property

### Exit Strategy
- Hold for long-term appreciation and cash flow
- Refinance after 3-5 years to extract equity
- Consider 1031 exchanges for portfolio growth

### Risk Mitigation
- Diversify across different neighborhoods
- Maintain adequate insurance coverage
- Build relationships with reliable contractors

This strategy is based on current market conditions and should be reviewed periodically as the market evolves.`,
		params.Region, params.Region, formatAmount(params.Budget),
		params.InvestmentGoals, params.TimeHorizon, params.RiskTolerance)
}

// formatAmount renders a dollar amount with thousands separators.
func formatAmount(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
