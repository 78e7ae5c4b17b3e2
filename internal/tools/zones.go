package tools

import (
	"context"
	"fmt"
	"sort"

	"propsight/internal/realestate"
)

func opportunityZoneAnalysisTool(agg Aggregator) *Tool {
	return &Tool{
		Name:        "opportunity-zone-analysis",
		Description: "Identify and analyze real estate investment opportunity zones in a region",
		Params: map[string]ParamDef{
			"region": {
				Type:        TypeString,
				Description: "The region to analyze (city, state, or zip code)",
				Required:    true,
			},
			"region_type": {
				Type:        TypeString,
				Description: "The type of region being analyzed",
				Enum:        []string{"city", "zip", "state", "neighborhood"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			region := argString(args, "region")
			regionType := argString(args, "region_type")

			zones, err := agg.OpportunityZones(ctx, realestate.InsightParams{
				Region:     region,
				RegionType: regionType,
			})
			if err != nil {
				return nil, err
			}

			sorted := make([]realestate.OpportunityZone, len(zones))
			copy(sorted, zones)
			sort.SliceStable(sorted, func(i, j int) bool {
				return sorted[i].OpportunityScore > sorted[j].OpportunityScore
			})

			var actionable []string
			if len(sorted) > 0 {
				top := sorted[0]
				actionable = append(actionable, fmt.Sprintf(
					"%s has the highest opportunity score (%d) - prioritize this area for investment",
					top.Region, top.OpportunityScore,
				))

				if top.Metrics.RentalDemand > 85 {
					actionable = append(actionable, fmt.Sprintf(
						"%s has exceptionally high rental demand - rental properties should perform well",
						top.Region,
					))
				}
				if top.Metrics.PriceChangePct > 5 {
					actionable = append(actionable, fmt.Sprintf(
						"%s is experiencing rapid price appreciation (%.1f%%) - consider buying sooner rather than later",
						top.Region, top.Metrics.PriceChangePct,
					))
				}
				if top.Metrics.NewDevelopment > 10 {
					actionable = append(actionable, fmt.Sprintf(
						"%s has significant new development activity - indicates strong growth potential",
						top.Region,
					))
				}
				if top.Metrics.JobGrowth > 3 {
					actionable = append(actionable, fmt.Sprintf(
						"%s has strong job growth (%.1f%%) - positive indicator for long-term demand",
						top.Region, top.Metrics.JobGrowth,
					))
				}
			}

			zoneSummaries := make([]map[string]any, 0, len(sorted))
			for _, zone := range sorted {
				zoneSummaries = append(zoneSummaries, map[string]any{
					"name":              zone.Region,
					"opportunity_score": zone.OpportunityScore,
					"key_metrics": map[string]any{
						"median_price":       fmt.Sprintf("$%d", zone.Metrics.MedianPrice),
						"price_change_pct":   fmt.Sprintf("%.1f%%", zone.Metrics.PriceChangePct),
						"avg_days_on_market": zone.Metrics.AvgDaysOnMarket,
						"rental_demand":      fmt.Sprintf("%d/100", zone.Metrics.RentalDemand),
						"job_growth":         fmt.Sprintf("%.1f%%", zone.Metrics.JobGrowth),
						"population_growth":  fmt.Sprintf("%.1f%%", zone.Metrics.PopulationGrowth),
					},
					"recommended_property_types": zone.RecommendedPropertyTypes,
					"insights":                   zone.Insights,
					"risk_factors":               zone.RiskFactors,
				})
			}

			if regionType == "" {
				regionType = "city"
			}

			return map[string]any{
				"region":              region,
				"region_type":         regionType,
				"opportunity_zones":   zoneSummaries,
				"actionable_insights": actionable,
				"investment_strategy": map[string]any{
					"short_term":  "Focus on properties with immediate cash flow potential in top opportunity zones",
					"medium_term": "Balance between cash flow and appreciation potential, with emphasis on areas showing strong job and population growth",
					"long_term":   "Prioritize areas with significant development activity and infrastructure improvements for maximum appreciation",
				},
			}, nil
		},
	}
}
