package tools

import (
	"context"
	"fmt"

	"propsight/internal/realestate"
)

func affordabilityRating(index int) string {
	switch {
	case index > 80:
		return "Highly Affordable"
	case index > 60:
		return "Affordable"
	case index > 40:
		return "Moderately Affordable"
	default:
		return "Less Affordable"
	}
}

func marketHeatRating(index int) string {
	switch {
	case index > 80:
		return "Very Hot"
	case index > 60:
		return "Hot"
	case index > 40:
		return "Balanced"
	default:
		return "Cool"
	}
}

func investmentPotential(mediumTermPct float64) string {
	switch {
	case mediumTermPct > 5:
		return "Excellent"
	case mediumTermPct > 3:
		return "Good"
	case mediumTermPct > 1:
		return "Moderate"
	default:
		return "Limited"
	}
}

func marketInsightsTool(agg Aggregator) *Tool {
	return &Tool{
		Name:        "market-insights",
		Description: "Get detailed market insights for a specific region",
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
			insights, err := agg.MarketInsights(ctx, realestate.InsightParams{
				Region:     argString(args, "region"),
				RegionType: argString(args, "region_type"),
			})
			if err != nil {
				return nil, err
			}

			metrics := insights.Metrics
			forecast := insights.Forecast

			priceInsight := "Market is stable - focus on property-specific value rather than market timing"
			if metrics.PriceChangePct > 5 {
				priceInsight = "Market is appreciating rapidly - consider buying sooner rather than later"
			} else if metrics.PriceChangePct < 0 {
				priceInsight = "Market is experiencing a correction - potential buying opportunities may emerge"
			}

			paceInsight := "Average market pace - standard due diligence timeframes should be sufficient"
			if metrics.AvgDaysOnMarket < 20 {
				paceInsight = "Properties are selling quickly - be prepared to act fast on good deals"
			} else if metrics.AvgDaysOnMarket > 60 {
				paceInsight = "Properties are sitting on market longer - opportunity for price negotiations"
			}

			yieldInsight := "Moderate rental yields - balance cash flow and appreciation in investment strategy"
			if metrics.RentYield > 6 {
				yieldInsight = "Strong rental yields indicate good cash flow potential for investors"
			} else if metrics.RentYield > 0 && metrics.RentYield < 4 {
				yieldInsight = "Low rental yields may require focus on appreciation rather than cash flow"
			}

			forecastInsight := "Moderate appreciation forecast - balanced investment approach recommended"
			if forecast.MediumTerm.PriceChangePct > 10 {
				forecastInsight = "Strong appreciation forecast - consider buy-and-hold strategy"
			} else if forecast.MediumTerm.PriceChangePct < 2 {
				forecastInsight = "Limited appreciation forecast - focus on immediate cash flow or value-add opportunities"
			}

			return map[string]any{
				"region":      insights.Region,
				"region_type": insights.RegionType,
				"current_metrics": map[string]any{
					"median_price":       fmt.Sprintf("$%d", metrics.MedianPrice),
					"price_change_pct":   fmt.Sprintf("%.1f%%", metrics.PriceChangePct),
					"avg_days_on_market": metrics.AvgDaysOnMarket,
					"inventory_count":    metrics.InventoryCount,
					"median_rent_price":  fmt.Sprintf("$%d", metrics.MedianRentPrice),
					"rent_yield":         fmt.Sprintf("%.1f%%", metrics.RentYield),
				},
				"market_conditions": map[string]any{
					"affordability_rating": affordabilityRating(metrics.AffordabilityIndex),
					"market_heat_rating":   marketHeatRating(metrics.MarketHeatIndex),
					"investment_potential": investmentPotential(forecast.MediumTerm.PriceChangePct),
					"price_to_rent_ratio":  fmt.Sprintf("%.1f", metrics.PriceToRentRatio),
				},
				"forecast": map[string]any{
					"short_term": map[string]any{
						"price_change_pct": fmt.Sprintf("%.1f%%", forecast.ShortTerm.PriceChangePct),
						"confidence":       fmt.Sprintf("%d%%", forecast.ShortTerm.Confidence),
						"timeframe":        "3-6 months",
					},
					"medium_term": map[string]any{
						"price_change_pct": fmt.Sprintf("%.1f%%", forecast.MediumTerm.PriceChangePct),
						"confidence":       fmt.Sprintf("%d%%", forecast.MediumTerm.Confidence),
						"timeframe":        "1-2 years",
					},
					"long_term": map[string]any{
						"price_change_pct": fmt.Sprintf("%.1f%%", forecast.LongTerm.PriceChangePct),
						"confidence":       fmt.Sprintf("%d%%", forecast.LongTerm.Confidence),
						"timeframe":        "3-5 years",
					},
				},
				"actionable_insights": []string{
					priceInsight,
					paceInsight,
					yieldInsight,
					forecastInsight,
				},
			}, nil
		},
	}
}
