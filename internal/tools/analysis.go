package tools

import (
	"context"
	"fmt"
)

func propertyInvestmentAnalysisTool(agg Aggregator) *Tool {
	return &Tool{
		Name:        "property-investment-analysis",
		Description: "Get detailed investment analysis for a specific property",
		Params: map[string]ParamDef{
			"property_id": {
				Type:        TypeString,
				Description: "The ID of the property to analyze",
				Required:    true,
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			analysis, err := agg.PropertyAnalysis(ctx, argString(args, "property_id"))
			if err != nil {
				return nil, err
			}

			var actionable []string

			if analysis.ValuationScore > 85 {
				actionable = append(actionable, "Property appears to be undervalued - consider making an offer at or near asking price")
			} else if analysis.ValuationScore < 70 {
				actionable = append(actionable, "Property may be overvalued - consider negotiating price or looking for alternative properties")
			}

			if analysis.RentalScore > 85 {
				actionable = append(actionable, "Excellent rental potential - property would make a strong rental investment")
			}

			if analysis.CashFlowScore > 85 {
				actionable = append(actionable, "Strong cash flow potential - property should generate positive cash flow from day one")
			} else if analysis.CashFlowScore < 70 {
				actionable = append(actionable, "Limited cash flow potential - may require additional capital or rent increases to achieve positive cash flow")
			}

			if analysis.AppreciationScore > 85 {
				actionable = append(actionable, "High appreciation potential - property located in area with strong growth indicators")
			}

			if analysis.RiskScore > 80 {
				actionable = append(actionable, "Higher risk profile - consider additional due diligence or risk mitigation strategies")
			} else if analysis.RiskScore < 50 {
				actionable = append(actionable, "Low risk profile - property represents a relatively safe investment")
			}

			comps := make([]map[string]any, 0, len(analysis.ComparableProperties))
			for _, comp := range analysis.ComparableProperties {
				comps = append(comps, map[string]any{
					"address":        comp.Address,
					"price":          fmt.Sprintf("$%d", comp.Price),
					"price_per_sqft": fmt.Sprintf("$%d/sqft", comp.PricePerSqFt),
					"bed_bath":       fmt.Sprintf("%dbd/%.1fba", comp.Bedrooms, comp.Bathrooms),
					"square_feet":    fmt.Sprintf("%d sqft", comp.SquareFeet),
					"year_built":     comp.YearBuilt,
					"distance":       fmt.Sprintf("%.1f miles", comp.Distance),
					"similarity":     fmt.Sprintf("%d%%", comp.Similarity),
				})
			}

			metrics := analysis.FinancialMetrics

			return map[string]any{
				"property_id":   analysis.PropertyID,
				"overall_score": analysis.OverallScore,
				"score_breakdown": map[string]any{
					"valuation":    analysis.ValuationScore,
					"investment":   analysis.InvestmentScore,
					"rental":       analysis.RentalScore,
					"appreciation": analysis.AppreciationScore,
					"cash_flow":    analysis.CashFlowScore,
					"risk":         analysis.RiskScore,
				},
				"financial_metrics": map[string]any{
					"estimated_value":      fmt.Sprintf("$%d", metrics.EstimatedValue),
					"estimated_rent":       fmt.Sprintf("$%d/month", metrics.EstimatedRent),
					"cap_rate":             fmt.Sprintf("%.1f%%", metrics.CapRate),
					"cash_on_cash_return":  fmt.Sprintf("%.1f%%", metrics.CashOnCashReturn),
					"net_operating_income": fmt.Sprintf("$%d/year", metrics.NetOperatingIncome),
					"break_even_ratio":     metrics.BreakEvenRatio,
				},
				"insights":                   analysis.Insights,
				"recommendations":            analysis.Recommendations,
				"actionable_recommendations": actionable,
				"comparable_properties":      comps,
			}, nil
		},
	}
}
