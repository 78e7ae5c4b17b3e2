package tools

import (
	"context"
	"fmt"
	"math"

	"propsight/internal/listings"
	"propsight/internal/realestate"

	"github.com/google/uuid"
)

const (
	undervaluedConclusion  = "The property appears to be undervalued compared to similar properties in the area."
	overvaluedConclusion   = "The property appears to be overvalued compared to similar properties in the area."
	fairlyPricedConclusion = "The property appears to be fairly priced compared to similar properties in the area."
)

func cmaTool(agg Aggregator, listingStore listings.System) *Tool {
	return &Tool{
		Name:        "comparative-market-analysis",
		Description: "Perform a comparative market analysis for a property",
		Params: map[string]ParamDef{
			"property_id": {
				Type:        TypeString,
				Description: "The ID of the property to analyze",
				Required:    true,
			},
			"radius": {
				Type:        TypeNumber,
				Description: "The radius in miles to search for comparable properties",
				Default:     1.0,
			},
			"max_comps": {
				Type:        TypeNumber,
				Description: "The maximum number of comparable properties to return",
				Default:     5.0,
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			propertyID := argString(args, "property_id")
			maxComps := argInt(args, "max_comps")

			id, err := uuid.Parse(propertyID)
			if err != nil {
				return nil, fmt.Errorf("property not found: %s", propertyID)
			}

			subject, err := listingStore.Find(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("property not found: %w", err)
			}
			if subject.SquareFeet <= 0 {
				return nil, fmt.Errorf("property %s has no square footage on record", propertyID)
			}

			// One extra result covers the subject appearing in its own
			// comparable search.
			candidates, err := agg.SearchProperties(ctx, realestate.SearchParams{
				Location:     fmt.Sprintf("%s, %s", subject.City, subject.State),
				MinPrice:     int64(float64(subject.Price) * 0.8),
				MaxPrice:     int64(float64(subject.Price) * 1.2),
				Bedrooms:     subject.Bedrooms,
				Bathrooms:    subject.Bathrooms,
				PropertyType: subject.PropertyType,
				Limit:        maxComps + 1,
			})
			if err != nil {
				return nil, err
			}

			comps := make([]map[string]any, 0, maxComps)
			var sumPrice, sumPricePerSqFt, sumDaysOnMarket float64

			for _, comp := range candidates {
				if comp.ID == propertyID || comp.SquareFeet <= 0 {
					continue
				}
				if len(comps) >= maxComps {
					break
				}

				pricePerSqFt := int64(math.Round(float64(comp.Price) / float64(comp.SquareFeet)))

				comps = append(comps, map[string]any{
					"id":             comp.ID,
					"address":        comp.Address,
					"price":          comp.Price,
					"price_per_sqft": pricePerSqFt,
					"bedrooms":       comp.Bedrooms,
					"bathrooms":      comp.Bathrooms,
					"square_feet":    comp.SquareFeet,
					"year_built":     comp.YearBuilt,
					"days_on_market": comp.DaysOnMarket,
					"distance":       "< 1 mile",
				})

				sumPrice += float64(comp.Price)
				sumPricePerSqFt += float64(pricePerSqFt)
				sumDaysOnMarket += float64(comp.DaysOnMarket)
			}

			if len(comps) == 0 {
				return nil, fmt.Errorf("no comparable properties found for %s", propertyID)
			}

			count := float64(len(comps))
			avgPrice := sumPrice / count
			avgPricePerSqFt := sumPricePerSqFt / count
			avgDaysOnMarket := sumDaysOnMarket / count

			subjectPricePerSqFt := int64(math.Round(float64(subject.Price) / float64(subject.SquareFeet)))
			estimatedValue := int64(math.Round(avgPricePerSqFt * float64(subject.SquareFeet)))
			priceDifference := subject.Price - estimatedValue
			priceDifferencePct := int(math.Round(float64(priceDifference) / float64(estimatedValue) * 100))

			conclusion := fairlyPricedConclusion
			if priceDifferencePct <= -5 {
				conclusion = undervaluedConclusion
			} else if priceDifferencePct >= 5 {
				conclusion = overvaluedConclusion
			}

			return map[string]any{
				"subject_property": map[string]any{
					"id":             subject.ID.String(),
					"address":        subject.Address,
					"price":          subject.Price,
					"price_per_sqft": subjectPricePerSqFt,
					"bedrooms":       subject.Bedrooms,
					"bathrooms":      subject.Bathrooms,
					"square_feet":    subject.SquareFeet,
					"year_built":     subject.YearBuilt,
				},
				"comparable_properties": comps,
				"analysis": map[string]any{
					"avg_price":            avgPrice,
					"avg_price_per_sqft":   avgPricePerSqFt,
					"avg_days_on_market":   avgDaysOnMarket,
					"estimated_value_sqft": estimatedValue,
					"price_difference":     priceDifference,
					"price_difference_pct": priceDifferencePct,
					"conclusion":           conclusion,
				},
			}, nil
		},
	}
}
