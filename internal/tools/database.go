package tools

import (
	"context"
	"fmt"

	"propsight/internal/listings"
	"propsight/internal/realestate"
	"propsight/internal/saved"

	"github.com/google/uuid"
)

func propertyDatabaseTool(agg Aggregator, listingStore listings.System, savedStore saved.System) *Tool {
	return &Tool{
		Name:        "property-database",
		Description: "Query the database for property information and market trends",
		Params: map[string]ParamDef{
			"query_type": {
				Type:        TypeString,
				Description: "The kind of records to query",
				Required:    true,
				Enum:        []string{"property", "market-trends", "deals", "saved"},
			},
			"location": {
				Type:        TypeString,
				Description: "Location filter (city, state, or zip)",
			},
			"min_price": {
				Type:        TypeNumber,
				Description: "Minimum listing price",
			},
			"max_price": {
				Type:        TypeNumber,
				Description: "Maximum listing price",
			},
			"bedrooms": {
				Type:        TypeNumber,
				Description: "Minimum number of bedrooms",
			},
			"bathrooms": {
				Type:        TypeNumber,
				Description: "Minimum number of bathrooms",
			},
			"property_type": {
				Type:        TypeString,
				Description: "Property type filter",
			},
			"deal_score": {
				Type:        TypeNumber,
				Description: "Minimum deal score for deal queries",
			},
			"user_id": {
				Type:        TypeString,
				Description: "User ID for saved property queries",
			},
			"limit": {
				Type:        TypeNumber,
				Description: "Maximum number of results",
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			limit := argInt(args, "limit")
			if limit <= 0 {
				limit = 10
			}

			switch argString(args, "query_type") {
			case "property":
				return agg.SearchProperties(ctx, realestate.SearchParams{
					Location:     argString(args, "location"),
					MinPrice:     int64(argFloat(args, "min_price")),
					MaxPrice:     int64(argFloat(args, "max_price")),
					Bedrooms:     argInt(args, "bedrooms"),
					Bathrooms:    argFloat(args, "bathrooms"),
					PropertyType: argString(args, "property_type"),
					Limit:        limit,
				})

			case "market-trends":
				months := argInt(args, "limit")
				if months <= 0 {
					months = 12
				}
				return agg.MarketTrends(ctx, realestate.TrendParams{
					Region: argString(args, "location"),
					Months: months,
				})

			case "deals":
				var minScore *int
				if score := argInt(args, "deal_score"); score > 0 {
					minScore = &score
				}
				return listingStore.Deals(ctx, minScore, limit)

			case "saved":
				userID, err := uuid.Parse(argString(args, "user_id"))
				if err != nil {
					return nil, fmt.Errorf("user_id is required for saved property queries")
				}
				return savedStore.List(ctx, userID, limit)

			default:
				return nil, fmt.Errorf("unknown query type")
			}
		},
	}
}
