// Package realestate aggregates property market data from external
// providers with database and generated fallbacks. Every operation resolves
// through the same chain: cache, then providers in priority order, then the
// local database, then deterministic generated data. Callers always receive
// a usable result.
package realestate

// Source identifies where an aggregated record came from.
type Source string

// Data sources. Internal covers both database rows and generated fallbacks.
const (
	SourceRepliers Source = "repliers"
	SourceRedfin   Source = "redfin"
	SourceZillow   Source = "zillow"
	SourceMLS      Source = "mls"
	SourceInternal Source = "internal"
)

// SearchParams filters a property search. Nil fields are unconstrained.
type SearchParams struct {
	Location     string  `json:"location,omitempty"`
	MinPrice     int64   `json:"min_price,omitempty"`
	MaxPrice     int64   `json:"max_price,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`
	Bathrooms    float64 `json:"bathrooms,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Limit        int     `json:"limit,omitempty"`
}

// Property is a normalized property record from any source.
type Property struct {
	ID            string   `json:"id"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	ZipCode       string   `json:"zip_code"`
	Price         int64    `json:"price"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     float64  `json:"bathrooms"`
	SquareFeet    int      `json:"square_feet"`
	YearBuilt     int      `json:"year_built"`
	PropertyType  string   `json:"property_type"`
	ListingStatus string   `json:"listing_status"`
	Description   string   `json:"description"`
	Features      []string `json:"features"`
	Images        []string `json:"images"`
	DaysOnMarket  int      `json:"days_on_market"`
	ListingDate   string   `json:"listing_date"`
	Source        Source   `json:"source"`
}

// TrendParams filters a market trend query.
type TrendParams struct {
	Region     string `json:"region,omitempty"`
	RegionType string `json:"region_type,omitempty"`
	Months     int    `json:"months,omitempty"`
}

// MarketTrend is one month of market statistics for a region.
type MarketTrend struct {
	Region          string  `json:"region"`
	RegionType      string  `json:"region_type"`
	MedianPrice     int64   `json:"median_price"`
	PriceChangePct  float64 `json:"price_change_pct"`
	AvgDaysOnMarket int     `json:"avg_days_on_market"`
	InventoryCount  int     `json:"inventory_count"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	Source          Source  `json:"source"`
}

// ValuePoint is one historical valuation sample.
type ValuePoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// ValuationRange bounds an estimated value.
type ValuationRange struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// Valuation is an estimated property value with twelve months of history.
type Valuation struct {
	PropertyID       string         `json:"property_id"`
	EstimatedValue   int64          `json:"estimated_value"`
	ValuationRange   ValuationRange `json:"valuation_range"`
	LastUpdated      string         `json:"last_updated"`
	HistoricalValues []ValuePoint   `json:"historical_values"`
	Source           Source         `json:"source"`
}

// NeighborhoodParams identifies a neighborhood.
type NeighborhoodParams struct {
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code,omitempty"`
}

// NeighborhoodOverview summarizes neighborhood demographics.
type NeighborhoodOverview struct {
	Population        int `json:"population"`
	MedianIncome      int `json:"median_income"`
	MedianHomeValue   int `json:"median_home_value"`
	CostOfLivingIndex int `json:"cost_of_living_index"`
}

// School is one school near a neighborhood.
type School struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Grades   string  `json:"grades"`
	Rating   float64 `json:"rating"`
	Distance float64 `json:"distance"`
}

// Amenities counts nearby amenities.
type Amenities struct {
	Restaurants   int `json:"restaurants"`
	GroceryStores int `json:"grocery_stores"`
	Parks         int `json:"parks"`
	Gyms          int `json:"gyms"`
	Hospitals     int `json:"hospitals"`
}

// Transportation holds walkability and commute scores.
type Transportation struct {
	WalkScore      int `json:"walk_score"`
	TransitScore   int `json:"transit_score"`
	BikeScore      int `json:"bike_score"`
	AverageCommute int `json:"average_commute"`
}

// CrimeRate holds qualitative crime ratings.
type CrimeRate struct {
	Overall            string `json:"overall"`
	Violent            string `json:"violent"`
	Property           string `json:"property"`
	ComparedToNational string `json:"compared_to_national"`
}

// NeighborhoodMarket summarizes the neighborhood housing market.
type NeighborhoodMarket struct {
	HomeValueTrend      string `json:"home_value_trend"`
	ForecastNextYear    string `json:"forecast_next_year"`
	AverageDaysOnMarket int    `json:"average_days_on_market"`
	MedianRent          int    `json:"median_rent"`
}

// NeighborhoodInfo is a full neighborhood profile.
type NeighborhoodInfo struct {
	Overview       NeighborhoodOverview `json:"overview"`
	Schools        []School             `json:"schools"`
	Amenities      Amenities            `json:"amenities"`
	Transportation Transportation       `json:"transportation"`
	CrimeRate      CrimeRate            `json:"crime_rate"`
	MarketTrends   NeighborhoodMarket   `json:"market_trends"`
	Source         Source               `json:"source"`
}

// InsightParams identifies a region for market insights.
type InsightParams struct {
	Region     string `json:"region"`
	RegionType string `json:"region_type,omitempty"`
}

// InsightMetrics holds the quantitative market insight fields.
type InsightMetrics struct {
	MedianPrice        int64   `json:"median_price"`
	PriceChangePct     float64 `json:"price_change_pct"`
	AvgDaysOnMarket    int     `json:"avg_days_on_market"`
	InventoryCount     int     `json:"inventory_count"`
	SalesVolume        int     `json:"sales_volume"`
	MedianRentPrice    int     `json:"median_rent_price,omitempty"`
	RentYield          float64 `json:"rent_yield,omitempty"`
	PriceToRentRatio   float64 `json:"price_to_rent_ratio,omitempty"`
	AffordabilityIndex int     `json:"affordability_index,omitempty"`
	MarketHeatIndex    int     `json:"market_heat_index,omitempty"`
}

// ForecastWindow is a price change forecast with a confidence score.
type ForecastWindow struct {
	PriceChangePct float64 `json:"price_change_pct"`
	Confidence     int     `json:"confidence"`
}

// InsightForecast holds short, medium, and long term forecasts.
type InsightForecast struct {
	ShortTerm  ForecastWindow `json:"short_term"`
	MediumTerm ForecastWindow `json:"medium_term"`
	LongTerm   ForecastWindow `json:"long_term"`
}

// MarketInsight is a regional market condition report.
type MarketInsight struct {
	Region     string          `json:"region"`
	RegionType string          `json:"region_type"`
	Period     string          `json:"period"`
	Metrics    InsightMetrics  `json:"metrics"`
	Forecast   InsightForecast `json:"forecast"`
	Source     Source          `json:"source"`
}

// Comparable is one comparable property in an analysis.
type Comparable struct {
	ID           string  `json:"id"`
	Address      string  `json:"address"`
	Price        int64   `json:"price"`
	PricePerSqFt int64   `json:"price_per_sqft"`
	Bedrooms     int     `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	SquareFeet   int     `json:"square_feet"`
	YearBuilt    int     `json:"year_built"`
	Distance     float64 `json:"distance"`
	Similarity   int     `json:"similarity"`
}

// FinancialMetrics holds investment performance estimates for a property.
type FinancialMetrics struct {
	EstimatedValue           int64   `json:"estimated_value"`
	EstimatedRent            int64   `json:"estimated_rent"`
	CapRate                  float64 `json:"cap_rate"`
	CashOnCashReturn         float64 `json:"cash_on_cash_return"`
	GrossRentMultiplier      float64 `json:"gross_rent_multiplier"`
	NetOperatingIncome       int64   `json:"net_operating_income"`
	OperatingExpenseRatio    float64 `json:"operating_expense_ratio"`
	DebtServiceCoverageRatio float64 `json:"debt_service_coverage_ratio"`
	BreakEvenRatio           float64 `json:"break_even_ratio"`
}

// PropertyAnalysis scores a property's investment potential.
type PropertyAnalysis struct {
	PropertyID           string           `json:"property_id"`
	ValuationScore       int              `json:"valuation_score"`
	InvestmentScore      int              `json:"investment_score"`
	RentalScore          int              `json:"rental_score"`
	AppreciationScore    int              `json:"appreciation_score"`
	CashFlowScore        int              `json:"cash_flow_score"`
	RiskScore            int              `json:"risk_score"`
	OverallScore         int              `json:"overall_score"`
	Insights             []string         `json:"insights"`
	Recommendations      []string         `json:"recommendations"`
	ComparableProperties []Comparable     `json:"comparable_properties"`
	FinancialMetrics     FinancialMetrics `json:"financial_metrics"`
	Source               Source           `json:"source"`
}

// ZoneMetrics holds the quantitative opportunity zone fields.
type ZoneMetrics struct {
	MedianPrice      int64   `json:"median_price"`
	PriceChangePct   float64 `json:"price_change_pct"`
	AvgDaysOnMarket  int     `json:"avg_days_on_market"`
	InventoryCount   int     `json:"inventory_count"`
	RentalDemand     int     `json:"rental_demand"`
	JobGrowth        float64 `json:"job_growth"`
	PopulationGrowth float64 `json:"population_growth"`
	IncomeGrowth     float64 `json:"income_growth"`
	NewDevelopment   int     `json:"new_development"`
	InvestorActivity int     `json:"investor_activity"`
}

// OpportunityZone is an investment opportunity area within a region.
type OpportunityZone struct {
	Region                   string      `json:"region"`
	RegionType               string      `json:"region_type"`
	OpportunityScore         int         `json:"opportunity_score"`
	Metrics                  ZoneMetrics `json:"metrics"`
	Insights                 []string    `json:"insights"`
	RecommendedPropertyTypes []string    `json:"recommended_property_types"`
	RiskFactors              []string    `json:"risk_factors"`
	Source                   Source      `json:"source"`
}
