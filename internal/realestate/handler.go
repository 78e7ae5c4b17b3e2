package realestate

import (
	"log/slog"
	"net/http"
	"strconv"

	"propsight/internal/listings"
	"propsight/pkg/handlers"
	"propsight/pkg/routes"
)

// Handler provides HTTP handlers for aggregated market data endpoints.
type Handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewHandler creates a new market data HTTP handler.
func NewHandler(svc *Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Routes returns the route group configuration for market data endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/market",
		Description: "Aggregated market data with provider fallbacks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/search", Handler: h.Search},
			{Method: "GET", Pattern: "/trends", Handler: h.Trends},
			{Method: "GET", Pattern: "/neighborhood", Handler: h.Neighborhood},
			{Method: "GET", Pattern: "/insights", Handler: h.Insights},
			{Method: "GET", Pattern: "/opportunity-zones", Handler: h.OpportunityZones},
			{Method: "GET", Pattern: "/valuation/{id}", Handler: h.Valuation},
			{Method: "GET", Pattern: "/analysis/{id}", Handler: h.Analysis},
		},
	}
}

// Search handles GET /api/market/search to search properties across sources.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := SearchParams{
		Location:     query.Get("location"),
		PropertyType: query.Get("property_type"),
	}

	if v := query.Get("min_price"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.MinPrice = parsed
	}
	if v := query.Get("max_price"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.MaxPrice = parsed
	}
	if v := query.Get("bedrooms"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.Bedrooms = parsed
	}
	if v := query.Get("bathrooms"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.Bathrooms = parsed
	}
	if v := query.Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.Limit = parsed
	}

	result, err := h.svc.SearchProperties(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Trends handles GET /api/market/trends to retrieve regional trends.
func (h *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := TrendParams{
		Region:     query.Get("region"),
		RegionType: query.Get("region_type"),
	}

	if v := query.Get("months"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
		params.Months = parsed
	}

	result, err := h.svc.MarketTrends(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Neighborhood handles GET /api/market/neighborhood to retrieve a
// neighborhood profile.
func (h *Handler) Neighborhood(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := NeighborhoodParams{
		City:    query.Get("city"),
		State:   query.Get("state"),
		ZipCode: query.Get("zip_code"),
	}

	result, err := h.svc.NeighborhoodInfo(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Insights handles GET /api/market/insights to retrieve a regional insight
// report.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	params := InsightParams{
		Region:     r.URL.Query().Get("region"),
		RegionType: r.URL.Query().Get("region_type"),
	}

	result, err := h.svc.MarketInsights(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// OpportunityZones handles GET /api/market/opportunity-zones.
func (h *Handler) OpportunityZones(w http.ResponseWriter, r *http.Request) {
	params := InsightParams{
		Region:     r.URL.Query().Get("region"),
		RegionType: r.URL.Query().Get("region_type"),
	}

	result, err := h.svc.OpportunityZones(r.Context(), params)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Valuation handles GET /api/market/valuation/{id} for a known listing.
func (h *Handler) Valuation(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PropertyValuation(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, listings.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Analysis handles GET /api/market/analysis/{id} for a known listing.
func (h *Handler) Analysis(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.PropertyAnalysis(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, listings.MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
