package main

import (
	"log/slog"
	"net/http"

	"propsight/internal/agentlogs"
	"propsight/internal/agents"
	"propsight/internal/config"
	"propsight/internal/listings"
	"propsight/internal/realestate"
	"propsight/internal/saved"
	"propsight/internal/trends"
	"propsight/pkg/routes"
)

// buildHandler configures all HTTP routes and wraps them in the middleware
// stack.
func buildHandler(cfg *config.Config, domain *Domain, logger *slog.Logger) http.Handler {
	mux := routes.NewMux()

	mux.RegisterGroup(listings.NewHandler(domain.Listings, logger).Routes())
	mux.RegisterGroup(trends.NewHandler(domain.Trends, logger).Routes())
	mux.RegisterGroup(saved.NewHandler(domain.Saved, logger).Routes())
	mux.RegisterGroup(agentlogs.NewHandler(domain.AgentLogs, logger).Routes())
	mux.RegisterGroup(realestate.NewHandler(domain.Market, logger).Routes())
	mux.RegisterGroup(agents.NewHandler(domain.Runner, logger).Routes())

	mux.RegisterRoute(routes.Route{
		Method:  "GET",
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	handler := maxBody(mux.Build(), cfg.Server.MaxBodyBytes())
	handler = enableCORS(handler, &cfg.CORS)
	handler = requestLogger(handler, logger)
	return handler
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
