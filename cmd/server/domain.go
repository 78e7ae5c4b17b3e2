package main

import (
	"database/sql"
	"log/slog"

	"propsight/internal/agentlogs"
	"propsight/internal/agents"
	"propsight/internal/cache"
	"propsight/internal/config"
	"propsight/internal/listings"
	"propsight/internal/llm"
	"propsight/internal/realestate"
	"propsight/internal/saved"
	"propsight/internal/tools"
	"propsight/internal/trends"
)

// Domain wires all domain systems together: database-backed stores, the
// aggregation service, the tool set, and the agent runner.
type Domain struct {
	Listings  listings.System
	Trends    trends.System
	Saved     saved.System
	AgentLogs agentlogs.System
	Market    *realestate.Service
	Tools     *tools.Registry
	Runner    *agents.Runner
}

func NewDomain(cfg *config.Config, creds *config.Credentials, db *sql.DB, logger *slog.Logger) *Domain {
	listingStore := listings.New(db, logger)
	trendStore := trends.New(db, logger)
	savedStore := saved.New(db, logger)
	logStore := agentlogs.New(db, logger)

	market := realestate.NewService(realestate.Options{
		Cache:     cache.New(cfg.Cache.TTLDuration(), cfg.Features.CachingEnabled()),
		Listings:  listingStore,
		Trends:    trendStore,
		Providers: realestate.ConfigureProviders(&cfg.Providers, creds, cfg.Features.UseRealAPIs),
		Logger:    logger,
	})

	toolset := tools.NewRegistry(market, listingStore, savedStore)

	runner := agents.NewRunner(agents.Options{
		Models:   llm.NewRegistry(creds, logger),
		Tools:    toolset,
		Logs:     logStore,
		Market:   market,
		Listings: listingStore,
		Logger:   logger,
	})

	return &Domain{
		Listings:  listingStore,
		Trends:    trendStore,
		Saved:     savedStore,
		AgentLogs: logStore,
		Market:    market,
		Tools:     toolset,
		Runner:    runner,
	}
}
