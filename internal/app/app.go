package app

import (
	"fmt"
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/external/zerobid"
	"github.com/riskibarqy/zerobid-console/internal/config"
	"github.com/riskibarqy/zerobid-console/internal/interfaces/httpapi"
	"github.com/riskibarqy/zerobid-console/internal/platform/id"
	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
	"github.com/riskibarqy/zerobid-console/internal/platform/resilience"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

// NewHTTPServer wires the backend client, the auction services and the
// router. The returned cleanup stops auction timers and the team rep poller;
// call it after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	clock := clockwork.NewRealClock()
	client := zerobid.NewClient(zerobid.ClientConfig{
		BaseURL:    cfg.ZeroBidBaseURL,
		Timeout:    cfg.ZeroBidTimeout,
		MaxRetries: cfg.ZeroBidMaxRetries,
		Logger:     logger,
		Clock:      clock,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.ZeroBidCircuitEnabled,
			FailureThreshold: cfg.ZeroBidCircuitFailureCount,
			OpenTimeout:      cfg.ZeroBidCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.ZeroBidCircuitHalfOpenMaxReq,
		},
	})
	teams := zerobid.NewTeamRepository(client)
	players := zerobid.NewPlayerRepository(client)

	authSvc := usecase.NewAuthService(client, []byte(cfg.ZeroBidJWTSecret), clock)
	catalogSvc := usecase.NewCatalogService(client, teams, players)
	dashboardSvc := usecase.NewDashboardService(client, client, clock)
	auctionSvc := usecase.NewAuctionService(
		client,
		teams,
		client,
		client,
		id.NewUUIDGenerator(),
		clock,
		logger,
		usecase.AuctionConfig{
			NextPlayerDelay: cfg.AuctionNextPlayerDelay,
			TeamCacheTTL:    cfg.TeamCacheTTL,
		},
	)
	feed, err := usecase.NewTeamRepFeed(client, client, auctionSvc, clock, logger, usecase.FeedConfig{
		PollInterval: cfg.AuctionPollInterval,
		Workers:      cfg.AuctionPollWorkers,
	})
	if err != nil {
		auctionSvc.Close()
		return nil, nil, fmt.Errorf("build team rep feed: %w", err)
	}

	handler := httpapi.NewHandler(authSvc, catalogSvc, dashboardSvc, auctionSvc, feed, client, logger, httpapi.HandlerConfig{
		WSPingInterval:     cfg.WSPingInterval,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() {
		feed.Close()
		auctionSvc.Close()
	}
	return server, cleanup, nil
}
