package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JasonR4/london-outfast-sub003/api/routes"
	"github.com/JasonR4/london-outfast-sub003/internal/deals"
	"github.com/JasonR4/london-outfast-sub003/internal/plans"
	"github.com/JasonR4/london-outfast-sub003/internal/quotes"
	"github.com/JasonR4/london-outfast-sub003/internal/ratecards"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	"github.com/JasonR4/london-outfast-sub003/pkg/db"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
	"github.com/JasonR4/london-outfast-sub003/pkg/metrics"
	"github.com/JasonR4/london-outfast-sub003/pkg/migrate"
	"github.com/JasonR4/london-outfast-sub003/pkg/outbox"
	"github.com/JasonR4/london-outfast-sub003/pkg/redis"

	"github.com/JasonR4/london-outfast-sub003/internal/pricing"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	pricingCfg := pricing.FromAppConfig(cfg.Pricing)

	rateCardService, err := ratecards.NewService(
		ratecards.NewRepository(dbClient.DB()),
		redisClient,
		cfg.RateCards.CacheTTL,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create rate card service", err)
		os.Exit(1)
	}

	planRepo := plans.NewRepository(dbClient.DB())
	planService, err := plans.NewService(planRepo, dbClient, pricingCfg)
	if err != nil {
		logg.Error(context.Background(), "failed to create plan service", err)
		os.Exit(1)
	}

	quoteService, err := quotes.NewService(
		quotes.NewRepository(dbClient.DB()),
		outbox.NewRepository(dbClient.DB()),
		dbClient,
		planRepo,
		rateCardService,
		pricingCfg,
		quoteMetrics,
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create quote service", err)
		os.Exit(1)
	}

	dealService, err := deals.NewService(deals.NewRepository(dbClient.DB()), cfg.Pricing.VATRatePercent)
	if err != nil {
		logg.Error(context.Background(), "failed to create deal service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			quoteService,
			planService,
			rateCardService,
			dealService,
		),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		logg.Info(ctx, "shutting down api server")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "api server shutdown error", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
