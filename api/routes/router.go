package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JasonR4/london-outfast-sub003/api/controllers"
	"github.com/JasonR4/london-outfast-sub003/api/middleware"
	"github.com/JasonR4/london-outfast-sub003/internal/deals"
	"github.com/JasonR4/london-outfast-sub003/internal/plans"
	"github.com/JasonR4/london-outfast-sub003/internal/quotes"
	"github.com/JasonR4/london-outfast-sub003/internal/ratecards"
	"github.com/JasonR4/london-outfast-sub003/pkg/config"
	"github.com/JasonR4/london-outfast-sub003/pkg/db"
	"github.com/JasonR4/london-outfast-sub003/pkg/logger"
	"github.com/JasonR4/london-outfast-sub003/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	prometheusGatherer prometheus.Gatherer,
	quoteService quotes.Service,
	planService plans.Service,
	rateCardService ratecards.Service,
	dealService deals.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	var cache redis.Pinger
	if redisClient != nil {
		cache = redisClient
	}
	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, cache))
	})

	if prometheusGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(prometheusGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PricingGate(cfg.JWT, logg))

		r.Route("/rate-cards", func(r chi.Router) {
			r.Get("/", controllers.RateCardListHandler(rateCardService, logg))
			r.Get("/{formatName}", controllers.RateCardFetchHandler(rateCardService, logg))
		})

		r.Route("/deals", func(r chi.Router) {
			r.Get("/", controllers.DealListHandler(dealService, logg))
			r.Get("/{dealRef}/pricing", controllers.DealPricingHandler(dealService, logg))
		})

		r.Post("/quotes/preview", controllers.QuotePreviewHandler(quoteService, logg))
		r.Get("/quotes/{quoteID}", controllers.QuoteFetchHandler(quoteService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(logg))

			submit := controllers.QuoteSubmitHandler(quoteService, logg)
			if redisClient != nil {
				r.With(middleware.SubmitRateLimit(cfg.RateLimit, redisClient, logg)).Post("/quotes", submit)
			} else {
				r.Post("/quotes", submit)
			}

			r.Route("/plans", func(r chi.Router) {
				r.Put("/", controllers.PlanUpsertHandler(planService, logg))
				r.Get("/active", controllers.PlanFetchHandler(planService, logg))
				r.Delete("/", controllers.PlanClearHandler(planService, logg))
			})
		})
	})

	return r
}
