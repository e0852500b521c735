package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/galleypos/galleypos-backend/api/controllers"
	"github.com/galleypos/galleypos-backend/api/middleware"
	"github.com/galleypos/galleypos-backend/internal/catalog"
	"github.com/galleypos/galleypos-backend/internal/session"
	"github.com/galleypos/galleypos-backend/pkg/config"
	"github.com/galleypos/galleypos-backend/pkg/db"
	"github.com/galleypos/galleypos-backend/pkg/logger"
	"github.com/galleypos/galleypos-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	idemStore redis.IdempotencyStore,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	sessionService session.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if idemStore != nil {
			r.Use(middleware.Idempotency(idemStore, logg))
		}

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(catalogService, logg))
			if !cfg.App.IsProd() {
				r.Post("/reset", controllers.CatalogReset(catalogService, logg))
			}
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", controllers.SessionOpen(sessionService, logg))
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", controllers.SessionFetch(sessionService, logg))
				r.Put("/cart", controllers.CartReplace(sessionService, logg))
				r.Post("/cart/lines", controllers.CartUpsertLine(sessionService, logg))
				r.Delete("/cart/lines/{itemID}", controllers.CartRemoveLine(sessionService, logg))
				r.Post("/currency/cycle", controllers.CurrencyCycle(sessionService, logg))
				r.Put("/sale-type", controllers.SaleTypeSet(sessionService, logg))
				r.Put("/seat", controllers.SeatSet(sessionService, logg))
				r.Post("/tenders", controllers.TenderSubmit(sessionService, logg))
			})
		})
	})

	return r
}
