package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/pricetracker-backend/api/controllers"
	"github.com/angelmondragon/pricetracker-backend/api/handlers"
	"github.com/angelmondragon/pricetracker-backend/api/middleware"
	"github.com/angelmondragon/pricetracker-backend/internal/auth"
	"github.com/angelmondragon/pricetracker-backend/internal/prices"
	"github.com/angelmondragon/pricetracker-backend/pkg/config"
	"github.com/angelmondragon/pricetracker-backend/pkg/db"
	"github.com/angelmondragon/pricetracker-backend/pkg/logger"
	"github.com/angelmondragon/pricetracker-backend/pkg/metrics"
)

// NewRouter assembles the HTTP surface: public auth routes, then every price
// route behind the bearer-token gate.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	authService auth.Service,
	priceService prices.Service,
) http.Handler {
	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, httpMetrics),
		middleware.CORS(),
	)

	r.Get("/", handlers.Root())
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", handlers.HealthLive())
		r.Get("/ready", handlers.HealthReady(dbP, logg))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(authService, logg))
		r.Post("/login", controllers.AuthLogin(authService, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Post("/upload", controllers.UploadPrices(priceService, cfg.Upload, logg))
		r.Get("/search", controllers.SearchPrices(priceService, logg))

		r.Route("/records/{id}", func(r chi.Router) {
			r.Get("/", controllers.GetPrice(priceService, logg))
			r.Put("/", controllers.UpdatePrice(priceService, logg))
			r.Delete("/", controllers.DeletePrice(priceService, logg))
		})
	})

	return r
}
