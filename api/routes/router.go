package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/watchloghq/watchlog/api/controllers"
	"github.com/watchloghq/watchlog/api/middleware"
	mediasvc "github.com/watchloghq/watchlog/internal/media"
	"github.com/watchloghq/watchlog/pkg/config"
	"github.com/watchloghq/watchlog/pkg/db"
	"github.com/watchloghq/watchlog/pkg/logger"
	"github.com/watchloghq/watchlog/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	mediaService mediasvc.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.CORSAllowedOrigins),
	)
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/api/media", func(r chi.Router) {
		r.Post("/newMedia", controllers.CreateMedia(mediaService, logg))
		r.Get("/getMedia", controllers.ListMedia(mediaService, logg))
		r.Put("/update/{id}", controllers.UpdateMedia(mediaService, logg))
		r.Delete("/delete/{id}", controllers.DeleteMedia(mediaService, logg))
	})

	return r
}
