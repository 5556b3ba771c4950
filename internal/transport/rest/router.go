package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/wordmate-backend/internal/config"
	"github.com/heartmarshall/wordmate-backend/internal/metrics"
	"github.com/heartmarshall/wordmate-backend/internal/transport/middleware"
)

// RouterDeps is everything NewRouter mounts.
type RouterDeps struct {
	Messages *MessageHandler
	History  *HistoryHandler
	Notion   *NotionHandler
	Settings *SettingsHandler
	Health   *HealthHandler

	Logger      *slog.Logger
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer // nil disables /metrics
	RateLimiter *middleware.RateLimiter
	RateLimit   int // messages per minute per client IP
	CORS        config.CORSConfig
}

// NewRouter builds the HTTP handler.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(baseStack(d))

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.With(d.RateLimiter.Limit(d.RateLimit)).Post("/messages", d.Messages.Handle)

		r.Get("/history", d.History.List)
		r.Get("/history/export.csv", d.History.Export)
		r.Get("/history/{id}", d.History.Get)
		r.Delete("/history", d.History.Clear)

		r.Get("/notion/pending", d.Notion.Pending)
		r.Post("/notion/flush", d.Notion.Flush)

		r.Delete("/settings", d.Settings.Reset)
	})

	return r
}

// baseStack wraps every route. RequestID and ClientIP run outermost so
// everything below can read them from the context.
func baseStack(d RouterDeps) middleware.Middleware {
	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Metrics(d.Metrics),
	)
}
