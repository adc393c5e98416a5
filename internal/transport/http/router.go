// Package httptransport assembles the API router. It is a thin layer: all
// business logic lives behind the feature handlers' Service interfaces.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accounthandler "enrolld/internal/account/handler"
	applicationhandler "enrolld/internal/application/handler"
	institutionhandler "enrolld/internal/institution/handler"
	"enrolld/internal/platform/metrics"
	"enrolld/internal/platform/middleware"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Registry     prometheus.Gatherer
	RateLimiter  *middleware.RateLimiter
	Accounts     accounthandler.Service
	Institutions institutionhandler.Service
	Applications applicationhandler.Service
}

// NewRouter wires all endpoints with the shared middleware stack.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Latency(deps.Metrics))

	r.Route("/api", func(api chi.Router) {
		if deps.RateLimiter != nil {
			api.Use(deps.RateLimiter.Middleware)
		}
		accounthandler.New(deps.Accounts, deps.Logger).Register(api)
		institutionhandler.New(deps.Institutions, deps.Logger).Register(api)
		applicationhandler.New(deps.Applications, deps.Logger).Register(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return r
}
