package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cedab23/blueprints/internal/api/handler"
	"github.com/cedab23/blueprints/internal/api/middleware"
	"github.com/cedab23/blueprints/internal/blueprint"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Blueprints   blueprint.Store
	DBPinger     handler.DBPinger
	StoreBackend string
	Version      string
	APIKeyHash   string
	OpenAPISpec  []byte
	// Registerer receives HTTP metrics; Gatherer backs GET /metrics.
	// Either may be nil to disable that part.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if deps.Registerer != nil {
		r.Use(middleware.Metrics(deps.Registerer))
	}
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.StoreBackend, deps.Version)
	r.Get("/health", healthHandler.ServeHTTP)

	if len(deps.OpenAPISpec) > 0 {
		openapiHandler := handler.NewOpenAPIHandler(deps.OpenAPISpec)
		r.Get("/openapi.json", openapiHandler.ServeHTTP)
	}

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	if deps.Blueprints != nil {
		bpHandler := handler.NewBlueprintHandler(deps.Blueprints)
		requireKey := middleware.APIKey(deps.APIKeyHash)
		r.Route("/api/v1/blueprints", func(r chi.Router) {
			r.Get("/", bpHandler.List)
			r.Get("/{author}", bpHandler.ListByAuthor)
			r.Get("/{author}/{name}", bpHandler.Get)
			r.With(requireKey).Post("/", bpHandler.Create)
			r.With(requireKey).Put("/{author}/{name}/points", bpHandler.AppendPoint)
		})
	}

	return r
}
