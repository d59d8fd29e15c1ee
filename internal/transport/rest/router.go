package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/adoption-stats/internal/transport/middleware"
)

// Routes lists everything NewRouter mounts.
type Routes struct {
	Report *ReportHandler
	Health *HealthHandler

	// Metrics is served at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string

	// Middleware wraps every route; APIMiddleware wraps /api only.
	Middleware    middleware.Middleware
	APIMiddleware middleware.Middleware
}

// NewRouter builds the chi router for the statistics API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	if rt.Middleware != nil {
		r.Use(rt.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/", rt.Report.Root)

	r.Get("/live", rt.Health.Live)
	r.Get("/ready", rt.Health.Ready)
	r.Get("/health", rt.Health.Health)

	if rt.Metrics != nil {
		r.Method(http.MethodGet, rt.MetricsPath, rt.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		if rt.APIMiddleware != nil {
			r.Use(rt.APIMiddleware)
		}

		r.Get("/years", rt.Report.Years)
		r.Get("/states", rt.Report.States)
		r.Get("/countries", rt.Report.Countries)

		r.Get("/incoming-adoptions/{year}", rt.Report.IncomingAdoptions)
		r.Get("/incoming-adoptions-by-state/{year}", rt.Report.IncomingAdoptionsByState)
		r.Get("/outgoing-adoptions/{year}", rt.Report.OutgoingAdoptions)
	})

	return r
}
