package http

import (
	"net/http"

	"github.com/MKhiriev/go-project-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// promhttp negotiates its own compression, so gzip stays on /api only
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/projects", h.listProjects)
		r.Post("/api/projects", h.createProject)
		r.Get("/api/projects/{id}", h.getProject)
		r.Put("/api/projects/{id}", h.updateProject)
		r.Delete("/api/projects/{id}", h.deleteProject)
	})

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, "route not found", http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
