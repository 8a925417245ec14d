package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"dconn.dev/folio/internal/config"
	"dconn.dev/folio/internal/middleware"
	"dconn.dev/folio/internal/services"
	"dconn.dev/folio/internal/view"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger zerolog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.NewMetrics(reg).Handler)
	r.Use(middleware.Recovery)

	// Initialize services and handlers
	projectService := services.NewProjectService(cfg.Projects)
	projectHandler := NewProjectHandler(projectService, renderer)

	// Pages
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, view.ListingRoute, http.StatusFound)
	})
	r.Get("/projects", projectHandler.ShowListing)
	r.Get("/projects/{slug}", projectHandler.ShowProject)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get(view.PlaceholderImage, view.PlaceholderHandler)

	// Static files
	if info, err := os.Stat(cfg.StaticPath); err == nil && info.IsDir() {
		fileServer := http.FileServer(http.Dir(cfg.StaticPath))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	} else {
		logger.Warn().Str("path", cfg.StaticPath).Msg("static directory not found, /static disabled")
	}

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
