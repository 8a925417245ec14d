package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"dconn.dev/folio/internal/services"
	"dconn.dev/folio/internal/view"
)

// ProjectHandler handles project pages and endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	renderer       *view.Renderer
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, r *view.Renderer) *ProjectHandler {
	return &ProjectHandler{projectService: ps, renderer: r}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetByID(slug)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// ShowProject handles GET /projects/{slug}
func (h *ProjectHandler) ShowProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	// Every request is a fresh mount, so the first Update always runs effects.
	detail := view.NewDetail(h.projectService.GetAll())
	page, cmds := detail.Update(slug)
	h.showDetail(w, r, page, cmds)
}

// showDetail carries out the view's commands, then renders page
func (h *ProjectHandler) showDetail(w http.ResponseWriter, r *http.Request, page *view.DetailPage, cmds []view.Command) {
	scroll := false
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case view.Navigate:
			redirect(w, c.To)
			return
		case view.ScrollToTop:
			scroll = true
		}
	}

	if page == nil {
		redirect(w, view.ListingRoute)
		return
	}

	h.render(w, r, view.DetailTemplate, view.Page[*view.DetailPage]{
		Title:       page.Title,
		ScrollToTop: scroll,
		Content:     page,
	})
}

// ShowListing handles GET /projects
func (h *ProjectHandler) ShowListing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, view.ListingTemplate, view.Page[*view.ListingPage]{
		Title:       "Projects",
		ScrollToTop: true,
		Content:     view.NewListingPage(h.projectService.Featured()),
	})
}

func (h *ProjectHandler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("page", name).Msg("render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirect sends a bodyless 302 so nothing is rendered before navigation
func redirect(w http.ResponseWriter, to string) {
	w.Header().Set("Location", to)
	w.WriteHeader(http.StatusFound)
}
