package view

import (
	"net/url"

	"dconn.dev/folio/internal/models"
	"dconn.dev/folio/internal/services"
)

// Routes the detail view navigates to
const (
	ListingRoute     = "/projects"
	PlaceholderImage = "/placeholder.svg"
)

// ProjectURL returns the detail route for a slug, escaped as one path segment
func ProjectURL(slug string) string {
	return ListingRoute + "/" + url.PathEscape(slug)
}

// Resolution is the outcome of looking up a slug: exactly one of
// Project or Redirect is set.
type Resolution struct {
	Project  *models.Project
	Redirect string
}

// Resolve looks up slug in projects. When nothing matches the caller
// should navigate to the listing route instead of rendering.
func Resolve(projects []models.Project, slug string) Resolution {
	if p := services.Find(projects, slug); p != nil {
		return Resolution{Project: p}
	}
	return Resolution{Redirect: ListingRoute}
}

// Command is a side effect requested by the detail view
type Command interface {
	command()
}

// Navigate asks the host to move to another route
type Navigate struct {
	To string
}

// ScrollToTop asks the host to reset the viewport scroll position
type ScrollToTop struct{}

func (Navigate) command()    {}
func (ScrollToTop) command() {}

// Detail tracks the mounted project detail view. Effects run on the first
// Update and again only when the resolved project changes.
type Detail struct {
	projects []models.Project
	current  *models.Project
	mounted  bool
}

// NewDetail mounts a detail view over a read-only project collection
func NewDetail(projects []models.Project) *Detail {
	return &Detail{projects: projects}
}

// Update resolves slug and returns the page to render (nil when the
// project is missing) along with any commands the host must carry out.
func (d *Detail) Update(slug string) (*DetailPage, []Command) {
	res := Resolve(d.projects, slug)

	var cmds []Command
	if !d.mounted || res.Project != d.current {
		d.mounted = true
		d.current = res.Project
		if res.Project == nil {
			cmds = append(cmds, Navigate{To: res.Redirect})
		}
		cmds = append(cmds, ScrollToTop{})
	}

	if res.Project == nil {
		return nil, cmds
	}
	return NewDetailPage(res.Project), cmds
}
