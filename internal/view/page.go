package view

import (
	"fmt"
	"html/template"
	"strings"

	"dconn.dev/folio/internal/models"
)

// Page wraps the shared layout fields around page-specific content
type Page[T any] struct {
	Title       string
	ScrollToTop bool
	Content     T
}

// Image is a rendered <img> source and alt text
type Image struct {
	Src string
	Alt string
}

// Tag is one entry of the header tag list
type Tag struct {
	Text string
	Last bool
}

// NavLink points at an adjacent project
type NavLink struct {
	URL   string
	Title string
}

// DetailPage is the view model for a single project page
type DetailPage struct {
	BackURL     string
	Category    string
	Featured    bool
	Title       string
	Description string
	Date        string
	Client      string
	Timeline    string
	Tags        []Tag
	LiveURL     string
	GitHubURL   string
	Cover       Image
	Content     template.HTML
	Services    []string
	Tools       []string
	Gallery     []Image
	Prev        *NavLink
	Next        *NavLink
}

// NewDetailPage builds the view model for p
func NewDetailPage(p *models.Project) *DetailPage {
	page := &DetailPage{
		BackURL:     ListingRoute,
		Category:    p.Category,
		Featured:    p.Featured,
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Client:      p.Client,
		Timeline:    p.Timeline,
		LiveURL:     p.LiveURL,
		GitHubURL:   p.GitHubURL,
		Cover:       Image{Src: imageOrPlaceholder(p.CoverImage), Alt: p.Title},
		Content:     p.Content.HTML(),
		Services:    p.Services,
		Tools:       p.Tools,
	}

	for i, t := range p.Tags {
		page.Tags = append(page.Tags, Tag{Text: t, Last: i == len(p.Tags)-1})
	}

	for i, src := range p.Gallery {
		page.Gallery = append(page.Gallery, Image{
			Src: imageOrPlaceholder(src),
			Alt: fmt.Sprintf("%s - Gallery image %d", p.Title, i+1),
		})
	}

	page.Prev = navLink(p.PrevProject)
	page.Next = navLink(p.NextProject)

	return page
}

// HasLinks reports whether the external links block is shown
func (p *DetailPage) HasLinks() bool {
	return p.LiveURL != "" || p.GitHubURL != ""
}

// TagLine is the tag list as displayed, e.g. "a, b, c"
func (p *DetailPage) TagLine() string {
	texts := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		texts[i] = t.Text
	}
	return strings.Join(texts, ", ")
}

func navLink(ref *models.ProjectRef) *NavLink {
	if ref == nil {
		return nil
	}
	return &NavLink{URL: ProjectURL(ref.Slug), Title: ref.Title}
}

func imageOrPlaceholder(src string) string {
	if src == "" {
		return PlaceholderImage
	}
	return src
}

// ListingPage is the view model for the project index
type ListingPage struct {
	Projects []ListingItem
}

// ListingItem is one card on the project index
type ListingItem struct {
	URL         string
	Title       string
	Category    string
	Description string
	Featured    bool
	Cover       Image
}

// NewListingPage builds the index from projects in display order
func NewListingPage(projects []models.Project) *ListingPage {
	page := &ListingPage{Projects: make([]ListingItem, 0, len(projects))}
	for _, p := range projects {
		page.Projects = append(page.Projects, ListingItem{
			URL:         ProjectURL(p.Slug),
			Title:       p.Title,
			Category:    p.Category,
			Description: p.Description,
			Featured:    p.Featured,
			Cover:       Image{Src: imageOrPlaceholder(p.CoverImage), Alt: p.Title},
		})
	}
	return page
}
