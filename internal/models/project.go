package models

import "html/template"

// SanitizedHTML is markup that has already been sanitized upstream.
// It is injected into pages without escaping, so only the data loader
// should produce values of this type.
type SanitizedHTML string

// HTML marks the markup as safe for html/template.
func (s SanitizedHTML) HTML() template.HTML {
	return template.HTML(s)
}

// ProjectRef is a lightweight pointer to an adjacent project
type ProjectRef struct {
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`
}

// Project represents a portfolio project
type Project struct {
	Slug        string        `json:"slug" yaml:"slug"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Category    string        `json:"category" yaml:"category"`
	Featured    bool          `json:"featured" yaml:"featured"`
	Date        string        `json:"date" yaml:"date"`
	Client      string        `json:"client" yaml:"client"`
	Timeline    string        `json:"timeline" yaml:"timeline"`
	Tags        []string      `json:"tags" yaml:"tags"`
	LiveURL     string        `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	GitHubURL   string        `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	CoverImage  string        `json:"cover_image,omitempty" yaml:"cover_image,omitempty"`
	Content     SanitizedHTML `json:"content" yaml:"content"`
	Services    []string      `json:"services" yaml:"services"`
	Tools       []string      `json:"tools" yaml:"tools"`
	Gallery     []string      `json:"gallery,omitempty" yaml:"gallery,omitempty"`
	PrevProject *ProjectRef   `json:"prev_project,omitempty" yaml:"prev_project,omitempty"`
	NextProject *ProjectRef   `json:"next_project,omitempty" yaml:"next_project,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
