package services

import (
	"errors"
	"fmt"

	"dconn.dev/folio/internal/models"
)

// ErrProjectNotFound is returned when no project matches a slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// GetByID returns the first project whose slug matches
func (s *ProjectService) GetByID(slug string) (*models.Project, error) {
	if p := Find(s.projects.Projects, slug); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}

// Featured returns the collection with featured projects first,
// preserving the original order within each group.
func (s *ProjectService) Featured() []models.Project {
	out := make([]models.Project, 0, len(s.projects.Projects))
	for _, p := range s.projects.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	for _, p := range s.projects.Projects {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Find performs a linear search for slug.
// Slugs are assumed unique; on duplicates the first match wins.
func Find(projects []models.Project, slug string) *models.Project {
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i]
		}
	}
	return nil
}
