package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dconn.dev/folio/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			Slug:        "x",
			Title:       "Project X",
			Description: "The first one",
			Category:    "Web",
			Featured:    true,
			Date:        "May 2024",
			Client:      "Acme",
			Timeline:    "4 weeks",
			Tags:        []string{"a", "b", "c"},
			LiveURL:     "https://x.example.com",
			GitHubURL:   "https://github.com/example/x",
			CoverImage:  "/img/x.jpg",
			Content:     "<h2>Overview</h2><p>Body</p>",
			Services:    []string{"Design", "Build"},
			Tools:       []string{"Go", "Figma"},
			Gallery:     []string{"/img/x1.jpg", ""},
			PrevProject: &models.ProjectRef{Slug: "w", Title: "Project W"},
			NextProject: &models.ProjectRef{Slug: "y", Title: "Project Y"},
		},
		{
			Slug:        "y",
			Title:       "Project Y",
			Description: "The bare one",
			Category:    "Print",
			Tags:        []string{"solo"},
			Content:     "<p>Short</p>",
		},
		{
			Slug:  "x",
			Title: "Shadowed X",
		},
	}
}

func TestResolveFound(t *testing.T) {
	projects := sampleProjects()

	res := Resolve(projects, "y")
	require.NotNil(t, res.Project)
	assert.Equal(t, "Project Y", res.Project.Title)
	assert.Empty(t, res.Redirect)
}

func TestResolveMissingRedirects(t *testing.T) {
	res := Resolve(sampleProjects(), "nope")
	assert.Nil(t, res.Project)
	assert.Equal(t, ListingRoute, res.Redirect)
}

func TestResolveDuplicateFirstWins(t *testing.T) {
	res := Resolve(sampleProjects(), "x")
	require.NotNil(t, res.Project)
	assert.Equal(t, "Project X", res.Project.Title)
}

func TestResolveEmptyCollection(t *testing.T) {
	res := Resolve(nil, "x")
	assert.Nil(t, res.Project)
	assert.Equal(t, ListingRoute, res.Redirect)
}

func TestDetailMountScrollsToTop(t *testing.T) {
	d := NewDetail(sampleProjects())

	page, cmds := d.Update("x")
	require.NotNil(t, page)
	assert.Equal(t, "Project X", page.Title)
	assert.Equal(t, []Command{ScrollToTop{}}, cmds)
}

func TestDetailSameProjectNoEffects(t *testing.T) {
	d := NewDetail(sampleProjects())
	d.Update("x")

	page, cmds := d.Update("x")
	require.NotNil(t, page)
	assert.Empty(t, cmds)
}

func TestDetailChangingProjectScrollsAgain(t *testing.T) {
	d := NewDetail(sampleProjects())
	d.Update("x")

	page, cmds := d.Update("y")
	require.NotNil(t, page)
	assert.Equal(t, "Project Y", page.Title)
	assert.Equal(t, []Command{ScrollToTop{}}, cmds)

	_, cmds = d.Update("x")
	assert.Equal(t, []Command{ScrollToTop{}}, cmds)
}

func TestDetailMissingNavigatesOnce(t *testing.T) {
	d := NewDetail(sampleProjects())

	navigations := 0
	for i := 0; i < 3; i++ {
		page, cmds := d.Update("nope")
		assert.Nil(t, page)
		for _, c := range cmds {
			if nav, ok := c.(Navigate); ok {
				assert.Equal(t, ListingRoute, nav.To)
				navigations++
			}
		}
	}
	assert.Equal(t, 1, navigations)
}

func TestDetailMissingAfterFound(t *testing.T) {
	d := NewDetail(sampleProjects())
	d.Update("x")

	page, cmds := d.Update("gone")
	assert.Nil(t, page)
	assert.Equal(t, []Command{Navigate{To: ListingRoute}, ScrollToTop{}}, cmds)
}
