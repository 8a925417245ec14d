package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectsJSON = `{"projects":[{"slug":"x","title":"X","content":"<p>x</p>","tags":["a"],"next_project":{"slug":"y","title":"Y"}}]}`

const projectsYAML = `projects:
  - slug: y
    title: "Y"
    featured: true
    content: "<p>y</p>"
    gallery:
      - /img/y1.jpg
    prev_project:
      slug: x
      title: "X"
`

func writeFile(t *testing.T, dir, name, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects.json", projectsJSON)

	t.Setenv("DATA_PATH", dir)
	t.Setenv("PROJECTS_FILE", "projects.json")
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, dir, cfg.DataPath)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "json", cfg.LogFormat)
	require.Len(t, cfg.Projects.Projects, 1)
	assert.Equal(t, "x", cfg.Projects.Projects[0].Slug)
	assert.Equal(t, "y", cfg.Projects.Projects[0].NextProject.Slug)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("PROJECTS_FILE", "projects.json")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to read")
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestLoadProjectsYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects.yaml", projectsYAML)

	list, err := LoadProjects(filepath.Join(dir, "projects.yaml"))
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)

	p := list.Projects[0]
	assert.True(t, p.Featured)
	assert.EqualValues(t, "<p>y</p>", p.Content)
	assert.Equal(t, []string{"/img/y1.jpg"}, p.Gallery)
	require.NotNil(t, p.PrevProject)
	assert.Equal(t, "X", p.PrevProject.Title)
	assert.Nil(t, p.NextProject)
}

func TestLoadProjectsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "projects.json", `{"projects": [`)

	_, err := LoadProjects(filepath.Join(dir, "projects.json"))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestBundledProjectData(t *testing.T) {
	list, err := LoadProjects(filepath.Join("..", "..", "data", "projects.json"))
	require.NoError(t, err)
	require.NotEmpty(t, list.Projects)

	seen := make(map[string]bool)
	for _, p := range list.Projects {
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true
	}
	for _, p := range list.Projects {
		if p.PrevProject != nil {
			assert.True(t, seen[p.PrevProject.Slug], "%s: unknown prev %q", p.Slug, p.PrevProject.Slug)
		}
		if p.NextProject != nil {
			assert.True(t, seen[p.NextProject.Slug], "%s: unknown next %q", p.Slug, p.NextProject.Slug)
		}
	}
}
