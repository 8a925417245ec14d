package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"dconn.dev/folio/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string
	DataPath        string
	ProjectsFile    string
	StaticPath      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	Projects        *models.ProjectList
}

// settings are the values read from the environment
type settings struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	DataPath        string        `env:"DATA_PATH" envDefault:"data"`
	ProjectsFile    string        `env:"PROJECTS_FILE" envDefault:"projects.json"`
	StaticPath      string        `env:"STATIC_PATH" envDefault:"static"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the environment and the project data file
func Load() (*Config, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	projects, err := LoadProjects(filepath.Join(s.DataPath, s.ProjectsFile))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerAddr:      s.ServerAddr,
		DataPath:        s.DataPath,
		ProjectsFile:    s.ProjectsFile,
		StaticPath:      s.StaticPath,
		LogLevel:        s.LogLevel,
		LogFormat:       s.LogFormat,
		ShutdownTimeout: s.ShutdownTimeout,
		Projects:        projects,
	}, nil
}

// LoadProjects reads a project list, as YAML for .yaml/.yml files and
// JSON otherwise. The content field of each project is trusted as
// already-sanitized HTML from this point on.
func LoadProjects(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var projects models.ProjectList
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &projects)
	default:
		err = json.Unmarshal(data, &projects)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &projects, nil
}
