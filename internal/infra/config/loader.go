// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/croftworks/prsync/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the optional repo-local configuration file.
const ConfigFileName = ".prsync.toml"

// Loader assembles the process configuration from, in precedence order:
// environment variables, the repo-local TOML file, and (for owner/repo) the
// origin remote of the enclosing git repository. The token is environment
// only.
type Loader struct {
	dir string
}

// NewLoader creates a new Loader rooted at the given directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// fileConfig is the schema of .prsync.toml.
type fileConfig struct {
	Owner   string `toml:"owner"`
	Repo    string `toml:"repo"`
	Project int    `toml:"project"`
}

// Load builds and validates the configuration.
// Validation failures happen before any network call.
func (l *Loader) Load() (domain.Config, error) {
	cfg := domain.Config{
		GraphQLURL: domain.DefaultGraphQLURL,
		Token:      firstEnv("GITHUB_TOKEN", "TOKEN"),
		Owner:      os.Getenv("ORG"),
		Repo:       os.Getenv("REPO"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	if raw := os.Getenv("PROJECT_NUMBER"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return domain.Config{}, fmt.Errorf("PROJECT_NUMBER must be an integer, got %q", raw)
		}
		cfg.ProjectNumber = n
	}

	file, err := l.loadFile()
	if err != nil {
		return domain.Config{}, err
	}
	if file != nil {
		if cfg.Owner == "" {
			cfg.Owner = file.Owner
		}
		if cfg.Repo == "" {
			cfg.Repo = file.Repo
		}
		if cfg.ProjectNumber == 0 {
			cfg.ProjectNumber = file.Project
		}
	}

	if cfg.Owner == "" || cfg.Repo == "" {
		if owner, repo, ok := l.inferOwnerRepo(); ok {
			if cfg.Owner == "" {
				cfg.Owner = owner
			}
			if cfg.Repo == "" {
				cfg.Repo = repo
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// loadFile reads the repo-local config file. Returns nil when absent.
func (l *Loader) loadFile() (*fileConfig, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ConfigFileName, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", ConfigFileName, err)
	}
	return &file, nil
}

// inferOwnerRepo derives owner/repo from the origin remote, when the working
// directory is inside a git repository with a GitHub remote.
func (l *Loader) inferOwnerRepo() (string, string, bool) {
	repo, err := git.PlainOpenWithOptions(l.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", false
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", false
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", false
	}
	return parseRemoteURL(urls[0])
}

// parseRemoteURL extracts owner and repo from the common GitHub remote
// formats: git@github.com:owner/repo.git, ssh://git@github.com/owner/repo.git
// and https://github.com/owner/repo(.git).
func parseRemoteURL(raw string) (string, string, bool) {
	var path string
	switch {
	case strings.HasPrefix(raw, "git@"):
		_, after, found := strings.Cut(raw, ":")
		if !found {
			return "", "", false
		}
		path = after
	case strings.Contains(raw, "://"):
		_, after, _ := strings.Cut(raw, "://")
		// Drop the host segment.
		i := strings.Index(after, "/")
		if i < 0 {
			return "", "", false
		}
		path = after[i+1:]
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// firstEnv returns the first non-empty value among the given variables.
func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
