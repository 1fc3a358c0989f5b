package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/croftworks/prsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so host state cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GITHUB_TOKEN", "TOKEN", "ORG", "REPO", "PROJECT_NUMBER", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestLoader_Load_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("ORG", "acme")
	t.Setenv("REPO", "widgets")
	t.Setenv("PROJECT_NUMBER", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := NewLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test", cfg.Token)
	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, "widgets", cfg.Repo)
	assert.Equal(t, 4, cfg.ProjectNumber)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, domain.DefaultGraphQLURL, cfg.GraphQLURL)
}

func TestLoader_Load_TokenAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN", "ghp_alias")
	t.Setenv("ORG", "acme")
	t.Setenv("REPO", "widgets")
	t.Setenv("PROJECT_NUMBER", "4")

	cfg, err := NewLoader(t.TempDir()).Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_alias", cfg.Token)
}

func TestLoader_Load_MissingValues(t *testing.T) {
	clearEnv(t)

	_, err := NewLoader(t.TempDir()).Load()

	require.ErrorIs(t, err, domain.ErrMissingConfig)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	assert.Contains(t, err.Error(), "PROJECT_NUMBER")
}

func TestLoader_Load_InvalidProjectNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("ORG", "acme")
	t.Setenv("REPO", "widgets")
	t.Setenv("PROJECT_NUMBER", "four")

	_, err := NewLoader(t.TempDir()).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROJECT_NUMBER must be an integer")
}

func TestLoader_Load_FileFillsGaps(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")

	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte("owner = \"acme\"\nrepo = \"widgets\"\nproject = 4\n"), 0o644))

	cfg, err := NewLoader(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, "acme", cfg.Owner)
	assert.Equal(t, "widgets", cfg.Repo)
	assert.Equal(t, 4, cfg.ProjectNumber)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("ORG", "env-org")
	t.Setenv("PROJECT_NUMBER", "7")

	dir := t.TempDir()
	file := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(file, []byte("owner = \"file-org\"\nrepo = \"widgets\"\nproject = 4\n"), 0o644))

	cfg, err := NewLoader(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, "env-org", cfg.Owner)
	assert.Equal(t, "widgets", cfg.Repo, "file still fills the values env leaves empty")
	assert.Equal(t, 7, cfg.ProjectNumber)
}

func TestLoader_Load_MalformedFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_test")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("owner = ["), 0o644))

	_, err := NewLoader(dir).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), ConfigFileName)
}

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantOwner string
		wantRepo  string
		wantOK    bool
	}{
		{"ssh scp-like", "git@github.com:acme/widgets.git", "acme", "widgets", true},
		{"ssh scheme", "ssh://git@github.com/acme/widgets.git", "acme", "widgets", true},
		{"https", "https://github.com/acme/widgets", "acme", "widgets", true},
		{"https with .git", "https://github.com/acme/widgets.git", "acme", "widgets", true},
		{"nested path", "https://gitlab.example.com/group/sub/repo", "", "", false},
		{"local path", "/srv/git/widgets.git", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ok := parseRemoteURL(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
