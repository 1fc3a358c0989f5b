package domain

import (
	"fmt"
	"strings"
)

// DefaultGraphQLURL is the GitHub GraphQL endpoint.
const DefaultGraphQLURL = "https://api.github.com/graphql"

// Config holds the process-lifetime configuration.
// Values are immutable after loading.
type Config struct {
	Token         string // GitHub token (env only)
	Owner         string // Organization or user owning repo and project
	Repo          string // Repository name
	GraphQLURL    string // GraphQL endpoint, DefaultGraphQLURL unless overridden
	LogLevel      string // zap level name, "info" when empty
	ProjectNumber int    // Projects v2 board number
}

// Validate reports every missing required value at once.
func (c Config) Validate() error {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "token (GITHUB_TOKEN)")
	}
	if c.Owner == "" {
		missing = append(missing, "owner (ORG)")
	}
	if c.Repo == "" {
		missing = append(missing, "repository (REPO)")
	}
	if c.ProjectNumber <= 0 {
		missing = append(missing, "project number (PROJECT_NUMBER)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	return nil
}
