// Package cli provides the command-line interface for prsync.
package cli

import (
	"github.com/croftworks/prsync/internal/app"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for prsync.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "prsync",
		Short: "Keep a GitHub project board in step with pull request activity",
		Long: `prsync moves the issues a pull request closes across a GitHub
Projects v2 board as the PR progresses: draft PRs put them In Development,
review-ready PRs move them to Ready For Review, merges close them as Done,
and abandoned PRs return them to Selected for Development.

Configuration comes from GITHUB_TOKEN, ORG, REPO and PROJECT_NUMBER, with
.prsync.toml and the git origin remote filling in owner/repo when unset.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddCommand(
		newSyncCommand(c),
		newStatusCommand(c),
		newFieldsCommand(c),
	)

	return root
}
