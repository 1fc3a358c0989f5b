package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/croftworks/prsync/internal/app"
	"github.com/croftworks/prsync/internal/domain"
	"github.com/croftworks/prsync/internal/usecase"
	"github.com/spf13/cobra"
)

func newSyncCommand(c *app.Container) *cobra.Command {
	var prNumber int

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync the linked issues of a pull request with its current state",
		Long: `Fetch the pull request, derive the target project status from its
state, and apply it to every issue the PR closes. Merged PRs also close
the issues; abandoned PRs clear their assignees; open PRs assign the PR's
assignees (or its author).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if prNumber == 0 {
				raw := os.Getenv("PR_NUMBER")
				if raw == "" {
					return errors.New("pull request number required: pass --pr or set PR_NUMBER")
				}
				n, err := strconv.Atoi(raw)
				if err != nil {
					return fmt.Errorf("PR_NUMBER must be an integer, got %q", raw)
				}
				prNumber = n
			}

			out, err := c.SyncPRUseCase().Execute(cmd.Context(), usecase.SyncPRInput{PRNumber: prNumber})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "PR #%d is %s, target status %q\n",
				out.PR.Number, prStateLabel(out.PR), out.Plan.Status)

			if len(out.Results) == 0 {
				fmt.Fprintln(w, dimStyle.Render("no linked issues"))
				return nil
			}

			for _, r := range out.Results {
				fmt.Fprintln(w, successStyle.Render(resultLine(r)))
				for _, warning := range r.Warnings {
					fmt.Fprintln(w, warnStyle.Render("  warning: "+warning))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&prNumber, "pr", 0, "Pull request number (defaults to the PR_NUMBER environment variable)")

	return cmd
}

// prStateLabel describes the PR state for humans.
func prStateLabel(pr domain.PullRequest) string {
	switch {
	case pr.Merged:
		return "merged"
	case pr.State == domain.PRStateClosed:
		return "closed without merging"
	case pr.Draft:
		return "an open draft"
	default:
		return "open"
	}
}

// resultLine summarizes what happened to one linked issue.
func resultLine(r usecase.IssueResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "issue #%d: status %q", r.Number, r.Status)
	if r.Closed {
		b.WriteString(", closed")
	}
	if len(r.Assigned) > 0 {
		b.WriteString(", assigned to ")
		b.WriteString(strings.Join(r.Assigned, ", "))
	}
	return b.String()
}
