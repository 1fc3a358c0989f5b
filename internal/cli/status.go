package cli

import (
	"fmt"
	"strings"

	"github.com/croftworks/prsync/internal/app"
	"github.com/croftworks/prsync/internal/domain"
	"github.com/croftworks/prsync/internal/usecase"
	"github.com/spf13/cobra"
)

func newStatusCommand(c *app.Container) *cobra.Command {
	var issueNumber int
	var nodeID string

	cmd := &cobra.Command{
		Use:   "status <status>",
		Short: "Set the project status of a single issue",
		Long: "Set the \"" + domain.StatusFieldName + "\" field of one issue on the project board.\n" +
			"Identify the issue by --issue or --node-id (exactly one).\n\n" +
			"Valid statuses: " + statusNames() + ".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[0])
			if err != nil {
				return fmt.Errorf("%w (valid: %s)", err, statusNames())
			}

			out, err := c.SetStatusUseCase().Execute(cmd.Context(), usecase.SetStatusInput{
				IssueNumber: issueNumber,
				IssueNodeID: nodeID,
				Status:      status,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(),
				successStyle.Render(fmt.Sprintf("set %s to %q", out.IssueNodeID, out.Status)))
			return nil
		},
	}

	cmd.Flags().IntVar(&issueNumber, "issue", 0, "Issue number")
	cmd.Flags().StringVar(&nodeID, "node-id", "", "Issue GraphQL node id")

	return cmd
}

// statusNames lists the recognized statuses for help and error text.
func statusNames() string {
	all := domain.AllStatuses()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
