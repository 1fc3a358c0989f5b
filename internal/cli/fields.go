package cli

import (
	"encoding/json"
	"fmt"

	"github.com/croftworks/prsync/internal/app"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newFieldsCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the project's single-select fields and their options",
		Long: `List every single-select field of the project board together with the
field and option node ids. Useful for diagnosing a board whose option
names do not match the statuses this tool sets.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListFieldsUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case "table":
				for _, f := range out.Fields {
					fmt.Fprintln(w, headerStyle.Render(f.Name)+dimStyle.Render(" ("+f.ID+")"))
					for _, opt := range f.Options {
						fmt.Fprintf(w, "  %-20s %s\n", opt.ID, opt.Name)
					}
				}
				return nil
			case "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Fields)
			case "yaml":
				data, err := yaml.Marshal(out.Fields)
				if err != nil {
					return fmt.Errorf("encode fields: %w", err)
				}
				_, err = w.Write(data)
				return err
			default:
				return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, json or yaml")

	return cmd
}
