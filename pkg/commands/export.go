package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	format := export.FormatJSON

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every entry, newest first",
		Example: `
mood export > moods.json
mood export -o yaml
`,
		Args:      cobra.NoArgs,
		ValidArgs: []string{export.FormatJSON, export.FormatYAML},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			r := export.Export{
				Format:  format,
				Journal: s.journal,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", format, "Output format. One of 'json' or 'yaml'.")
	topLevel.AddCommand(cmd)
}
