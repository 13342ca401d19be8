package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show where the journal is stored",
		Example: `
mood info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			i := info.Info{
				Config:  s.config,
				Journal: s.journal,
				Store:   s.disk,
				Out:     cmd.OutOrStdout(),
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
