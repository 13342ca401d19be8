package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/undo"
)

func addUndo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the last add, delete or seed",
		Long: `Revert the last change made to the journal. Only one level of undo is kept.
An undo is refused when the day has been edited since the change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			r := undo.Undo{
				Journal: s.journal,
				Out:     cmd.OutOrStdout(),
			}
			if output.JSON {
				r.Out = io.Discard
			}
			if err := r.Do(context.Background()); err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return output.Print(map[string]int{"entries": s.journal.Len()})
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
