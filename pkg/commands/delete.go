package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/runner/remove"
)

type deleteJSON struct {
	Deleted bool         `json:"deleted"`
	Entry   *entry.Entry `json:"entry,omitempty"`
}

func addDelete(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Delete the mood recorded for a day",
		Example: `
mood delete
mood delete --on yesterday
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn(s.journal.Now())
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				On:      on,
				Journal: s.journal,
				Out:     cmd.OutOrStdout(),
			}
			if output.JSON {
				r.Out = io.Discard
			}
			removed, ok, err := r.Do(context.Background())
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				res := deleteJSON{Deleted: ok}
				if ok {
					res.Entry = &removed
				}
				return output.Print(res)
			}
			return nil
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
