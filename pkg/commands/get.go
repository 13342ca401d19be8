package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var calendar bool

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"history", "ls"},
		Short:   "Show recorded moods, newest first",
		Example: `
mood get
mood get --last 2w
mood get --from 2024-01-01 --to 2024-01-31 --calendar
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			r := get.Get{
				Calendar: calendar,
				Journal:  s.journal,
				Printer:  &printers.PrettyPrint{Out: cmd.OutOrStdout()},
			}
			if wo.Set() {
				rng, err := wo.Resolve(s.journal)
				if err != nil {
					return output.HandleError(err)
				}
				r.Range = &rng
			}
			if output.JSON {
				all, err := r.Entries()
				if err != nil {
					return output.HandleError(err)
				}
				return output.Print(all)
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddWindowArgs(cmd, wo, "")
	cmd.Flags().BoolVar(&calendar, "calendar", false, "Show a month calendar colored by mood.")
	topLevel.AddCommand(cmd)
}
