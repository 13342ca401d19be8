package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/runner/stats"
	"tableflip.dev/mood/pkg/timeutil"
)

func addStats(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:     "stats",
		Aliases: []string{"report"},
		Short:   "Show mood statistics for a window",
		Example: `
mood stats
mood stats --last 7d
mood stats --last 90d --watch
mood stats --from 2024-01-01 --to 2024-03-31 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			r := stats.Stats{
				Resolve: wo.Resolve,
				JSON:    output.JSON,
				Journal: s.journal,
				Logger:  s.logger,
				Out:     cmd.OutOrStdout(),
			}

			ctx := context.Background()
			if watch {
				r.Watcher = s.disk
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
			}
			return output.HandleError(r.Do(ctx))
		},
	}

	options.AddWindowArgs(cmd, wo, timeutil.DefaultWindow)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and refresh when the journal changes.")
	topLevel.AddCommand(cmd)
}
