package commands

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/runner/seed"
	gen "tableflip.dev/mood/pkg/seed"
)

func addSeed(topLevel *cobra.Command) {
	r := seed.Seed{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the journal with sample moods",
		Long: `Replace the journal with generated sample data covering the days before today.
A journal that already has entries is only replaced with --force. The previous
journal can be brought back with 'mood undo'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			if !cmd.Flags().Changed("seed") {
				r.Seed = time.Now().UnixNano()
			}
			r.Journal = s.journal
			r.Out = cmd.OutOrStdout()
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

	cmd.Flags().IntVar(&r.Days, "days", gen.DefaultDays, "Number of days before today to cover.")
	cmd.Flags().Int64Var(&r.Seed, "seed", 0, "Random seed, for repeatable sample data.")
	cmd.Flags().BoolVar(&r.Force, "force", false, "Replace a journal that already has entries.")
	topLevel.AddCommand(cmd)
}
