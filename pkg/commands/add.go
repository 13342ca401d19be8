package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/commands/options"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/glyph"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/runner/add"
)

type mutationJSON struct {
	Kind     string       `json:"kind"`
	Entry    entry.Entry  `json:"entry"`
	Previous *entry.Entry `json:"previous,omitempty"`
}

func addAdd(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var mood entry.Level

	validArgs := make([]string, 0, 5)
	long := strings.Builder{}
	long.WriteString("Record the mood for a day. Recording again on the same day replaces it.\n\n")
	long.WriteString("Moods:\n")
	for _, g := range glyph.DefaultGlyphs() {
		long.WriteString(fmt.Sprintf("%s %s: %s\n", g.Key, g.Symbol, g.Meaning))
		validArgs = append(validArgs, g.Key)
	}

	cmd := &cobra.Command{
		Use:     "add <mood> [notes...]",
		Aliases: []string{"record"},
		Short:   "Record today's mood",
		Long:    long.String(),
		Example: `
mood add 4 had a good walk
mood add "very good" --on yesterday
mood add 2 --on 2024-1-15
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires a mood from %d to %d", entry.MinLevel, entry.MaxLevel)
			}
			l, ok := glyph.LevelForAlias(args[0])
			if !ok {
				return fmt.Errorf("unknown mood %q, use %d-%d", args[0], entry.MinLevel, entry.MaxLevel)
			}
			mood = l
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn(s.journal.Now())
			if err != nil {
				return output.HandleError(err)
			}
			r := add.Add{
				Mood:    mood,
				Notes:   strings.Join(args[1:], " "),
				On:      on,
				Journal: s.journal,
			}
			if !output.JSON {
				r.Printer = &printers.PrettyPrint{Out: cmd.OutOrStdout()}
			}
			res, err := r.Do(context.Background())
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return output.Print(mutationJSON{Kind: string(res.Kind), Entry: res.Entry, Previous: res.Previous})
			}
			return nil
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
