package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/timeutil"
)

// WindowOptions selects the range for history and stats.
type WindowOptions struct {
	Last string
	From string
	To   string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions, last string) {
	cmd.Flags().StringVar(&o.Last, "last", last,
		`Window ending today, for example 7d, 30d, 90d or 2w.`)
	cmd.Flags().StringVar(&o.From, "from", "",
		`First day of a custom range, example: --from="2024-01-01".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Last day of a custom range, defaults to today.`)
}

// Set reports whether any window flag was given.
func (o *WindowOptions) Set() bool {
	return o.Last != "" || o.From != "" || o.To != ""
}

// Resolve turns the flags into a range relative to clock.
func (o *WindowOptions) Resolve(clock timeutil.Clock) (timeutil.Range, error) {
	return timeutil.Resolve(clock.Now(), o.Last, o.From, o.To)
}
