package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/mood/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-2-28", --on="2/28" or --on=yesterday. Defaults to today.`)
}

// GetOn returns the chosen day, or nil for today.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(o.OnString)) {
	case "", "today":
		return nil, nil
	case "yesterday":
		t := entry.Normalize(now).AddDate(0, 0, -1)
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			t, err = entry.ParseDate(o.OnString)
			if err != nil {
				return nil, err
			}
			return &t, nil
		}
		t = t.AddDate(now.Year(), 0, 0)
		// A journal looks back: 12/5 said on 1/3 means last December.
		if entry.KeyOf(t) > entry.KeyOf(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return &t, nil
}
