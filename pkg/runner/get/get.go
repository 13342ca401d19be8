// Package get lists journal history.
package get

import (
	"context"
	"errors"

	"tableflip.dev/mood/pkg/analytics"
	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/timeutil"
)

type Get struct {
	Range    *timeutil.Range
	Calendar bool
	Journal  *journal.Journal
	Printer  *printers.PrettyPrint
}

// Entries returns the history to show, newest first.
func (n *Get) Entries() ([]entry.Entry, error) {
	if n.Journal == nil {
		return nil, errors.New("can not get, no journal")
	}
	all := n.Journal.Entries()
	if n.Range != nil {
		all = analytics.FilterByRange(all, n.Range.Start, n.Range.End)
	}
	entry.SortNewestFirst(all)
	return all, nil
}

func (n *Get) Do(ctx context.Context) error {
	all, err := n.Entries()
	if err != nil {
		return err
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	title := "History"
	if n.Range != nil {
		title = "History · " + n.Range.Label
	}
	pp.NewLine()
	pp.TitleWithCount(title, len(all))

	if n.Calendar {
		from, to := n.Journal.Now(), n.Journal.Now()
		if n.Range != nil {
			from, to = n.Range.Start, n.Range.End
		} else if len(all) > 0 {
			from = all[len(all)-1].Date
		}
		pp.NewLine()
		pp.Calendar(from, to, all...)
		return nil
	}
	pp.History(all...)
	return nil
}
