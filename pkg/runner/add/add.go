// Package add records the mood for a day.
package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/printers"
)

type Add struct {
	Mood    entry.Level
	Notes   string
	On      *time.Time
	Journal *journal.Journal
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) (journal.MutationResult, error) {
	if n.Journal == nil {
		return journal.MutationResult{}, errors.New("can not add, no journal")
	}
	on := n.Journal.Now()
	if n.On != nil {
		on = *n.On
	}

	res, err := n.Journal.AddOrUpdate(entry.New(on, n.Mood, n.Notes))
	if err != nil {
		return res, err
	}

	if n.Printer != nil {
		n.Printer.Mutation(res)
	}
	return res, nil
}
