// Package remove deletes the entry of a day.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
)

type Remove struct {
	On      *time.Time
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) (entry.Entry, bool, error) {
	if n.Journal == nil {
		return entry.Entry{}, false, errors.New("can not delete, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	on := n.Journal.Now()
	if n.On != nil {
		on = *n.On
	}

	removed, ok := n.Journal.Delete(on)
	if !ok {
		_, _ = fmt.Fprintf(out, "No entry for %s.\n", entry.KeyOf(on))
		return removed, false, nil
	}
	_, _ = fmt.Fprintf(out, "Deleted %s. Run `mood undo` to bring it back.\n", removed)
	return removed, true, nil
}
