// Package seed fills the journal with sample data.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/seed"
)

type Seed struct {
	Days    int
	Seed    int64
	Force   bool
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Seed) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not seed, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Journal.Len() > 0 && !n.Force {
		return fmt.Errorf("journal already has %d entries, use --force to replace them", n.Journal.Len())
	}

	g := seed.New(n.Seed)
	g.Days = n.Days
	entries := g.Generate(n.Journal.Now())
	if err := n.Journal.ReplaceAll(entries); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Generated %d sample entries. Run `mood undo` to put the previous journal back.\n", len(entries))
	return nil
}
