// Package undo reverts the last journal change.
package undo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/journal"
)

type Undo struct {
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Undo) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not undo, no journal")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	c, err := n.Journal.Undo()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Undid: %s\n", c)
	return nil
}
