// Package key provides CLI helpers to display the mood legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/mood/pkg/glyph"
)

// Key prints a glyph legend describing mood levels.
type Key struct {
	Out io.Writer
}

// Do renders the legend, best mood first.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Symbol"), bold.Sprint("Meaning"))
	glyfs := glyph.DefaultGlyphs()
	for i := len(glyfs) - 1; i >= 0; i-- {
		g := glyfs[i]
		tbl.AddRow(g.Key, g.Paint(g.Symbol), g.Paint(g.Meaning))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
