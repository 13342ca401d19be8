// Package stats prints mood statistics for a window, optionally following
// changes made by other processes.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/mood/pkg/analytics"
	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/printers"
	"tableflip.dev/mood/pkg/store"
	"tableflip.dev/mood/pkg/timeutil"
)

// Watcher streams store change events.
type Watcher interface {
	Watch(ctx context.Context, logger *log.Logger) (<-chan store.Event, error)
}

type Stats struct {
	// Resolve builds the range from "now"; it runs again on every refresh so
	// a window follows the calendar.
	Resolve func(now timeutil.Clock) (timeutil.Range, error)
	JSON    bool
	Journal *journal.Journal
	Watcher Watcher
	Logger  *log.Logger
	Out     io.Writer
}

func (n *Stats) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

// Summary computes the statistics for the current journal contents.
func (n *Stats) Summary() (analytics.Summary, error) {
	if n.Journal == nil {
		return analytics.Summary{}, errors.New("can not compute stats, no journal")
	}
	if n.Resolve == nil {
		return analytics.Summary{}, errors.New("can not compute stats, no range")
	}
	r, err := n.Resolve(n.Journal)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(n.Journal.Entries(), r), nil
}

func (n *Stats) Do(ctx context.Context) error {
	if err := n.render(); err != nil {
		return err
	}
	if n.Watcher == nil {
		return nil
	}

	events, err := n.Watcher.Watch(ctx, n.Logger)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Key != n.Journal.Key() {
				continue
			}
			n.Journal.Load()
			n.clear()
			if err := n.render(); err != nil {
				return err
			}
		}
	}
}

func (n *Stats) render() error {
	s, err := n.Summary()
	if err != nil {
		return err
	}
	if n.JSON {
		b, err := json.Marshal(s.Report())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.out(), string(b))
		return nil
	}
	pp := printers.PrettyPrint{Out: n.out()}
	pp.NewLine()
	pp.Summary(s)
	return nil
}

// clear wipes the terminal between refreshes. Output that is not a terminal
// keeps every rendering.
func (n *Stats) clear() {
	f, ok := n.out().(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return
	}
	_, _ = fmt.Fprint(f, "\033[H\033[2J")
}
