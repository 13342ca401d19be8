// Package info reports where the journal lives.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/mood/pkg/journal"
	"tableflip.dev/mood/pkg/store"
)

// KeyLister lists the keys held by a store.
type KeyLister interface {
	Keys() []string
}

type Info struct {
	Config  store.Config
	Journal *journal.Journal
	Store   KeyLister
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintf(out, "%s found on env, using %s\n", store.ConfigPathEnv, override)
	} else {
		_, _ = fmt.Fprintf(out, "%s env var not set\n", store.ConfigPathEnv)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if file := store.ConfigFile(n.Config); file != "" {
		_, _ = fmt.Fprintln(out, "Config.file: ", file)
	}
	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key:  ", n.Config.Key())
	if n.Store != nil {
		keys := n.Store.Keys()
		sort.Strings(keys)
		_, _ = fmt.Fprintln(out, "Stored keys: ", strings.Join(keys, ", "))
	}

	if n.Journal == nil {
		return fmt.Errorf("failed to open the journal")
	}

	_, _ = fmt.Fprintf(out, "Entries:      %d\n", n.Journal.Len())
	if today, ok := n.Journal.Today(); ok {
		_, _ = fmt.Fprintf(out, "Today:        %s\n", today)
	} else {
		_, _ = fmt.Fprintln(out, "Today:        not recorded yet")
	}
	if c, ok := n.Journal.LastChange(); ok {
		_, _ = fmt.Fprintf(out, "Undo:         %s\n", c)
	}
	return nil
}
