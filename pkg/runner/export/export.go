// Package export writes the whole journal in a portable format.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"tableflip.dev/mood/pkg/entry"
	"tableflip.dev/mood/pkg/journal"
)

// Formats supported by Export.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type Export struct {
	Format  string
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	all := n.Journal.Entries()
	entry.SortNewestFirst(all)

	switch strings.ToLower(n.Format) {
	case "", FormatJSON:
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format %q, use json or yaml", n.Format)
}
