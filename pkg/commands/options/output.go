package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	Out  io.Writer
}

func (o *OutputOptions) out() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

// Print writes v as a single JSON line.
func (o *OutputOptions) Print(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(o.out(), string(b))
	return nil
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(o.out(), string(b))
		return nil
	}
	return err
}
