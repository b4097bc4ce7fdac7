package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -o.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// PrintFlags selects the output format of a command.
type PrintFlags struct {
	Output string
}

// AddFlags binds the -o flag to fs.
func (f *PrintFlags) AddFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Output, "output", "o", OutputText, "Output format: text, json or yaml")
}

// Validate returns an error for an unrecognized format.
func (f *PrintFlags) Validate() error {
	switch f.Output {
	case OutputText, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("unrecognized --output %q, only 'text', 'json' and 'yaml' are supported", f.Output)
}

// Print writes v to w in the selected format, calling text for the
// text format.
func (f *PrintFlags) Print(w io.Writer, v any, text func(*tabwriter.Writer)) error {
	switch f.Output {
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	text(tw)
	return tw.Flush()
}
