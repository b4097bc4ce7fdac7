package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/govalues/measure/units"
)

const unitsExample = `  # List the catalog
  %[1]s units

  # Describe feet and kilometers per hour as JSON
  %[1]s units ft kilometer_per_hour -o json`

// UnitRow describes one catalog unit.
type UnitRow struct {
	Name      string `json:"name" yaml:"name"`
	Label     string `json:"label" yaml:"label"`
	Dimension string `json:"dimension" yaml:"dimension"`
	Magnitude string `json:"magnitude" yaml:"magnitude"`
	Decimal   string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Origin    string `json:"origin,omitempty" yaml:"origin,omitempty"`
}

// NewUnitRow describes e.
// Decimal is empty unless the magnitude is a terminating decimal that
// fits a decimal.Decimal.
func NewUnitRow(e units.Entry) UnitRow {
	u := e.Unit
	r := UnitRow{
		Name:      e.Name,
		Label:     u.Label(),
		Dimension: u.Dimension().String(),
		Magnitude: u.Magnitude().String(),
	}
	if d, err := u.Magnitude().Decimal(); err == nil {
		r.Decimal = d.String()
	}
	if o, ok := u.Origin(); ok {
		r.Origin = o.RatString()
	}
	return r
}

// UnitsOptions lists catalog units.
type UnitsOptions struct {
	PrintFlags

	Keys    []string
	entries []units.Entry

	IOStreams
}

func NewUnitsOptions(streams IOStreams) *UnitsOptions {
	return &UnitsOptions{IOStreams: streams}
}

// NewCommandUnits returns the units command.
func NewCommandUnits(parent string, streams IOStreams) *cobra.Command {
	o := NewUnitsOptions(streams)
	cmd := &cobra.Command{
		Use:     "units [UNIT...]",
		Short:   "List the units of the catalog",
		Example: fmt.Sprintf(unitsExample, parent),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}
	o.PrintFlags.AddFlags(cmd.Flags())
	return cmd
}

func (o *UnitsOptions) Complete(cmd *cobra.Command, args []string) error {
	o.Keys = args
	if len(args) == 0 {
		o.entries = units.Catalog()
		return nil
	}
	o.entries = make([]units.Entry, 0, len(args))
	for _, key := range args {
		e, ok := units.Lookup(key)
		if !ok {
			return usageErrorf(cmd, "unknown unit %q", key)
		}
		o.entries = append(o.entries, e)
	}
	return nil
}

func (o *UnitsOptions) Validate() error {
	return o.PrintFlags.Validate()
}

func (o *UnitsOptions) Run() error {
	rows := make([]UnitRow, len(o.entries))
	for i, e := range o.entries {
		rows[i] = NewUnitRow(e)
	}
	return o.Print(o.Out, rows, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "NAME\tLABEL\tDIMENSION\tMAGNITUDE\n")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, r.Label, r.Dimension, r.Magnitude)
		}
	})
}
