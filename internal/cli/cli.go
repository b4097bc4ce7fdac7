// Package cli implements the measure command, which inspects the unit
// catalog and the conversion plans between its units.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// IOStreams holds the writers a command prints to.
type IOStreams struct {
	Out    io.Writer
	ErrOut io.Writer
}

const measureLong = `Inspect units of measure and the conversions between them.

Units are named by their catalog name, such as "foot", or by their label,
such as "ft". Compound units are available under their catalog names, for
example "meter_per_second" or "m / s".`

// NewCommandMeasure returns the root command.
func NewCommandMeasure(name string, streams IOStreams) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         "Inspect units of measure",
		Long:          measureLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.ErrOut)
	cmd.AddCommand(NewCommandUnits(name, streams))
	cmd.AddCommand(NewCommandPlan(name, streams))
	return cmd
}

// usageErrorf returns an error pointing the user at the help of cmd.
func usageErrorf(cmd *cobra.Command, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s\nSee '%s -h' for help and examples", msg, cmd.CommandPath())
}
