package cli

import (
	"fmt"
	"math/big"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/govalues/measure"
	"github.com/govalues/measure/units"
)

const planLong = `Show how a value is converted from one unit to another.

The plan names the exact factor, the intermediate representation, the
arithmetic applied and whether the conversion may truncate or overflow.
Bounds are the source values that convert without overflow.`

const planExample = `  # Feet to inches in int32
  %[1]s plan ft in --from-rep int32 --to-rep int32

  # Temperatures as points, in YAML
  %[1]s plan degC degF --point -o yaml`

// PlanReport describes a conversion plan.
type PlanReport struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	FromRep  string `json:"fromRep" yaml:"fromRep"`
	ToRep    string `json:"toRep" yaml:"toRep"`
	Point    bool   `json:"point,omitempty" yaml:"point,omitempty"`
	Factor   string `json:"factor" yaml:"factor"`
	Decimal  string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Offset   string `json:"offset,omitempty" yaml:"offset,omitempty"`
	Via      string `json:"via" yaml:"via"`
	Strategy string `json:"strategy" yaml:"strategy"`
	Risk     string `json:"risk" yaml:"risk"`
	Exact    bool   `json:"exact" yaml:"exact"`
	Min      string `json:"min,omitempty" yaml:"min,omitempty"`
	Max      string `json:"max,omitempty" yaml:"max,omitempty"`
}

// NewPlanReport describes p.
func NewPlanReport(p *measure.Plan, point bool) PlanReport {
	r := PlanReport{
		From:     p.Src().Label(),
		To:       p.Dst().Label(),
		FromRep:  p.SrcKind().String(),
		ToRep:    p.DstKind().String(),
		Point:    point,
		Factor:   p.Factor().String(),
		Via:      p.Via().String(),
		Strategy: p.Strategy().String(),
		Risk:     p.Risk().String(),
		Exact:    p.IsExact(),
	}
	if d, err := p.Factor().Decimal(); err == nil {
		r.Decimal = d.String()
	}
	if off := p.Offset(); off.Sign() != 0 {
		r.Offset = off.RatString()
	}
	if lo, hi, ok := p.Bounds(); ok {
		r.Min, r.Max = formatBound(lo), formatBound(hi)
	}
	return r
}

// formatBound prints integers that fit 64 bits exactly and everything
// else as the nearest float64.
func formatBound(x *big.Rat) string {
	if x.IsInt() && (x.Num().IsInt64() || x.Num().IsUint64()) {
		return x.Num().String()
	}
	f, _ := x.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// PlanOptions resolves two units and prints the plan between them.
type PlanOptions struct {
	PrintFlags

	From    string
	To      string
	FromRep string
	ToRep   string
	Point   bool

	src, dst         units.Entry
	srcKind, dstKind measure.Kind

	IOStreams
}

func NewPlanOptions(streams IOStreams) *PlanOptions {
	return &PlanOptions{
		FromRep:   "float64",
		ToRep:     "float64",
		IOStreams: streams,
	}
}

// NewCommandPlan returns the plan command.
func NewCommandPlan(parent string, streams IOStreams) *cobra.Command {
	o := NewPlanOptions(streams)
	cmd := &cobra.Command{
		Use:     "plan FROM TO",
		Short:   "Show the conversion plan between two units",
		Long:    planLong,
		Example: fmt.Sprintf(planExample, parent),
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
	o.AddFlags(cmd.Flags())
	return cmd
}

// AddFlags binds the options of the plan command to fs.
func (o *PlanOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.FromRep, "from-rep", o.FromRep, "Representation of the source value, such as int32 or float64")
	fs.StringVar(&o.ToRep, "to-rep", o.ToRep, "Representation of the result")
	fs.BoolVar(&o.Point, "point", o.Point, "Convert points, accounting for the origins of the units")
	o.PrintFlags.AddFlags(fs)
}

func (o *PlanOptions) Complete(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return usageErrorf(cmd, "expected two units FROM and TO, got %q", args)
	}
	o.From, o.To = args[0], args[1]

	var ok bool
	if o.src, ok = units.Lookup(o.From); !ok {
		return usageErrorf(cmd, "unknown unit %q", o.From)
	}
	if o.dst, ok = units.Lookup(o.To); !ok {
		return usageErrorf(cmd, "unknown unit %q", o.To)
	}

	var err error
	if o.srcKind, err = measure.ParseKind(o.FromRep); err != nil {
		return usageErrorf(cmd, "--from-rep: %v", err)
	}
	if o.dstKind, err = measure.ParseKind(o.ToRep); err != nil {
		return usageErrorf(cmd, "--to-rep: %v", err)
	}
	return nil
}

func (o *PlanOptions) Validate() error {
	return o.PrintFlags.Validate()
}

func (o *PlanOptions) Run() error {
	newPlan := measure.NewPlan
	if o.Point {
		newPlan = measure.NewPointPlan
	}
	p, err := newPlan(o.src.Unit, o.srcKind, o.dst.Unit, o.dstKind)
	if err != nil {
		return err
	}
	r := NewPlanReport(p, o.Point)
	return o.Print(o.Out, r, func(w *tabwriter.Writer) {
		fmt.Fprintf(w, "From:\t%s[%s]\n", r.From, r.FromRep)
		fmt.Fprintf(w, "To:\t%s[%s]\n", r.To, r.ToRep)
		fmt.Fprintf(w, "Factor:\t%s\n", r.Factor)
		if r.Decimal != "" && r.Decimal != r.Factor {
			fmt.Fprintf(w, "Decimal:\t%s\n", r.Decimal)
		}
		if r.Offset != "" {
			fmt.Fprintf(w, "Offset:\t%s\n", r.Offset)
		}
		fmt.Fprintf(w, "Strategy:\t%s via %s\n", r.Strategy, r.Via)
		fmt.Fprintf(w, "Risk:\t%s\n", r.Risk)
		if r.Min != "" {
			fmt.Fprintf(w, "Bounds:\t[%s, %s]\n", r.Min, r.Max)
		} else {
			fmt.Fprintf(w, "Bounds:\tnone\n")
		}
	})
}
