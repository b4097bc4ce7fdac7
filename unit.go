package measure

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrAffineComposition is returned when a unit with an origin, such as
// degrees Celsius, is multiplied, divided or raised to a power.
var ErrAffineComposition = errors.New("units with an origin cannot be composed")

// unlabeled is the label of units that were given none.
const unlabeled = "[UNLABELED UNIT]"

// term is a labeled factor of a unit raised to a power.
type term struct {
	label string
	exp   Ratio
}

// Unit is a descriptor of a unit of measure.
// The zero value is the dimensionless unit 1 without a label.
// Units are immutable and safe for concurrent use by multiple goroutines.
//
// A unit is a [Dimension] together with a [Magnitude], its size relative to
// the coherent base unit of that dimension, and an optional origin.
// The base units are meter, gram, second, ampere, kelvin, mole, candela and
// radian; gram rather than kilogram keeps integer conversions among the
// mass prefixes exact.
//
// The origin, when present, is the position of the zero of the unit's scale
// measured in base units, so degrees Celsius have magnitude 1 and origin
// 273.15. Origins only matter for [Point] conversions.
//
// Labels are presentational. [Unit.Equal] ignores them.
type Unit struct {
	dim    Dimension
	mag    Magnitude
	origin Magnitude // meaningful only if affine is true
	affine bool
	terms  []term // single labeled term for named units, never shared mutably
}

// NewUnit returns a unit of dimension dim and magnitude mag.
// An empty label leaves the unit unlabeled.
func NewUnit(dim Dimension, mag Magnitude, label string) Unit {
	u := Unit{dim: dim, mag: mag}
	return u.WithLabel(label)
}

// BaseUnit returns the coherent unit of the base dimension b.
func BaseUnit(b Base, label string) Unit {
	return NewUnit(Dim(b), One, label)
}

// Dimension returns the dimension of u.
func (u Unit) Dimension() Dimension {
	return u.dim
}

// Magnitude returns the magnitude of u relative to the coherent unit of its
// dimension.
func (u Unit) Magnitude() Magnitude {
	return u.mag
}

// Origin returns the origin of u in base units and true,
// or zero and false if u has no origin.
func (u Unit) Origin() (*big.Rat, bool) {
	if !u.affine {
		return new(big.Rat), false
	}
	r, err := u.origin.Rat()
	if err != nil {
		panic(fmt.Sprintf("%v.Origin() failed: %v", u, err)) // should never happen
	}
	return r, true
}

// HasOrigin returns true if u is an affine unit.
func (u Unit) HasOrigin() bool {
	return u.affine
}

// WithOrigin returns u with its origin set to the given position measured
// in base units of its dimension.
// WithOrigin returns [ErrIrrational] if origin is not rational.
func (u Unit) WithOrigin(origin Magnitude) (Unit, error) {
	if !origin.IsRational() {
		return Unit{}, fmt.Errorf("origin %v of %v: %w", origin, u, ErrIrrational)
	}
	u.origin = origin
	u.affine = true
	return u, nil
}

// WithLabel returns u relabeled as label.
// An empty label removes the label.
func (u Unit) WithLabel(label string) Unit {
	if label == "" {
		label = unlabeled
	}
	u.terms = []term{{label: label, exp: Int(1)}}
	return u
}

// Scale returns the unit m times as large as u.
// The origin, if any, is kept, and the label is "[m u]".
func (u Unit) Scale(m Magnitude) Unit {
	if m.IsOne() {
		return u
	}
	z := u
	z.mag = u.mag.Mul(m)
	ms := m.String()
	if strings.Contains(ms, " ") {
		ms = "(" + ms + ")"
	}
	ls := u.Label()
	if strings.Contains(ls, " ") {
		ls = "(" + ls + ")"
	}
	return z.WithLabel("[" + ms + " " + ls + "]")
}

// Prefix returns u scaled by m with the label prefix followed by the label
// of u, for example "km".
func (u Unit) Prefix(prefix string, m Magnitude) Unit {
	ls := u.Label()
	if strings.Contains(ls, " ") {
		ls = "(" + ls + ")"
	}
	z := u
	z.mag = u.mag.Mul(m)
	return z.WithLabel(prefix + ls)
}

func (u Unit) checkLinear(op string) error {
	if u.affine {
		return fmt.Errorf("%v %v: %w", op, u, ErrAffineComposition)
	}
	return nil
}

// mergeTerms appends the terms of y raised to p to the terms of x,
// combining equal labels.
func mergeTerms(x, y []term, p Ratio) []term {
	z := make([]term, len(x), len(x)+len(y))
	copy(z, x)
	for _, t := range y {
		e := t.exp.Mul(p)
		found := false
		for i := range z {
			if z[i].label == t.label {
				z[i].exp = z[i].exp.Add(e)
				found = true
				break
			}
		}
		if !found {
			z = append(z, term{label: t.label, exp: e})
		}
	}
	// Drop cancelled terms.
	n := 0
	for _, t := range z {
		if !t.exp.IsZero() {
			z[n] = t
			n++
		}
	}
	return z[:n]
}

// Mul returns the product u * v.
// Mul returns [ErrAffineComposition] if either unit has an origin.
func (u Unit) Mul(v Unit) (Unit, error) {
	if err := u.checkLinear("multiplying"); err != nil {
		return Unit{}, err
	}
	if err := v.checkLinear("multiplying"); err != nil {
		return Unit{}, err
	}
	return Unit{
		dim:   u.dim.Mul(v.dim),
		mag:   u.mag.Mul(v.mag),
		terms: mergeTerms(u.terms, v.terms, Int(1)),
	}, nil
}

// Quo returns the quotient u / v.
// Quo returns [ErrAffineComposition] if either unit has an origin.
func (u Unit) Quo(v Unit) (Unit, error) {
	if err := u.checkLinear("dividing"); err != nil {
		return Unit{}, err
	}
	if err := v.checkLinear("dividing"); err != nil {
		return Unit{}, err
	}
	return Unit{
		dim:   u.dim.Quo(v.dim),
		mag:   u.mag.Quo(v.mag),
		terms: mergeTerms(u.terms, v.terms, Int(-1)),
	}, nil
}

// Pow returns u^p.
// Pow returns [ErrAffineComposition] if u has an origin.
func (u Unit) Pow(p Ratio) (Unit, error) {
	if err := u.checkLinear("raising"); err != nil {
		return Unit{}, err
	}
	m, err := u.mag.Pow(p)
	if err != nil {
		return Unit{}, fmt.Errorf("raising %v: %w", u, err)
	}
	return Unit{
		dim:   u.dim.Pow(p),
		mag:   m,
		terms: mergeTerms(nil, u.terms, p),
	}, nil
}

// Inv returns 1 / u.
func (u Unit) Inv() (Unit, error) {
	return u.Pow(Int(-1))
}

// Root returns the n-th root of u.
func (u Unit) Root(n int) (Unit, error) {
	if n <= 0 {
		return Unit{}, fmt.Errorf("root %v of %v: %w", n, u, ErrInvalidRoot)
	}
	return u.Pow(R(1, int64(n)))
}

// Equal returns true if u and v have the same dimension, magnitude and
// origin. Labels are ignored.
func (u Unit) Equal(v Unit) bool {
	if u.dim != v.dim || !u.mag.Equal(v.mag) || u.affine != v.affine {
		return false
	}
	return !u.affine || u.origin.Equal(v.origin)
}

// SameDimension returns true if u and v measure the same kind of quantity.
func (u Unit) SameDimension(v Unit) bool {
	return u.dim == v.dim
}

// Factor returns the conversion factor from src to dst, that is the number
// of dst in one src.
// Factor returns [ErrDimensionMismatch] if the units have different
// dimensions.
func Factor(src, dst Unit) (Magnitude, error) {
	if !src.SameDimension(dst) {
		return Magnitude{}, fmt.Errorf("%v [%v] to %v [%v]: %w", src, src.dim, dst, dst.dim, ErrDimensionMismatch)
	}
	return src.mag.Quo(dst.mag), nil
}

// OriginDisplacement returns the origin of dst minus the origin of src,
// measured in units of dst.
// Units without an origin are treated as having their zero at the
// dimension's absolute zero.
func OriginDisplacement(src, dst Unit) (*big.Rat, error) {
	if !src.SameDimension(dst) {
		return nil, fmt.Errorf("%v [%v] to %v [%v]: %w", src, src.dim, dst, dst.dim, ErrDimensionMismatch)
	}
	os, _ := src.Origin()
	od, _ := dst.Origin()
	d := new(big.Rat).Sub(od, os)
	if d.Sign() == 0 {
		return d, nil
	}
	md, err := dst.mag.Rat()
	if err != nil {
		return nil, fmt.Errorf("origin of %v: %w", dst, err)
	}
	return d.Quo(d, md), nil
}

// CommonUnit returns the largest unit that evenly divides both u and v,
// so that quantities in either unit can be expressed in it exactly.
// If one unit already divides the other, the smaller one is returned.
// CommonUnit returns [ErrDimensionMismatch] if the dimensions differ.
func CommonUnit(u, v Unit) (Unit, error) {
	if !u.SameDimension(v) {
		return Unit{}, fmt.Errorf("common unit of %v [%v] and %v [%v]: %w", u, u.dim, v, v.dim, ErrDimensionMismatch)
	}
	m := CommonMagnitude(u.mag, v.mag)
	switch {
	case m.Equal(u.mag):
		return u, nil
	case m.Equal(v.mag):
		return v, nil
	}
	z := Unit{dim: u.dim, mag: m}
	return z.WithLabel("COM[" + u.Label() + ", " + v.Label() + "]"), nil
}

// Label returns the display label of u, for example "m", "m / s", "m^2",
// "s^(-1)" or "1 / (m * s)".
// The dimensionless product of no units has the empty label.
func (u Unit) Label() string {
	switch len(u.terms) {
	case 0:
		return ""
	case 1:
		return powerLabel(u.terms[0].label, u.terms[0].exp)
	}
	var num, den []string
	for _, t := range u.terms {
		if t.exp.Sign() > 0 {
			num = append(num, powerLabel(t.label, t.exp))
		} else {
			den = append(den, powerLabel(t.label, t.exp.Neg()))
		}
	}
	switch {
	case len(den) == 0:
		return strings.Join(num, " * ")
	case len(num) == 0:
		return "1 / " + compoundLabel(den)
	}
	return compoundLabel(num) + " / " + compoundLabel(den)
}

// IsLabeled returns true if u has an explicit or synthesized label.
func (u Unit) IsLabeled() bool {
	return !strings.Contains(u.Label(), unlabeled)
}

func compoundLabel(parts []string) string {
	s := strings.Join(parts, " * ")
	if len(parts) > 1 {
		return "(" + s + ")"
	}
	return s
}

func powerLabel(label string, e Ratio) string {
	switch {
	case e == Int(1):
		return label
	case e.IsInt() && e.Sign() > 0:
		return label + "^" + e.String()
	}
	return label + "^(" + e.String() + ")"
}

// String implements the [fmt.Stringer] interface and returns the label of u.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (u Unit) String() string {
	return u.Label()
}
