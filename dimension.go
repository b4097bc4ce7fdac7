package measure

import (
	"errors"
	"fmt"
	"strings"
)

// Base is one of the fixed base dimensions.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
	Angle
	numBases
)

var baseSymbols = [numBases]string{"L", "M", "T", "I", "Θ", "N", "J", "A"}

var baseNames = [numBases]string{
	"length", "mass", "time", "current",
	"temperature", "amount", "luminous intensity", "angle",
}

// String returns the conventional symbol of the base dimension.
func (b Base) String() string {
	if b < 0 || b >= numBases {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseSymbols[b]
}

// Name returns the lowercase name of the base dimension.
func (b Base) Name() string {
	if b < 0 || b >= numBases {
		return b.String()
	}
	return baseNames[b]
}

// Bases returns all base dimensions in canonical order.
func Bases() []Base {
	bs := make([]Base, numBases)
	for i := range bs {
		bs[i] = Base(i)
	}
	return bs
}

// ErrDimensionMismatch is returned when two units of different dimensions
// are converted or compared.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// Dimension is a vector of rational exponents over the base dimensions.
// The zero value is the dimensionless dimension.
// Dimensions are comparable, and == is exact equality.
type Dimension struct {
	exps [numBases]Ratio
}

// Dimensionless is the dimension of pure numbers.
var Dimensionless = Dimension{}

// Dim returns the dimension of the base b.
// Dim panics if b is not a valid base.
func Dim(b Base) Dimension {
	if b < 0 || b >= numBases {
		panic(fmt.Sprintf("Dim(%v) failed: unknown base", int(b)))
	}
	var d Dimension
	d.exps[b] = Int(1)
	return d
}

// Exponent returns the exponent of the base b in d.
func (d Dimension) Exponent(b Base) Ratio {
	if b < 0 || b >= numBases {
		return Ratio{}
	}
	return d.exps[b]
}

// IsDimensionless returns true if every exponent of d is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// Mul returns d * e.
func (d Dimension) Mul(e Dimension) Dimension {
	var z Dimension
	for i := range z.exps {
		z.exps[i] = d.exps[i].Add(e.exps[i])
	}
	return z
}

// Quo returns d / e.
func (d Dimension) Quo(e Dimension) Dimension {
	var z Dimension
	for i := range z.exps {
		z.exps[i] = d.exps[i].Sub(e.exps[i])
	}
	return z
}

// Pow returns d^p.
func (d Dimension) Pow(p Ratio) Dimension {
	var z Dimension
	for i := range z.exps {
		z.exps[i] = d.exps[i].Mul(p)
	}
	return z
}

// Inv returns 1 / d.
func (d Dimension) Inv() Dimension {
	return Dimensionless.Quo(d)
}

// String implements the [fmt.Stringer] interface and returns
// the dimension as a product of base powers, for example "L * T^-2",
// or "1" if d is dimensionless.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Dimension) String() string {
	var parts []string
	for i, e := range d.exps {
		switch {
		case e.IsZero():
			continue
		case e == Int(1):
			parts = append(parts, Base(i).String())
		case e.IsInt():
			parts = append(parts, fmt.Sprintf("%v^%v", Base(i), e))
		default:
			parts = append(parts, fmt.Sprintf("%v^(%v)", Base(i), e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " * ")
}
