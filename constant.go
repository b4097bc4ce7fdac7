package measure

import (
	"fmt"
	"math"
	"math/big"
)

// Constant is a physical constant whose exact value is the magnitude of
// the unit T, for example the speed of light as a unit of speed.
// Constants hold no value at run time; converting one yields a quantity
// whose value is computed from the exact magnitude, so an integral result
// is either exact or an error.
type Constant[T Tag] struct{}

// MakeConstant returns the constant defined by the unit T.
func MakeConstant[T Tag]() Constant[T] {
	return Constant[T]{}
}

// Unit returns the descriptor of the defining unit.
func (c Constant[T]) Unit() Unit {
	return UnitOf[T]()
}

// Label returns the symbol of the constant, for example "c".
func (c Constant[T]) Label() string {
	return UnitOf[T]().Label()
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Constant[T]) String() string {
	return c.Label()
}

// constantFactor returns the value of one T in units of U.
func constantFactor[U, T Tag]() (Magnitude, error) {
	ut, err := lookupUnit[T]()
	if err != nil {
		return Magnitude{}, err
	}
	uu, err := lookupUnit[U]()
	if err != nil {
		return Magnitude{}, err
	}
	f, err := Factor(ut, uu)
	if err != nil {
		return Magnitude{}, fmt.Errorf("converting constant %w", err)
	}
	return f, nil
}

// ConstantAs returns c as a quantity in unit U held in S.
// Integral representations require the value to be an integer that fits S.
//
//	c, err := measure.ConstantAs[measure.Quotient[units.Meter, units.Second], int](constants.SpeedOfLight)
func ConstantAs[U Tag, S Rep, T Tag](c Constant[T]) (Quantity[U, S], error) {
	f, err := constantFactor[U, T]()
	if err != nil {
		return Quantity[U, S]{}, err
	}
	v, err := ValueOf[S](f)
	if err != nil {
		return Quantity[U, S]{}, fmt.Errorf("converting constant %v to %v: %w", c, UnitOf[U](), err)
	}
	return Quantity[U, S]{v: v}, nil
}

// ConstantIn returns the value of c in unit U held in S.
func ConstantIn[U Tag, S Rep, T Tag](c Constant[T]) (S, error) {
	q, err := ConstantAs[U, S](c)
	return q.v, err
}

// CoerceConstantAs is like [ConstantAs], but rounds a non-integer value
// half to even for integral representations.
// CoerceConstantAs returns [ErrMagnitudeRange] if the rounded value does not
// fit S.
func CoerceConstantAs[U Tag, S Rep, T Tag](c Constant[T]) (Quantity[U, S], error) {
	f, err := constantFactor[U, T]()
	if err != nil {
		return Quantity[U, S]{}, err
	}
	k := KindOf[S]()
	if !k.IsIntegral() || f.IsInteger() {
		return ConstantAs[U, S](c)
	}
	r, err := f.Rat()
	if err != nil {
		v, err := ValueOf[float64](f)
		if err != nil {
			return Quantity[U, S]{}, fmt.Errorf("converting constant %v to %v: %w", c, UnitOf[U](), err)
		}
		r = new(big.Rat).SetFloat64(math.RoundToEven(v))
	}
	if !k.roundFits(r) {
		return Quantity[U, S]{}, fmt.Errorf("converting constant %v to %v[%v]: %w", c, UnitOf[U](), k, ErrMagnitudeRange)
	}
	return Quantity[U, S]{v: fromRat[S](r)}, nil
}

// ConstantInUnit returns the value of c in the unit u held in S.
func ConstantInUnit[S Rep, T Tag](c Constant[T], u Unit) (S, error) {
	ut, err := lookupUnit[T]()
	if err != nil {
		return 0, err
	}
	f, err := Factor(ut, u)
	if err != nil {
		return 0, fmt.Errorf("converting constant %w", err)
	}
	return ValueOf[S](f)
}

// ConstantTimes returns v times c, a quantity in the unit of c.
func ConstantTimes[S Rep, T Tag](c Constant[T], v S) Quantity[T, S] {
	return Quantity[T, S]{v: v}
}
