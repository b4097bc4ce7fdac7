package measure

import (
	"fmt"
	"math"
	"math/big"
)

// Quantity is a value of representation R measured in the unit named by
// the tag T.
// The zero value is 0 in unit T.
// Only the value is stored, so a quantity has the size of R.
//
// Addition, subtraction and comparison require quantities of the same Go
// type, so mixing units there is a compile-time error. Multiplication and
// division accept any units and produce [Product] and [Quotient] tags.
// Conversions to other units go through [As], [In] and their variants.
type Quantity[T Tag, R Rep] struct {
	v R
}

// Of returns the quantity v in unit T.
// The representation is inferred from v:
//
//	d := measure.Of[units.Meter](5.0) // Quantity[units.Meter, float64]
func Of[T Tag, R Rep](v R) Quantity[T, R] {
	return Quantity[T, R]{v: v}
}

// Zero returns 0 in unit T.
func Zero[T Tag, R Rep]() Quantity[T, R] {
	return Quantity[T, R]{}
}

// Value returns the number of units T in q.
func (q Quantity[T, R]) Value() R {
	return q.v
}

// Unit returns the descriptor of T.
func (q Quantity[T, R]) Unit() Unit {
	return UnitOf[T]()
}

// Label returns the label of T.
func (q Quantity[T, R]) Label() string {
	return UnitOf[T]().Label()
}

// String implements the [fmt.Stringer] interface and returns the value
// followed by the label, for example "5 m".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (q Quantity[T, R]) String() string {
	l := q.Label()
	if l == "" {
		return fmt.Sprint(q.v)
	}
	return fmt.Sprintf("%v %v", q.v, l)
}

// Add returns q + o.
func (q Quantity[T, R]) Add(o Quantity[T, R]) Quantity[T, R] {
	return Quantity[T, R]{v: q.v + o.v}
}

// Sub returns q - o.
func (q Quantity[T, R]) Sub(o Quantity[T, R]) Quantity[T, R] {
	return Quantity[T, R]{v: q.v - o.v}
}

// Neg returns -q.
func (q Quantity[T, R]) Neg() Quantity[T, R] {
	return Quantity[T, R]{v: -q.v}
}

// Abs returns |q|.
func (q Quantity[T, R]) Abs() Quantity[T, R] {
	if q.v < 0 {
		return q.Neg()
	}
	return q
}

// Scale returns q * k for the dimensionless k.
func (q Quantity[T, R]) Scale(k R) Quantity[T, R] {
	return Quantity[T, R]{v: q.v * k}
}

// Quo returns q / k for the dimensionless k.
// Integer division truncates toward zero, as in Go.
func (q Quantity[T, R]) Quo(k R) Quantity[T, R] {
	return Quantity[T, R]{v: q.v / k}
}

// Ratio returns q / o, which is dimensionless.
func (q Quantity[T, R]) Ratio(o Quantity[T, R]) R {
	return q.v / o.v
}

// Cmp compares q and o and returns:
//
//	-1 if q < o
//	 0 if q == o
//	+1 if q > o
func (q Quantity[T, R]) Cmp(o Quantity[T, R]) int {
	switch {
	case q.v < o.v:
		return -1
	case q.v > o.v:
		return 1
	}
	return 0
}

// Equal returns true if q == o.
func (q Quantity[T, R]) Equal(o Quantity[T, R]) bool {
	return q.v == o.v
}

// Less returns true if q < o.
func (q Quantity[T, R]) Less(o Quantity[T, R]) bool {
	return q.v < o.v
}

// LessOrEqual returns true if q <= o.
func (q Quantity[T, R]) LessOrEqual(o Quantity[T, R]) bool {
	return q.v <= o.v
}

// Greater returns true if q > o.
func (q Quantity[T, R]) Greater(o Quantity[T, R]) bool {
	return q.v > o.v
}

// GreaterOrEqual returns true if q >= o.
func (q Quantity[T, R]) GreaterOrEqual(o Quantity[T, R]) bool {
	return q.v >= o.v
}

// IsZero returns true if q == 0.
func (q Quantity[T, R]) IsZero() bool {
	return q.v == 0
}

// Sign returns:
//
//	-1 if q < 0
//	 0 if q == 0
//	+1 if q > 0
func (q Quantity[T, R]) Sign() int {
	switch {
	case q.v < 0:
		return -1
	case q.v > 0:
		return 1
	}
	return 0
}

// Min returns the smaller of q and o.
func (q Quantity[T, R]) Min(o Quantity[T, R]) Quantity[T, R] {
	if o.v < q.v {
		return o
	}
	return q
}

// Max returns the larger of q and o.
func (q Quantity[T, R]) Max(o Quantity[T, R]) Quantity[T, R] {
	if o.v > q.v {
		return o
	}
	return q
}

// Clamp returns q limited to the range [lo, hi].
// Clamp returns an error if lo > hi.
func (q Quantity[T, R]) Clamp(lo, hi Quantity[T, R]) (Quantity[T, R], error) {
	if lo.v > hi.v {
		return Quantity[T, R]{}, fmt.Errorf("clamping %v to [%v, %v]: invalid range", q, lo, hi)
	}
	return q.Max(lo).Min(hi), nil
}

// Mul returns a * b in the product unit.
// The units need not agree.
func Mul[T, U Tag, R Rep](a Quantity[T, R], b Quantity[U, R]) Quantity[Product[T, U], R] {
	return Quantity[Product[T, U], R]{v: a.v * b.v}
}

// Div returns a / b in the quotient unit.
// Integer division truncates toward zero, as in Go.
func Div[T, U Tag, R Rep](a Quantity[T, R], b Quantity[U, R]) Quantity[Quotient[T, U], R] {
	return Quantity[Quotient[T, U], R]{v: a.v / b.v}
}

// Square returns q * q.
func Square[T Tag, R Rep](q Quantity[T, R]) Quantity[Squared[T], R] {
	return Quantity[Squared[T], R]{v: q.v * q.v}
}

// Cube returns q * q * q.
func Cube[T Tag, R Rep](q Quantity[T, R]) Quantity[Cubed[T], R] {
	return Quantity[Cubed[T], R]{v: q.v * q.v * q.v}
}

// Float is the set of floating-point representations.
type Float interface {
	~float32 | ~float64
}

// Sqrt returns the square root of q.
func Sqrt[T Tag, R Float](q Quantity[T, R]) Quantity[SquareRoot[T], R] {
	return Quantity[SquareRoot[T], R]{v: R(math.Sqrt(float64(q.v)))}
}

// ScaleBy returns the same value in the unit T scaled by the magnitude M,
// so the quantity denoted grows by M.
func ScaleBy[M MagTag, T Tag, R Rep](q Quantity[T, R]) Quantity[Scaled[T, M], R] {
	return Quantity[Scaled[T, M], R]{v: q.v}
}

// As converts q to unit U.
// As returns an error if the dimensions differ, or [ErrLossyConversion]
// if the conversion may truncate or overflow; use [CoerceAs] to accept
// the loss.
//
//	in, err := measure.As[units.Inch](measure.Of[units.Foot](3))
func As[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	return AsRep[U, R](q)
}

// AsRep converts q to unit U held in S.
func AsRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, S], error) {
	p, err := planFor[T, U](KindOf[R](), KindOf[S](), false)
	if err != nil {
		return Quantity[U, S]{}, err
	}
	if err := p.checkExact(); err != nil {
		return Quantity[U, S]{}, err
	}
	return Quantity[U, S]{v: applyValue[R, S](p, q.v)}, nil
}

// In returns the value of q in unit U.
func In[U, T Tag, R Rep](q Quantity[T, R]) (R, error) {
	z, err := AsRep[U, R](q)
	return z.v, err
}

// InRep returns the value of q in unit U held in S.
func InRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) (S, error) {
	z, err := AsRep[U, S](q)
	return z.v, err
}

// CoerceAs is like [As], but performs lossy conversions.
// Integer results are rounded half to even; the result is unspecified if
// the value overflows.
func CoerceAs[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	return CoerceAsRep[U, R](q)
}

// CoerceAsRep is like [AsRep], but performs lossy conversions.
func CoerceAsRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, S], error) {
	p, err := planFor[T, U](KindOf[R](), KindOf[S](), false)
	if err != nil {
		return Quantity[U, S]{}, err
	}
	return Quantity[U, S]{v: applyValue[R, S](p, q.v)}, nil
}

// CoerceIn is like [In], but performs lossy conversions.
func CoerceIn[U, T Tag, R Rep](q Quantity[T, R]) (R, error) {
	z, err := CoerceAsRep[U, R](q)
	return z.v, err
}

// CoerceInRep is like [InRep], but performs lossy conversions.
func CoerceInRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) (S, error) {
	z, err := CoerceAsRep[U, S](q)
	return z.v, err
}

// roundAs converts q to unit U in float64 and rounds with fn.
func roundAs[U, T Tag, R Rep](q Quantity[T, R], fn func(float64) float64) (Quantity[U, R], error) {
	p, err := planFor[T, U](KindOf[R](), KindFloat64, false)
	if err != nil {
		return Quantity[U, R]{}, err
	}
	return Quantity[U, R]{v: R(fn(applyValue[R, float64](p, q.v)))}, nil
}

// RoundAs converts q to unit U and rounds to the nearest integer value,
// rounding half away from zero. It is always permitted.
func RoundAs[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	return roundAs[U](q, math.Round)
}

// FloorAs converts q to unit U and rounds toward negative infinity.
func FloorAs[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	return roundAs[U](q, math.Floor)
}

// CeilAs converts q to unit U and rounds toward positive infinity.
func CeilAs[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	return roundAs[U](q, math.Ceil)
}

// CmpUnits compares quantities in different units of the same dimension
// and returns:
//
//	-1 if a < b
//	 0 if a == b
//	+1 if a > b
//
// The comparison is exact if the ratio of the units is rational.
// CmpUnits returns [ErrDimensionMismatch] if the dimensions differ, and an
// error if either value is NaN.
func CmpUnits[T, U Tag, R, S Rep](a Quantity[T, R], b Quantity[U, S]) (int, error) {
	ua, err := lookupUnit[T]()
	if err != nil {
		return 0, err
	}
	ub, err := lookupUnit[U]()
	if err != nil {
		return 0, err
	}
	f, err := Factor(ua, ub)
	if err != nil {
		return 0, fmt.Errorf("comparing %w", err)
	}
	x, y := ratOf(a.v), ratOf(b.v)
	if x == nil || y == nil {
		return cmpNonFinite(float64(a.v), float64(b.v), f)
	}
	if fr, err := f.Rat(); err == nil {
		return x.Mul(x, fr).Cmp(y), nil
	}
	// x*f == y only if both are zero, so 256 bits decide every other case.
	xf := new(big.Float).SetPrec(floatPrec).SetRat(x)
	yf := new(big.Float).SetPrec(floatPrec).SetRat(y)
	return xf.Mul(xf, f.bigFloat()).Cmp(yf), nil
}

func cmpNonFinite(x, y float64, f Magnitude) (int, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, fmt.Errorf("comparing %v to %v: NaN", x, y)
	}
	if f.IsNeg() {
		x = -x
	}
	switch {
	case x < y:
		return -1, nil
	case x > y:
		return 1, nil
	}
	return 0, nil
}

// Equivalent returns true if a and b denote the same physical quantity.
// Equivalent returns false if their dimensions differ.
//
//	measure.Equivalent(units.Volts(8), measure.Mul(units.Amperes(2), units.Ohms(4))) // true
func Equivalent[T, U Tag, R, S Rep](a Quantity[T, R], b Quantity[U, S]) bool {
	c, err := CmpUnits(a, b)
	return err == nil && c == 0
}
