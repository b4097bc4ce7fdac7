package measure

import "fmt"

// Point is a position on the scale of the unit T, such as a temperature
// reading, held in R.
// The zero value is the origin of T.
//
// Points differ from quantities in how they convert: converting a point
// accounts for the origins of the units, so 0 degrees Celsius is
// 273.15 kelvins, while a quantity of 0 degrees Celsius is 0 kelvins.
// Points can be shifted by quantities, and the difference of two points
// is a quantity.
type Point[T Tag, R Rep] struct {
	v R
}

// PointOf returns the point v on the scale of T.
func PointOf[T Tag, R Rep](v R) Point[T, R] {
	return Point[T, R]{v: v}
}

// Value returns the position of p on the scale of T.
func (p Point[T, R]) Value() R {
	return p.v
}

// Unit returns the descriptor of T.
func (p Point[T, R]) Unit() Unit {
	return UnitOf[T]()
}

// Label returns the label of T.
func (p Point[T, R]) Label() string {
	return UnitOf[T]().Label()
}

// String implements the [fmt.Stringer] interface and returns the point
// as "@(20 degC)".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Point[T, R]) String() string {
	return fmt.Sprintf("@(%v)", Quantity[T, R]{v: p.v})
}

// Add returns p shifted by d.
func (p Point[T, R]) Add(d Quantity[T, R]) Point[T, R] {
	return Point[T, R]{v: p.v + d.v}
}

// Sub returns p shifted by -d.
func (p Point[T, R]) Sub(d Quantity[T, R]) Point[T, R] {
	return Point[T, R]{v: p.v - d.v}
}

// Diff returns the displacement p - o.
func (p Point[T, R]) Diff(o Point[T, R]) Quantity[T, R] {
	return Quantity[T, R]{v: p.v - o.v}
}

// Cmp compares p and o and returns:
//
//	-1 if p < o
//	 0 if p == o
//	+1 if p > o
func (p Point[T, R]) Cmp(o Point[T, R]) int {
	return Quantity[T, R]{v: p.v}.Cmp(Quantity[T, R]{v: o.v})
}

// Equal returns true if p == o.
func (p Point[T, R]) Equal(o Point[T, R]) bool {
	return p.v == o.v
}

// Less returns true if p < o.
func (p Point[T, R]) Less(o Point[T, R]) bool {
	return p.v < o.v
}

// PointAs converts p to the scale of U.
// PointAs returns [ErrLossyConversion] if the conversion may truncate,
// for example when the origin offset is not a whole number of U.
func PointAs[U, T Tag, R Rep](p Point[T, R]) (Point[U, R], error) {
	return PointAsRep[U, R](p)
}

// PointAsRep converts p to the scale of U held in S.
func PointAsRep[U Tag, S Rep, T Tag, R Rep](p Point[T, R]) (Point[U, S], error) {
	pl, err := planFor[T, U](KindOf[R](), KindOf[S](), true)
	if err != nil {
		return Point[U, S]{}, err
	}
	if err := pl.checkExact(); err != nil {
		return Point[U, S]{}, err
	}
	return Point[U, S]{v: applyValue[R, S](pl, p.v)}, nil
}

// PointIn returns the position of p on the scale of U.
func PointIn[U, T Tag, R Rep](p Point[T, R]) (R, error) {
	z, err := PointAsRep[U, R](p)
	return z.v, err
}

// CoercePointAs is like [PointAs], but performs lossy conversions.
func CoercePointAs[U, T Tag, R Rep](p Point[T, R]) (Point[U, R], error) {
	return CoercePointAsRep[U, R](p)
}

// CoercePointAsRep is like [PointAsRep], but performs lossy conversions.
func CoercePointAsRep[U Tag, S Rep, T Tag, R Rep](p Point[T, R]) (Point[U, S], error) {
	pl, err := planFor[T, U](KindOf[R](), KindOf[S](), true)
	if err != nil {
		return Point[U, S]{}, err
	}
	return Point[U, S]{v: applyValue[R, S](pl, p.v)}, nil
}
