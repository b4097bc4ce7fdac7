package measure

import (
	"fmt"
	"reflect"
	"sync"
)

// Tag is implemented by the zero-size types that name units.
// A tag must return the same descriptor every time.
//
//	type Meter struct{}
//
//	func (Meter) Unit() measure.Unit { return meter }
type Tag interface {
	Unit() Unit
}

// MagTag is implemented by the zero-size types that name magnitudes,
// used by [Scaled] and [ScaleBy].
type MagTag interface {
	Magnitude() Magnitude
}

// unitCache holds the descriptors of tags, keyed by reflect.Type.
var unitCache sync.Map

// lookupUnit returns the descriptor of T, recovering the panic raised by
// an invalid composition as an error.
func lookupUnit[T Tag]() (u Unit, err error) {
	key := reflect.TypeFor[T]()
	if v, ok := unitCache.Load(key); ok {
		return v.(Unit), nil
	}
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case error:
				err = e
			default:
				err = fmt.Errorf("%v: %v", key, e)
			}
		}
	}()
	var t T
	u = t.Unit()
	unitCache.Store(key, u)
	return u, nil
}

// UnitOf returns the descriptor of the unit named by T.
// UnitOf panics if T is an invalid composition, such as a product
// involving degrees Celsius; use [Validate] to check a tag without panicking.
func UnitOf[T Tag]() Unit {
	u, err := lookupUnit[T]()
	if err != nil {
		panic(fmt.Sprintf("UnitOf() failed: %v", err))
	}
	return u
}

// Validate returns the error that makes T an invalid unit, or nil.
func Validate[T Tag]() error {
	_, err := lookupUnit[T]()
	return err
}

// must panics with err, so that lookupUnit can report it.
func must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}
	return u
}

// unitOf is like UnitOf, but panics with the underlying error.
func unitOf[T Tag]() Unit {
	return must(lookupUnit[T]())
}

// Product is the unit A * B.
type Product[A, B Tag] struct{}

func (Product[A, B]) Unit() Unit {
	return must(unitOf[A]().Mul(unitOf[B]()))
}

// Quotient is the unit A / B.
type Quotient[A, B Tag] struct{}

func (Quotient[A, B]) Unit() Unit {
	return must(unitOf[A]().Quo(unitOf[B]()))
}

// Inverse is the unit 1 / A.
type Inverse[A Tag] struct{}

func (Inverse[A]) Unit() Unit {
	return must(unitOf[A]().Inv())
}

// Squared is the unit A^2.
type Squared[A Tag] struct{}

func (Squared[A]) Unit() Unit {
	return must(unitOf[A]().Pow(Int(2)))
}

// Cubed is the unit A^3.
type Cubed[A Tag] struct{}

func (Cubed[A]) Unit() Unit {
	return must(unitOf[A]().Pow(Int(3)))
}

// SquareRoot is the unit A^(1/2).
type SquareRoot[A Tag] struct{}

func (SquareRoot[A]) Unit() Unit {
	return must(unitOf[A]().Root(2))
}

// CubeRoot is the unit A^(1/3).
type CubeRoot[A Tag] struct{}

func (CubeRoot[A]) Unit() Unit {
	return must(unitOf[A]().Root(3))
}

// Scaled is the unit A times the magnitude named by M.
type Scaled[A Tag, M MagTag] struct{}

func (Scaled[A, M]) Unit() Unit {
	var m M
	return unitOf[A]().Scale(m.Magnitude())
}

// Unitless is the dimensionless unit 1 with the empty label.
type Unitless struct{}

func (Unitless) Unit() Unit {
	return Unit{}
}
