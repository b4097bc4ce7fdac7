package measure

import (
	"fmt"
	"math"
	"reflect"
	"sync"
)

// radianTag names the radian, the unit trigonometric functions work in.
type radianTag struct{}

var radianUnit = BaseUnit(Angle, "rad")

func (radianTag) Unit() Unit { return radianUnit }

// radians returns the value of the angle q in radians.
func radians[T Tag, R Rep](q Quantity[T, R]) (float64, error) {
	p, err := planFor[T, radianTag](KindOf[R](), KindFloat64, false)
	if err != nil {
		return 0, err
	}
	return applyValue[R, float64](p, q.v), nil
}

// Sin returns the sine of the angle q.
// Sin returns [ErrDimensionMismatch] if T is not a unit of angle.
//
//	s, err := measure.Sin(units.Degrees(30.0)) // 0.5
func Sin[T Tag, R Rep](q Quantity[T, R]) (float64, error) {
	x, err := radians(q)
	if err != nil {
		return 0, err
	}
	return math.Sin(x), nil
}

// Cos returns the cosine of the angle q.
func Cos[T Tag, R Rep](q Quantity[T, R]) (float64, error) {
	x, err := radians(q)
	if err != nil {
		return 0, err
	}
	return math.Cos(x), nil
}

// Tan returns the tangent of the angle q.
func Tan[T Tag, R Rep](q Quantity[T, R]) (float64, error) {
	x, err := radians(q)
	if err != nil {
		return 0, err
	}
	return math.Tan(x), nil
}

// Atan2 returns the angle of the point (x, y) as an angle in unit U.
// Since y and x share a unit, the result does not depend on it.
// Atan2 returns [ErrDimensionMismatch] if U is not a unit of angle.
//
//	a, err := measure.Atan2[units.Degree](units.Meters(1.0), units.Meters(1.0)) // 45 deg
func Atan2[U, T Tag, R Float](y, x Quantity[T, R]) (Quantity[U, R], error) {
	p, err := planFor[radianTag, U](KindFloat64, KindOf[R](), false)
	if err != nil {
		return Quantity[U, R]{}, err
	}
	a := math.Atan2(float64(y.v), float64(x.v))
	return Quantity[U, R]{v: applyValue[float64, R](p, a)}, nil
}

// Hypot returns sqrt(a*a + b*b), avoiding unnecessary overflow and
// underflow.
func Hypot[T Tag, R Float](a, b Quantity[T, R]) Quantity[T, R] {
	return Quantity[T, R]{v: R(math.Hypot(float64(a.v), float64(b.v)))}
}

// Cbrt returns the cube root of q.
func Cbrt[T Tag, R Float](q Quantity[T, R]) Quantity[CubeRoot[T], R] {
	return Quantity[CubeRoot[T], R]{v: R(math.Cbrt(float64(q.v)))}
}

// Mod returns the remainder of a / b, which has the sign of a.
// Integer representations use the Go % operator and panic if b is zero;
// floating-point representations follow [math.Mod].
func Mod[T Tag, R Rep](a, b Quantity[T, R]) Quantity[T, R] {
	k := KindOf[R]()
	switch {
	case k.IsFloat():
		return Quantity[T, R]{v: R(math.Mod(float64(a.v), float64(b.v)))}
	case k.IsSigned():
		return Quantity[T, R]{v: R(int64(a.v) % int64(b.v))}
	}
	return Quantity[T, R]{v: R(uint64(a.v) % uint64(b.v))}
}

// Remainder returns the IEEE 754 remainder of a / b, that is a - n*b for
// the integer n nearest a / b, ties to even.
func Remainder[T Tag, R Float](a, b Quantity[T, R]) Quantity[T, R] {
	return Quantity[T, R]{v: R(math.Remainder(float64(a.v), float64(b.v)))}
}

// CopySign returns a quantity with the magnitude of q and the sign of s.
// The signs of floating-point zeros and NaNs follow [math.Copysign].
func CopySign[T, U Tag, R Rep](q Quantity[T, R], s Quantity[U, R]) Quantity[T, R] {
	if KindOf[R]().IsFloat() {
		return Quantity[T, R]{v: R(math.Copysign(float64(q.v), float64(s.v)))}
	}
	if (q.v < 0) != (s.v < 0) {
		return q.Neg()
	}
	return q
}

// IsNaN returns true if the value of q is a floating-point NaN.
func IsNaN[T Tag, R Rep](q Quantity[T, R]) bool {
	return q.v != q.v
}

// IsInf returns true if the value of q is a floating-point infinity with
// the sign of sign, or of either sign if sign is 0.
func IsInf[T Tag, R Rep](q Quantity[T, R], sign int) bool {
	return KindOf[R]().IsFloat() && math.IsInf(float64(q.v), sign)
}

// Lerp returns a + t * (b - a), the linear interpolation between a and b.
// Lerp returns a exactly at t = 0 and b exactly at t = 1.
func Lerp[T Tag, R Float](a, b Quantity[T, R], t R) Quantity[T, R] {
	if t == 1 {
		return b
	}
	return Quantity[T, R]{v: a.v + t*(b.v-a.v)}
}

// powKey identifies the cached plan from T^n to U.
type powKey struct {
	planKey
	n int
}

// powPlans caches the plans of [PowInt].
var powPlans sync.Map

func powPlanFor[T, U Tag](n int, sk, dk Kind) (*Plan, error) {
	key := powKey{planKey: planKey{src: reflect.TypeFor[T](), dst: reflect.TypeFor[U](), srcKind: sk, dstKind: dk}, n: n}
	if e, ok := powPlans.Load(key); ok {
		e := e.(planEntry)
		return e.plan, e.err
	}
	var e planEntry
	u, err := lookupUnit[T]()
	if err == nil {
		u, err = u.Pow(Int(int64(n)))
	}
	v, err2 := lookupUnit[U]()
	switch {
	case err != nil:
		e.err = fmt.Errorf("raising to power %v: %w", n, err)
	case err2 != nil:
		e.err = fmt.Errorf("raising to power %v: %w", n, err2)
	default:
		e.plan, e.err = newPlan(u, sk, v, dk, false)
	}
	powPlans.Store(key, e)
	return e.plan, e.err
}

// PowInt returns q raised to the integer power n, as a quantity in unit
// U, which must have the dimension of T^n.
// Like [As], PowInt returns [ErrLossyConversion] if the conversion from
// T^n to U may truncate or overflow.
// Negative powers require a floating-point representation, and the
// result is unspecified if q^n overflows R.
//
//	a, err := measure.PowInt[units.SquareMeter](units.Meters(3), 2) // 9 m^2
func PowInt[U, T Tag, R Rep](q Quantity[T, R], n int) (Quantity[U, R], error) {
	k := KindOf[R]()
	if n < 0 && k.IsIntegral() {
		return Quantity[U, R]{}, fmt.Errorf("raising %v to power %v: negative power in %v", q, n, k)
	}
	p, err := powPlanFor[T, U](n, k, k)
	if err != nil {
		return Quantity[U, R]{}, err
	}
	if err := p.checkExact(); err != nil {
		return Quantity[U, R]{}, err
	}
	return Quantity[U, R]{v: applyValue[R, R](p, powRep(q.v, n))}, nil
}

// powRep returns x^n by repeated squaring, or 1 / x^-n for negative n.
func powRep[R Rep](x R, n int) R {
	if n < 0 {
		return 1 / powRep(x, -n)
	}
	z := R(1)
	for n > 0 {
		if n&1 != 0 {
			z *= x
		}
		n >>= 1
		if n > 0 {
			x *= x
		}
	}
	return z
}

// InverseAs returns 1 / q as a quantity in unit U, which must have the
// dimension of 1 / T.
// For integral representations the number of U in 1 / T must be an
// integer K that fits R, and the result is K / q truncated toward zero:
//
//	f, err := measure.InverseAs[units.Hertz](measure.Of[units.Millisecond](4)) // 250 Hz
//
// InverseAs returns [ErrNonInteger] or [ErrMagnitudeRange] if K is not
// an integer or does not fit R.
func InverseAs[U, T Tag, R Rep](q Quantity[T, R]) (Quantity[U, R], error) {
	u, err := lookupUnit[Inverse[T]]()
	if err != nil {
		return Quantity[U, R]{}, fmt.Errorf("inverting: %w", err)
	}
	v, err := lookupUnit[U]()
	if err != nil {
		return Quantity[U, R]{}, fmt.Errorf("inverting: %w", err)
	}
	f, err := Factor(u, v)
	if err != nil {
		return Quantity[U, R]{}, fmt.Errorf("inverting %w", err)
	}
	k, err := ValueOf[R](f)
	if err != nil {
		return Quantity[U, R]{}, fmt.Errorf("inverting %v to %v: %w", q, UnitOf[U](), err)
	}
	return Quantity[U, R]{v: k / q.v}, nil
}

// InverseIn returns the value of 1 / q in unit U.
func InverseIn[U, T Tag, R Rep](q Quantity[T, R]) (R, error) {
	z, err := InverseAs[U](q)
	return z.v, err
}
