package measure

import "fmt"

// MustUnit is like [Unit.Mul], [Unit.Quo] and the other composition methods
// but panics if computing error. It is intended for package-level
// declarations:
//
//	var meterPerSecond = measure.MustUnit(meter.Quo(second))
func MustUnit(u Unit, err error) Unit {
	if err != nil {
		panic(fmt.Sprintf("MustUnit() failed: %v", err))
	}
	return u
}

// MustPow is like [Magnitude.Pow] but panics if computing error.
func (m Magnitude) MustPow(e Ratio) Magnitude {
	z, err := m.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", e, err))
	}
	return z
}

// MustValueOf is like [ValueOf] but panics if computing error.
func MustValueOf[R Rep](m Magnitude) R {
	v, err := ValueOf[R](m)
	if err != nil {
		panic(fmt.Sprintf("MustValueOf(%v) failed: %v", m, err))
	}
	return v
}

// MustConversion is like [NewConversion] but panics if the conversion is
// invalid or lossy.
func MustConversion[T Tag, R Rep, U Tag, S Rep]() Conversion[T, R, U, S] {
	c, err := NewConversion[T, R, U, S]()
	if err != nil {
		panic(fmt.Sprintf("MustConversion() failed: %v", err))
	}
	return c
}

// MustCoercion is like [NewCoercion] but panics if the conversion is
// invalid.
func MustCoercion[T Tag, R Rep, U Tag, S Rep]() Conversion[T, R, U, S] {
	c, err := NewCoercion[T, R, U, S]()
	if err != nil {
		panic(fmt.Sprintf("MustCoercion() failed: %v", err))
	}
	return c
}

// MustAs is like [As] but panics if computing error.
func MustAs[U, T Tag, R Rep](q Quantity[T, R]) Quantity[U, R] {
	z, err := As[U](q)
	if err != nil {
		panic(fmt.Sprintf("MustAs(%v) failed: %v", q, err))
	}
	return z
}

// MustAsRep is like [AsRep] but panics if computing error.
func MustAsRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) Quantity[U, S] {
	z, err := AsRep[U, S](q)
	if err != nil {
		panic(fmt.Sprintf("MustAsRep(%v) failed: %v", q, err))
	}
	return z
}

// MustIn is like [In] but panics if computing error.
func MustIn[U, T Tag, R Rep](q Quantity[T, R]) R {
	v, err := In[U](q)
	if err != nil {
		panic(fmt.Sprintf("MustIn(%v) failed: %v", q, err))
	}
	return v
}

// MustInRep is like [InRep] but panics if computing error.
func MustInRep[U Tag, S Rep, T Tag, R Rep](q Quantity[T, R]) S {
	v, err := InRep[U, S](q)
	if err != nil {
		panic(fmt.Sprintf("MustInRep(%v) failed: %v", q, err))
	}
	return v
}

// MustCoerceAs is like [CoerceAs] but panics if computing error.
func MustCoerceAs[U, T Tag, R Rep](q Quantity[T, R]) Quantity[U, R] {
	z, err := CoerceAs[U](q)
	if err != nil {
		panic(fmt.Sprintf("MustCoerceAs(%v) failed: %v", q, err))
	}
	return z
}

// MustCoerceIn is like [CoerceIn] but panics if computing error.
func MustCoerceIn[U, T Tag, R Rep](q Quantity[T, R]) R {
	v, err := CoerceIn[U](q)
	if err != nil {
		panic(fmt.Sprintf("MustCoerceIn(%v) failed: %v", q, err))
	}
	return v
}

// MustPointAs is like [PointAs] but panics if computing error.
func MustPointAs[U, T Tag, R Rep](p Point[T, R]) Point[U, R] {
	z, err := PointAs[U](p)
	if err != nil {
		panic(fmt.Sprintf("MustPointAs(%v) failed: %v", p, err))
	}
	return z
}

// MustPointIn is like [PointIn] but panics if computing error.
func MustPointIn[U, T Tag, R Rep](p Point[T, R]) R {
	v, err := PointIn[U](p)
	if err != nil {
		panic(fmt.Sprintf("MustPointIn(%v) failed: %v", p, err))
	}
	return v
}

// MustConstantAs is like [ConstantAs] but panics if computing error.
func MustConstantAs[U Tag, S Rep, T Tag](c Constant[T]) Quantity[U, S] {
	z, err := ConstantAs[U, S](c)
	if err != nil {
		panic(fmt.Sprintf("MustConstantAs(%v) failed: %v", c, err))
	}
	return z
}
