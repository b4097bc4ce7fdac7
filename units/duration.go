package units

import (
	"fmt"
	"time"

	"github.com/govalues/measure"
)

// FromDuration returns d as a quantity of nanoseconds.
//
//	q := units.FromDuration(1500 * time.Millisecond) // 1500000000 ns
func FromDuration(d time.Duration) measure.Quantity[Nanosecond, int64] {
	return measure.Of[Nanosecond](int64(d))
}

// Duration converts the time q to a [time.Duration].
// Duration returns [measure.ErrDimensionMismatch] if q is not a time, and
// [measure.ErrLossyConversion] if the conversion to whole nanoseconds in
// int64 may truncate or overflow; use [CoerceDuration] to accept the loss.
//
//	d, err := units.Duration(units.Seconds(90)) // 1m30s
func Duration[T measure.Tag, R measure.Rep](q measure.Quantity[T, R]) (time.Duration, error) {
	ns, err := measure.InRep[Nanosecond, int64](q)
	if err != nil {
		return 0, err
	}
	return time.Duration(ns), nil
}

// CoerceDuration is like [Duration], but rounds q to the nearest
// nanosecond, half to even.
// CoerceDuration returns [measure.ErrMagnitudeRange] if q does not fit a
// [time.Duration].
func CoerceDuration[T measure.Tag, R measure.Rep](q measure.Quantity[T, R]) (time.Duration, error) {
	c, err := measure.NewCoercion[T, R, Nanosecond, int64]()
	if err != nil {
		return 0, err
	}
	if c.Overflows(q) {
		return 0, fmt.Errorf("converting %v to a duration: %w", q, measure.ErrMagnitudeRange)
	}
	return time.Duration(c.ApplyValue(q.Value())), nil
}
