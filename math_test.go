package measure

import (
	"errors"
	"math"
	"testing"
)

func TestTrig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name      string
			got       func() (float64, error)
			want      float64
			tolerance float64
		}{
			{"sin 30 deg", func() (float64, error) { return Sin(Of[testDegree](30.0)) }, 0.5, 1e-15},
			{"sin pi/2 rad", func() (float64, error) { return Sin(Of[testRadian](math.Pi / 2)) }, 1, 0},
			{"sin 0 deg", func() (float64, error) { return Sin(Of[testDegree](0)) }, 0, 0},
			{"cos 60 deg", func() (float64, error) { return Cos(Of[testDegree](60.0)) }, 0.5, 1e-15},
			{"cos 180 deg", func() (float64, error) { return Cos(Of[testDegree](int16(180))) }, -1, 0},
			{"tan 45 deg", func() (float64, error) { return Tan(Of[testDegree](uint8(45))) }, 1, 1e-15},
			{"tan -45 deg", func() (float64, error) { return Tan(Of[testDegree](-45.0)) }, -1, 1e-15},
		}
		for _, tt := range tests {
			got, err := tt.got()
			if err != nil {
				t.Errorf("%v: unexpected error: %v", tt.name, err)
				continue
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("%v = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]func() error{
			"sin m": func() error { _, err := Sin(Of[testMeter](1.0)); return err },
			"cos s": func() error { _, err := Cos(Of[testSecond](1)); return err },
			"tan 1": func() error { _, err := Tan(Of[Unitless](1.0)); return err },
		}
		for name, got := range tests {
			if err := got(); !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("%v: err = %v, want %v", name, err, ErrDimensionMismatch)
			}
		}
	})
}

func TestAtan2(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a, err := Atan2[testDegree](Of[testMeter](1.0), Of[testMeter](1.0))
		if err != nil || math.Abs(a.Value()-45) > 1e-12 {
			t.Errorf("Atan2[deg](1 m, 1 m) = %v, %v, want 45 deg", a, err)
		}
		b, err := Atan2[testRadian](Of[testFoot](0.0), Of[testFoot](-1.0))
		if err != nil || b.Value() != math.Pi {
			t.Errorf("Atan2[rad](0 ft, -1 ft) = %v, %v, want %v rad", b, err, math.Pi)
		}
		c, err := Atan2[testDegree](Of[testSecond](float32(-2)), Of[testSecond](float32(0)))
		if err != nil || math.Abs(float64(c.Value())+90) > 1e-5 {
			t.Errorf("Atan2[deg](-2 s, 0 s) = %v, %v, want -90 deg", c, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := Atan2[testSecond](Of[testMeter](1.0), Of[testMeter](1.0))
		if !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("Atan2[s]() err = %v, want %v", err, ErrDimensionMismatch)
		}
	})
}

func TestHypot(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{3, 4, 5},
		{-5, 12, 13},
		{0, 0, 0},
		{1e300, 1e300, 1e300 * math.Sqrt2},
		{1e-300, 0, 1e-300},
	}
	for _, tt := range tests {
		got := Hypot(Of[testMeter](tt.a), Of[testMeter](tt.b))
		if math.Abs(got.Value()-tt.want) > 1e-15*tt.want {
			t.Errorf("Hypot(%v, %v) = %v, want %v", tt.a, tt.b, got.Value(), tt.want)
		}
	}
}

func TestCbrt(t *testing.T) {
	got := Cbrt(Of[Cubed[testMeter]](-27.0))
	if math.Abs(got.Value()+3) > 1e-15 {
		t.Errorf("Cbrt(-27 m^3) = %v, want -3 m", got)
	}
	if d := got.Unit().Dimension(); d != meter.Dimension() {
		t.Errorf("Cbrt(-27 m^3).Unit().Dimension() = %v, want %v", d, meter.Dimension())
	}
}

func TestMod(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			a, b, want int
		}{
			{7, 3, 1},
			{-7, 3, -1},
			{7, -3, 1},
			{6, 3, 0},
		}
		for _, tt := range tests {
			got := Mod(Of[testMeter](tt.a), Of[testMeter](tt.b))
			if got.Value() != tt.want {
				t.Errorf("Mod(%v, %v) = %v, want %v", tt.a, tt.b, got.Value(), tt.want)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		got := Mod(Of[testMeter](uint64(math.MaxUint64)), Of[testMeter](uint64(10)))
		if got.Value() != 5 {
			t.Errorf("Mod(MaxUint64, 10) = %v, want 5", got.Value())
		}
	})

	t.Run("float", func(t *testing.T) {
		tests := []struct {
			a, b, want float64
		}{
			{7.5, 2, 1.5},
			{-7.5, 2, -1.5},
			{7.5, -2, 1.5},
		}
		for _, tt := range tests {
			got := Mod(Of[testSecond](tt.a), Of[testSecond](tt.b))
			if got.Value() != tt.want {
				t.Errorf("Mod(%v, %v) = %v, want %v", tt.a, tt.b, got.Value(), tt.want)
			}
		}
		if got := Mod(Of[testSecond](1.0), Of[testSecond](0.0)); !IsNaN(got) {
			t.Errorf("Mod(1, 0) = %v, want NaN", got)
		}
	})
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{7.5, 2, -0.5},
		{5, 2, 1},
		{7, 2, -1},
		{-5, 2, -1},
		{1, 3, 1},
	}
	for _, tt := range tests {
		got := Remainder(Of[testMeter](tt.a), Of[testMeter](tt.b))
		if got.Value() != tt.want {
			t.Errorf("Remainder(%v, %v) = %v, want %v", tt.a, tt.b, got.Value(), tt.want)
		}
	}
}

func TestCopySign(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			q, s, want int
		}{
			{5, -1, -5},
			{-5, 2, 5},
			{-5, -2, -5},
			{5, 0, 5},
			{0, -3, 0},
		}
		for _, tt := range tests {
			got := CopySign(Of[testMeter](tt.q), Of[testSecond](tt.s))
			if got.Value() != tt.want {
				t.Errorf("CopySign(%v, %v) = %v, want %v", tt.q, tt.s, got.Value(), tt.want)
			}
		}
	})

	t.Run("float", func(t *testing.T) {
		got := CopySign(Of[testMeter](3.0), Of[testMeter](math.Copysign(0, -1)))
		if got.Value() != -3 {
			t.Errorf("CopySign(3, -0) = %v, want -3", got.Value())
		}
		got = CopySign(Of[testMeter](-3.0), Of[testMeter](0.0))
		if got.Value() != 3 {
			t.Errorf("CopySign(-3, 0) = %v, want 3", got.Value())
		}
	})
}

func TestIsNaN(t *testing.T) {
	if !IsNaN(Of[testMeter](math.NaN())) {
		t.Errorf("IsNaN(NaN) = false, want true")
	}
	if IsNaN(Of[testMeter](math.Inf(1))) {
		t.Errorf("IsNaN(+Inf) = true, want false")
	}
	if IsNaN(Of[testMeter](3)) {
		t.Errorf("IsNaN(3) = true, want false")
	}
	if !IsInf(Of[testMeter](math.Inf(-1)), -1) || IsInf(Of[testMeter](math.Inf(-1)), 1) {
		t.Errorf("IsInf(-Inf) is wrong")
	}
	if IsInf(Of[testMeter](int64(math.MaxInt64)), 0) {
		t.Errorf("IsInf(MaxInt64) = true, want false")
	}
}

func TestLerp(t *testing.T) {
	a, b := Of[testMeter](2.0), Of[testMeter](10.0)
	tests := []struct {
		t, want float64
	}{
		{0, 2},
		{0.25, 4},
		{0.5, 6},
		{1, 10},
		{1.5, 14},
		{-0.5, -2},
	}
	for _, tt := range tests {
		if got := Lerp(a, b, tt.t); got.Value() != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", a, b, tt.t, got.Value(), tt.want)
		}
	}
	// Exact at the far end even when b - a rounds.
	c, d := Of[testMeter](0.1), Of[testMeter](0.7)
	if got := Lerp(c, d, 1); got != d {
		t.Errorf("Lerp(%v, %v, 1) = %v, want %v", c, d, got, d)
	}
}

func TestPowInt(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			got  func() (float64, error)
			want float64
		}{
			{"(3 m)^2", func() (float64, error) { q, err := PowInt[Squared[testMeter]](Of[testMeter](3), 2); return float64(q.Value()), err }, 9},
			{"(2 ft)^2 in in^2", func() (float64, error) { q, err := PowInt[Squared[testInch]](Of[testFoot](2), 2); return float64(q.Value()), err }, 576},
			{"(-2 m)^3", func() (float64, error) { q, err := PowInt[Cubed[testMeter]](Of[testMeter](int8(-2)), 3); return float64(q.Value()), err }, -8},
			{"(5 m)^0", func() (float64, error) { q, err := PowInt[Unitless](Of[testMeter](5), 0); return float64(q.Value()), err }, 1},
			{"(2 s)^-2", func() (float64, error) { q, err := PowInt[Inverse[Squared[testSecond]]](Of[testSecond](2.0), -2); return q.Value(), err }, 0.25},
			{"(2 m)^1", func() (float64, error) { q, err := PowInt[testMeter](Of[testMeter](2.0), 1); return q.Value(), err }, 2},
		}
		for _, tt := range tests {
			got, err := tt.got()
			if err != nil {
				t.Errorf("%v: unexpected error: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			got  func() error
			want error
		}{
			"lossy": {
				func() error { _, err := PowInt[Squared[testFoot]](Of[testInch](3), 2); return err },
				ErrLossyConversion,
			},
			"dimension": {
				func() error { _, err := PowInt[testMeter](Of[testMeter](2), 2); return err },
				ErrDimensionMismatch,
			},
			"affine": {
				func() error { _, err := PowInt[Squared[testKelvin]](Of[testCelsius](2.0), 2); return err },
				ErrAffineComposition,
			},
		}
		for name, tt := range tests {
			if err := tt.got(); !errors.Is(err, tt.want) {
				t.Errorf("%v: err = %v, want %v", name, err, tt.want)
			}
		}
		if _, err := PowInt[Inverse[testMeter]](Of[testMeter](2), -1); err == nil {
			t.Errorf("PowInt(2 m, -1) in int did not fail")
		}
	})
}

func TestInverseAs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name      string
			got, want float64
		}{
			{"1 / 4 s", must1(InverseIn[Inverse[testSecond]](Of[testSecond](4.0))), 0.25},
			{"1 / 4 ms", float64(must1(InverseIn[Inverse[testSecond]](Of[Milli[testSecond]](4)))), 250},
			{"1 / 3 ms", float64(must1(InverseIn[Inverse[testSecond]](Of[Milli[testSecond]](3)))), 333},
			{"1 / -8 ms", float64(must1(InverseIn[Inverse[testSecond]](Of[Milli[testSecond]](int16(-8))))), -125},
			{"1 / 2 h", must1(InverseIn[Inverse[testMinute]](Of[testHour](2.0))), 1.0 / 120},
			{"1 / 0.5 ohm", must1(InverseIn[Quotient[testAmpere, testVolt]](Of[testOhm](0.5))), 2},
		}
		for _, tt := range tests {
			if math.Abs(tt.got-tt.want) > 1e-15 {
				t.Errorf("InverseIn(%v) = %v, want %v", tt.name, tt.got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			got  func() error
			want error
		}{
			"non-integer": {
				func() error { _, err := InverseAs[Inverse[Milli[testSecond]]](Of[testSecond](4)); return err },
				ErrNonInteger,
			},
			"range": {
				func() error { _, err := InverseAs[Inverse[testSecond]](Of[Micro[testSecond]](int8(1))); return err },
				ErrMagnitudeRange,
			},
			"dimension": {
				func() error { _, err := InverseAs[testSecond](Of[testSecond](1.0)); return err },
				ErrDimensionMismatch,
			},
			"affine": {
				func() error { _, err := InverseAs[Inverse[testKelvin]](Of[testCelsius](1.0)); return err },
				ErrAffineComposition,
			},
		}
		for name, tt := range tests {
			if err := tt.got(); !errors.Is(err, tt.want) {
				t.Errorf("%v: err = %v, want %v", name, err, tt.want)
			}
		}
	})
}

func must1[R Rep](v R, err error) R {
	if err != nil {
		panic(err)
	}
	return v
}
