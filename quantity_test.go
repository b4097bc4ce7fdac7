package measure

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

func TestQuantity_ZeroValue(t *testing.T) {
	got := Quantity[testMeter, int]{}
	want := Zero[testMeter, int]()
	if got != want || !got.IsZero() {
		t.Errorf("Quantity{} = %v, want %v", got, want)
	}
}

func TestQuantity_Size(t *testing.T) {
	q := Of[testMeter](int32(5))
	if got, want := unsafe.Sizeof(q), uintptr(4); got != want {
		t.Errorf("unsafe.Sizeof(%v) = %v, want %v", q, got, want)
	}
	p := PointOf[testCelsius](float64(20))
	if got, want := unsafe.Sizeof(p), uintptr(8); got != want {
		t.Errorf("unsafe.Sizeof(%v) = %v, want %v", p, got, want)
	}
}

func TestQuantity_String(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{Of[testMeter](5).String(), "5 m"},
		{Of[testMeter](-2.5).String(), "-2.5 m"},
		{Of[Unitless](3).String(), "3"},
		{Of[Quotient[testMeter, testSecond]](5).String(), "5 m / s"},
		{Mul(Of[testAmpere](2), Of[testOhm](4)).String(), "8 A * ohm"},
		{Of[Kilo[testMeter]](uint8(7)).String(), "7 km"},
		{ScaleBy[thousand](Of[testSecond](2)).String(), "2 [1000 s]"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestQuantity_Arithmetic(t *testing.T) {
	a, b := Of[testMeter](7), Of[testMeter](-3)
	tests := []struct {
		name      string
		got, want Quantity[testMeter, int]
	}{
		{"Add", a.Add(b), Of[testMeter](4)},
		{"Sub", a.Sub(b), Of[testMeter](10)},
		{"Neg", a.Neg(), Of[testMeter](-7)},
		{"Abs", b.Abs(), Of[testMeter](3)},
		{"Scale", a.Scale(3), Of[testMeter](21)},
		{"Quo", a.Quo(2), Of[testMeter](3)},
		{"Min", a.Min(b), b},
		{"Max", a.Max(b), a},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%v.%v() = %v, want %v", a, tt.name, tt.got, tt.want)
		}
	}
	if got := a.Ratio(Of[testMeter](2)); got != 3 {
		t.Errorf("%v.Ratio(2 m) = %v, want 3", a, got)
	}
}

func TestQuantity_Cmp(t *testing.T) {
	tests := []struct {
		q, o Quantity[testSecond, float64]
		want int
	}{
		{Of[testSecond](1.0), Of[testSecond](2.0), -1},
		{Of[testSecond](2.0), Of[testSecond](2.0), 0},
		{Of[testSecond](3.0), Of[testSecond](2.0), 1},
		{Of[testSecond](-1.0), Of[testSecond](0.0), -1},
	}
	for _, tt := range tests {
		if got := tt.q.Cmp(tt.o); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.q, tt.o, got, tt.want)
		}
		if got := tt.q.Equal(tt.o); got != (tt.want == 0) {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.q, tt.o, got, tt.want == 0)
		}
		if got := tt.q.Less(tt.o); got != (tt.want < 0) {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.q, tt.o, got, tt.want < 0)
		}
		if got := tt.q.LessOrEqual(tt.o); got != (tt.want <= 0) {
			t.Errorf("%v.LessOrEqual(%v) = %v, want %v", tt.q, tt.o, got, tt.want <= 0)
		}
		if got := tt.q.Greater(tt.o); got != (tt.want > 0) {
			t.Errorf("%v.Greater(%v) = %v, want %v", tt.q, tt.o, got, tt.want > 0)
		}
		if got := tt.q.GreaterOrEqual(tt.o); got != (tt.want >= 0) {
			t.Errorf("%v.GreaterOrEqual(%v) = %v, want %v", tt.q, tt.o, got, tt.want >= 0)
		}
		if got := tt.q.Sign(); got != tt.q.Cmp(Of[testSecond](0.0)) {
			t.Errorf("%v.Sign() = %v", tt.q, got)
		}
	}
}

func TestQuantity_Clamp(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		lo, hi := Of[testMeter](0), Of[testMeter](10)
		tests := []struct {
			q, want Quantity[testMeter, int]
		}{
			{Of[testMeter](-5), lo},
			{Of[testMeter](5), Of[testMeter](5)},
			{Of[testMeter](15), hi},
		}
		for _, tt := range tests {
			got, err := tt.q.Clamp(lo, hi)
			if err != nil {
				t.Errorf("%v.Clamp(%v, %v) failed: %v", tt.q, lo, hi, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Clamp(%v, %v) = %v, want %v", tt.q, lo, hi, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		q := Of[testMeter](1)
		if _, err := q.Clamp(Of[testMeter](2), Of[testMeter](1)); err == nil {
			t.Errorf("%v.Clamp(2 m, 1 m) did not fail", q)
		}
	})
}

func TestMul(t *testing.T) {
	v := Mul(Of[testAmpere](2), Of[testOhm](4))
	if got, err := In[testVolt](v); err != nil || got != 8 {
		t.Errorf("In[V](%v) = %v, %v, want 8", v, got, err)
	}

	d := Mul(Of[Quotient[testMeter, testSecond]](5), Of[testSecond](6))
	if got, err := In[testMeter](d); err != nil || got != 30 {
		t.Errorf("In[m](%v) = %v, %v, want 30", d, got, err)
	}

	i := Div(Of[testVolt](12), Of[testOhm](4))
	if got, err := In[testAmpere](i); err != nil || got != 3 {
		t.Errorf("In[A](%v) = %v, %v, want 3", i, got, err)
	}

	a := Square(Of[testMeter](3))
	if got, err := In[Product[testMeter, testMeter]](a); err != nil || got != 9 {
		t.Errorf("In[m * m](%v) = %v, %v, want 9", a, got, err)
	}

	c := Cube(Of[testFoot](2))
	if got, err := In[Cubed[testInch]](c); err != nil || got != 8*1728 {
		t.Errorf("In[in^3](%v) = %v, %v, want %v", c, got, err, 8*1728)
	}

	s := Sqrt(Of[Squared[testMeter]](16.0))
	if got, err := In[testMeter](s); err != nil || got != 4 {
		t.Errorf("In[m](%v) = %v, %v, want 4", s, got, err)
	}

	k := ScaleBy[thousand](Of[testMeter](5))
	if got, err := In[testMeter](k); err != nil || got != 5000 {
		t.Errorf("In[m](%v) = %v, %v, want 5000", k, got, err)
	}
}

func TestAs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		if got, err := As[testInch](Of[testFoot](3)); err != nil || got != Of[testInch](36) {
			t.Errorf("As[in](3 ft) = %v, %v, want 36 in", got, err)
		}
		if got, err := In[testFoot](Of[testInch](2.0)); err != nil || got != 2.0/12 {
			t.Errorf("In[ft](2.0 in) = %v, %v, want %v", got, err, 2.0/12)
		}
		if got, err := AsRep[testInch, float64](Of[testFoot](2)); err != nil || got.Value() != 24 {
			t.Errorf("AsRep[in, float64](2 ft) = %v, %v, want 24 in", got, err)
		}
		if got, err := InRep[testMeter, int64](Of[testMeter](int32(-7))); err != nil || got != -7 {
			t.Errorf("InRep[m, int64](-7 m) = %v, %v, want -7", got, err)
		}
		if got, err := In[Quotient[testMeter, testSecond]](Of[Inverse[Quotient[testSecond, testMeter]]](3)); err != nil || got != 3 {
			t.Errorf("In[m / s](3 1 / (s / m)) = %v, %v, want 3", got, err)
		}
		if got, err := In[testKelvin](Of[testCelsius](10)); err != nil || got != 10 {
			t.Errorf("In[K](10 degC) = %v, %v, want 10", got, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			got  func() error
			want error
		}{
			"truncation": {func() error { _, err := As[testFoot](Of[testInch](12)); return err }, ErrLossyConversion},
			"overflow":   {func() error { _, err := As[testInch](Of[testMile](int16(1))); return err }, ErrLossyConversion},
			"narrowing":  {func() error { _, err := InRep[testMeter, float32](Of[testMeter](1.0)); return err }, ErrLossyConversion},
			"sign":       {func() error { _, err := InRep[testMeter, uint](Of[testMeter](1)); return err }, ErrLossyConversion},
			"float":      {func() error { _, err := InRep[testMeter, int](Of[testMeter](1.0)); return err }, ErrLossyConversion},
			"dimension":  {func() error { _, err := As[testSecond](Of[testMeter](1)); return err }, ErrDimensionMismatch},
			"affine": {
				func() error {
					_, err := As[Product[testKelvin, testMeter]](Mul(Of[testCelsius](1.0), Of[testMeter](2.0)))
					return err
				},
				ErrAffineComposition,
			},
		}
		for name, tt := range tests {
			if err := tt.got(); !errors.Is(err, tt.want) {
				t.Errorf("%v: err = %v, want %v", name, err, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("MustAs[ft](12 in) did not panic")
			}
		}()
		MustAs[testFoot](Of[testInch](12))
	})
}

func TestCoerceAs(t *testing.T) {
	tests := []struct {
		v, want int
	}{
		{12, 1},
		{18, 2},
		{30, 2},
		{42, 4},
		{-30, -2},
		{5, 0},
	}
	for _, tt := range tests {
		q := Of[testInch](tt.v)
		got, err := CoerceAs[testFoot](q)
		if err != nil {
			t.Errorf("CoerceAs[ft](%v) failed: %v", q, err)
			continue
		}
		if got.Value() != tt.want {
			t.Errorf("CoerceAs[ft](%v) = %v, want %v ft", q, got, tt.want)
		}
		if v := MustCoerceIn[testFoot](q); v != tt.want {
			t.Errorf("MustCoerceIn[ft](%v) = %v, want %v", q, v, tt.want)
		}
	}
	if got, err := CoerceInRep[testMeter, int](Of[testMeter](2.5)); err != nil || got != 2 {
		t.Errorf("CoerceInRep[m, int](2.5 m) = %v, %v, want 2", got, err)
	}
	if got, err := CoerceAsRep[testRadian, int](Of[testDegree](180.0)); err != nil || got.Value() != 3 {
		t.Errorf("CoerceAsRep[rad, int](180 deg) = %v, %v, want 3 rad", got, err)
	}
	if _, err := CoerceAs[testSecond](Of[testMeter](1)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("CoerceAs[s](1 m) = %v, want %v", err, ErrDimensionMismatch)
	}
}

func TestRoundAs(t *testing.T) {
	tests := []struct {
		v                  int
		round, floor, ceil int
	}{
		{12, 1, 1, 1},
		{18, 2, 1, 2},
		{30, 3, 2, 3},
		{25, 2, 2, 3},
		{-30, -3, -3, -2},
		{-18, -2, -2, -1},
	}
	for _, tt := range tests {
		q := Of[testInch](tt.v)
		if got, err := RoundAs[testFoot](q); err != nil || got.Value() != tt.round {
			t.Errorf("RoundAs[ft](%v) = %v, %v, want %v ft", q, got, err, tt.round)
		}
		if got, err := FloorAs[testFoot](q); err != nil || got.Value() != tt.floor {
			t.Errorf("FloorAs[ft](%v) = %v, %v, want %v ft", q, got, err, tt.floor)
		}
		if got, err := CeilAs[testFoot](q); err != nil || got.Value() != tt.ceil {
			t.Errorf("CeilAs[ft](%v) = %v, %v, want %v ft", q, got, err, tt.ceil)
		}
	}
	if _, err := RoundAs[testSecond](Of[testMeter](1)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("RoundAs[s](1 m) = %v, want %v", err, ErrDimensionMismatch)
	}
}

func TestCmpUnits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			got  func() (int, error)
			want int
		}{
			{"1 ft = 12 in", func() (int, error) { return CmpUnits(Of[testFoot](1), Of[testInch](12)) }, 0},
			{"1 ft < 13 in", func() (int, error) { return CmpUnits(Of[testFoot](1), Of[testInch](13)) }, -1},
			{"1 mi > 63359 in", func() (int, error) { return CmpUnits(Of[testMile](1), Of[testInch](uint32(63359))) }, 1},
			{"1 ft = 12.0 in", func() (int, error) { return CmpUnits(Of[testFoot](1), Of[testInch](12.0)) }, 0},
			{"180 deg > float64(π) rad", func() (int, error) { return CmpUnits(Of[testDegree](180), Of[testRadian](math.Pi)) }, 1},
			{"180 deg < 3.1416 rad", func() (int, error) { return CmpUnits(Of[testDegree](180), Of[testRadian](3.1416)) }, -1},
			{"0 deg = 0 rad", func() (int, error) { return CmpUnits(Of[testDegree](0), Of[testRadian](0)) }, 0},
			{"+Inf m > 1 ft", func() (int, error) { return CmpUnits(Of[testMeter](math.Inf(1)), Of[testFoot](1.0)) }, 1},
			{"-Inf m < 1 ft", func() (int, error) { return CmpUnits(Of[testMeter](math.Inf(-1)), Of[testFoot](1.0)) }, -1},
		}
		for _, tt := range tests {
			got, err := tt.got()
			if err != nil {
				t.Errorf("CmpUnits(%v) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("CmpUnits(%v) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := CmpUnits(Of[testMeter](1), Of[testSecond](1)); !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("CmpUnits(1 m, 1 s) = %v, want %v", err, ErrDimensionMismatch)
		}
		if _, err := CmpUnits(Of[testMeter](math.NaN()), Of[testFoot](1)); err == nil {
			t.Errorf("CmpUnits(NaN m, 1 ft) did not fail")
		}
	})
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"V = A * ohm", Equivalent(Of[testVolt](8), Mul(Of[testAmpere](2), Of[testOhm](4))), true},
		{"A = V / ohm", Equivalent(Of[testAmpere](2), Div(Of[testVolt](8.0), Of[testOhm](4.0))), true},
		{"ohm = V / A", Equivalent(Of[testOhm](4), Div(Of[testVolt](8), Of[testAmpere](2))), true},
		{"(m / s) * s = m", Equivalent(Mul(Of[Quotient[testMeter, testSecond]](5), Of[testSecond](6)), Of[testMeter](30)), true},
		{"1 h = 3600 s", Equivalent(Of[testHour](1), Of[testSecond](3600)), true},
		{"1 h != 3601 s", Equivalent(Of[testHour](1), Of[testSecond](3601)), false},
		{"1 m != 1 s", Equivalent(Of[testMeter](1), Of[testSecond](1)), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Equivalent(%v) = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func FuzzAs_RoundTrip(f *testing.F) {
	f.Add(int32(0))
	f.Add(int32(2147))
	f.Add(int32(-2147))
	f.Add(int32(math.MaxInt32))

	c := MustConversion[testFoot, int32, testInch, int64]()
	f.Fuzz(
		func(t *testing.T, v int32) {
			q := Of[testFoot](v)
			in := c.Apply(q)
			if in.Value() != int64(v)*12 {
				t.Errorf("Apply(%v) = %v, want %v in", q, in, int64(v)*12)
				return
			}
			back, err := CoerceAsRep[testFoot, int32](in)
			if err != nil {
				t.Errorf("CoerceAsRep[ft, int32](%v) failed: %v", in, err)
				return
			}
			if back != q {
				t.Errorf("AsRep[ft, int32](%v) = %v, want %v", in, back, q)
			}
		},
	)
}
