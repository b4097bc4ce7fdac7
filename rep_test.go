package measure

import (
	"math"
	"math/big"
	"testing"
)

type celsiusDegrees float32

type count uint16

func TestKindOf(t *testing.T) {
	tests := []struct {
		got, want Kind
	}{
		{KindOf[int](), KindInt},
		{KindOf[int8](), KindInt8},
		{KindOf[int16](), KindInt16},
		{KindOf[int32](), KindInt32},
		{KindOf[int64](), KindInt64},
		{KindOf[uint](), KindUint},
		{KindOf[uint8](), KindUint8},
		{KindOf[uint16](), KindUint16},
		{KindOf[uint32](), KindUint32},
		{KindOf[uint64](), KindUint64},
		{KindOf[float32](), KindFloat32},
		{KindOf[float64](), KindFloat64},
		{KindOf[celsiusDegrees](), KindFloat32},
		{KindOf[count](), KindUint16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("KindOf() = %v, want %v", tt.got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for k := KindInt; k <= KindFloat64; k++ {
			got, err := ParseKind(k.String())
			if err != nil {
				t.Errorf("ParseKind(%q) failed: %v", k, err)
				continue
			}
			if got != k {
				t.Errorf("ParseKind(%q) = %v, want %v", k, got, k)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "invalid", "complex128", "Int", "uintptr"}
		for _, s := range tests {
			if _, err := ParseKind(s); err == nil {
				t.Errorf("ParseKind(%q) did not fail", s)
			}
		}
	})
}

func TestKind_Predicates(t *testing.T) {
	tests := []struct {
		k                            Kind
		isValid, isFloat, isIntegral bool
		isSigned                     bool
	}{
		{KindInvalid, false, false, false, false},
		{KindInt8, true, false, true, true},
		{KindInt64, true, false, true, true},
		{KindUint, true, false, true, false},
		{KindUint64, true, false, true, false},
		{KindFloat32, true, true, false, true},
		{KindFloat64, true, true, false, true},
		{Kind(42), false, false, false, false},
	}
	for _, tt := range tests {
		if got := tt.k.IsValid(); got != tt.isValid {
			t.Errorf("%v.IsValid() = %v, want %v", tt.k, got, tt.isValid)
		}
		if got := tt.k.IsFloat(); got != tt.isFloat {
			t.Errorf("%v.IsFloat() = %v, want %v", tt.k, got, tt.isFloat)
		}
		if got := tt.k.IsIntegral(); got != tt.isIntegral {
			t.Errorf("%v.IsIntegral() = %v, want %v", tt.k, got, tt.isIntegral)
		}
		if got := tt.k.IsSigned(); got != tt.isSigned {
			t.Errorf("%v.IsSigned() = %v, want %v", tt.k, got, tt.isSigned)
		}
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q, want %q", got, "Kind(42)")
	}
}

func TestKind_Bounds(t *testing.T) {
	tests := []struct {
		k      Kind
		lo, hi *big.Rat
	}{
		{KindInt8, big.NewRat(-128, 1), big.NewRat(127, 1)},
		{KindUint8, big.NewRat(0, 1), big.NewRat(255, 1)},
		{KindInt16, big.NewRat(-32768, 1), big.NewRat(32767, 1)},
		{KindInt64, big.NewRat(math.MinInt64, 1), big.NewRat(math.MaxInt64, 1)},
		{KindUint64, big.NewRat(0, 1), new(big.Rat).SetUint64(math.MaxUint64)},
		{KindFloat32, new(big.Rat).SetFloat64(-math.MaxFloat32), new(big.Rat).SetFloat64(math.MaxFloat32)},
	}
	for _, tt := range tests {
		lo, hi := tt.k.bounds()
		if lo.Cmp(tt.lo) != 0 || hi.Cmp(tt.hi) != 0 {
			t.Errorf("%v.bounds() = [%v, %v], want [%v, %v]", tt.k, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestFromRat(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			x    *big.Rat
			want int
		}{
			{big.NewRat(0, 1), 0},
			{big.NewRat(5, 2), 2},
			{big.NewRat(7, 2), 4},
			{big.NewRat(-5, 2), -2},
			{big.NewRat(-7, 2), -4},
			{big.NewRat(7, 3), 2},
			{big.NewRat(8, 3), 3},
			{big.NewRat(-8, 3), -3},
		}
		for _, tt := range tests {
			if got := fromRat[int](tt.x); got != tt.want {
				t.Errorf("fromRat[int](%v) = %v, want %v", tt.x, got, tt.want)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		x := new(big.Rat).SetUint64(math.MaxUint64)
		if got := fromRat[uint64](x); got != math.MaxUint64 {
			t.Errorf("fromRat[uint64](%v) = %v, want %v", x, got, uint64(math.MaxUint64))
		}
	})

	t.Run("float", func(t *testing.T) {
		if got := fromRat[float64](big.NewRat(1, 4)); got != 0.25 {
			t.Errorf("fromRat[float64](1/4) = %v, want 0.25", got)
		}
	})
}

func TestRatOf(t *testing.T) {
	if got := ratOf(math.Inf(1)); got != nil {
		t.Errorf("ratOf(+Inf) = %v, want nil", got)
	}
	if got := ratOf(math.NaN()); got != nil {
		t.Errorf("ratOf(NaN) = %v, want nil", got)
	}
	if got := ratOf(uint64(math.MaxUint64)); got.Cmp(new(big.Rat).SetUint64(math.MaxUint64)) != 0 {
		t.Errorf("ratOf(MaxUint64) = %v", got)
	}
	if got := ratOf(int8(-3)); got.Cmp(big.NewRat(-3, 1)) != 0 {
		t.Errorf("ratOf(-3) = %v, want -3", got)
	}
	if got := ratOf(0.5); got.Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("ratOf(0.5) = %v, want 1/2", got)
	}
}
