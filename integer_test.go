package measure

import (
	"math"
	"testing"
)

func TestFint_Mul(t *testing.T) {
	tests := []struct {
		x, y   fint
		want   fint
		wantOk bool
	}{
		{0, 0, 0, true},
		{1, math.MaxUint64, math.MaxUint64, true},
		{1 << 32, 1 << 31, 1 << 63, true},
		{1 << 32, 1 << 32, 0, false},
		{math.MaxUint64, 2, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.x.mul(tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.mul(%v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestFint_Pow(t *testing.T) {
	tests := []struct {
		x      fint
		e      uint64
		want   fint
		wantOk bool
	}{
		{2, 0, 1, true},
		{2, 10, 1024, true},
		{10, 19, 10_000_000_000_000_000_000, true},
		{10, 20, 0, false},
		{2, 63, 1 << 63, true},
		{2, 64, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.x.pow(tt.e)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%v.pow(%v) = %v, %v, want %v, %v", tt.x, tt.e, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestQuoHalfEven(t *testing.T) {
	t.Run("int64", func(t *testing.T) {
		tests := []struct {
			x, d int64
			want int64
		}{
			{0, 3, 0},
			{6, 3, 2},
			{7, 2, 4},
			{5, 2, 2},
			{-5, 2, -2},
			{-7, 2, -4},
			{10, 4, 2},
			{14, 4, 4},
			{11, 4, 3},
			{-11, 4, -3},
			{1, 3, 0},
			{2, 3, 1},
			{-2, 3, -1},
		}
		for _, tt := range tests {
			if got := roundQuo(tt.x/tt.d, tt.x%tt.d, tt.d); got != tt.want {
				t.Errorf("roundQuo(%v / %v) = %v, want %v", tt.x, tt.d, got, tt.want)
			}
		}
	})

	t.Run("uint64", func(t *testing.T) {
		tests := []struct {
			x, d uint64
			want uint64
		}{
			{5, 2, 2},
			{7, 2, 4},
			{math.MaxUint64, 2, 1 << 63},
			{math.MaxUint64, math.MaxUint64, 1},
		}
		for _, tt := range tests {
			if got := roundQuo(tt.x/tt.d, tt.x%tt.d, tt.d); got != tt.want {
				t.Errorf("roundQuo(%v / %v) = %v, want %v", tt.x, tt.d, got, tt.want)
			}
		}
	})
}

func TestFactorize(t *testing.T) {
	tests := []struct {
		n    uint64
		want []primePower
	}{
		{1, nil},
		{2, []primePower{{2, 1}}},
		{12, []primePower{{2, 2}, {3, 1}}},
		{1000, []primePower{{2, 3}, {5, 3}}},
		{299792458, []primePower{{2, 1}, {7, 1}, {73, 1}, {293339, 1}}},
		{9192631770, []primePower{{2, 1}, {3, 2}, {5, 1}, {7, 2}, {47, 1}, {44351, 1}}},
		{1 << 63, []primePower{{2, 63}}},
		// Product of two primes above the trial division bound.
		{1000003 * 1000033, []primePower{{1000003, 1}, {1000033, 1}}},
		{18446744073709551557, []primePower{{18446744073709551557, 1}}},
		{4294967291 * 4294967279, []primePower{{4294967279, 1}, {4294967291, 1}}},
	}
	for _, tt := range tests {
		got := factorize(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("factorize(%v) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("factorize(%v) = %v, want %v", tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		n    uint64
		want bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{1021, true},
		{1023, false},
		{1000003, true},
		{18446744073709551557, true},
		{18446744073709551615, false},
	}
	for _, tt := range tests {
		if got := isPrime(tt.n); got != tt.want {
			t.Errorf("isPrime(%v) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func FuzzFactorize(f *testing.F) {
	f.Add(uint64(1))
	f.Add(uint64(360))
	f.Add(uint64(1602176634))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(
		func(t *testing.T, n uint64) {
			if n == 0 {
				t.Skip()
				return
			}
			got := fint(1)
			for i, pp := range factorize(n) {
				if !isPrime(pp.prime) {
					t.Errorf("factorize(%v)[%v] = %v, which is not prime", n, i, pp.prime)
				}
				p, ok := fint(pp.prime).pow(pp.mult)
				if ok {
					got, ok = got.mul(p)
				}
				if !ok {
					t.Errorf("factorize(%v) overflows", n)
					return
				}
			}
			if uint64(got) != n {
				t.Errorf("product of factorize(%v) = %v", n, got)
			}
		},
	)
}

func TestRoundQuo(t *testing.T) {
	tests := []struct {
		base, rem, d, want int64
	}{
		{-27315, 5, 10, -27314},
		{-27314, 5, 10, -27314},
		{-27313, 5, 10, -27312},
		{3, -5, 10, 2},
		{4, -5, 10, 4},
		{-7, 3, 6, -6},
		{-7, 4, 6, -6},
		{-7, 2, 6, -7},
		{0, -3, 6, 0},
		{1, -3, 6, 0},
	}
	for _, tt := range tests {
		if got := roundQuo(tt.base, tt.rem, tt.d); got != tt.want {
			t.Errorf("roundQuo(%v, %v, %v) = %v, want %v", tt.base, tt.rem, tt.d, got, tt.want)
		}
	}
}
