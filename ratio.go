package measure

import (
	"fmt"
	"math"
	"strconv"
)

// Ratio is an exact rational number used for the exponents of dimensions
// and magnitudes.
// The zero value is the number 0.
//
// A ratio is always kept in lowest terms with a positive denominator,
// so two ratios are equal if and only if they compare equal with ==.
type Ratio struct {
	num int64 // numerator
	dm1 int64 // denominator minus one, so that the zero value denotes 0/1
}

// R returns the ratio num / den reduced to lowest terms.
// R panics if den is 0.
func R(num, den int64) Ratio {
	if den == 0 {
		panic(fmt.Sprintf("R(%v, %v) failed: zero denominator", num, den))
	}
	if den < 0 {
		num, den = neg64(num), neg64(den)
	}
	if g := gcd64(abs64(num), den); g > 1 {
		num, den = num/g, den/g
	}
	if num == 0 {
		den = 1
	}
	return Ratio{num: num, dm1: den - 1}
}

// Int returns the ratio n / 1.
func Int(n int64) Ratio {
	return Ratio{num: n}
}

// Num returns the numerator of r.
func (r Ratio) Num() int64 {
	return r.num
}

// Den returns the denominator of r, which is always positive.
func (r Ratio) Den() int64 {
	return r.dm1 + 1
}

// IsZero returns true if r == 0.
func (r Ratio) IsZero() bool {
	return r.num == 0
}

// IsInt returns true if the denominator of r is 1.
func (r Ratio) IsInt() bool {
	return r.dm1 == 0
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: neg64(r.num), dm1: r.dm1}
}

// Add returns r + s.
func (r Ratio) Add(s Ratio) Ratio {
	rd, sd := r.Den(), s.Den()
	if rd == 1 && sd == 1 {
		return Int(add64(r.num, s.num))
	}
	g := gcd64(rd, sd)
	num := add64(mul64(r.num, sd/g), mul64(s.num, rd/g))
	return R(num, mul64(rd, sd/g))
}

// Sub returns r - s.
func (r Ratio) Sub(s Ratio) Ratio {
	return r.Add(s.Neg())
}

// Mul returns r * s.
func (r Ratio) Mul(s Ratio) Ratio {
	if r.IsZero() || s.IsZero() {
		return Ratio{}
	}
	// Cross-reducing first keeps intermediate products small.
	g1 := gcd64(abs64(r.num), s.Den())
	g2 := gcd64(abs64(s.num), r.Den())
	num := mul64(r.num/g1, s.num/g2)
	den := mul64(r.Den()/g2, s.Den()/g1)
	return R(num, den)
}

// Cmp compares r and s and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
func (r Ratio) Cmp(s Ratio) int {
	return r.Sub(s).Sign()
}

// Floor returns the largest integer less than or equal to r.
func (r Ratio) Floor() int64 {
	q := r.num / r.Den()
	if r.num%r.Den() != 0 && r.num < 0 {
		q--
	}
	return q
}

// Float64 returns the nearest float64 value of r.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String implements the [fmt.Stringer] interface and returns
// "num" for integers and "num/den" otherwise.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// Exponents are small by construction, so overflow is a programmer error.
func overflowPanic(op string, x, y int64) {
	panic(fmt.Sprintf("exponent %v(%v, %v) failed: int64 overflow", op, x, y))
}

func add64(x, y int64) int64 {
	z := x + y
	if (z > x) != (y > 0) {
		overflowPanic("add", x, y)
	}
	return z
}

func mul64(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	z := x * y
	if z/y != x || (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		overflowPanic("mul", x, y)
	}
	return z
}

func neg64(x int64) int64 {
	if x == math.MinInt64 {
		overflowPanic("neg", x, 0)
	}
	return -x
}

func abs64(x int64) int64 {
	if x < 0 {
		return neg64(x)
	}
	return x
}

// gcd64 expects non-negative arguments.
func gcd64(x, y int64) int64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// lcm64 expects positive arguments.
func lcm64(x, y int64) int64 {
	return mul64(x/gcd64(x, y), y)
}
