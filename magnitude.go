package measure

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/govalues/decimal"
)

// atom is a basis element of a magnitude: a prime number, or the
// symbolic constant π which is represented by 0.
type atom uint64

const piAtom atom = 0

// less orders atoms by their numeric value, so π falls between 3 and 5.
func (a atom) less(b atom) bool {
	switch {
	case a == b:
		return false
	case a == piAtom:
		return b >= 5
	case b == piAtom:
		return a <= 3
	}
	return a < b
}

func (a atom) String() string {
	if a == piAtom {
		return "π"
	}
	return fmt.Sprint(uint64(a))
}

// basePower is an atom raised to a rational power.
type basePower struct {
	base atom
	exp  Ratio
}

// Magnitude is an exact, nonzero scale factor.
// The zero value is the magnitude 1.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A magnitude is a product of rational powers of atoms, where an atom is
// either a prime number or π, together with a sign:
//
//	-1^neg × 2^e₂ × 3^e₃ × π^eπ × 5^e₅ × ...
//
// The list of powers is canonical: atoms are sorted by value and zero
// exponents are omitted, so equal magnitudes have identical
// representations regardless of how they were computed.
type Magnitude struct {
	neg bool        // indicates whether the magnitude is negative
	bps []basePower // canonical list of base powers, never shared mutably
}

var (
	// One is the magnitude 1.
	One = Magnitude{}
	// Pi is the magnitude π.
	Pi = Magnitude{bps: []basePower{{base: piAtom, exp: Int(1)}}}
)

var (
	// ErrIrrational is returned when an operation requires a rational
	// magnitude.
	ErrIrrational = errors.New("irrational magnitude")
	// ErrNonInteger is returned when a non-integer magnitude is requested
	// in an integral representation.
	ErrNonInteger = errors.New("non-integer magnitude in integral representation")
	// ErrMagnitudeRange is returned when a magnitude cannot fit the
	// requested representation.
	ErrMagnitudeRange = errors.New("magnitude out of range")
	// ErrInvalidRoot is returned when an even root of a negative magnitude
	// is requested, or when the root index is not positive.
	ErrInvalidRoot = errors.New("invalid root")
)

// Mag returns the magnitude of the positive integer n.
// Mag panics if n is 0.
func Mag(n uint64) Magnitude {
	if n == 0 {
		panic("Mag(0) failed: magnitudes must be nonzero")
	}
	pps := factorize(n)
	bps := make([]basePower, len(pps))
	for i, pp := range pps {
		bps[i] = basePower{base: atom(pp.prime), exp: Int(int64(pp.mult))}
	}
	return Magnitude{bps: bps}
}

// MagRatio returns the magnitude num / den.
// MagRatio panics if num or den is 0.
func MagRatio(num, den uint64) Magnitude {
	if num == 0 || den == 0 {
		panic(fmt.Sprintf("MagRatio(%v, %v) failed: magnitudes must be nonzero", num, den))
	}
	return Mag(num).Quo(Mag(den))
}

// Pow10 returns the magnitude 10^e.
func Pow10(e int) Magnitude {
	if e == 0 {
		return One
	}
	return Magnitude{bps: []basePower{
		{base: 2, exp: Int(int64(e))},
		{base: 5, exp: Int(int64(e))},
	}}
}

// merge combines two canonical lists, adding sign * the exponents of y to x.
func merge(x, y []basePower, sign int64) []basePower {
	z := make([]basePower, 0, len(x)+len(y))
	i, j := 0, 0
	for i < len(x) || j < len(y) {
		switch {
		case j == len(y) || (i < len(x) && x[i].base.less(y[j].base)):
			z = append(z, x[i])
			i++
		case i == len(x) || y[j].base.less(x[i].base):
			z = append(z, basePower{base: y[j].base, exp: y[j].exp.Mul(Int(sign))})
			j++
		default:
			e := x[i].exp.Add(y[j].exp.Mul(Int(sign)))
			if !e.IsZero() {
				z = append(z, basePower{base: x[i].base, exp: e})
			}
			i++
			j++
		}
	}
	if len(z) == 0 {
		return nil
	}
	return z
}

// Mul returns m * n.
func (m Magnitude) Mul(n Magnitude) Magnitude {
	return Magnitude{neg: m.neg != n.neg, bps: merge(m.bps, n.bps, 1)}
}

// Quo returns m / n.
func (m Magnitude) Quo(n Magnitude) Magnitude {
	return Magnitude{neg: m.neg != n.neg, bps: merge(m.bps, n.bps, -1)}
}

// Inv returns 1 / m.
func (m Magnitude) Inv() Magnitude {
	return One.Quo(m)
}

// Neg returns -m.
func (m Magnitude) Neg() Magnitude {
	return Magnitude{neg: !m.neg, bps: m.bps}
}

// Abs returns |m|.
func (m Magnitude) Abs() Magnitude {
	return Magnitude{bps: m.bps}
}

// Sign returns -1 if m is negative and +1 otherwise.
func (m Magnitude) Sign() int {
	if m.neg {
		return -1
	}
	return 1
}

// IsNeg returns true if m < 0.
func (m Magnitude) IsNeg() bool {
	return m.neg
}

// IsOne returns true if m == 1.
func (m Magnitude) IsOne() bool {
	return !m.neg && len(m.bps) == 0
}

// PowInt returns m^e.
func (m Magnitude) PowInt(e int) Magnitude {
	z, err := m.Pow(Int(int64(e)))
	if err != nil {
		panic(fmt.Sprintf("%v.PowInt(%v) failed: %v", m, e, err)) // should never happen
	}
	return z
}

// Pow returns m^e.
// Pow returns an error if e has an even denominator and m is negative.
func (m Magnitude) Pow(e Ratio) (Magnitude, error) {
	if e.IsZero() {
		return One, nil
	}
	neg := false
	if m.neg {
		if e.Den()%2 == 0 {
			return Magnitude{}, fmt.Errorf("%v^(%v): %w", m, e, ErrInvalidRoot)
		}
		neg = e.Num()%2 != 0
	}
	bps := make([]basePower, len(m.bps))
	for i, bp := range m.bps {
		bps[i] = basePower{base: bp.base, exp: bp.exp.Mul(e)}
	}
	if len(bps) == 0 {
		bps = nil
	}
	return Magnitude{neg: neg, bps: bps}, nil
}

// Root returns the n-th root of m.
func (m Magnitude) Root(n int) (Magnitude, error) {
	if n <= 0 {
		return Magnitude{}, fmt.Errorf("root %v of %v: %w", n, m, ErrInvalidRoot)
	}
	return m.Pow(R(1, int64(n)))
}

// Equal returns true if m and n denote the same number.
func (m Magnitude) Equal(n Magnitude) bool {
	if m.neg != n.neg || len(m.bps) != len(n.bps) {
		return false
	}
	for i := range m.bps {
		if m.bps[i] != n.bps[i] {
			return false
		}
	}
	return true
}

// IsInteger returns true if m is an integer.
func (m Magnitude) IsInteger() bool {
	for _, bp := range m.bps {
		if bp.base == piAtom || !bp.exp.IsInt() || bp.exp.Sign() < 0 {
			return false
		}
	}
	return true
}

// IsRational returns true if m is a rational number.
func (m Magnitude) IsRational() bool {
	for _, bp := range m.bps {
		if bp.base == piAtom || !bp.exp.IsInt() {
			return false
		}
	}
	return true
}

// Numerator returns the product of the base powers of m with positive
// exponents, carrying the sign of m.
// For a rational magnitude this is the numerator in lowest terms.
func (m Magnitude) Numerator() Magnitude {
	z := Magnitude{neg: m.neg}
	for _, bp := range m.bps {
		if bp.exp.Sign() > 0 {
			z.bps = append(z.bps, bp)
		}
	}
	return z
}

// Denominator returns the inverse of the product of the base powers of m
// with negative exponents.
// For a rational magnitude this is the denominator in lowest terms.
func (m Magnitude) Denominator() Magnitude {
	var z Magnitude
	for _, bp := range m.bps {
		if bp.exp.Sign() < 0 {
			z.bps = append(z.bps, basePower{base: bp.base, exp: bp.exp.Neg()})
		}
	}
	return z
}

// IntegerPart returns the largest integer magnitude built from the prime
// factors of m whose product divides m, carrying the sign of m.
func (m Magnitude) IntegerPart() Magnitude {
	z := Magnitude{neg: m.neg}
	for _, bp := range m.bps {
		if bp.base == piAtom {
			continue
		}
		if f := bp.exp.Floor(); f > 0 {
			z.bps = append(z.bps, basePower{base: bp.base, exp: Int(f)})
		}
	}
	return z
}

// ratParts computes |m| = num / den exactly.
// ratParts assumes that m is rational.
func (m Magnitude) ratParts() (num, den *big.Int) {
	num, den = big.NewInt(1), big.NewInt(1)
	for _, bp := range m.bps {
		e := bp.exp.Num()
		if e > 0 {
			(*bint)(num).mulPow(uint64(bp.base), uint64(e))
		} else {
			(*bint)(den).mulPow(uint64(bp.base), uint64(-e))
		}
	}
	return num, den
}

// Rat returns the exact value of m.
// Rat returns [ErrIrrational] if m is not rational.
func (m Magnitude) Rat() (*big.Rat, error) {
	if !m.IsRational() {
		return nil, fmt.Errorf("%v: %w", m, ErrIrrational)
	}
	num, den := m.ratParts()
	if m.neg {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, den), nil
}

// Decimal returns the exact value of m as a [decimal.Decimal].
// Decimal returns an error if m is irrational, if m is not a terminating
// decimal, or if the result does not fit the decimal coefficient.
func (m Magnitude) Decimal() (decimal.Decimal, error) {
	if !m.IsRational() {
		return decimal.Decimal{}, fmt.Errorf("%v: %w", m, ErrIrrational)
	}
	var twos, fives int64
	for _, bp := range m.bps {
		e := bp.exp.Num()
		switch {
		case e >= 0:
			continue
		case bp.base == 2:
			twos = -e
		case bp.base == 5:
			fives = -e
		default:
			return decimal.Decimal{}, fmt.Errorf("%v is not a terminating decimal: %w", m, ErrMagnitudeRange)
		}
	}
	scale := max(twos, fives)
	if scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("%v needs scale %v, but at most %v is supported: %w", m, scale, decimal.MaxScale, ErrMagnitudeRange)
	}
	// coef = m * 10^scale is an integer.
	coef, _ := m.Abs().Mul(Pow10(int(scale))).ratParts()
	if !coef.IsInt64() {
		return decimal.Decimal{}, fmt.Errorf("%v has too many digits: %w", m, ErrMagnitudeRange)
	}
	c := coef.Int64()
	if m.neg {
		c = -c
	}
	return decimal.New(c, int(scale))
}

// floatPrec is the precision of the intermediate evaluation of magnitudes.
const floatPrec = 256

// piDigits is π to 80 significant digits.
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862090"

var (
	bigPi  = mustParseFloat(piDigits)
	bigOne = new(big.Float).SetPrec(floatPrec).SetInt64(1)
)

func mustParseFloat(s string) *big.Float {
	f, _, err := big.ParseFloat(s, 10, floatPrec, big.ToNearestEven)
	if err != nil {
		panic(fmt.Sprintf("mustParseFloat(%q) failed: %v", s, err))
	}
	return f
}

// value returns |base^exp| with floatPrec bits of precision.
func (bp basePower) value() *big.Float {
	var b *big.Float
	if bp.base == piAtom {
		b = new(big.Float).Copy(bigPi)
	} else {
		b = new(big.Float).SetPrec(floatPrec).SetUint64(uint64(bp.base))
	}
	e := bp.exp
	neg := e.Sign() < 0
	if neg {
		e = e.Neg()
	}
	z := powFloat(b, uint64(e.Num()))
	if !e.IsInt() {
		z = rootFloat(z, uint64(e.Den()))
	}
	if neg {
		z.Quo(bigOne, z)
	}
	return z
}

// powFloat calculates x^e by repeated squaring.
func powFloat(x *big.Float, e uint64) *big.Float {
	z := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	b := new(big.Float).Copy(x)
	for e > 0 {
		if e&1 != 0 {
			z.Mul(z, b)
		}
		e >>= 1
		if e > 0 {
			b.Mul(b, b)
		}
	}
	return z
}

// rootFloat calculates the n-th root of the positive x using Newton's method.
func rootFloat(x *big.Float, n uint64) *big.Float {
	if n == 1 {
		return x
	}
	// Initial guess from the binary exponent: x = mant × 2^exp.
	mant := new(big.Float)
	exp := int64(x.MantExp(mant))
	mf, _ := mant.Float64()
	r := exp % int64(n)
	if r < 0 {
		r += int64(n)
	}
	guess := math.Pow(math.Ldexp(mf, int(r)), 1/float64(n))
	y := new(big.Float).SetPrec(floatPrec).SetFloat64(guess)
	y.SetMantExp(y, int((exp-r)/int64(n)))

	fn := new(big.Float).SetPrec(floatPrec).SetUint64(n)
	fn1 := new(big.Float).SetPrec(floatPrec).SetUint64(n - 1)
	t := new(big.Float).SetPrec(floatPrec)
	// Each iteration roughly doubles the number of correct bits.
	for i := 0; i < 12; i++ {
		t.Quo(x, powFloat(y, n-1))
		y.Mul(y, fn1)
		y.Add(y, t)
		y.Quo(y, fn)
	}
	return y
}

// bigFloat evaluates m with floatPrec bits of precision.
// Base powers are applied one at a time, alternating between the numerator
// and the denominator so that intermediate results stay close to 1.
func (m Magnitude) bigFloat() *big.Float {
	var num, den []*big.Float
	for _, bp := range m.bps {
		if bp.exp.Sign() > 0 {
			num = append(num, bp.value())
		} else {
			den = append(den, basePower{base: bp.base, exp: bp.exp.Neg()}.value())
		}
	}
	z := new(big.Float).SetPrec(floatPrec).SetInt64(1)
	i, j := 0, 0
	for i < len(num) || j < len(den) {
		if j == len(den) || (i < len(num) && z.Cmp(bigOne) <= 0) {
			z.Mul(z, num[i])
			i++
		} else {
			z.Quo(z, den[j])
			j++
		}
	}
	if m.neg {
		z.Neg(z)
	}
	return z
}

// Float64 returns the nearest float64 value of m.
// Float64 returns [ErrMagnitudeRange] if m overflows or underflows float64.
func (m Magnitude) Float64() (float64, error) {
	return ValueOf[float64](m)
}

// ValueOf returns the value of m in the representation R.
//
// For integral representations m must be an integer ([ErrNonInteger]) that
// fits R ([ErrMagnitudeRange]); the value is computed with checked integer
// arithmetic and is exact.
// For floating-point representations the value is computed with 256 bits
// of precision and rounded once to R, so it is the best available
// approximation; [ErrMagnitudeRange] is returned if it overflows R or
// underflows to zero.
func ValueOf[R Rep](m Magnitude) (R, error) {
	k := KindOf[R]()
	if k.IsIntegral() {
		u, err := m.uint64Value()
		if err != nil {
			return 0, err
		}
		return integralValue[R](k, u, m.neg, m)
	}
	f := m.bigFloat()
	switch k {
	case KindFloat32:
		x, _ := f.Float32()
		if math.IsInf(float64(x), 0) || x == 0 {
			return 0, fmt.Errorf("%v does not fit %v: %w", m, k, ErrMagnitudeRange)
		}
		return R(x), nil
	default:
		x, _ := f.Float64()
		if math.IsInf(x, 0) || x == 0 {
			return 0, fmt.Errorf("%v does not fit %v: %w", m, k, ErrMagnitudeRange)
		}
		return R(x), nil
	}
}

func integralValue[R Rep](k Kind, u uint64, neg bool, m Magnitude) (R, error) {
	if neg {
		if !k.IsSigned() || u > k.minMagnitude() {
			return 0, fmt.Errorf("%v does not fit %v: %w", m, k, ErrMagnitudeRange)
		}
		return R(int64(-u)), nil
	}
	if u > k.maxUint64() {
		return 0, fmt.Errorf("%v does not fit %v: %w", m, k, ErrMagnitudeRange)
	}
	return R(u), nil
}

// uint64Value computes |m| with checked uint64 arithmetic.
func (m Magnitude) uint64Value() (uint64, error) {
	if !m.IsInteger() {
		return 0, fmt.Errorf("%v: %w", m, ErrNonInteger)
	}
	z := fint(1)
	for _, bp := range m.bps {
		p, ok := fint(bp.base).pow(uint64(bp.exp.Num()))
		if ok {
			z, ok = z.mul(p)
		}
		if !ok {
			return 0, fmt.Errorf("%v does not fit uint64: %w", m, ErrMagnitudeRange)
		}
	}
	return uint64(z), nil
}

// LessThanOne returns true if m < 1.
// The decision is exact whenever it can be made structurally, which covers
// every magnitude without π; see [Magnitude.Cmp].
func (m Magnitude) LessThanOne() bool {
	return m.Cmp(One) < 0
}

// Cmp compares m and n and returns:
//
//	-1 if m < n
//	 0 if m == n
//	+1 if m > n
//
// Cmp never relies on floating-point evaluation when the order can be
// decided exactly:
//
//   - if all exponents of |m/n| have the same sign, the order follows from
//     the fact that every atom is greater than 1;
//   - if |m/n| has no π factor, both sides are raised to the least common
//     multiple of the exponent denominators and compared as integers.
//
// Only magnitudes with mixed-sign exponents involving π are evaluated with
// 256-bit floating-point arithmetic; π is transcendental, so such a ratio
// is never exactly 1.
func (m Magnitude) Cmp(n Magnitude) int {
	switch {
	case m.neg && !n.neg:
		return -1
	case !m.neg && n.neg:
		return 1
	}
	c := m.Abs().Quo(n.Abs()).cmpOne()
	if m.neg {
		return -c
	}
	return c
}

// cmpOne compares the positive magnitude m with 1.
func (m Magnitude) cmpOne() int {
	if len(m.bps) == 0 {
		return 0
	}
	pos, neg, hasPi := false, false, false
	lcm := int64(1)
	for _, bp := range m.bps {
		if bp.exp.Sign() > 0 {
			pos = true
		} else {
			neg = true
		}
		if bp.base == piAtom {
			hasPi = true
		}
		lcm = lcm64(lcm, bp.exp.Den())
	}
	switch {
	case pos && !neg:
		return 1
	case neg && !pos:
		return -1
	case !hasPi:
		p, _ := m.Pow(Int(lcm))
		num, den := p.ratParts()
		return num.Cmp(den)
	}
	return m.bigFloat().Cmp(bigOne)
}

// CommonMagnitude returns the largest magnitude that evenly divides both
// m and n: each atom takes the smaller of its two exponents.
// The result is positive.
func CommonMagnitude(m, n Magnitude) Magnitude {
	var z Magnitude
	i, j := 0, 0
	for i < len(m.bps) || j < len(n.bps) {
		switch {
		case j == len(n.bps) || (i < len(m.bps) && m.bps[i].base.less(n.bps[j].base)):
			if m.bps[i].exp.Sign() < 0 {
				z.bps = append(z.bps, m.bps[i])
			}
			i++
		case i == len(m.bps) || n.bps[j].base.less(m.bps[i].base):
			if n.bps[j].exp.Sign() < 0 {
				z.bps = append(z.bps, n.bps[j])
			}
			j++
		default:
			e := m.bps[i].exp
			if n.bps[j].exp.Cmp(e) < 0 {
				e = n.bps[j].exp
			}
			if !e.IsZero() {
				z.bps = append(z.bps, basePower{base: m.bps[i].base, exp: e})
			}
			i++
			j++
		}
	}
	return z
}

// String implements the [fmt.Stringer] interface.
// Rational magnitudes are formatted as "num" or "num / den", others as the
// rational part followed by the remaining powers, for example "2^(1/2)" or
// "π / 180".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Magnitude) String() string {
	var rat, irr Magnitude
	for _, bp := range m.bps {
		if bp.base != piAtom && bp.exp.IsInt() {
			rat.bps = append(rat.bps, bp)
		} else {
			irr.bps = append(irr.bps, bp)
		}
	}
	var num, den []string
	rn, rd := rat.ratParts()
	if rn.Cmp(bigIntOne) != 0 || len(irr.bps) == 0 {
		num = append(num, rn.String())
	}
	if rd.Cmp(bigIntOne) != 0 {
		den = append(den, rd.String())
	}
	for _, bp := range irr.bps {
		e := bp.exp
		list := &num
		if e.Sign() < 0 {
			e = e.Neg()
			list = &den
		}
		switch {
		case e == Int(1):
			*list = append(*list, bp.base.String())
		case e.IsInt():
			*list = append(*list, fmt.Sprintf("%v^%v", bp.base, e))
		default:
			*list = append(*list, fmt.Sprintf("%v^(%v)", bp.base, e))
		}
	}
	s := "1"
	if len(num) > 0 {
		s = strings.Join(num, " * ")
	}
	if len(den) > 0 {
		s += " / " + compoundLabel(den)
	}
	if m.neg {
		if strings.Contains(s, " ") {
			return "-(" + s + ")"
		}
		return "-" + s
	}
	return s
}

var bigIntOne = big.NewInt(1)
