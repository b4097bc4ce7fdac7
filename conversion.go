package measure

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strings"
	"sync"
)

// ErrLossyConversion is returned when a conversion may truncate or overflow
// and the caller did not ask for a coercion.
var ErrLossyConversion = errors.New("lossy conversion")

// overflowThreshold is the smallest input magnitude that a conversion must
// handle without overflow to be considered safe.
const overflowThreshold = 2147

// Strategy is the way a conversion factor is applied to a value.
type Strategy uint8

const (
	// StrategyIdentity leaves the value unchanged, apart from the sign
	// and the origin offset.
	StrategyIdentity Strategy = iota
	// StrategyMultiply multiplies by an integer factor.
	StrategyMultiply
	// StrategyDivide divides by an integer, which is more accurate than
	// multiplying by its floating-point inverse.
	StrategyDivide
	// StrategyMulDiv multiplies by the numerator and then divides by the
	// denominator of a rational factor.
	StrategyMulDiv
	// StrategySplit computes q*num + r*num/den from the quotient q and the
	// remainder r of the value divided by den, which avoids overflow of
	// the intermediate product.
	StrategySplit
	// StrategyFloat multiplies by the floating-point value of the factor.
	StrategyFloat
)

var strategyNames = [...]string{
	StrategyIdentity: "identity",
	StrategyMultiply: "multiply",
	StrategyDivide:   "divide",
	StrategyMulDiv:   "multiply-divide",
	StrategySplit:    "split",
	StrategyFloat:    "float-multiply",
}

func (s Strategy) String() string {
	if int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Risk is a set of ways in which a conversion can lose information.
type Risk uint8

const (
	// RiskNone means the conversion is exact for every value of the source.
	RiskNone Risk = 0
	// RiskTruncation means the conversion can drop a fractional part.
	RiskTruncation Risk = 1
	// RiskOverflow means some values of the source do not fit the target.
	RiskOverflow Risk = 2
	// RiskAll is the set of all risks.
	RiskAll = RiskTruncation | RiskOverflow
)

// String returns the names of the risks in r joined by "|", or "none".
func (r Risk) String() string {
	var s []string
	if r&RiskTruncation != 0 {
		s = append(s, "truncation")
	}
	if r&RiskOverflow != 0 {
		s = append(s, "overflow")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Plan is a precomputed conversion from a unit and representation to
// another unit and representation.
// Plans are immutable and safe for concurrent use by multiple goroutines.
//
// A value is converted in three steps: it is cast to the intermediate
// representation returned by [Plan.Via], the factor is applied using
// [Plan.Strategy] and the origin offset is added, and the result is cast to
// the destination representation.
type Plan struct {
	src, dst         Unit
	srcKind, dstKind Kind
	via              Kind
	factor           Magnitude
	offset           *big.Rat // in units of dst, zero unless converting points
	strategy         Strategy
	risk             Risk

	// integral intermediate
	neg      bool
	num, den uint64
	offInt   int64

	// floating-point intermediate, signed
	fmul, fdiv float64
	offFloat   float64

	// safe input range, empty if lo > hi
	lo, hi *big.Rat
}

// NewPlan returns the plan for converting quantities of unit src held in
// srcKind into quantities of unit dst held in dstKind.
// Origins of the units are ignored, since quantities are displacements.
// NewPlan returns [ErrDimensionMismatch] if the units have different
// dimensions.
// Lossy conversions are not an error; check [Plan.Risk] instead.
func NewPlan(src Unit, srcKind Kind, dst Unit, dstKind Kind) (*Plan, error) {
	return newPlan(src, srcKind, dst, dstKind, false)
}

// NewPointPlan is like [NewPlan] for points, so the offset between the
// origins of the units is applied.
func NewPointPlan(src Unit, srcKind Kind, dst Unit, dstKind Kind) (*Plan, error) {
	return newPlan(src, srcKind, dst, dstKind, true)
}

func newPlan(src Unit, srcKind Kind, dst Unit, dstKind Kind, point bool) (*Plan, error) {
	if !srcKind.IsValid() || !dstKind.IsValid() {
		return nil, fmt.Errorf("converting %v to %v: invalid representation %v or %v", src, dst, srcKind, dstKind)
	}
	f, err := Factor(src, dst)
	if err != nil {
		return nil, fmt.Errorf("converting %w", err)
	}
	p := &Plan{
		src:     src,
		dst:     dst,
		srcKind: srcKind,
		dstKind: dstKind,
		factor:  f,
		offset:  new(big.Rat),
		neg:     f.IsNeg(),
	}
	if point {
		d, err := OriginDisplacement(src, dst)
		if err != nil {
			return nil, fmt.Errorf("converting %w", err)
		}
		p.offset.Neg(d)
	}
	if !p.chooseIntegral() {
		if err := p.chooseFloat(); err != nil {
			return nil, err
		}
	}
	p.classify()
	return p, nil
}

// chooseIntegral selects an integer intermediate and the strategy, if the
// factor and the offset allow exact integer arithmetic.
func (p *Plan) chooseIntegral() bool {
	if p.srcKind.IsFloat() || p.dstKind.IsFloat() || !p.factor.IsRational() {
		return false
	}
	if !p.offset.IsInt() || !p.offset.Num().IsInt64() {
		return false
	}
	via := KindUint64
	if p.srcKind.IsSigned() || p.dstKind.IsSigned() || p.neg || p.offset.Sign() < 0 {
		via = KindInt64
	}
	num, den := p.factor.Abs().ratParts()
	if !num.IsUint64() || !den.IsUint64() {
		return false
	}
	limit := via.maxUint64()
	if num.Uint64() > limit || den.Uint64() > limit {
		return false
	}
	p.via = via
	p.num, p.den = num.Uint64(), den.Uint64()
	p.offInt = p.offset.Num().Int64()
	switch {
	case p.num == 1 && p.den == 1:
		p.strategy = StrategyIdentity
	case p.den == 1:
		p.strategy = StrategyMultiply
	case p.num == 1:
		p.strategy = StrategyDivide
	default:
		p.strategy = StrategyMulDiv
		lo, hi := p.safeRange()
		if !p.coversThreshold(lo, hi) && p.splitFits() {
			p.strategy = StrategySplit
		}
	}
	return true
}

// splitFits returns true if the remainder product r*num cannot overflow.
func (p *Plan) splitFits() bool {
	hi, lo := mulUint64(p.num, p.den)
	return hi == 0 && lo <= p.via.maxUint64()
}

func mulUint64(x, y uint64) (hi, lo uint64) {
	z, ok := fint(x).mul(fint(y))
	if !ok {
		return 1, 0
	}
	return 0, uint64(z)
}

// chooseFloat selects the float64 intermediate and the strategy.
func (p *Plan) chooseFloat() error {
	p.via = KindFloat64
	abs := p.factor.Abs()
	sign := float64(p.factor.Sign())
	switch {
	case abs.IsOne():
		p.strategy = StrategyIdentity
		p.fmul = sign
	case abs.Inv().IsInteger():
		d, err := ValueOf[float64](abs.Inv())
		if err != nil {
			return fmt.Errorf("converting %v to %v: factor %v: %w", p.src, p.dst, p.factor, err)
		}
		p.strategy = StrategyDivide
		p.fdiv = sign * d
	default:
		m, err := ValueOf[float64](abs)
		if err != nil {
			return fmt.Errorf("converting %v to %v: factor %v: %w", p.src, p.dst, p.factor, err)
		}
		p.strategy = StrategyFloat
		if abs.IsInteger() {
			p.strategy = StrategyMultiply
		}
		p.fmul = sign * m
	}
	p.offFloat, _ = p.offset.Float64()
	return nil
}

// factorRat returns the factor as a rational, approximating irrational
// factors by their float64 values.
func (p *Plan) factorRat() *big.Rat {
	if r, err := p.factor.Rat(); err == nil {
		return r
	}
	f := p.fmul
	if p.strategy == StrategyDivide {
		f = 1 / p.fdiv
	}
	return new(big.Rat).SetFloat64(f)
}

// preimage returns the interval of v such that v*g + c lies in [a, b].
func preimage(a, b, g, c *big.Rat) (lo, hi *big.Rat) {
	lo = new(big.Rat).Sub(a, c)
	lo.Quo(lo, g)
	hi = new(big.Rat).Sub(b, c)
	hi.Quo(hi, g)
	if g.Sign() < 0 {
		lo, hi = hi, lo
	}
	return lo, hi
}

func intersect(lo, hi, a, b *big.Rat) (*big.Rat, *big.Rat) {
	if a.Cmp(lo) > 0 {
		lo = a
	}
	if b.Cmp(hi) < 0 {
		hi = b
	}
	return lo, hi
}

var ratZero = new(big.Rat)

// safeRange computes the range of source values that convert without
// overflowing the intermediate or the destination representation.
func (p *Plan) safeRange() (lo, hi *big.Rat) {
	lo, hi = p.srcKind.bounds()
	tlo, thi := p.dstKind.bounds()
	g := p.factorRat()
	if p.via.IsIntegral() {
		vlo, vhi := p.via.bounds()
		if p.neg {
			vlo = new(big.Rat).Neg(vhi)
		}
		// Cast into the intermediate.
		lo, hi = intersect(lo, hi, vlo, vhi)
		tlo, thi = intersect(tlo, thi, vlo, vhi)
		// The product of multiply-divide. The partial results of split
		// never exceed the scaled value in magnitude.
		if p.strategy == StrategyMultiply || p.strategy == StrategyMulDiv {
			n := new(big.Rat).SetUint64(p.num)
			lo, hi = intersect(lo, hi, new(big.Rat).Quo(vlo, n), new(big.Rat).Quo(vhi, n))
		}
		// The scaled value before the offset is added.
		a, b := preimage(vlo, vhi, g, ratZero)
		lo, hi = intersect(lo, hi, a, b)
	} else {
		flo, fhi := KindFloat64.bounds()
		a, b := preimage(flo, fhi, g, ratZero)
		lo, hi = intersect(lo, hi, a, b)
	}
	a, b := preimage(tlo, thi, g, p.offset)
	lo, hi = intersect(lo, hi, a, b)
	if p.srcKind.IsIntegral() {
		lo, hi = ceilRat(lo), floorRat(hi)
	}
	return lo, hi
}

func floorRat(x *big.Rat) *big.Rat {
	q, _ := new(big.Int).DivMod(x.Num(), x.Denom(), new(big.Int))
	return new(big.Rat).SetInt(q)
}

func ceilRat(x *big.Rat) *big.Rat {
	n := new(big.Int).Neg(x.Num())
	q, _ := new(big.Int).DivMod(n, x.Denom(), new(big.Int))
	return new(big.Rat).SetInt(q.Neg(q))
}

// coversThreshold returns true if [lo, hi] contains every value of the
// source representation with magnitude up to overflowThreshold.
func (p *Plan) coversThreshold(lo, hi *big.Rat) bool {
	slo, shi := p.srcKind.bounds()
	t := new(big.Rat).SetInt64(overflowThreshold)
	want := new(big.Rat).Neg(t)
	if slo.Cmp(want) > 0 {
		want = slo
	}
	if lo.Cmp(want) > 0 {
		return false
	}
	want = t
	if shi.Cmp(want) < 0 {
		want = shi
	}
	return hi.Cmp(want) >= 0
}

func (p *Plan) classify() {
	p.lo, p.hi = p.safeRange()
	if !p.coversThreshold(p.lo, p.hi) {
		p.risk |= RiskOverflow
	}
	if p.dstKind.IsIntegral() && (p.srcKind.IsFloat() || !p.factor.IsInteger() || !p.offset.IsInt()) {
		p.risk |= RiskTruncation
	}
	if p.srcKind == KindFloat64 && p.dstKind == KindFloat32 {
		p.risk |= RiskTruncation
	}
}

// Src returns the source unit of p.
func (p *Plan) Src() Unit { return p.src }

// Dst returns the destination unit of p.
func (p *Plan) Dst() Unit { return p.dst }

// SrcKind returns the source representation of p.
func (p *Plan) SrcKind() Kind { return p.srcKind }

// DstKind returns the destination representation of p.
func (p *Plan) DstKind() Kind { return p.dstKind }

// Via returns the intermediate representation of p: int64, uint64 or float64.
func (p *Plan) Via() Kind { return p.via }

// Factor returns the conversion factor of p.
func (p *Plan) Factor() Magnitude { return p.factor }

// Offset returns the origin offset of p in units of the destination.
func (p *Plan) Offset() *big.Rat { return new(big.Rat).Set(p.offset) }

// Strategy returns the way p applies its factor.
func (p *Plan) Strategy() Strategy { return p.strategy }

// Risk returns the ways in which p can lose information.
func (p *Plan) Risk() Risk { return p.risk }

// IsExact returns true if p can neither truncate nor overflow for inputs up
// to the overflow threshold.
func (p *Plan) IsExact() bool { return p.risk == RiskNone }

// Bounds returns the range of source values that p converts without
// overflow. If no value converts safely, ok is false.
func (p *Plan) Bounds() (lo, hi *big.Rat, ok bool) {
	return new(big.Rat).Set(p.lo), new(big.Rat).Set(p.hi), p.lo.Cmp(p.hi) <= 0
}

// String returns a short description of p, for example
// "ft[int] -> in[int]: multiply by 12 via int64".
func (p *Plan) String() string {
	return fmt.Sprintf("%v[%v] -> %v[%v]: %v by %v via %v", p.src, p.srcKind, p.dst, p.dstKind, p.strategy, p.factor, p.via)
}

// checkExact returns [ErrLossyConversion] unless p is exact.
func (p *Plan) checkExact() error {
	if p.risk == RiskNone {
		return nil
	}
	return fmt.Errorf("converting %v[%v] to %v[%v]: %w (%v risk)", p.src, p.srcKind, p.dst, p.dstKind, ErrLossyConversion, p.risk)
}

// applyValue converts v using p.
// The result is unspecified if v is outside p's bounds.
func applyValue[R, S Rep](p *Plan, v R) S {
	switch p.via {
	case KindInt64:
		return S(applyInt(p, int64(v)))
	case KindUint64:
		return S(applyInt(p, uint64(v)))
	}
	y := applyFloat(p, float64(v))
	if p.dstKind.IsIntegral() {
		y = math.RoundToEven(y)
	}
	return S(y)
}

func applyFloat(p *Plan, y float64) float64 {
	switch p.strategy {
	case StrategyDivide:
		y /= p.fdiv
	default:
		y *= p.fmul
	}
	return y + p.offFloat
}

// applyInt applies an integral plan, rounding half to even.
// The offset is added to the quotient before rounding, so ties are broken
// on the final value.
func applyInt[T integer](p *Plan, x T) T {
	n, d := T(p.num), T(p.den)
	var r T
	switch p.strategy {
	case StrategyMultiply:
		x *= n
	case StrategyDivide:
		x, r = x/d, x%d
	case StrategyMulDiv:
		x *= n
		x, r = x/d, x%d
	case StrategySplit:
		q, rem := x/d, x%d
		t := rem * n
		x, r = q*n+t/d, t%d
	}
	if p.neg {
		x, r = -x, -r
	}
	return roundQuo(x+T(p.offInt), r, d)
}

// overflows returns true if v is outside the bounds of p.
func overflows[R Rep](p *Plan, v R) bool {
	x := ratOf(v)
	if x == nil {
		return p.dstKind.IsIntegral()
	}
	return x.Cmp(p.lo) < 0 || x.Cmp(p.hi) > 0
}

// truncates returns true if converting v with p loses its fractional part,
// or loses precision narrowing float64 to float32.
func truncates[R Rep](p *Plan, v R) bool {
	if p.dstKind.IsFloat() {
		if p.srcKind != KindFloat64 || p.dstKind != KindFloat32 {
			return false
		}
		y := applyFloat(p, float64(v))
		return !math.IsNaN(y) && float64(float32(y)) != y
	}
	x := ratOf(v)
	if x == nil {
		return true
	}
	if !p.factor.IsRational() {
		y := applyFloat(p, float64(v))
		return y != math.Trunc(y)
	}
	x.Mul(x, p.factorRat())
	x.Add(x, p.offset)
	return !x.IsInt()
}

type planKey struct {
	src, dst         reflect.Type
	srcKind, dstKind Kind
	point            bool
}

type planEntry struct {
	plan *Plan
	err  error
}

// plans caches the plans between tags.
var plans sync.Map

// planFor returns the cached plan converting T held in sk into U held in dk.
func planFor[T, U Tag](sk, dk Kind, point bool) (*Plan, error) {
	key := planKey{src: reflect.TypeFor[T](), dst: reflect.TypeFor[U](), srcKind: sk, dstKind: dk, point: point}
	if e, ok := plans.Load(key); ok {
		e := e.(planEntry)
		return e.plan, e.err
	}
	var e planEntry
	src, err := lookupUnit[T]()
	if err != nil {
		e.err = fmt.Errorf("converting: %w", err)
	}
	dst, err := lookupUnit[U]()
	if err != nil && e.err == nil {
		e.err = fmt.Errorf("converting: %w", err)
	}
	if e.err == nil {
		e.plan, e.err = newPlan(src, sk, dst, dk, point)
	}
	plans.Store(key, e)
	return e.plan, e.err
}

// Conversion is a checked conversion from quantities of unit T held in R
// to quantities of unit U held in S.
// The zero value is not usable; create conversions with [NewConversion] or
// [NewCoercion], typically as package-level variables.
//
//	var feetToInches = measure.MustConversion[units.Foot, int, units.Inch, int]()
//
// Once created, [Conversion.Apply] performs only the arithmetic.
type Conversion[T Tag, R Rep, U Tag, S Rep] struct {
	p *Plan
}

// NewConversion returns the conversion from T held in R to U held in S.
// NewConversion returns an error if the units have different dimensions,
// if either unit is an invalid composition, or if the conversion is lossy
// ([ErrLossyConversion]).
func NewConversion[T Tag, R Rep, U Tag, S Rep]() (Conversion[T, R, U, S], error) {
	p, err := planFor[T, U](KindOf[R](), KindOf[S](), false)
	if err != nil {
		return Conversion[T, R, U, S]{}, err
	}
	if err := p.checkExact(); err != nil {
		return Conversion[T, R, U, S]{}, err
	}
	return Conversion[T, R, U, S]{p: p}, nil
}

// NewCoercion is like [NewConversion], but accepts lossy conversions.
// Integer results are rounded half to even.
func NewCoercion[T Tag, R Rep, U Tag, S Rep]() (Conversion[T, R, U, S], error) {
	p, err := planFor[T, U](KindOf[R](), KindOf[S](), false)
	if err != nil {
		return Conversion[T, R, U, S]{}, err
	}
	return Conversion[T, R, U, S]{p: p}, nil
}

// Plan returns the plan of c.
func (c Conversion[T, R, U, S]) Plan() *Plan {
	return c.p
}

// Apply converts q.
func (c Conversion[T, R, U, S]) Apply(q Quantity[T, R]) Quantity[U, S] {
	return Quantity[U, S]{v: applyValue[R, S](c.p, q.v)}
}

// ApplyValue converts the raw value v.
func (c Conversion[T, R, U, S]) ApplyValue(v R) S {
	return applyValue[R, S](c.p, v)
}

// Overflows returns true if converting q would overflow the intermediate or
// the destination representation.
func (c Conversion[T, R, U, S]) Overflows(q Quantity[T, R]) bool {
	return overflows(c.p, q.v)
}

// Truncates returns true if converting q would lose a fractional part.
func (c Conversion[T, R, U, S]) Truncates(q Quantity[T, R]) bool {
	return truncates(c.p, q.v)
}

// IsLossy returns true if converting q would overflow or truncate.
func (c Conversion[T, R, U, S]) IsLossy(q Quantity[T, R]) bool {
	return c.Overflows(q) || c.Truncates(q)
}

// MinGood returns the smallest value that converts without overflow.
// If no value converts safely, MinGood returns 0.
func (c Conversion[T, R, U, S]) MinGood() R {
	lo, _, ok := c.p.Bounds()
	if !ok {
		return 0
	}
	return fromRat[R](lo)
}

// MaxGood returns the largest value that converts without overflow.
// If no value converts safely, MaxGood returns 0.
func (c Conversion[T, R, U, S]) MaxGood() R {
	_, hi, ok := c.p.Bounds()
	if !ok {
		return 0
	}
	return fromRat[R](hi)
}
