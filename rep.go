package measure

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
)

// Rep is the set of numeric types that can hold the value of a quantity.
type Rep interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Kind identifies the numeric representation underlying a [Rep].
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

var reflectKinds = map[reflect.Kind]Kind{
	reflect.Int:     KindInt,
	reflect.Int8:    KindInt8,
	reflect.Int16:   KindInt16,
	reflect.Int32:   KindInt32,
	reflect.Int64:   KindInt64,
	reflect.Uint:    KindUint,
	reflect.Uint8:   KindUint8,
	reflect.Uint16:  KindUint16,
	reflect.Uint32:  KindUint32,
	reflect.Uint64:  KindUint64,
	reflect.Float32: KindFloat32,
	reflect.Float64: KindFloat64,
}

// KindOf returns the kind of the representation R.
func KindOf[R Rep]() Kind {
	return reflectKinds[reflect.TypeFor[R]().Kind()]
}

// ParseKind converts a Go type name such as "int32" or "float64" to a kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if k != int(KindInvalid) && name == s {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("parsing kind %q: unknown representation", s)
}

// String returns the Go type name of k.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsValid returns true if k is one of the supported representations.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k <= KindFloat64
}

// IsFloat returns true if k is a floating-point representation.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsIntegral returns true if k is an integer representation.
func (k Kind) IsIntegral() bool {
	return k.IsValid() && !k.IsFloat()
}

// IsSigned returns true if k can hold negative values.
func (k Kind) IsSigned() bool {
	return (k >= KindInt && k <= KindInt64) || k.IsFloat()
}

// bits returns the width of the integer kind k.
func (k Kind) bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt, KindUint:
		return intSize
	}
	return 64
}

const intSize = 32 << (^uint(0) >> 63)

// maxUint64 returns the largest value of the integer kind k.
func (k Kind) maxUint64() uint64 {
	if k.IsSigned() {
		return 1<<(k.bits()-1) - 1
	}
	return math.MaxUint64 >> (64 - k.bits())
}

// minMagnitude returns |min| of the integer kind k.
func (k Kind) minMagnitude() uint64 {
	if !k.IsSigned() {
		return 0
	}
	return 1 << (k.bits() - 1)
}

// bounds returns the exact range of values of k.
func (k Kind) bounds() (lo, hi *big.Rat) {
	switch k {
	case KindFloat32:
		hi = new(big.Rat).SetFloat64(math.MaxFloat32)
		return new(big.Rat).Neg(hi), hi
	case KindFloat64:
		hi = new(big.Rat).SetFloat64(math.MaxFloat64)
		return new(big.Rat).Neg(hi), hi
	}
	hi = new(big.Rat).SetInt(new(big.Int).SetUint64(k.maxUint64()))
	lo = new(big.Rat).SetInt(new(big.Int).SetUint64(k.minMagnitude()))
	return lo.Neg(lo), hi
}

// roundFits returns true if x, rounded half to even for integral kinds,
// lies within the range of k.
func (k Kind) roundFits(x *big.Rat) bool {
	lo, hi := k.bounds()
	if k.IsFloat() {
		return x.Cmp(lo) >= 0 && x.Cmp(hi) <= 0
	}
	// lo is even and hi is odd, so lo - 1/2 rounds to lo and hi + 1/2
	// rounds past hi.
	half := big.NewRat(1, 2)
	lo.Sub(lo, half)
	hi.Add(hi, half)
	return x.Cmp(lo) >= 0 && x.Cmp(hi) < 0
}

// ratOf returns the exact value of v, or nil if v is not finite.
func ratOf[R Rep](v R) *big.Rat {
	switch k := KindOf[R](); {
	case k.IsFloat():
		f := float64(v)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return nil
		}
		return new(big.Rat).SetFloat64(f)
	case k.IsSigned():
		return new(big.Rat).SetInt64(int64(v))
	default:
		return new(big.Rat).SetUint64(uint64(v))
	}
}

// fromRat converts the finite x to R, rounding half to even for integral
// kinds.
func fromRat[R Rep](x *big.Rat) R {
	k := KindOf[R]()
	if k.IsFloat() {
		f, _ := x.Float64()
		return R(f)
	}
	q, r := new(big.Int).QuoRem(x.Num(), x.Denom(), new(big.Int))
	r2 := new(big.Int).Abs(r)
	r2.Lsh(r2, 1)
	if c := r2.Cmp(x.Denom()); c > 0 || (c == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(int64(x.Sign())))
	}
	if k.IsSigned() {
		return R(q.Int64())
	}
	return R(q.Uint64())
}
