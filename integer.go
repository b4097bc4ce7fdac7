package measure

import (
	"math/big"
	"math/bits"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if hi != 0 {
		return 0, false
	}
	return fint(lo), true
}

// pow calculates x^e and checks overflow.
func (x fint) pow(e uint64) (z fint, ok bool) {
	z = 1
	for e > 0 {
		if e&1 != 0 {
			z, ok = z.mul(x)
			if !ok {
				return 0, false
			}
		}
		e >>= 1
		if e > 0 {
			x, ok = x.mul(x)
			if !ok {
				return 0, false
			}
		}
	}
	return z, true
}

// mulMod calculates x * y mod m.
// mulMod assumes that x < m and y < m.
func (x fint) mulMod(y, m fint) fint {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	_, r := bits.Div64(hi, lo, uint64(m))
	return fint(r)
}

// addMod calculates x + y mod m.
// addMod assumes that x < m and y < m.
func (x fint) addMod(y, m fint) fint {
	if x >= m-y {
		return x - (m - y)
	}
	return x + y
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

func gcdFint(x, y fint) fint {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// integer is the set of machine integers used by integral conversions.
type integer interface {
	~int64 | ~uint64
}

// roundQuo returns base + rem / d rounded using "half to even" rule.
// roundQuo assumes that d > 0 and |rem| < d; base and rem may differ in sign.
func roundQuo[T integer](base, rem, d T) T {
	if rem == 0 {
		return base
	}
	var step T = 1
	if rem < 0 {
		rem = -rem
		step = 0 - step
	}
	half := d - rem // half < rem means rem / d > 1/2
	if half < rem || (half == rem && base%2 != 0) {
		base += step
	}
	return base
}

// bint (Big INTeger) is a wrapper around big.Int.
type bint big.Int

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) setUint64(x uint64) *bint {
	z.big().SetUint64(x)
	return z
}

// mulPow calculates z = z * b^e.
func (z *bint) mulPow(b uint64, e uint64) {
	x := getBint()
	defer putBint(x)
	y := getBint()
	defer putBint(y)
	x.setUint64(b)
	y.setUint64(e)
	x.big().Exp(x.big(), y.big(), nil)
	z.big().Mul(z.big(), x.big())
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}

// primePower is a prime together with its multiplicity.
type primePower struct {
	prime uint64
	mult  uint64
}

// smallPrimes are used for trial division before falling back to Pollard's rho.
var smallPrimes = sieve(1 << 10)

func sieve(n int) []uint64 {
	composite := make([]bool, n)
	var primes []uint64
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint64(i))
		for j := i * i; j < n; j += i {
			composite[j] = true
		}
	}
	return primes
}

// isPrime reports whether n is prime.
// The Baillie-PSW test is exact for all inputs below 2^64.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	x := getBint()
	defer putBint(x)
	return x.setUint64(n).big().ProbablyPrime(0)
}

// factorize returns the prime factorization of n in ascending order of primes.
// factorize assumes that n > 0.
func factorize(n uint64) []primePower {
	var pps []primePower
	for _, p := range smallPrimes {
		if p*p > n {
			break
		}
		if n%p != 0 {
			continue
		}
		m := uint64(0)
		for n%p == 0 {
			n /= p
			m++
		}
		pps = append(pps, primePower{prime: p, mult: m})
	}
	if n == 1 {
		return pps
	}
	// Remaining factors are all larger than the trial division bound.
	large := map[uint64]uint64{}
	splitLarge(n, large)
	start := len(pps)
	for p, m := range large {
		pps = append(pps, primePower{prime: p, mult: m})
	}
	sortPrimePowers(pps[start:])
	return pps
}

func splitLarge(n uint64, into map[uint64]uint64) {
	if n == 1 {
		return
	}
	if isPrime(n) {
		into[n]++
		return
	}
	d := rho(fint(n))
	splitLarge(uint64(d), into)
	splitLarge(n/uint64(d), into)
}

// rho finds a nontrivial factor of the odd composite n using Pollard's rho
// method with Floyd cycle detection.
func rho(n fint) fint {
	for c := fint(1); ; c++ {
		f := func(v fint) fint { return v.mulMod(v, n).addMod(c, n) }
		x, y, d := fint(2), fint(2), fint(1)
		for d == 1 {
			x = f(x)
			y = f(f(y))
			d = gcdFint(x.dist(y), n)
		}
		if d != n {
			return d
		}
	}
}

func sortPrimePowers(pps []primePower) {
	// Insertion sort: a uint64 has at most a handful of large prime factors.
	for i := 1; i < len(pps); i++ {
		for j := i; j > 0 && pps[j].prime < pps[j-1].prime; j-- {
			pps[j], pps[j-1] = pps[j-1], pps[j]
		}
	}
}
