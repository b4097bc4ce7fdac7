package measure

// SI prefixes scale a unit by a power of 10 and prepend a symbol to its
// label, so Kilo[Meter] is labeled "km".

type Quetta[A Tag] struct{}

func (Quetta[A]) Unit() Unit { return unitOf[A]().Prefix("Q", Pow10(30)) }

type Ronna[A Tag] struct{}

func (Ronna[A]) Unit() Unit { return unitOf[A]().Prefix("R", Pow10(27)) }

type Yotta[A Tag] struct{}

func (Yotta[A]) Unit() Unit { return unitOf[A]().Prefix("Y", Pow10(24)) }

type Zetta[A Tag] struct{}

func (Zetta[A]) Unit() Unit { return unitOf[A]().Prefix("Z", Pow10(21)) }

type Exa[A Tag] struct{}

func (Exa[A]) Unit() Unit { return unitOf[A]().Prefix("E", Pow10(18)) }

type Peta[A Tag] struct{}

func (Peta[A]) Unit() Unit { return unitOf[A]().Prefix("P", Pow10(15)) }

type Tera[A Tag] struct{}

func (Tera[A]) Unit() Unit { return unitOf[A]().Prefix("T", Pow10(12)) }

type Giga[A Tag] struct{}

func (Giga[A]) Unit() Unit { return unitOf[A]().Prefix("G", Pow10(9)) }

type Mega[A Tag] struct{}

func (Mega[A]) Unit() Unit { return unitOf[A]().Prefix("M", Pow10(6)) }

type Kilo[A Tag] struct{}

func (Kilo[A]) Unit() Unit { return unitOf[A]().Prefix("k", Pow10(3)) }

type Hecto[A Tag] struct{}

func (Hecto[A]) Unit() Unit { return unitOf[A]().Prefix("h", Pow10(2)) }

type Deka[A Tag] struct{}

func (Deka[A]) Unit() Unit { return unitOf[A]().Prefix("da", Pow10(1)) }

type Deci[A Tag] struct{}

func (Deci[A]) Unit() Unit { return unitOf[A]().Prefix("d", Pow10(-1)) }

type Centi[A Tag] struct{}

func (Centi[A]) Unit() Unit { return unitOf[A]().Prefix("c", Pow10(-2)) }

type Milli[A Tag] struct{}

func (Milli[A]) Unit() Unit { return unitOf[A]().Prefix("m", Pow10(-3)) }

type Micro[A Tag] struct{}

func (Micro[A]) Unit() Unit { return unitOf[A]().Prefix("u", Pow10(-6)) }

type Nano[A Tag] struct{}

func (Nano[A]) Unit() Unit { return unitOf[A]().Prefix("n", Pow10(-9)) }

type Pico[A Tag] struct{}

func (Pico[A]) Unit() Unit { return unitOf[A]().Prefix("p", Pow10(-12)) }

type Femto[A Tag] struct{}

func (Femto[A]) Unit() Unit { return unitOf[A]().Prefix("f", Pow10(-15)) }

type Atto[A Tag] struct{}

func (Atto[A]) Unit() Unit { return unitOf[A]().Prefix("a", Pow10(-18)) }

type Zepto[A Tag] struct{}

func (Zepto[A]) Unit() Unit { return unitOf[A]().Prefix("z", Pow10(-21)) }

type Yocto[A Tag] struct{}

func (Yocto[A]) Unit() Unit { return unitOf[A]().Prefix("y", Pow10(-24)) }

type Ronto[A Tag] struct{}

func (Ronto[A]) Unit() Unit { return unitOf[A]().Prefix("r", Pow10(-27)) }

type Quecto[A Tag] struct{}

func (Quecto[A]) Unit() Unit { return unitOf[A]().Prefix("q", Pow10(-30)) }

// Binary prefixes scale a unit by a power of 2.

type Kibi[A Tag] struct{}

func (Kibi[A]) Unit() Unit { return unitOf[A]().Prefix("Ki", pow2(10)) }

type Mebi[A Tag] struct{}

func (Mebi[A]) Unit() Unit { return unitOf[A]().Prefix("Mi", pow2(20)) }

type Gibi[A Tag] struct{}

func (Gibi[A]) Unit() Unit { return unitOf[A]().Prefix("Gi", pow2(30)) }

type Tebi[A Tag] struct{}

func (Tebi[A]) Unit() Unit { return unitOf[A]().Prefix("Ti", pow2(40)) }

type Pebi[A Tag] struct{}

func (Pebi[A]) Unit() Unit { return unitOf[A]().Prefix("Pi", pow2(50)) }

type Exbi[A Tag] struct{}

func (Exbi[A]) Unit() Unit { return unitOf[A]().Prefix("Ei", pow2(60)) }

func pow2(e int64) Magnitude {
	return Magnitude{bps: []basePower{{base: 2, exp: Int(e)}}}
}
