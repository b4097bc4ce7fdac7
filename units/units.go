// Package units declares common units of measure as tags for package
// measure, together with functions that make quantities in them:
//
//	d := units.Meters(5)   // Quantity[units.Meter, int]
//	t := units.Seconds(2)  // Quantity[units.Second, int]
//	v := measure.Div(d, t) // Quantity[units.MeterPerSecond, int]
//
// Mass is based on the gram, so that [Kilogram] is Kilo[Gram] and
// conversions among the mass prefixes stay exact in integers.
package units

import "github.com/govalues/measure"

func product(u, v measure.Unit) measure.Unit {
	return measure.MustUnit(u.Mul(v))
}

func quotient(u, v measure.Unit) measure.Unit {
	return measure.MustUnit(u.Quo(v))
}

func power(u measure.Unit, n int64) measure.Unit {
	return measure.MustUnit(u.Pow(measure.Int(n)))
}

func scaled(u measure.Unit, num, den uint64, label string) measure.Unit {
	return u.Scale(measure.MagRatio(num, den)).WithLabel(label)
}

func withOrigin(u measure.Unit, num, den uint64) measure.Unit {
	return measure.MustUnit(u.WithOrigin(measure.MagRatio(num, den)))
}

var (
	meter     = measure.BaseUnit(measure.Length, "m")
	gram      = measure.BaseUnit(measure.Mass, "g")
	second    = measure.BaseUnit(measure.Time, "s")
	ampere    = measure.BaseUnit(measure.Current, "A")
	kelvin    = measure.BaseUnit(measure.Temperature, "K")
	mole      = measure.BaseUnit(measure.Amount, "mol")
	candela   = measure.BaseUnit(measure.LuminousIntensity, "cd")
	radian    = measure.BaseUnit(measure.Angle, "rad")
	steradian = power(radian, 2).WithLabel("sr")
	unos      = measure.NewUnit(measure.Dimensionless, measure.One, "U")
	percent   = scaled(unos, 1, 100, "%")

	kilogram = gram.Prefix("k", measure.Pow10(3))

	hertz     = power(second, -1).WithLabel("Hz")
	newton    = quotient(product(kilogram, meter), power(second, 2)).WithLabel("N")
	pascal    = quotient(newton, power(meter, 2)).WithLabel("Pa")
	joule     = product(newton, meter).WithLabel("J")
	watt      = quotient(joule, second).WithLabel("W")
	coulomb   = product(ampere, second).WithLabel("C")
	volt      = quotient(watt, ampere).WithLabel("V")
	farad     = quotient(coulomb, volt).WithLabel("F")
	ohm       = quotient(volt, ampere).WithLabel("ohm")
	siemens   = quotient(ampere, volt).WithLabel("S")
	weber     = product(volt, second).WithLabel("Wb")
	tesla     = quotient(weber, power(meter, 2)).WithLabel("T")
	henry     = quotient(weber, ampere).WithLabel("H")
	becquerel = power(second, -1).WithLabel("Bq")
	katal     = quotient(mole, second).WithLabel("kat")
	lumen     = product(candela, steradian).WithLabel("lm")
	liter     = power(meter.Prefix("d", measure.Pow10(-1)), 3).WithLabel("L")
	bar       = pascal.Scale(measure.Pow10(5)).WithLabel("bar")

	minute = scaled(second, 60, 1, "min")
	hour   = scaled(minute, 60, 1, "h")
	day    = scaled(hour, 24, 1, "d")

	inch         = scaled(meter, 254, 10000, "in")
	foot         = scaled(inch, 12, 1, "ft")
	yard         = scaled(foot, 3, 1, "yd")
	mile         = scaled(foot, 5280, 1, "mi")
	fathom       = scaled(foot, 6, 1, "ftm")
	furlong      = scaled(mile, 1, 8, "fur")
	nauticalMile = scaled(meter, 1852, 1, "nmi")
	knot         = quotient(nauticalMile, hour).WithLabel("kn")
	usPint       = power(inch, 3).Scale(measure.MagRatio(231, 8)).WithLabel("US_pt")

	degree     = radian.Scale(measure.Pi.Quo(measure.Mag(180))).WithLabel("deg")
	arcsecond  = degree.Scale(measure.MagRatio(1, 3600)).WithLabel("\"")
	revolution = scaled(degree, 360, 1, "rev")

	poundMass       = gram.Scale(measure.MagRatio(45359237, 100000)).WithLabel("lb")
	standardGravity = quotient(meter, power(second, 2)).Scale(measure.MagRatio(980665, 100000)).WithLabel("g_0")
	poundForce      = product(poundMass, standardGravity).WithLabel("lbf")
	slug            = quotient(product(poundForce, power(second, 2)), foot).WithLabel("slug")

	rankine    = scaled(kelvin, 5, 9, "degR")
	celsius    = withOrigin(kelvin.WithLabel("degC"), 27315, 100)
	fahrenheit = withOrigin(rankine.WithLabel("degF"), 45967, 180)
)

// Common prefixed units.
type (
	Kilometer  = measure.Kilo[Meter]
	Centimeter = measure.Centi[Meter]
	Millimeter = measure.Milli[Meter]
	Micrometer = measure.Micro[Meter]
	Nanometer  = measure.Nano[Meter]

	Kilogram  = measure.Kilo[Gram]
	Milligram = measure.Milli[Gram]

	Millisecond = measure.Milli[Second]
	Microsecond = measure.Micro[Second]
	Nanosecond  = measure.Nano[Second]

	Milliampere = measure.Milli[Ampere]
	Kilowatt    = measure.Kilo[Watt]
	Megawatt    = measure.Mega[Watt]
	Kilohertz   = measure.Kilo[Hertz]
	Megahertz   = measure.Mega[Hertz]
	Gigahertz   = measure.Giga[Hertz]
	Kilopascal  = measure.Kilo[Pascal]
	Kilojoule   = measure.Kilo[Joule]
	Millivolt   = measure.Milli[Volt]
	Kiloohm     = measure.Kilo[Ohm]
	Microfarad  = measure.Micro[Farad]
	Milliliter  = measure.Milli[Liter]
)

// Compound units that have no name of their own.
type (
	MeterPerSecond        = measure.Quotient[Meter, Second]
	MeterPerSecondSquared = measure.Quotient[Meter, measure.Squared[Second]]
	KilometerPerHour      = measure.Quotient[Kilometer, Hour]
	MilePerHour           = measure.Quotient[Mile, Hour]
	SquareMeter           = measure.Squared[Meter]
	CubicMeter            = measure.Cubed[Meter]
	NewtonMeter           = measure.Product[Newton, Meter]
	RadianPerSecond       = measure.Quotient[Radian, Second]
	RevolutionPerMinute   = measure.Quotient[Revolution, Minute]
	WattHour              = measure.Product[Watt, Hour]
	KilowattHour          = measure.Product[Kilowatt, Hour]
	AmpereHour            = measure.Product[Ampere, Hour]
	JoulePerKelvin        = measure.Quotient[Joule, Kelvin]
	JouleSecond           = measure.Product[Joule, Second]
	PerMole               = measure.Inverse[Mole]
	LumenPerWatt          = measure.Quotient[Lumen, Watt]
)
