package units

import "github.com/govalues/measure"

// Meters returns v in [Meter].
func Meters[R measure.Rep](v R) measure.Quantity[Meter, R] { return measure.Of[Meter](v) }

// Grams returns v in [Gram].
func Grams[R measure.Rep](v R) measure.Quantity[Gram, R] { return measure.Of[Gram](v) }

// Seconds returns v in [Second].
func Seconds[R measure.Rep](v R) measure.Quantity[Second, R] { return measure.Of[Second](v) }

// Amperes returns v in [Ampere].
func Amperes[R measure.Rep](v R) measure.Quantity[Ampere, R] { return measure.Of[Ampere](v) }

// Kelvins returns v in [Kelvin].
func Kelvins[R measure.Rep](v R) measure.Quantity[Kelvin, R] { return measure.Of[Kelvin](v) }

// Moles returns v in [Mole].
func Moles[R measure.Rep](v R) measure.Quantity[Mole, R] { return measure.Of[Mole](v) }

// Candelas returns v in [Candela].
func Candelas[R measure.Rep](v R) measure.Quantity[Candela, R] { return measure.Of[Candela](v) }

// Radians returns v in [Radian].
func Radians[R measure.Rep](v R) measure.Quantity[Radian, R] { return measure.Of[Radian](v) }

// Steradians returns v in [Steradian].
func Steradians[R measure.Rep](v R) measure.Quantity[Steradian, R] { return measure.Of[Steradian](v) }

// UnosQty returns v in [Unos].
func UnosQty[R measure.Rep](v R) measure.Quantity[Unos, R] { return measure.Of[Unos](v) }

// PercentQty returns v in [Percent].
func PercentQty[R measure.Rep](v R) measure.Quantity[Percent, R] { return measure.Of[Percent](v) }

// HertzQty returns v in [Hertz].
func HertzQty[R measure.Rep](v R) measure.Quantity[Hertz, R] { return measure.Of[Hertz](v) }

// Newtons returns v in [Newton].
func Newtons[R measure.Rep](v R) measure.Quantity[Newton, R] { return measure.Of[Newton](v) }

// Pascals returns v in [Pascal].
func Pascals[R measure.Rep](v R) measure.Quantity[Pascal, R] { return measure.Of[Pascal](v) }

// Joules returns v in [Joule].
func Joules[R measure.Rep](v R) measure.Quantity[Joule, R] { return measure.Of[Joule](v) }

// Watts returns v in [Watt].
func Watts[R measure.Rep](v R) measure.Quantity[Watt, R] { return measure.Of[Watt](v) }

// Coulombs returns v in [Coulomb].
func Coulombs[R measure.Rep](v R) measure.Quantity[Coulomb, R] { return measure.Of[Coulomb](v) }

// Volts returns v in [Volt].
func Volts[R measure.Rep](v R) measure.Quantity[Volt, R] { return measure.Of[Volt](v) }

// Farads returns v in [Farad].
func Farads[R measure.Rep](v R) measure.Quantity[Farad, R] { return measure.Of[Farad](v) }

// Ohms returns v in [Ohm].
func Ohms[R measure.Rep](v R) measure.Quantity[Ohm, R] { return measure.Of[Ohm](v) }

// SiemensQty returns v in [Siemens].
func SiemensQty[R measure.Rep](v R) measure.Quantity[Siemens, R] { return measure.Of[Siemens](v) }

// Webers returns v in [Weber].
func Webers[R measure.Rep](v R) measure.Quantity[Weber, R] { return measure.Of[Weber](v) }

// Teslas returns v in [Tesla].
func Teslas[R measure.Rep](v R) measure.Quantity[Tesla, R] { return measure.Of[Tesla](v) }

// Henries returns v in [Henry].
func Henries[R measure.Rep](v R) measure.Quantity[Henry, R] { return measure.Of[Henry](v) }

// Becquerels returns v in [Becquerel].
func Becquerels[R measure.Rep](v R) measure.Quantity[Becquerel, R] { return measure.Of[Becquerel](v) }

// Katals returns v in [Katal].
func Katals[R measure.Rep](v R) measure.Quantity[Katal, R] { return measure.Of[Katal](v) }

// Lumens returns v in [Lumen].
func Lumens[R measure.Rep](v R) measure.Quantity[Lumen, R] { return measure.Of[Lumen](v) }

// Liters returns v in [Liter].
func Liters[R measure.Rep](v R) measure.Quantity[Liter, R] { return measure.Of[Liter](v) }

// Bars returns v in [Bar].
func Bars[R measure.Rep](v R) measure.Quantity[Bar, R] { return measure.Of[Bar](v) }

// Minutes returns v in [Minute].
func Minutes[R measure.Rep](v R) measure.Quantity[Minute, R] { return measure.Of[Minute](v) }

// Hours returns v in [Hour].
func Hours[R measure.Rep](v R) measure.Quantity[Hour, R] { return measure.Of[Hour](v) }

// Days returns v in [Day].
func Days[R measure.Rep](v R) measure.Quantity[Day, R] { return measure.Of[Day](v) }

// Inches returns v in [Inch].
func Inches[R measure.Rep](v R) measure.Quantity[Inch, R] { return measure.Of[Inch](v) }

// Feet returns v in [Foot].
func Feet[R measure.Rep](v R) measure.Quantity[Foot, R] { return measure.Of[Foot](v) }

// Yards returns v in [Yard].
func Yards[R measure.Rep](v R) measure.Quantity[Yard, R] { return measure.Of[Yard](v) }

// Miles returns v in [Mile].
func Miles[R measure.Rep](v R) measure.Quantity[Mile, R] { return measure.Of[Mile](v) }

// Fathoms returns v in [Fathom].
func Fathoms[R measure.Rep](v R) measure.Quantity[Fathom, R] { return measure.Of[Fathom](v) }

// Furlongs returns v in [Furlong].
func Furlongs[R measure.Rep](v R) measure.Quantity[Furlong, R] { return measure.Of[Furlong](v) }

// NauticalMiles returns v in [NauticalMile].
func NauticalMiles[R measure.Rep](v R) measure.Quantity[NauticalMile, R] { return measure.Of[NauticalMile](v) }

// Knots returns v in [Knot].
func Knots[R measure.Rep](v R) measure.Quantity[Knot, R] { return measure.Of[Knot](v) }

// USPints returns v in [USPint].
func USPints[R measure.Rep](v R) measure.Quantity[USPint, R] { return measure.Of[USPint](v) }

// Degrees returns v in [Degree].
func Degrees[R measure.Rep](v R) measure.Quantity[Degree, R] { return measure.Of[Degree](v) }

// Arcseconds returns v in [Arcsecond].
func Arcseconds[R measure.Rep](v R) measure.Quantity[Arcsecond, R] { return measure.Of[Arcsecond](v) }

// Revolutions returns v in [Revolution].
func Revolutions[R measure.Rep](v R) measure.Quantity[Revolution, R] { return measure.Of[Revolution](v) }

// PoundsMass returns v in [PoundMass].
func PoundsMass[R measure.Rep](v R) measure.Quantity[PoundMass, R] { return measure.Of[PoundMass](v) }

// StandardGravities returns v in [StandardGravity].
func StandardGravities[R measure.Rep](v R) measure.Quantity[StandardGravity, R] { return measure.Of[StandardGravity](v) }

// PoundsForce returns v in [PoundForce].
func PoundsForce[R measure.Rep](v R) measure.Quantity[PoundForce, R] { return measure.Of[PoundForce](v) }

// Slugs returns v in [Slug].
func Slugs[R measure.Rep](v R) measure.Quantity[Slug, R] { return measure.Of[Slug](v) }

// Rankines returns v in [Rankine].
func Rankines[R measure.Rep](v R) measure.Quantity[Rankine, R] { return measure.Of[Rankine](v) }

// CelsiusQty returns the temperature difference v in [Celsius].
func CelsiusQty[R measure.Rep](v R) measure.Quantity[Celsius, R] { return measure.Of[Celsius](v) }

// FahrenheitQty returns the temperature difference v in [Fahrenheit].
func FahrenheitQty[R measure.Rep](v R) measure.Quantity[Fahrenheit, R] {
	return measure.Of[Fahrenheit](v)
}

// CelsiusPoint returns the temperature v degrees Celsius.
func CelsiusPoint[R measure.Rep](v R) measure.Point[Celsius, R] { return measure.PointOf[Celsius](v) }

// FahrenheitPoint returns the temperature v degrees Fahrenheit.
func FahrenheitPoint[R measure.Rep](v R) measure.Point[Fahrenheit, R] {
	return measure.PointOf[Fahrenheit](v)
}

// KelvinPoint returns the absolute temperature v kelvins.
func KelvinPoint[R measure.Rep](v R) measure.Point[Kelvin, R] { return measure.PointOf[Kelvin](v) }

// RankinePoint returns the absolute temperature v degrees Rankine.
func RankinePoint[R measure.Rep](v R) measure.Point[Rankine, R] { return measure.PointOf[Rankine](v) }
