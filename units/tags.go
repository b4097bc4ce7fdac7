package units

import "github.com/govalues/measure"

// Meter is the unit of length.
type Meter struct{}

func (Meter) Unit() measure.Unit { return meter }

// Gram is the unit of mass.
type Gram struct{}

func (Gram) Unit() measure.Unit { return gram }

// Second is the unit of time.
type Second struct{}

func (Second) Unit() measure.Unit { return second }

// Ampere is the unit of electric current.
type Ampere struct{}

func (Ampere) Unit() measure.Unit { return ampere }

// Kelvin is the unit of thermodynamic temperature.
type Kelvin struct{}

func (Kelvin) Unit() measure.Unit { return kelvin }

// Mole is the unit of amount of substance.
type Mole struct{}

func (Mole) Unit() measure.Unit { return mole }

// Candela is the unit of luminous intensity.
type Candela struct{}

func (Candela) Unit() measure.Unit { return candela }

// Radian is the unit of plane angle.
type Radian struct{}

func (Radian) Unit() measure.Unit { return radian }

// Steradian is the unit of solid angle.
type Steradian struct{}

func (Steradian) Unit() measure.Unit { return steradian }

// Unos is the unit of the dimensionless unit one.
type Unos struct{}

func (Unos) Unit() measure.Unit { return unos }

// Percent is the unit of one hundredth.
type Percent struct{}

func (Percent) Unit() measure.Unit { return percent }

// Hertz is the unit of frequency.
type Hertz struct{}

func (Hertz) Unit() measure.Unit { return hertz }

// Newton is the unit of force.
type Newton struct{}

func (Newton) Unit() measure.Unit { return newton }

// Pascal is the unit of pressure.
type Pascal struct{}

func (Pascal) Unit() measure.Unit { return pascal }

// Joule is the unit of energy.
type Joule struct{}

func (Joule) Unit() measure.Unit { return joule }

// Watt is the unit of power.
type Watt struct{}

func (Watt) Unit() measure.Unit { return watt }

// Coulomb is the unit of electric charge.
type Coulomb struct{}

func (Coulomb) Unit() measure.Unit { return coulomb }

// Volt is the unit of electric potential.
type Volt struct{}

func (Volt) Unit() measure.Unit { return volt }

// Farad is the unit of capacitance.
type Farad struct{}

func (Farad) Unit() measure.Unit { return farad }

// Ohm is the unit of electric resistance.
type Ohm struct{}

func (Ohm) Unit() measure.Unit { return ohm }

// Siemens is the unit of electric conductance.
type Siemens struct{}

func (Siemens) Unit() measure.Unit { return siemens }

// Weber is the unit of magnetic flux.
type Weber struct{}

func (Weber) Unit() measure.Unit { return weber }

// Tesla is the unit of magnetic flux density.
type Tesla struct{}

func (Tesla) Unit() measure.Unit { return tesla }

// Henry is the unit of inductance.
type Henry struct{}

func (Henry) Unit() measure.Unit { return henry }

// Becquerel is the unit of radioactivity.
type Becquerel struct{}

func (Becquerel) Unit() measure.Unit { return becquerel }

// Katal is the unit of catalytic activity.
type Katal struct{}

func (Katal) Unit() measure.Unit { return katal }

// Lumen is the unit of luminous flux.
type Lumen struct{}

func (Lumen) Unit() measure.Unit { return lumen }

// Liter is the unit of volume.
type Liter struct{}

func (Liter) Unit() measure.Unit { return liter }

// Bar is the unit of pressure.
type Bar struct{}

func (Bar) Unit() measure.Unit { return bar }

// Minute is the unit of time.
type Minute struct{}

func (Minute) Unit() measure.Unit { return minute }

// Hour is the unit of time.
type Hour struct{}

func (Hour) Unit() measure.Unit { return hour }

// Day is the unit of time.
type Day struct{}

func (Day) Unit() measure.Unit { return day }

// Inch is the unit of length.
type Inch struct{}

func (Inch) Unit() measure.Unit { return inch }

// Foot is the unit of length.
type Foot struct{}

func (Foot) Unit() measure.Unit { return foot }

// Yard is the unit of length.
type Yard struct{}

func (Yard) Unit() measure.Unit { return yard }

// Mile is the unit of length.
type Mile struct{}

func (Mile) Unit() measure.Unit { return mile }

// Fathom is the unit of length.
type Fathom struct{}

func (Fathom) Unit() measure.Unit { return fathom }

// Furlong is the unit of length.
type Furlong struct{}

func (Furlong) Unit() measure.Unit { return furlong }

// NauticalMile is the unit of length.
type NauticalMile struct{}

func (NauticalMile) Unit() measure.Unit { return nauticalMile }

// Knot is the unit of speed.
type Knot struct{}

func (Knot) Unit() measure.Unit { return knot }

// USPint is the unit of volume.
type USPint struct{}

func (USPint) Unit() measure.Unit { return usPint }

// Degree is the unit of plane angle.
type Degree struct{}

func (Degree) Unit() measure.Unit { return degree }

// Arcsecond is the unit of plane angle.
type Arcsecond struct{}

func (Arcsecond) Unit() measure.Unit { return arcsecond }

// Revolution is the unit of plane angle.
type Revolution struct{}

func (Revolution) Unit() measure.Unit { return revolution }

// PoundMass is the unit of mass.
type PoundMass struct{}

func (PoundMass) Unit() measure.Unit { return poundMass }

// StandardGravity is the unit of acceleration.
type StandardGravity struct{}

func (StandardGravity) Unit() measure.Unit { return standardGravity }

// PoundForce is the unit of force.
type PoundForce struct{}

func (PoundForce) Unit() measure.Unit { return poundForce }

// Slug is the unit of mass.
type Slug struct{}

func (Slug) Unit() measure.Unit { return slug }

// Rankine is the unit of thermodynamic temperature.
type Rankine struct{}

func (Rankine) Unit() measure.Unit { return rankine }

// Celsius is the unit of temperature, with the origin at 273.15 K.
type Celsius struct{}

func (Celsius) Unit() measure.Unit { return celsius }

// Fahrenheit is the unit of temperature, with the origin at 459.67 degR.
type Fahrenheit struct{}

func (Fahrenheit) Unit() measure.Unit { return fahrenheit }
