package units

import (
	"sort"
	"sync"

	"github.com/govalues/measure"
)

// Entry is a named unit of the catalog.
type Entry struct {
	Name string
	Unit measure.Unit
}

func entry[T measure.Tag](name string) Entry {
	return Entry{Name: name, Unit: measure.UnitOf[T]()}
}

// catalog is built on first use, since tag descriptors are package
// variables that must be initialized before UnitOf can read them.
var catalog = sync.OnceValue(func() []Entry {
	return []Entry{
		entry[Meter]("meter"),
		entry[Gram]("gram"),
		entry[Second]("second"),
		entry[Ampere]("ampere"),
		entry[Kelvin]("kelvin"),
		entry[Mole]("mole"),
		entry[Candela]("candela"),
		entry[Radian]("radian"),
		entry[Steradian]("steradian"),
		entry[Unos]("unos"),
		entry[Percent]("percent"),

		entry[Hertz]("hertz"),
		entry[Newton]("newton"),
		entry[Pascal]("pascal"),
		entry[Joule]("joule"),
		entry[Watt]("watt"),
		entry[Coulomb]("coulomb"),
		entry[Volt]("volt"),
		entry[Farad]("farad"),
		entry[Ohm]("ohm"),
		entry[Siemens]("siemens"),
		entry[Weber]("weber"),
		entry[Tesla]("tesla"),
		entry[Henry]("henry"),
		entry[Becquerel]("becquerel"),
		entry[Katal]("katal"),
		entry[Lumen]("lumen"),
		entry[Liter]("liter"),
		entry[Bar]("bar"),

		entry[Minute]("minute"),
		entry[Hour]("hour"),
		entry[Day]("day"),

		entry[Inch]("inch"),
		entry[Foot]("foot"),
		entry[Yard]("yard"),
		entry[Mile]("mile"),
		entry[Fathom]("fathom"),
		entry[Furlong]("furlong"),
		entry[NauticalMile]("nautical_mile"),
		entry[Knot]("knot"),
		entry[USPint]("us_pint"),

		entry[Degree]("degree"),
		entry[Arcsecond]("arcsecond"),
		entry[Revolution]("revolution"),

		entry[PoundMass]("pound_mass"),
		entry[StandardGravity]("standard_gravity"),
		entry[PoundForce]("pound_force"),
		entry[Slug]("slug"),

		entry[Rankine]("rankine"),
		entry[Celsius]("celsius"),
		entry[Fahrenheit]("fahrenheit"),

		entry[Kilometer]("kilometer"),
		entry[Centimeter]("centimeter"),
		entry[Millimeter]("millimeter"),
		entry[Micrometer]("micrometer"),
		entry[Nanometer]("nanometer"),
		entry[Kilogram]("kilogram"),
		entry[Milligram]("milligram"),
		entry[Millisecond]("millisecond"),
		entry[Microsecond]("microsecond"),
		entry[Nanosecond]("nanosecond"),
		entry[Milliampere]("milliampere"),
		entry[Kilowatt]("kilowatt"),
		entry[Megawatt]("megawatt"),
		entry[Kilohertz]("kilohertz"),
		entry[Megahertz]("megahertz"),
		entry[Gigahertz]("gigahertz"),
		entry[Kilopascal]("kilopascal"),
		entry[Kilojoule]("kilojoule"),
		entry[Millivolt]("millivolt"),
		entry[Kiloohm]("kiloohm"),
		entry[Microfarad]("microfarad"),
		entry[Milliliter]("milliliter"),

		entry[MeterPerSecond]("meter_per_second"),
		entry[MeterPerSecondSquared]("meter_per_second_squared"),
		entry[KilometerPerHour]("kilometer_per_hour"),
		entry[MilePerHour]("mile_per_hour"),
		entry[SquareMeter]("square_meter"),
		entry[CubicMeter]("cubic_meter"),
		entry[NewtonMeter]("newton_meter"),
		entry[RadianPerSecond]("radian_per_second"),
		entry[RevolutionPerMinute]("revolution_per_minute"),
		entry[WattHour]("watt_hour"),
		entry[KilowattHour]("kilowatt_hour"),
		entry[AmpereHour]("ampere_hour"),
	}
})

// Catalog returns the units declared by this package, in declaration order.
// The returned slice is a copy.
func Catalog() []Entry {
	return append([]Entry(nil), catalog()...)
}

var byKey = sync.OnceValue(func() map[string]Entry {
	m := make(map[string]Entry, 2*len(catalog()))
	for _, e := range catalog() {
		m[e.Name] = e
	}
	// Labels never shadow names.
	for _, e := range catalog() {
		if _, ok := m[e.Unit.Label()]; !ok {
			m[e.Unit.Label()] = e
		}
	}
	return m
})

// Lookup returns the catalog entry whose name or label is exactly key,
// for example "foot" or "ft".
func Lookup(key string) (Entry, bool) {
	e, ok := byKey()[key]
	return e, ok
}

// Labels returns the labels of the catalog in sorted order.
func Labels() []string {
	labels := make([]string, len(catalog()))
	for i, e := range catalog() {
		labels[i] = e.Unit.Label()
	}
	sort.Strings(labels)
	return labels
}
