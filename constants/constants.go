// Package constants declares the exactly defined physical constants of the
// SI as [measure.Constant] values.
//
// Each constant is the magnitude of its defining unit, so conversions are
// computed from the exact value:
//
//	c, _ := measure.ConstantIn[units.MeterPerSecond, int](constants.SpeedOfLight) // 299792458
package constants

import (
	"github.com/govalues/measure"
	"github.com/govalues/measure/units"
)

func define[T measure.Tag](m measure.Magnitude, label string) measure.Unit {
	return measure.UnitOf[T]().Scale(m).WithLabel(label)
}

// mantissa returns n * 10^e.
func mantissa(n uint64, e int) measure.Magnitude {
	return measure.Mag(n).Mul(measure.Pow10(e))
}

var (
	speedOfLight     = define[units.MeterPerSecond](measure.Mag(299792458), "c")
	elementaryCharge = define[units.Coulomb](mantissa(1602176634, -28), "e")
	planck           = define[units.JouleSecond](mantissa(662607015, -42), "h")
	boltzmann        = define[units.JoulePerKelvin](mantissa(1380649, -29), "k_B")
	avogadro         = define[units.PerMole](mantissa(602214076, 15), "N_A")
	cesiumHyperfine  = define[units.Hertz](measure.Mag(9192631770), "Delta_nu_Cs")
	luminousEfficacy = define[units.LumenPerWatt](measure.Mag(683), "K_cd")
	standardGravity  = define[units.MeterPerSecondSquared](mantissa(980665, -5), "g_0")
)

// SpeedOfLightUnit is the unit whose magnitude is the speed of light in vacuum.
type SpeedOfLightUnit struct{}

func (SpeedOfLightUnit) Unit() measure.Unit { return speedOfLight }

// ElementaryChargeUnit is the unit whose magnitude is the elementary charge.
type ElementaryChargeUnit struct{}

func (ElementaryChargeUnit) Unit() measure.Unit { return elementaryCharge }

// PlanckUnit is the unit whose magnitude is the Planck constant.
type PlanckUnit struct{}

func (PlanckUnit) Unit() measure.Unit { return planck }

// BoltzmannUnit is the unit whose magnitude is the Boltzmann constant.
type BoltzmannUnit struct{}

func (BoltzmannUnit) Unit() measure.Unit { return boltzmann }

// AvogadroUnit is the unit whose magnitude is the Avogadro constant.
type AvogadroUnit struct{}

func (AvogadroUnit) Unit() measure.Unit { return avogadro }

// CesiumHyperfineUnit is the unit whose magnitude is the hyperfine
// transition frequency of cesium 133.
type CesiumHyperfineUnit struct{}

func (CesiumHyperfineUnit) Unit() measure.Unit { return cesiumHyperfine }

// LuminousEfficacyUnit is the unit whose magnitude is the luminous efficacy
// of monochromatic radiation of frequency 540 THz.
type LuminousEfficacyUnit struct{}

func (LuminousEfficacyUnit) Unit() measure.Unit { return luminousEfficacy }

// StandardGravityUnit is the unit whose magnitude is the standard
// acceleration of gravity.
type StandardGravityUnit struct{}

func (StandardGravityUnit) Unit() measure.Unit { return standardGravity }

var (
	// SpeedOfLight is exactly 299792458 m/s.
	SpeedOfLight = measure.MakeConstant[SpeedOfLightUnit]()
	// ElementaryCharge is exactly 1.602176634e-19 C.
	ElementaryCharge = measure.MakeConstant[ElementaryChargeUnit]()
	// Planck is exactly 6.62607015e-34 J s.
	Planck = measure.MakeConstant[PlanckUnit]()
	// Boltzmann is exactly 1.380649e-23 J/K.
	Boltzmann = measure.MakeConstant[BoltzmannUnit]()
	// Avogadro is exactly 6.02214076e23 /mol.
	Avogadro = measure.MakeConstant[AvogadroUnit]()
	// CesiumHyperfine is exactly 9192631770 Hz.
	CesiumHyperfine = measure.MakeConstant[CesiumHyperfineUnit]()
	// LuminousEfficacy is exactly 683 lm/W.
	LuminousEfficacy = measure.MakeConstant[LuminousEfficacyUnit]()
	// StandardGravity is exactly 9.80665 m/s^2.
	StandardGravity = measure.MakeConstant[StandardGravityUnit]()
)

// Entry is a named constant, used for listing.
type Entry struct {
	Name string
	Unit measure.Unit
}

// All returns the constants of this package in declaration order.
func All() []Entry {
	return []Entry{
		{"speed_of_light", SpeedOfLight.Unit()},
		{"elementary_charge", ElementaryCharge.Unit()},
		{"planck", Planck.Unit()},
		{"boltzmann", Boltzmann.Unit()},
		{"avogadro", Avogadro.Unit()},
		{"cesium_hyperfine", CesiumHyperfine.Unit()},
		{"luminous_efficacy", LuminousEfficacy.Unit()},
		{"standard_gravity", StandardGravity.Unit()},
	}
}
