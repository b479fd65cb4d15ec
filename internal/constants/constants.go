// Package constants holds the physical constants used by the cosmology
// model. Fundamental values are CODATA 2018
// (https://physics.nist.gov/cuu/Constants/).
package constants

import (
	"math"

	"github.com/san-kum/cosmocalc/internal/units"
)

const Pi = math.Pi

var (
	// C is the speed of light.
	C = units.MustNonNegative[units.MeterPerSecond](units.SpeedOfLight)

	// G is the Newtonian gravitational constant.
	G = units.MustNonNegative[units.CubicMeterPerKgSecond2](6.67430e-11)

	Boltzmann = units.MustNonNegative[units.JoulePerKelvin](1.380649e-23)

	StefanBoltzmann = units.MustNonNegative[units.WattPerMeter2Kelvin4](5.6703744194e-8)

	// HBar is the reduced Planck constant.
	HBar = units.MustNonNegative[units.JouleSecond](1.054571817e-34)
)

// Alpha is the radiation constant pi^2 k^4 / (15 hbar^3 c^3), Ryden eqn 2.29.
// Photon energy density is Alpha * T^4.
var Alpha = units.MustNonNegative[units.JoulePerCubicMeterKelvin4](
	Pi * Pi * Boltzmann.Powi(4) / (15 * HBar.Powi(3) * C.Powi(3)),
)

// TNuToTGammaRatio is the neutrino to photon temperature ratio (4/11)^(1/3).
var TNuToTGammaRatio = units.MustNonNegative[units.Ratio](math.Cbrt(4.0 / 11.0))

// DefaultNEff is the effective number of neutrino species
// (WMAP, Spergel et al. 2007).
var DefaultNEff = units.MustNonNegative[units.Ratio](3.04)

// DefaultNeutrinoMasses returns three massless species. A fresh slice is
// returned on every call.
func DefaultNeutrinoMasses() []units.NonNegative[units.ElectronVolt] {
	return []units.NonNegative[units.ElectronVolt]{
		units.NonNegativeZero[units.ElectronVolt](),
		units.NonNegativeZero[units.ElectronVolt](),
		units.NonNegativeZero[units.ElectronVolt](),
	}
}
