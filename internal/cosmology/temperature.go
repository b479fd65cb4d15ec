package cosmology

import (
	"github.com/san-kum/cosmocalc/internal/constants"
	"github.com/san-kum/cosmocalc/internal/units"
)

// HasRadiation reports whether a CMB temperature was supplied.
func (c *FLRW) HasRadiation() bool { return c.tcmb0 != nil }

// CMBTemperature0 is T_CMB at z = 0, or 0 K when none was supplied.
func (c *FLRW) CMBTemperature0() units.NonNegative[units.Kelvin] {
	if c.tcmb0 == nil {
		return units.NonNegativeZero[units.Kelvin]()
	}
	return *c.tcmb0
}

func (c *FLRW) CMBTemperature(z Redshift) units.NonNegative[units.Kelvin] {
	return units.MustNonNegative[units.Kelvin](c.CMBTemperature0().Value() * z.OnePlus())
}

// NeutrinoTemperature0 is T_CMB0 (4/11)^(1/3).
func (c *FLRW) NeutrinoTemperature0() units.NonNegative[units.Kelvin] {
	return units.MustNonNegative[units.Kelvin](c.CMBTemperature0().Value() * constants.TNuToTGammaRatio.Value())
}

func (c *FLRW) NeutrinoTemperature(z Redshift) units.NonNegative[units.Kelvin] {
	return units.MustNonNegative[units.Kelvin](c.NeutrinoTemperature0().Value() * z.OnePlus())
}
