package cosmology

import (
	"fmt"

	"github.com/san-kum/cosmocalc/internal/units"
)

// OmegaFactors are the present-day matter, dark energy and baryon density
// parameters.
type OmegaFactors struct {
	matter     units.NonNegative[units.Ratio]
	darkEnergy units.NonNegative[units.Ratio]
	baryon     units.NonNegative[units.Ratio]
}

// NewOmegaFactors validates the density parameters. Baryons are a subset of
// matter, so baryon > matter is rejected with ErrInvalidCosmology.
func NewOmegaFactors(matter, darkEnergy, baryon float64) (OmegaFactors, error) {
	m, err := units.NewNonNegative[units.Ratio](matter)
	if err != nil {
		return OmegaFactors{}, fmt.Errorf("matter density: %w", err)
	}
	de, err := units.NewNonNegative[units.Ratio](darkEnergy)
	if err != nil {
		return OmegaFactors{}, fmt.Errorf("dark energy density: %w", err)
	}
	b, err := units.NewNonNegative[units.Ratio](baryon)
	if err != nil {
		return OmegaFactors{}, fmt.Errorf("baryon density: %w", err)
	}
	if m.Less(b) {
		return OmegaFactors{}, fmt.Errorf("%w: baryon density %g exceeds matter density %g",
			ErrInvalidCosmology, baryon, matter)
	}
	return OmegaFactors{matter: m, darkEnergy: de, baryon: b}, nil
}

func (o OmegaFactors) Matter0() units.NonNegative[units.Ratio]     { return o.matter }
func (o OmegaFactors) DarkEnergy0() units.NonNegative[units.Ratio] { return o.darkEnergy }
func (o OmegaFactors) Baryon0() units.NonNegative[units.Ratio]     { return o.baryon }

// DarkMatterDensity0 is Ω_M0 - Ω_b0.
func (o OmegaFactors) DarkMatterDensity0() units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](o.matter.Value() - o.baryon.Value())
}

// CurvatureDensity0 is 1 - Ω_M0 - Ω_DE0 - Ω_ν0 - Ω_γ0. The radiation terms
// come from the owning cosmology.
func (o OmegaFactors) CurvatureDensity0(omegaNu0, omegaGamma0 units.NonNegative[units.Ratio]) units.Quantity[units.Ratio] {
	return units.One[units.Ratio]().
		Sub(o.matter.Quantity()).
		Sub(o.darkEnergy.Quantity()).
		Sub(omegaNu0.Quantity()).
		Sub(omegaGamma0.Quantity())
}

func (o OmegaFactors) String() string {
	return fmt.Sprintf("Ωm=%g Ωde=%g Ωb=%g", o.matter.Value(), o.darkEnergy.Value(), o.baryon.Value())
}
