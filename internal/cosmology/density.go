package cosmology

import "github.com/san-kum/cosmocalc/internal/units"

// CriticalDensity is 3H(z)^2 / (8πG) in kg/m^3. At z = 0 it uses H0
// directly rather than H0 E(0).
func (c *FLRW) CriticalDensity(z Redshift) units.NonNegative[units.KilogramPerCubicMeter] {
	h := c.h0.Value()
	if !z.IsZero() {
		h = c.H(z).Value()
	}
	return units.MustNonNegative[units.KilogramPerCubicMeter](criticalDensity(h))
}

func (c *FLRW) OmegaGamma0() units.NonNegative[units.Ratio] { return c.omegaGamma0 }
func (c *FLRW) OmegaNu0() units.NonNegative[units.Ratio]    { return c.omegaNu0 }
func (c *FLRW) OmegaK0() units.Quantity[units.Ratio]        { return c.omegaK0 }
func (c *FLRW) OmegaM0() units.NonNegative[units.Ratio]     { return c.omega.Matter0() }
func (c *FLRW) OmegaB0() units.NonNegative[units.Ratio]     { return c.omega.Baryon0() }
func (c *FLRW) OmegaDM0() units.NonNegative[units.Ratio]    { return c.omega.DarkMatterDensity0() }
func (c *FLRW) OmegaDE0() units.NonNegative[units.Ratio]    { return c.omega.DarkEnergy0() }

// OmegaTot0 is Ω_m0 + Ω_γ0 + Ω_ν0 + Ω_de0 + Ω_k0. The curvature term closes
// the budget, so this is 1 up to rounding.
func (c *FLRW) OmegaTot0() units.Quantity[units.Ratio] {
	return c.OmegaM0().Quantity().
		Add(c.omegaGamma0.Quantity()).
		Add(c.omegaNu0.Quantity()).
		Add(c.OmegaDE0().Quantity()).
		Add(c.omegaK0)
}

// scaled returns omega0 (1+z)^power / E(z)^2.
func (c *FLRW) scaled(omega0 float64, z Redshift, power int) float64 {
	if omega0 == 0 {
		return 0
	}
	x := z.OnePlus()
	if x < largeX {
		return omega0 * units.Of[units.Ratio](x).Powi(power) / c.e2(x)
	}
	return omega0 / c.e2Over(x, power)
}

func (c *FLRW) OmegaGamma(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.omegaGamma0.Value(), z, 4))
}

func (c *FLRW) OmegaNu(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.omegaNu0.Value(), z, 4))
}

func (c *FLRW) OmegaM(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.m, z, 3))
}

func (c *FLRW) OmegaB(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.omega.Baryon0().Value(), z, 3))
}

func (c *FLRW) OmegaDM(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.OmegaDM0().Value(), z, 3))
}

// OmegaK is signed: positive for open, negative for closed geometry.
func (c *FLRW) OmegaK(z Redshift) units.Quantity[units.Ratio] {
	return units.Of[units.Ratio](c.scaled(c.k, z, 2))
}

func (c *FLRW) OmegaDE(z Redshift) units.NonNegative[units.Ratio] {
	return units.MustNonNegative[units.Ratio](c.scaled(c.de, z, 0))
}

// OmegaTot is the sum of every component at z. It is 1 for any cosmology
// once curvature is included.
func (c *FLRW) OmegaTot(z Redshift) units.Quantity[units.Ratio] {
	return c.OmegaM(z).Quantity().
		Add(c.OmegaGamma(z).Quantity()).
		Add(c.OmegaNu(z).Quantity()).
		Add(c.OmegaDE(z).Quantity()).
		Add(c.OmegaK(z))
}
