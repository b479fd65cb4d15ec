package cosmology

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/cosmocalc/internal/constants"
	"github.com/san-kum/cosmocalc/internal/units"
)

// flatTolerance is the curvature tolerance NewFlat applies unless the caller
// sets one: choosing Ω_DE0 to close the budget leaves rounding residue in
// Ω_k0 once radiation is non-zero.
const flatTolerance = 1e-12

// FLRW is an immutable homogeneous cosmology.
type FLRW struct {
	name      string
	reference string

	h0     units.NonNegative[units.KmPerSecPerMpc]
	omega  OmegaFactors
	tcmb0  *units.NonNegative[units.Kelvin]
	nEff   units.NonNegative[units.Ratio]
	masses []units.NonNegative[units.ElectronVolt]
	tol    float64

	omegaGamma0 units.NonNegative[units.Ratio]
	omegaNu0    units.NonNegative[units.Ratio]
	omegaK0     units.Quantity[units.Ratio]

	// raw coefficients of E(z)^2
	m, k, de, r float64
}

// New builds a cosmology from H0 in km/s/Mpc and the density parameters.
// Without WithCMBTemperature there is no photon or neutrino contribution.
// N_eff defaults to 3.04 with three massless species.
func New(h0 float64, omega OmegaFactors, opts ...Option) (*FLRW, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return build(h0, omega, s)
}

// TwoComponent builds a matter plus dark energy cosmology with no baryons
// and no radiation.
func TwoComponent(matter, darkEnergy, h0 float64) (*FLRW, error) {
	omega, err := NewOmegaFactors(matter, darkEnergy, 0)
	if err != nil {
		return nil, err
	}
	return New(h0, omega, WithName("two-component"))
}

// NewFlat builds a flat cosmology, choosing Ω_DE0 = 1 - Ω_M0 - Ω_γ0 - Ω_ν0.
func NewFlat(h0, matter, baryon float64, opts ...Option) (*FLRW, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.tolerance == nil {
		tol := flatTolerance
		s.tolerance = &tol
	}

	hubble, err := hubbleConstant(h0)
	if err != nil {
		return nil, err
	}
	v, err := s.validate()
	if err != nil {
		return nil, err
	}
	gamma, nu := radiationDensities(hubble, v.tcmb0, v.nEff)

	omega, err := NewOmegaFactors(matter, 1-matter-gamma.Value()-nu.Value(), baryon)
	if err != nil {
		return nil, err
	}
	return build(h0, omega, s)
}

func build(h0 float64, omega OmegaFactors, s settings) (*FLRW, error) {
	hubble, err := hubbleConstant(h0)
	if err != nil {
		return nil, err
	}
	v, err := s.validate()
	if err != nil {
		return nil, err
	}

	c := &FLRW{
		name:      s.name,
		reference: s.reference,
		h0:        hubble,
		omega:     omega,
		tcmb0:     v.tcmb0,
		nEff:      v.nEff,
		masses:    v.masses,
		tol:       v.tolerance,
	}
	c.omegaGamma0, c.omegaNu0 = radiationDensities(hubble, v.tcmb0, v.nEff)
	c.omegaK0 = omega.CurvatureDensity0(c.omegaNu0, c.omegaGamma0)

	c.m = omega.Matter0().Value()
	c.de = omega.DarkEnergy0().Value()
	c.k = c.omegaK0.Value()
	c.r = c.omegaGamma0.Value() + c.omegaNu0.Value()

	if err := c.validateExpansion(); err != nil {
		return nil, err
	}
	return c, nil
}

func hubbleConstant(h0 float64) (units.NonNegative[units.KmPerSecPerMpc], error) {
	hubble, err := units.NewNonNegative[units.KmPerSecPerMpc](h0)
	if err != nil {
		return hubble, fmt.Errorf("H0: %w", err)
	}
	if hubble.IsZero() || math.IsInf(h0, 0) {
		return hubble, fmt.Errorf("%w: H0 must be positive and finite, got %g", ErrInvalidCosmology, h0)
	}
	return hubble, nil
}

// radiationDensities returns Ω_γ0 = α T^4 / (ρ_c0 c^2) (Ryden eqn 2.28) and
// Ω_ν0 = 7/8 (4/11)^(4/3) N_eff Ω_γ0. Both vanish without a CMB temperature.
func radiationDensities(
	h0 units.NonNegative[units.KmPerSecPerMpc],
	tcmb0 *units.NonNegative[units.Kelvin],
	nEff units.NonNegative[units.Ratio],
) (gamma, nu units.NonNegative[units.Ratio]) {
	if tcmb0 == nil {
		return units.NonNegativeZero[units.Ratio](), units.NonNegativeZero[units.Ratio]()
	}
	rhoC0 := criticalDensity(h0.Value())
	g := constants.Alpha.Value() * tcmb0.Powi(4) / (rhoC0 * constants.C.Powi(2))
	n := 7.0 / 8.0 * math.Pow(4.0/11.0, 4.0/3.0) * nEff.Value() * g
	return units.MustNonNegative[units.Ratio](g), units.MustNonNegative[units.Ratio](n)
}

// criticalDensity is 3H^2 / (8πG) in kg/m^3 for H in km/s/Mpc.
func criticalDensity(h float64) float64 {
	return 3 * h * h / (8 * constants.Pi * constants.G.Value() * units.KilometersPerMpc * units.KilometersPerMpc)
}

// validateExpansion rejects parameters for which E(z)^2 <= 0 somewhere on
// z >= 0. With x = 1+z, E^2 = r x^4 + m x^3 + k x^2 + de equals Ω_tot0 at
// x = 1 and can only dip below zero through a negative curvature term, at
// the positive root of 4r x^2 + 3m x + 2k.
func (c *FLRW) validateExpansion() error {
	if c.k >= 0 {
		return nil
	}

	var x float64
	switch {
	case c.r > 0:
		x = (-3*c.m + math.Sqrt(9*c.m*c.m-32*c.r*c.k)) / (8 * c.r)
	case c.m > 0:
		x = -2 * c.k / (3 * c.m)
	default:
		return fmt.Errorf("%w: closed universe without matter or radiation recollapses (Ωk0=%g)",
			ErrInvalidCosmology, c.k)
	}

	if x > 1 && c.e2(x) <= 0 {
		return fmt.Errorf("%w: E(z)^2 turns negative near z=%.4g", ErrInvalidCosmology, x-1)
	}
	return nil
}

// largeX is the 1+z above which E^2 is evaluated relative to its leading
// power, since r x^4 alone would overflow near x = 1e77.
const largeX = 1e60

func (c *FLRW) e2(x float64) float64 {
	if x < largeX {
		x2 := x * x
		return c.m*x2*x + c.k*x2 + c.de + c.r*x2*x2
	}
	return c.e2Over(x, 0)
}

// e2Over is E^2 / x^power. The polynomial is summed relative to its highest
// non-zero power, so every term stays finite and the result is at worst
// +Inf, never NaN.
func (c *FLRW) e2Over(x float64, power int) float64 {
	coeffs := [...]float64{c.de, 0, c.k, c.m, c.r}
	lead := 0
	for p, coef := range coeffs {
		if coef != 0 {
			lead = p
		}
	}
	sum := 0.0
	for p, coef := range coeffs {
		if coef != 0 {
			sum += coef * math.Pow(x, float64(p-lead))
		}
	}
	return sum * math.Pow(x, float64(lead-power))
}

// E is the dimensionless expansion rate H(z)/H0.
func (c *FLRW) E(z Redshift) float64 {
	return math.Sqrt(c.e2(z.OnePlus()))
}

// InverseE is 1/E(z) on a bare float, the line-of-sight integrand. z must
// be non-negative.
func (c *FLRW) InverseE(z float64) float64 {
	return 1 / math.Sqrt(c.e2(1+z))
}

func (c *FLRW) H(z Redshift) units.NonNegative[units.KmPerSecPerMpc] {
	return units.MustNonNegative[units.KmPerSecPerMpc](c.h0.Value() * c.E(z))
}

// LittleH is H0 / 100.
func (c *FLRW) LittleH() float64 { return c.h0.Value() / 100 }

// ScaleFactor is 1/(1+z).
func (c *FLRW) ScaleFactor(z Redshift) float64 { return 1 / z.OnePlus() }

// HubbleTime is 1/H0 in seconds.
func (c *FLRW) HubbleTime() units.NonNegative[units.Second] {
	return units.MustNonNegative[units.Second](units.KilometersPerMpc / c.h0.Value())
}

func (c *FLRW) HubbleTimeGyr() units.NonNegative[units.Gigayear] {
	return units.MustNonNegative[units.Gigayear](c.HubbleTime().Value() / units.SecondsPerGyr)
}

// HubbleDistance is c/H0 in Mpc.
func (c *FLRW) HubbleDistance() units.NonNegative[units.Megaparsec] {
	return units.MustNonNegative[units.Megaparsec](constants.C.Value() / (c.h0.Value() * units.MetersPerKilometer))
}

// HubbleDistanceLittleH is c/H0 in h^-1 Mpc, independent of H0.
func (c *FLRW) HubbleDistanceLittleH() units.NonNegative[units.HInvMpc] {
	return units.MustNonNegative[units.HInvMpc](constants.C.Value() / 1e5)
}

func (c *FLRW) Name() string      { return c.name }
func (c *FLRW) Reference() string { return c.reference }

func (c *FLRW) H0() units.NonNegative[units.KmPerSecPerMpc] { return c.h0 }
func (c *FLRW) Omega() OmegaFactors                         { return c.omega }
func (c *FLRW) NEff() units.NonNegative[units.Ratio]        { return c.nEff }

// NeutrinoMasses returns a copy of the neutrino rest masses.
func (c *FLRW) NeutrinoMasses() []units.NonNegative[units.ElectronVolt] {
	return append([]units.NonNegative[units.ElectronVolt](nil), c.masses...)
}

func (c *FLRW) String() string {
	var b strings.Builder
	b.WriteString("FLRW(")
	if c.name != "" {
		fmt.Fprintf(&b, "name=%q, ", c.name)
	}
	fmt.Fprintf(&b, "H0=%s, Ωm0=%g, Ωde0=%g, Ωb0=%g",
		c.h0, c.omega.Matter0().Value(), c.omega.DarkEnergy0().Value(), c.omega.Baryon0().Value())
	if c.tcmb0 != nil {
		fmt.Fprintf(&b, ", Tcmb0=%s", c.tcmb0)
	}
	fmt.Fprintf(&b, ", Neff=%g)", c.nEff.Value())
	return b.String()
}
