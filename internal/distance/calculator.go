package distance

import (
	"context"
	"math"

	"github.com/san-kum/cosmocalc/internal/constants"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/integrators"
	"github.com/san-kum/cosmocalc/internal/units"
)

// Calculator evaluates distances for one cosmology. It is safe for
// concurrent use.
type Calculator struct {
	cosmo   *cosmology.FLRW
	rule    integrators.Rule
	step    float64
	workers int
	memo    *memo
}

func New(c *cosmology.FLRW, opts ...Option) *Calculator {
	d := &Calculator{
		cosmo: c,
		rule:  integrators.NewMidpoint(),
		step:  integrators.DefaultStep,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Calculator) Cosmology() *cosmology.FLRW { return d.cosmo }
func (d *Calculator) Rule() integrators.Rule     { return d.rule }

// RadialComoving is D_C = D_H ∫_0^z dz'/E(z'). Past
// integrators.RedshiftSplit the integral runs in ln(1+z), so the cost is
// bounded for any finite z.
func (d *Calculator) RadialComoving(z cosmology.Redshift) units.NonNegative[units.Megaparsec] {
	// Background is never canceled, so the error is always nil.
	dc, _ := d.RadialComovingContext(context.Background(), z)
	return dc
}

// RadialComovingContext is RadialComoving with cancellation of the parallel
// summation.
func (d *Calculator) RadialComovingContext(ctx context.Context, z cosmology.Redshift) (units.NonNegative[units.Megaparsec], error) {
	dc, err := d.radial(ctx, z.Float())
	if err != nil {
		return units.NonNegative[units.Megaparsec]{}, err
	}
	return units.MustNonNegative[units.Megaparsec](dc), nil
}

func (d *Calculator) radial(ctx context.Context, z float64) (float64, error) {
	if d.memo != nil {
		if v, ok := d.memo.get(z); ok {
			return v, nil
		}
	}

	var (
		integral float64
		err      error
	)
	if d.workers > 1 {
		integral, err = integrators.IntegrateRedshiftParallel(ctx, d.rule, d.cosmo.InverseE, z, d.step, d.workers)
		if err != nil {
			return 0, err
		}
	} else {
		integral = integrators.IntegrateRedshift(d.rule, d.cosmo.InverseE, z, d.step)
	}

	dc := d.cosmo.HubbleDistance().Value() * integral
	if d.memo != nil {
		d.memo.put(z, dc)
	}
	return dc, nil
}

// TransverseComoving is D_M, branching on the sign of Ω_k(z). Only an exact
// zero takes the flat branch unless the cosmology has a curvature tolerance.
func (d *Calculator) TransverseComoving(z cosmology.Redshift) units.Quantity[units.Megaparsec] {
	return units.Of[units.Megaparsec](d.transverse(z, d.RadialComoving(z).Value()))
}

func (d *Calculator) transverse(z cosmology.Redshift, dc float64) float64 {
	dh := d.cosmo.HubbleDistance().Value()
	omegaK := d.cosmo.OmegaK(z).Value()

	switch d.cosmo.Classify(omegaK) {
	case cosmology.Open:
		sq := math.Sqrt(omegaK)
		return dh / sq * math.Sinh(sq*dc/dh)
	case cosmology.Closed:
		sq := math.Sqrt(-omegaK)
		return dh / sq * math.Sin(sq*dc/dh)
	default:
		return dc
	}
}

// AngularDiameter is D_A = D_M / (1+z).
func (d *Calculator) AngularDiameter(z cosmology.Redshift) units.Quantity[units.Megaparsec] {
	return d.TransverseComoving(z).Scale(1 / z.OnePlus())
}

// Luminosity is the bolometric D_L = D_M (1+z).
func (d *Calculator) Luminosity(z cosmology.Redshift) units.Quantity[units.Megaparsec] {
	return d.TransverseComoving(z).Scale(z.OnePlus())
}

// ComovingVolume is the all-sky comoving volume out to z (Hogg eqn 29).
func (d *Calculator) ComovingVolume(z cosmology.Redshift) units.Quantity[units.CubicMegaparsec] {
	return units.Of[units.CubicMegaparsec](d.volume(z, d.TransverseComoving(z).Value()))
}

func (d *Calculator) volume(z cosmology.Redshift, dm float64) float64 {
	dh := d.cosmo.HubbleDistance().Value()
	omegaK := d.cosmo.OmegaK(z).Value()
	kind := d.cosmo.Classify(omegaK)

	if kind == cosmology.Flat {
		return 4 * constants.Pi * dm * dm * dm / 3
	}

	return curvedVolume(dh, dm, omegaK, kind == cosmology.Open)
}

// curvedVolume is Hogg eqn 29 for Ω_k != 0. Once Ω_k D_M²/D_H² is small
// the bracket cancels to rounding noise, so the series about the flat
// volume, 4π/3 D_M³ (1 - 3/10 s + 9/56 s²) with s = Ω_k D_M²/D_H², is used.
func curvedVolume(dh, dm, omegaK float64, open bool) float64 {
	y := dm / dh
	if s := omegaK * y * y; math.Abs(s) < 1e-3 {
		return 4 * constants.Pi * dm * dm * dm / 3 * (1 - 0.3*s + 9.0/56.0*s*s)
	}

	coefficient := 4 * constants.Pi * dh * dh * dh / (2 * omegaK)
	first := y * math.Sqrt(1+omegaK*y*y)

	sq := math.Sqrt(math.Abs(omegaK))
	var second float64
	if open {
		second = math.Asinh(sq*y) / sq
	} else {
		second = math.Asin(sq*y) / sq
	}
	return coefficient * (first - second)
}

// DistanceModulus is 5 log10(D_L / 10 pc). It is -Inf at z = 0.
func (d *Calculator) DistanceModulus(z cosmology.Redshift) units.Quantity[units.Magnitude] {
	return units.Of[units.Magnitude](modulus(d.Luminosity(z).Value()))
}

func modulus(dlMpc float64) float64 {
	return 5*math.Log10(dlMpc) + 25
}
