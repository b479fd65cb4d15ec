package distance

import (
	"context"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/units"
)

// Distances holds every distance measure at one redshift.
type Distances struct {
	Redshift        float64                               `json:"z"`
	RadialComoving  units.NonNegative[units.Megaparsec]   `json:"comoving_radial_mpc"`
	Transverse      units.Quantity[units.Megaparsec]      `json:"comoving_transverse_mpc"`
	AngularDiameter units.Quantity[units.Megaparsec]      `json:"angular_diameter_mpc"`
	Luminosity      units.Quantity[units.Megaparsec]      `json:"luminosity_mpc"`
	ComovingVolume  units.Quantity[units.CubicMegaparsec] `json:"comoving_volume_mpc3"`
	LookbackTime    units.NonNegative[units.Gigayear]     `json:"lookback_time_gyr"`

	// DistanceModulus is nil at z = 0, where it diverges.
	DistanceModulus *units.Quantity[units.Magnitude] `json:"distance_modulus,omitempty"`
}

// All computes every measure from a single radial integration.
func (d *Calculator) All(ctx context.Context, z cosmology.Redshift) (Distances, error) {
	dcMpc, err := d.RadialComovingContext(ctx, z)
	if err != nil {
		return Distances{}, err
	}
	dm := d.transverse(z, dcMpc.Value())
	dl := dm * z.OnePlus()

	out := Distances{
		Redshift:        z.Float(),
		RadialComoving:  dcMpc,
		Transverse:      units.Of[units.Megaparsec](dm),
		AngularDiameter: units.Of[units.Megaparsec](dm / z.OnePlus()),
		Luminosity:      units.Of[units.Megaparsec](dl),
		ComovingVolume:  units.Of[units.CubicMegaparsec](d.volume(z, dm)),
		LookbackTime:    d.cosmo.LookbackTime(z),
	}
	if dl > 0 {
		mu := units.Of[units.Magnitude](modulus(dl))
		out.DistanceModulus = &mu
	}
	return out, nil
}
