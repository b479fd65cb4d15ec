package cosmology

import (
	"github.com/san-kum/cosmocalc/internal/constants"
	"github.com/san-kum/cosmocalc/internal/integrators"
	"github.com/san-kum/cosmocalc/internal/units"
)

// LookbackTime is t_H ∫_0^z dz' / ((1+z') E(z')) in Gyr, summed with the
// midpoint rule at integrators.DefaultStep (in ln(1+z) past
// integrators.RedshiftSplit).
func (c *FLRW) LookbackTime(z Redshift) units.NonNegative[units.Gigayear] {
	integrand := func(x float64) float64 {
		return c.InverseE(x) / (1 + x)
	}
	i := integrators.IntegrateRedshift(integrators.NewMidpoint(), integrand, z.Float(), integrators.DefaultStep)
	return units.MustNonNegative[units.Gigayear](c.HubbleTimeGyr().Value() * i)
}

// LookbackDistance is the lookback time multiplied by c, in Mpc.
func (c *FLRW) LookbackDistance(z Redshift) units.NonNegative[units.Megaparsec] {
	seconds := units.GigayearsToSeconds(c.LookbackTime(z).Quantity())
	meters := units.Of[units.Meter](seconds.Value() * constants.C.Value())
	return units.MustNonNegative[units.Megaparsec](units.MetersToMpc(meters).Value())
}
