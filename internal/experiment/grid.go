package experiment

import (
	"fmt"
	"math"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
)

// Grid expands a grid config into redshifts. Log grids are evenly spaced in
// ln(1+z), so they may start at z = 0. The endpoints are exact.
func Grid(g config.GridConfig) ([]cosmology.Redshift, error) {
	switch {
	case g.Points < 1:
		return nil, fmt.Errorf("%w: %d points", ErrInvalidGrid, g.Points)
	case !(g.ZMin >= 0) || math.IsInf(g.ZMax, 0):
		return nil, fmt.Errorf("%w: z range [%g, %g]", ErrInvalidGrid, g.ZMin, g.ZMax)
	case !(g.ZMax >= g.ZMin):
		return nil, fmt.Errorf("%w: z_max %g below z_min %g", ErrInvalidGrid, g.ZMax, g.ZMin)
	case g.Points > 1 && g.ZMax == g.ZMin:
		return nil, fmt.Errorf("%w: %d points on an empty range", ErrInvalidGrid, g.Points)
	}

	if g.Points == 1 {
		return []cosmology.Redshift{cosmology.MustRedshift(g.ZMin)}, nil
	}

	zs := make([]cosmology.Redshift, g.Points)
	last := float64(g.Points - 1)
	lo, hi := math.Log1p(g.ZMin), math.Log1p(g.ZMax)
	for i := range zs {
		frac := float64(i) / last
		var z float64
		switch {
		case i == 0:
			z = g.ZMin
		case i == g.Points-1:
			z = g.ZMax
		case g.Log:
			z = math.Expm1(lo + frac*(hi-lo))
		default:
			z = g.ZMin + frac*(g.ZMax-g.ZMin)
		}
		zs[i] = cosmology.MustRedshift(math.Max(z, 0))
	}
	return zs, nil
}

// Floats returns the plain redshift values.
func Floats(zs []cosmology.Redshift) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = z.Float()
	}
	return out
}
