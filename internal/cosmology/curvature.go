package cosmology

import "math"

// Curvature is the sign class of the spatial curvature.
type Curvature int

const (
	Flat Curvature = iota
	// Open is Ω_k > 0, negative spatial curvature.
	Open
	// Closed is Ω_k < 0, positive spatial curvature.
	Closed
)

func (k Curvature) String() string {
	switch k {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "flat"
	}
}

// CurvatureTolerance is the band around zero treated as flat. Zero means
// exact comparison.
func (c *FLRW) CurvatureTolerance() float64 { return c.tol }

// Classify maps a curvature density to its sign class under this
// cosmology's tolerance. With the default tolerance only an exact 0 is flat.
func (c *FLRW) Classify(omegaK float64) Curvature {
	switch {
	case c.nearZero(omegaK):
		return Flat
	case omegaK > 0:
		return Open
	default:
		return Closed
	}
}

// Curvature classifies Ω_k0.
func (c *FLRW) Curvature() Curvature {
	return c.Classify(c.omegaK0.Value())
}

// IsFlat reports Ω_k0 == 0 and Ω_tot0 == 1. Both comparisons are exact
// unless a curvature tolerance was configured, so a parameter mix that
// cancels only approximately is reported as curved.
func (c *FLRW) IsFlat() bool {
	return c.nearZero(c.omegaK0.Value()) && c.nearZero(c.OmegaTot0().Value()-1)
}

func (c *FLRW) nearZero(v float64) bool {
	if c.tol == 0 {
		return v == 0
	}
	return math.Abs(v) <= c.tol
}
