package cosmology

import (
	"fmt"
	"math"
	"strconv"
)

// Redshift is a validated, non-negative redshift. The zero value is z = 0.
type Redshift struct {
	z float64
}

func NewRedshift(z float64) (Redshift, error) {
	if z < 0 || math.IsNaN(z) || math.IsInf(z, 0) {
		return Redshift{}, fmt.Errorf("%w: %g", ErrNegativeRedshift, z)
	}
	return Redshift{z: z}, nil
}

// MustRedshift panics on invalid input. Use it for literals.
func MustRedshift(z float64) Redshift {
	r, err := NewRedshift(z)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Redshift) Float() float64 { return r.z }

// OnePlus returns 1+z.
func (r Redshift) OnePlus() float64 { return 1 + r.z }

func (r Redshift) IsZero() bool { return r.z == 0 }

func (r Redshift) String() string {
	return "z=" + strconv.FormatFloat(r.z, 'g', -1, 64)
}
