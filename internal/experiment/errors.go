package experiment

import "errors"

var (
	ErrUnknownIntegrator = errors.New("experiment: unknown integrator")
	ErrUnknownPreset     = errors.New("experiment: unknown preset")

	// ErrInvalidGrid indicates a redshift grid with no points, a negative
	// lower bound or an upper bound below the lower one.
	ErrInvalidGrid = errors.New("experiment: invalid redshift grid")
)
