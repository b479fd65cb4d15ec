package cosmology

import "errors"

// Construction errors. Any of these means no cosmology was built.
var (
	// ErrInvalidCosmology indicates inconsistent density parameters, e.g. a
	// baryon fraction above the matter fraction.
	ErrInvalidCosmology = errors.New("cosmology: invalid cosmology")

	// ErrNeutrinoCountMismatch indicates floor(N_eff) differs from the number
	// of neutrino masses.
	ErrNeutrinoCountMismatch = errors.New("cosmology: N_eff does not match neutrino mass count")

	// ErrNegativeRedshift indicates a negative, NaN or infinite redshift.
	ErrNegativeRedshift = errors.New("cosmology: redshift must be a finite non-negative number")
)
