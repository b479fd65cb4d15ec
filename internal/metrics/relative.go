package metrics

import "math"

type RelativeError struct {
	name    string
	sum     float64
	samples int
}

func NewRelativeError() *RelativeError {
	return &RelativeError{name: "mean_rel_error"}
}

func (e *RelativeError) Name() string { return e.name }

func (e *RelativeError) Observe(z, got, want float64) {
	e.sum += Relative(got, want)
	e.samples++
}

func (e *RelativeError) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *RelativeError) Reset() {
	e.sum = 0
	e.samples = 0
}

// MaxRelativeError tracks the worst relative deviation and where it occurred.
type MaxRelativeError struct {
	name   string
	maxRel float64
	atZ    float64
}

func NewMaxRelativeError() *MaxRelativeError {
	return &MaxRelativeError{name: "max_rel_error"}
}

func (e *MaxRelativeError) Name() string { return e.name }

func (e *MaxRelativeError) Observe(z, got, want float64) {
	rel := Relative(got, want)
	if rel > e.maxRel || math.IsNaN(rel) {
		e.maxRel = rel
		e.atZ = z
	}
}

func (e *MaxRelativeError) Value() float64 { return e.maxRel }

// At is the redshift of the worst sample.
func (e *MaxRelativeError) At() float64 { return e.atZ }

func (e *MaxRelativeError) Reset() {
	e.maxRel = 0
	e.atZ = 0
}
