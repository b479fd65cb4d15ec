package metrics

import "math"

// AbsoluteError is the mean |got-want| in the units of the samples.
type AbsoluteError struct {
	name    string
	sum     float64
	samples int
}

func NewAbsoluteError() *AbsoluteError {
	return &AbsoluteError{name: "mean_abs_error"}
}

func (a *AbsoluteError) Name() string {
	return a.name
}

func (a *AbsoluteError) Observe(z, got, want float64) {
	a.sum += math.Abs(got - want)
	a.samples++
}

func (a *AbsoluteError) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *AbsoluteError) Reset() {
	a.sum = 0
	a.samples = 0
}
