package metrics

import "math"

// Metric accumulates a figure of merit from (z, got, want) samples, where
// want is a trusted reference value.
type Metric interface {
	Name() string
	Observe(z, got, want float64)
	Value() float64
	Reset()
}

// Standard returns the metrics reported when comparing quadrature rules.
func Standard() []Metric {
	return []Metric{
		NewMaxRelativeError(),
		NewRelativeError(),
		NewAbsoluteError(),
		NewMonotonicity(),
	}
}

// Evaluate feeds every sample to each metric and returns the values by name.
// Samples beyond the shorter of got and want are ignored.
func Evaluate(ms []Metric, zs, got, want []float64) map[string]float64 {
	n := min(len(zs), len(got), len(want))
	for _, m := range ms {
		m.Reset()
		for i := 0; i < n; i++ {
			m.Observe(zs[i], got[i], want[i])
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Relative is |got-want|/|want|, or |got| when want is zero.
func Relative(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
