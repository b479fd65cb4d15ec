package experiment

import (
	"context"
	"time"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/integrators"
	"github.com/san-kum/cosmocalc/internal/metrics"
)

// ReferenceTolerance is the adaptive tolerance of the reference integral.
const ReferenceTolerance = 1e-12

// Comparison scores one rule's radial comoving distances against the
// adaptive reference.
type Comparison struct {
	Rule    string
	Metrics map[string]float64
	Elapsed time.Duration
}

// Reference is D_C from the adaptive Dormand-Prince integrator.
func Reference(c *cosmology.FLRW, z cosmology.Redshift) (float64, error) {
	integral, err := integrators.IntegrateAdaptive(c.InverseE, 0, z.Float(), ReferenceTolerance)
	if err != nil {
		return 0, err
	}
	return c.HubbleDistance().Value() * integral, nil
}

// Compare evaluates each named rule over zs with step h.
func (r *Registry) Compare(ctx context.Context, c *cosmology.FLRW, rules []string, h float64, zs []cosmology.Redshift) ([]Comparison, error) {
	want := make([]float64, len(zs))
	for i, z := range zs {
		ref, err := Reference(c, z)
		if err != nil {
			return nil, err
		}
		want[i] = ref
	}
	floats := Floats(zs)

	out := make([]Comparison, 0, len(rules))
	for _, name := range rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rule, err := r.GetIntegrator(name)
		if err != nil {
			return nil, err
		}
		calc := distance.New(c, distance.WithRule(rule), distance.WithStep(h))

		start := time.Now()
		got := make([]float64, len(zs))
		for i, z := range zs {
			dc, err := calc.RadialComovingContext(ctx, z)
			if err != nil {
				return nil, err
			}
			got[i] = dc.Value()
		}

		out = append(out, Comparison{
			Rule:    name,
			Metrics: metrics.Evaluate(metrics.Standard(), floats, got, want),
			Elapsed: time.Since(start),
		})
	}
	return out, nil
}
