package integrators

import (
	"context"
	"math"
)

// RedshiftSplit is where line-of-sight integrals leave z and continue in
// u = ln(1+z). The integrands fall off as a power of 1+z there, so a step
// of h in u resolves them as well as h in z does below the split, and the
// panel count grows only with ln(1+z).
const RedshiftSplit = 100.0

// LogRedshift rewrites f(z) dz as g(u) du with z = e^u - 1.
func LogRedshift(f Integrand) Integrand {
	return func(u float64) float64 {
		z := math.Expm1(u)
		if math.IsInf(z, 1) {
			return 0
		}
		return (1 + z) * f(z)
	}
}

// IntegrateRedshift integrates f over [0, z] with panels of width h in z up
// to RedshiftSplit and of width h in ln(1+z) beyond it. The panel count is
// bounded for every finite z.
func IntegrateRedshift(rule Rule, f Integrand, z, h float64) float64 {
	if z <= RedshiftSplit {
		return Integrate(rule, f, 0, z, h)
	}
	head := Integrate(rule, f, 0, RedshiftSplit, h)
	return head + Integrate(rule, LogRedshift(f), math.Log1p(RedshiftSplit), math.Log1p(z), h)
}

// IntegrateRedshiftParallel is IntegrateRedshift with both pieces summed
// by IntegrateParallel.
func IntegrateRedshiftParallel(ctx context.Context, rule Rule, f Integrand, z, h float64, workers int) (float64, error) {
	if z <= RedshiftSplit {
		return IntegrateParallel(ctx, rule, f, 0, z, h, workers)
	}
	head, err := IntegrateParallel(ctx, rule, f, 0, RedshiftSplit, h, workers)
	if err != nil {
		return 0, err
	}
	tail, err := IntegrateParallel(ctx, rule, LogRedshift(f), math.Log1p(RedshiftSplit), math.Log1p(z), h, workers)
	if err != nil {
		return 0, err
	}
	return head + tail, nil
}
