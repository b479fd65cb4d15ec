// Package integrators provides the quadrature rules used for line-of-sight
// integrals such as ∫ dz / E(z).
//
// A [Rule] integrates a scalar [Integrand] over one panel. The drivers split
// an interval into fixed panels and sum them:
//
//   - [Integrate]: serial fixed-step sum
//   - [IntegrateParallel]: chunked sum over an errgroup, deterministic for a
//     given worker count
//   - [IntegrateAdaptive]: Dormand-Prince step-size control
//
// # Example
//
//	inv := func(z float64) float64 { return 1 / cosmo.E(z) }
//	dc := integrators.Integrate(integrators.NewMidpoint(), inv, 0, 3, integrators.DefaultStep)
//
// Rules carry no mutable state and are safe for concurrent use.
package integrators
