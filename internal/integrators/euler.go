package integrators

// Euler is the left Riemann sum: first order, one evaluation per panel.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "euler" }

func (e *Euler) Step(f Integrand, a, h float64) float64 {
	return h * f(a)
}
