package integrators

// Midpoint evaluates f at the panel centre. Second order with a single
// evaluation per panel; this is the default rule for distances.
type Midpoint struct{}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (m *Midpoint) Name() string { return "midpoint" }

func (m *Midpoint) Step(f Integrand, a, h float64) float64 {
	return h * f(a+0.5*h)
}
