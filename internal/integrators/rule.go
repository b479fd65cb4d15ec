package integrators

import (
	"errors"
	"math"
)

// DefaultStep is the fixed redshift step used for line-of-sight integrals.
const DefaultStep = 1e-4

// MaxPanels bounds every fixed-step sum. Intervals longer than
// MaxPanels*h are covered with wider panels.
const MaxPanels = 1 << 24

var (
	// ErrStepTooSmall indicates the adaptive step collapsed below minStep.
	ErrStepTooSmall = errors.New("integrators: adaptive step below minimum")

	// ErrInvalidTolerance indicates a non-positive adaptive tolerance.
	ErrInvalidTolerance = errors.New("integrators: tolerance must be positive")
)

// Integrand is a scalar function of the integration variable.
type Integrand func(x float64) float64

// Rule integrates f over the single panel [a, a+h].
type Rule interface {
	Name() string
	Step(f Integrand, a, h float64) float64
}

// Steps returns the panel count and the panel width that exactly cover
// [a, b] with panels no wider than h, up to rounding, and never more than
// MaxPanels of them. A non-positive h selects DefaultStep. An empty or
// reversed interval yields zero panels.
func Steps(a, b, h float64) (int, float64) {
	if !(b > a) {
		return 0, 0
	}
	if !(h > 0) {
		h = DefaultStep
	}
	// The relative shave absorbs representation error in (b-a)/h, so z=3
	// with h=1e-4 gives 30000 panels rather than 30001.
	panels := math.Ceil((b - a) / h * (1 - 1e-12))
	var n int
	switch {
	case !(panels < MaxPanels):
		n = MaxPanels
	case panels < 1:
		n = 1
	default:
		n = int(panels)
	}
	return n, (b - a) / float64(n)
}

// Integrate sums rule over [a, b] in fixed panels of width at most h.
func Integrate(rule Rule, f Integrand, a, b, h float64) float64 {
	n, step := Steps(a, b, h)
	return sumPanels(rule, f, a, step, 0, n)
}

func sumPanels(rule Rule, f Integrand, a, step float64, start, end int) float64 {
	sum := 0.0
	for i := start; i < end; i++ {
		sum += rule.Step(f, a+float64(i)*step, step)
	}
	return sum
}
