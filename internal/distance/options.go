package distance

import "github.com/san-kum/cosmocalc/internal/integrators"

type Option func(*Calculator)

// WithRule selects the quadrature rule. The default is the midpoint rule.
func WithRule(rule integrators.Rule) Option {
	return func(d *Calculator) {
		if rule != nil {
			d.rule = rule
		}
	}
}

// WithStep overrides the redshift step of the line-of-sight integral.
// Non-positive values keep integrators.DefaultStep.
func WithStep(dz float64) Option {
	return func(d *Calculator) {
		if dz > 0 {
			d.step = dz
		}
	}
}

// WithWorkers sums the integral on up to n goroutines.
func WithWorkers(n int) Option {
	return func(d *Calculator) {
		if n > 1 {
			d.workers = n
		}
	}
}

// WithMemo caches the radial comoving distances of the DefaultMemoSize most
// recently used redshifts.
func WithMemo() Option {
	return WithMemoSize(DefaultMemoSize)
}

// WithMemoSize is WithMemo with a capacity of n redshifts. Non-positive n
// selects DefaultMemoSize.
func WithMemoSize(n int) Option {
	return func(d *Calculator) {
		d.memo = newMemo(n)
	}
}
