package metrics

// Monotonicity is the fraction of samples that did not decrease relative to
// the previous one. Distances along an increasing redshift grid score 1.
type Monotonicity struct {
	name       string
	prev       float64
	violations int
	samples    int
}

func NewMonotonicity() *Monotonicity {
	return &Monotonicity{
		name: "monotonic",
	}
}

func (m *Monotonicity) Name() string {
	return m.name
}

func (m *Monotonicity) Observe(z, got, want float64) {
	if m.samples > 0 && got < m.prev {
		m.violations++
	}
	m.prev = got
	m.samples++
}

func (m *Monotonicity) Value() float64 {
	if m.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(m.violations)/float64(m.samples)
}

func (m *Monotonicity) Reset() {
	m.prev = 0
	m.violations = 0
	m.samples = 0
}
