package metrics

import (
	"math"
	"testing"
)

func TestRelative(t *testing.T) {
	tests := []struct {
		got, want, expected float64
	}{
		{101, 100, 0.01},
		{99, 100, 0.01},
		{-2, -4, 0.5},
		{0.5, 0, 0.5},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if r := Relative(tt.got, tt.want); math.Abs(r-tt.expected) > 1e-12 {
			t.Errorf("Relative(%g, %g) = %g, want %g", tt.got, tt.want, r, tt.expected)
		}
	}
}

func TestRelativeErrorMean(t *testing.T) {
	m := NewRelativeError()
	m.Observe(1, 101, 100)
	m.Observe(2, 97, 100)

	if math.Abs(m.Value()-0.02) > 1e-12 {
		t.Errorf("expected mean 0.02, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMaxRelativeError(t *testing.T) {
	m := NewMaxRelativeError()
	m.Observe(0.5, 100.1, 100)
	m.Observe(1.5, 105, 100)
	m.Observe(2.5, 100.2, 100)

	if math.Abs(m.Value()-0.05) > 1e-12 {
		t.Errorf("expected max 0.05, got %g", m.Value())
	}
	if m.At() != 1.5 {
		t.Errorf("expected worst sample at z=1.5, got %g", m.At())
	}
}

func TestAbsoluteError(t *testing.T) {
	m := NewAbsoluteError()
	m.Observe(1, 10, 12)
	m.Observe(2, 14, 12)

	if m.Value() != 2 {
		t.Errorf("expected 2, got %g", m.Value())
	}
}

func TestMonotonicity(t *testing.T) {
	m := NewMonotonicity()
	if m.Value() != 1 {
		t.Error("empty series should count as monotonic")
	}

	for i, v := range []float64{0, 1, 2, 1.5, 3} {
		m.Observe(float64(i), v, 0)
	}
	if math.Abs(m.Value()-0.8) > 1e-12 {
		t.Errorf("expected 0.8, got %g", m.Value())
	}
}

func TestEvaluate(t *testing.T) {
	zs := []float64{0, 1, 2}
	got := []float64{0, 10.1, 20}
	want := []float64{0, 10, 20, 30}

	vals := Evaluate(Standard(), zs, got, want)

	if len(vals) != 4 {
		t.Fatalf("expected 4 metrics, got %d", len(vals))
	}
	if math.Abs(vals["max_rel_error"]-0.01) > 1e-12 {
		t.Errorf("unexpected max_rel_error %g", vals["max_rel_error"])
	}
	if vals["monotonic"] != 1 {
		t.Errorf("unexpected monotonic %g", vals["monotonic"])
	}

	again := Evaluate(Standard(), zs, got, want)
	if again["mean_abs_error"] != vals["mean_abs_error"] {
		t.Error("Evaluate should reset metrics before observing")
	}
}
