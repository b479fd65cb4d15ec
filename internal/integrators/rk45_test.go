package integrators

import (
	"errors"
	"math"
	"testing"
)

func TestIntegrateAdaptive(t *testing.T) {
	f := func(x float64) float64 { return 1 / ((1 + x) * (1 + x)) }

	got, err := IntegrateAdaptive(f, 0, 3, 1e-10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.75) > 1e-8 {
		t.Errorf("expected 0.75, got %.12f", got)
	}
}

func TestIntegrateAdaptive_InvalidTolerance(t *testing.T) {
	_, err := IntegrateAdaptive(math.Sin, 0, 1, 0)
	if !errors.Is(err, ErrInvalidTolerance) {
		t.Errorf("expected ErrInvalidTolerance, got %v", err)
	}
}

func TestIntegrateAdaptive_EmptyInterval(t *testing.T) {
	got, err := IntegrateAdaptive(math.Sin, 1, 1, 1e-8)
	if err != nil || got != 0 {
		t.Errorf("expected 0, nil; got %f, %v", got, err)
	}
}

func TestRK45_StepAdaptiveRejects(t *testing.T) {
	r := NewRK45()
	f := func(x float64) float64 { return math.Exp(20 * x) }

	_, hNext, ratio := r.StepAdaptive(f, 0, 1, 0, 1e-10)
	if ratio <= 1 {
		t.Errorf("expected rejection, ratio %f", ratio)
	}
	if hNext >= 1 {
		t.Errorf("step should shrink, got %f", hNext)
	}
}

func TestRK45_StepAdaptiveGrows(t *testing.T) {
	r := NewRK45()
	f := func(x float64) float64 { return x * x }

	dy, hNext, ratio := r.StepAdaptive(f, 0, 0.1, 0, 1e-8)
	if ratio > 1 {
		t.Errorf("cubic integral should be accepted, ratio %f", ratio)
	}
	if hNext <= 0.1 {
		t.Errorf("step should grow, got %f", hNext)
	}
	if math.Abs(dy-0.001/3) > 1e-15 {
		t.Errorf("expected %e, got %e", 0.001/3, dy)
	}
}
