package integrators

import (
	"math"
	"testing"
)

func TestSteps(t *testing.T) {
	tests := []struct {
		name     string
		a, b, h  float64
		wantN    int
		wantStep float64
	}{
		{"exact multiple", 0, 3, 1e-4, 30000, 1e-4},
		{"rounds up", 0, 0.00015, 1e-4, 2, 0.000075},
		{"default step", 0, 1, 0, 10000, 1e-4},
		{"empty", 2, 2, 1e-4, 0, 0},
		{"reversed", 1, 0, 1e-4, 0, 0},
		{"shorter than one step", 0, 1e-6, 1e-4, 1, 1e-6},
		{"keeps a small partial panel", 0, 1e-4 * (1 + 1e-10), 1e-4, 2, 1e-4 * (1 + 1e-10) / 2},
		{"capped", 0, 1e15, 1e-4, MaxPanels, 1e15 / MaxPanels},
		{"beyond int range", 0, 1e300, 1e-4, MaxPanels, 1e300 / MaxPanels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, step := Steps(tt.a, tt.b, tt.h)
			if n != tt.wantN {
				t.Errorf("expected %d panels, got %d", tt.wantN, n)
			}
			if math.Abs(step-tt.wantStep) > 1e-15*math.Max(1, tt.wantStep) {
				t.Errorf("expected step %g, got %g", tt.wantStep, step)
			}
		})
	}
}

func TestRuleExactness(t *testing.T) {
	tests := []struct {
		rule Rule
		f    Integrand
		want float64
	}{
		{NewEuler(), func(x float64) float64 { return 3 }, 3},
		{NewMidpoint(), func(x float64) float64 { return 2*x + 1 }, 2},
		{NewRK4(), func(x float64) float64 { return 4 * x * x * x }, 1},
		{NewRK45(), func(x float64) float64 { return 5 * x * x * x * x }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.rule.Name(), func(t *testing.T) {
			got := tt.rule.Step(tt.f, 0, 1)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("single panel: expected %f, got %.15f", tt.want, got)
			}
		})
	}
}

func TestIntegrateSine(t *testing.T) {
	tests := []struct {
		rule Rule
		tol  float64
	}{
		{NewEuler(), 1e-3},
		{NewMidpoint(), 1e-6},
		{NewRK4(), 1e-10},
		{NewRK45(), 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.rule.Name(), func(t *testing.T) {
			got := Integrate(tt.rule, math.Sin, 0, math.Pi, 1e-3)
			if math.Abs(got-2) > tt.tol {
				t.Errorf("expected 2, got %.12f", got)
			}
		})
	}
}

func TestEulerIsLeftRiemann(t *testing.T) {
	got := Integrate(NewEuler(), func(x float64) float64 { return x }, 0, 1, 0.1)
	if math.Abs(got-0.45) > 1e-12 {
		t.Errorf("expected left sum 0.45, got %f", got)
	}
}

func TestIntegrateEmptyInterval(t *testing.T) {
	calls := 0
	f := func(x float64) float64 {
		calls++
		return 1
	}
	if got := Integrate(NewMidpoint(), f, 0, 0, DefaultStep); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
	if calls != 0 {
		t.Errorf("integrand should not be evaluated, got %d calls", calls)
	}
}
