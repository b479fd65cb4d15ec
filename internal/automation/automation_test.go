package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/experiment"
)

const scenarioYAML = `
name: rules
description: midpoint against rk4 on two presets
steps:
  - name: planck
    preset: planck18
    grid: {z_min: 0, z_max: 2, points: 5}
    save: true
  - preset: concordance
    integration: {rule: rk4, step: 0.001, workers: 2}
    grid: {z_min: 0, z_max: 1, points: 3}
`

type memSaver struct {
	saved []*experiment.Result
}

func (m *memSaver) Save(r *experiment.Result) (string, error) {
	m.saved = append(m.saved, r)
	return "run-1", nil
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScenario(t *testing.T) {
	scenario, err := LoadScenario(writeScenario(t, scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	if scenario.Name != "rules" || len(scenario.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", scenario)
	}

	saver := &memSaver{}
	outcomes, err := RunScenario(context.Background(), scenario, saver, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(outcomes))
	}

	if outcomes[0].RunID != "run-1" || len(saver.saved) != 1 {
		t.Errorf("only the first step should be saved: %+v", outcomes[0])
	}
	if outcomes[1].Step != "step-2" || outcomes[1].RunID != "" {
		t.Errorf("unexpected second outcome %+v", outcomes[1])
	}
	if outcomes[1].Result.Rule != "rk4" || len(outcomes[1].Result.Rows) != 3 {
		t.Errorf("integration override not applied: rule=%s rows=%d", outcomes[1].Result.Rule, len(outcomes[1].Result.Rows))
	}
	if outcomes[0].Result.Cosmology.Name() != "planck18" {
		t.Errorf("expected planck18, got %s", outcomes[0].Result.Cosmology.Name())
	}
}

func TestRunScenarioErrors(t *testing.T) {
	scenario, _ := LoadScenario(writeScenario(t, scenarioYAML))
	if _, err := RunScenario(context.Background(), scenario, nil, nil); !errors.Is(err, ErrNoSaver) {
		t.Errorf("expected ErrNoSaver, got %v", err)
	}

	bad := &Scenario{Steps: []ScenarioStep{{Preset: "nowhere"}}}
	if _, err := RunScenario(context.Background(), bad, nil, nil); !errors.Is(err, experiment.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	bad = &Scenario{Steps: []ScenarioStep{{Grid: &config.GridConfig{Points: 0}}}}
	if _, err := RunScenario(context.Background(), bad, nil, nil); !errors.Is(err, experiment.ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing scenario")
	}
}

func TestRunSweep(t *testing.T) {
	sweep := &ParameterSweep{
		Base:     *config.GetPreset("concordance"),
		Param:    "h0",
		Min:      60,
		Max:      80,
		Steps:    3,
		Redshift: 1,
		Quantity: "dl_mpc",
	}

	results, err := RunSweep(context.Background(), sweep)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 || results[2].ParamValue != 80 {
		t.Fatalf("unexpected results %+v", results)
	}

	// D_L scales as 1/H0 at fixed densities.
	ratio := results[0].Value / results[2].Value
	if ratio < 80.0/60-1e-9 || ratio > 80.0/60+1e-9 {
		t.Errorf("expected D_L ratio 4/3, got %g", ratio)
	}
}

func TestRunSweepErrors(t *testing.T) {
	base := *config.GetPreset("concordance")

	tests := []struct {
		name  string
		sweep ParameterSweep
		is    error
	}{
		{"unknown param", ParameterSweep{Base: base, Param: "sigma8", Min: 0, Max: 1, Steps: 2, Quantity: "dl_mpc"}, nil},
		{"unknown quantity", ParameterSweep{Base: base, Param: "h0", Min: 60, Max: 70, Steps: 2, Quantity: "dx"}, nil},
		{"too few steps", ParameterSweep{Base: base, Param: "h0", Min: 60, Max: 70, Steps: 1, Quantity: "dl_mpc"}, nil},
		{"negative z", ParameterSweep{Base: base, Param: "h0", Min: 60, Max: 70, Steps: 2, Redshift: -1, Quantity: "dl_mpc"}, cosmology.ErrNegativeRedshift},
		{"baryons above matter", ParameterSweep{Base: base, Param: "omega_b0", Min: 0.1, Max: 0.5, Steps: 2, Redshift: 1, Quantity: "dl_mpc"}, cosmology.ErrInvalidCosmology},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RunSweep(context.Background(), &tt.sweep)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("expected %v, got %v", tt.is, err)
			}
		})
	}
}

func TestSweepDoesNotMutateBase(t *testing.T) {
	base := *config.GetPreset("planck18")
	sweep := &ParameterSweep{Base: base, Param: "n_eff", Min: 3.046, Max: 4.2, Steps: 2, Redshift: 1, Quantity: "dc_mpc"}

	if _, err := RunSweep(context.Background(), sweep); err != nil {
		t.Fatal(err)
	}
	if len(sweep.Base.NeutrinoMasses) != 3 || sweep.Base.NEff != 3.046 {
		t.Errorf("base cosmology mutated: %+v", sweep.Base)
	}
}
