package automation

import (
	"context"
	"fmt"
	"slices"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/experiment"
)

// SweepParams are the cosmology parameters a sweep can vary.
var SweepParams = []string{"h0", "omega_m0", "omega_de0", "omega_b0", "tcmb0", "n_eff"}

// ParameterSweep varies one cosmology parameter and records one survey
// column at a fixed redshift.
type ParameterSweep struct {
	Base     config.CosmologyConfig
	Param    string
	Min      float64
	Max      float64
	Steps    int
	Redshift float64
	Quantity string
}

type SweepResult struct {
	ParamValue float64
	Value      float64
}

func setParam(c *config.CosmologyConfig, name string, v float64) error {
	switch name {
	case "h0":
		c.H0 = v
	case "omega_m0":
		c.Matter = v
	case "omega_de0":
		c.DarkEnergy = v
		c.Flat = false
	case "omega_b0":
		c.Baryon = v
	case "tcmb0":
		c.CMBTemperature = v
	case "n_eff":
		c.SetNEff(v)
	default:
		return fmt.Errorf("unknown sweep parameter %q (have %v)", name, SweepParams)
	}
	return nil
}

// RunSweep evaluates the sweep serially. A parameter value that yields an
// invalid cosmology aborts the sweep.
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	if sweep.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.Steps)
	}
	idx := slices.Index(experiment.Columns, sweep.Quantity)
	if idx < 0 {
		return nil, fmt.Errorf("unknown quantity %q", sweep.Quantity)
	}
	z, err := cosmology.NewRedshift(sweep.Redshift)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, 0, sweep.Steps)
	paramStep := (sweep.Max - sweep.Min) / float64(sweep.Steps-1)

	for i := 0; i < sweep.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		paramVal := sweep.Min + float64(i)*paramStep
		cfg := sweep.Base
		cfg.NeutrinoMasses = slices.Clone(sweep.Base.NeutrinoMasses)
		if err := setParam(&cfg, sweep.Param, paramVal); err != nil {
			return nil, err
		}

		c, err := cfg.Build()
		if err != nil {
			return results, fmt.Errorf("%s=%g: %w", sweep.Param, paramVal, err)
		}

		row, err := experiment.NewSurvey(distance.New(c), 1, nil).Evaluate(ctx, z)
		if err != nil {
			return results, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Value:      row.Values()[idx],
		})
	}

	return results, nil
}
