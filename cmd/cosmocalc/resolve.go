package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/experiment"
)

// resolveConfig layers the config file, the preset and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s (available: %s)", experiment.ErrUnknownPreset, preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg.Preset = preset
		cfg.Cosmology = *p
	}

	flags := cmd.Flags()
	custom := false
	if flags.Changed("h0") {
		cfg.Cosmology.H0, custom = h0, true
	}
	if flags.Changed("om") {
		cfg.Cosmology.Matter, custom = omegaM, true
	}
	if flags.Changed("ode") {
		cfg.Cosmology.DarkEnergy, custom = omegaDE, true
		cfg.Cosmology.Flat = false
	}
	if flags.Changed("ob") {
		cfg.Cosmology.Baryon, custom = omegaB, true
	}
	if flags.Changed("tcmb") {
		cfg.Cosmology.CMBTemperature, custom = tcmb, true
	}
	if flags.Changed("neff") {
		cfg.Cosmology.SetNEff(nEff)
		custom = true
	}
	if custom {
		cfg.Cosmology.Name = "custom"
		cfg.Cosmology.Reference = ""
	}

	if flags.Changed("rule") {
		cfg.Integration.Rule = rule
	}
	if flags.Changed("step") {
		cfg.Integration.Step = step
	}
	if flags.Changed("workers") {
		cfg.Integration.Workers = workers
	}
	if flags.Changed("z-min") {
		cfg.Grid.ZMin = zMin
	}
	if flags.Changed("z-max") {
		cfg.Grid.ZMax = zMax
	}
	if flags.Changed("points") {
		cfg.Grid.Points = points
	}
	if flags.Changed("log") {
		cfg.Grid.Log = logGrid
	}
	return cfg, nil
}

// resolveCalculator builds the distance engine the flags describe.
func resolveCalculator(cmd *cobra.Command) (*distance.Calculator, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	cosmo, err := cfg.Cosmology.Build()
	if err != nil {
		return nil, nil, err
	}
	r, err := experiment.NewRegistry().GetIntegrator(cfg.Integration.Rule)
	if err != nil {
		return nil, nil, err
	}

	opts := []distance.Option{
		distance.WithRule(r),
		distance.WithStep(cfg.Integration.Step),
		distance.WithWorkers(cfg.Integration.Workers),
	}
	if cfg.Integration.Memo {
		opts = append(opts, distance.WithMemo())
	}
	return distance.New(cosmo, opts...), cfg, nil
}

func parseRedshifts(args []string) ([]cosmology.Redshift, error) {
	zs := make([]cosmology.Redshift, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid redshift %q", arg)
		}
		z, err := cosmology.NewRedshift(v)
		if err != nil {
			return nil, err
		}
		zs = append(zs, z)
	}
	return zs, nil
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&zMin, "z-min", 0, "first redshift of the grid")
	cmd.Flags().Float64Var(&zMax, "z-max", config.DefaultZMax, "last redshift of the grid")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "number of grid points")
	cmd.Flags().BoolVar(&logGrid, "log", false, "space the grid evenly in ln(1+z)")
}
