package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cosmocalc/internal/cosmology"
)

const (
	DefaultH0         = 69.6
	DefaultMatter     = 0.286
	DefaultDarkEnergy = 0.714
	DefaultBaryon     = 0.05
	DefaultNEff       = 3.04
	DefaultRule       = "midpoint"
	DefaultStep       = 1e-4
	DefaultZMax       = 5.0
	DefaultPoints     = 51
)

type Config struct {
	Preset      string            `yaml:"preset,omitempty"`
	Cosmology   CosmologyConfig   `yaml:"cosmology"`
	Integration IntegrationConfig `yaml:"integration"`
	Grid        GridConfig        `yaml:"grid"`
}

// CosmologyConfig describes one cosmology. A zero CMB temperature means no
// radiation. Flat cosmologies derive Ω_DE0 and ignore DarkEnergy.
type CosmologyConfig struct {
	Name               string    `yaml:"name,omitempty"`
	Reference          string    `yaml:"reference,omitempty"`
	H0                 float64   `yaml:"h0"`
	Matter             float64   `yaml:"omega_m0"`
	DarkEnergy         float64   `yaml:"omega_de0"`
	Baryon             float64   `yaml:"omega_b0"`
	CMBTemperature     float64   `yaml:"tcmb0,omitempty"`
	NEff               float64   `yaml:"n_eff"`
	NeutrinoMasses     []float64 `yaml:"neutrino_masses"`
	Flat               bool      `yaml:"flat,omitempty"`
	CurvatureTolerance float64   `yaml:"curvature_tolerance,omitempty"`
}

type IntegrationConfig struct {
	Rule    string  `yaml:"rule"`
	Step    float64 `yaml:"step"`
	Workers int     `yaml:"workers"`
	Memo    bool    `yaml:"memo,omitempty"`
}

// GridConfig is the redshift grid of a survey.
type GridConfig struct {
	ZMin   float64 `yaml:"z_min"`
	ZMax   float64 `yaml:"z_max"`
	Points int     `yaml:"points"`
	Log    bool    `yaml:"log,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Cosmology: CosmologyConfig{
			Name:           "default",
			H0:             DefaultH0,
			Matter:         DefaultMatter,
			DarkEnergy:     DefaultDarkEnergy,
			Baryon:         DefaultBaryon,
			NEff:           DefaultNEff,
			NeutrinoMasses: []float64{0, 0, 0},
		},
		Integration: IntegrationConfig{
			Rule:    DefaultRule,
			Step:    DefaultStep,
			Workers: 1,
		},
		Grid: GridConfig{
			ZMax:   DefaultZMax,
			Points: DefaultPoints,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Preset != "" {
		preset := GetPreset(cfg.Preset)
		if preset == nil {
			return nil, fmt.Errorf("%s: unknown preset %q", path, cfg.Preset)
		}
		cfg.Cosmology = *preset
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SetNEff updates N_eff and resizes the mass list to floor(n), keeping
// existing masses and padding with massless species.
func (c *CosmologyConfig) SetNEff(n float64) {
	c.NEff = n
	want := 0
	if n > 0 {
		want = int(math.Floor(n))
	}
	masses := make([]float64, want)
	copy(masses, c.NeutrinoMasses)
	c.NeutrinoMasses = masses
}

// Build constructs the cosmology this config describes.
func (c CosmologyConfig) Build() (*cosmology.FLRW, error) {
	opts := []cosmology.Option{
		cosmology.WithName(c.Name),
		cosmology.WithReference(c.Reference),
		cosmology.WithNeutrinos(c.NEff, c.NeutrinoMasses...),
	}
	if c.CMBTemperature > 0 {
		opts = append(opts, cosmology.WithCMBTemperature(c.CMBTemperature))
	}
	if c.CurvatureTolerance != 0 {
		opts = append(opts, cosmology.WithCurvatureTolerance(c.CurvatureTolerance))
	}

	if c.Flat {
		return cosmology.NewFlat(c.H0, c.Matter, c.Baryon, opts...)
	}
	omega, err := cosmology.NewOmegaFactors(c.Matter, c.DarkEnergy, c.Baryon)
	if err != nil {
		return nil, err
	}
	return cosmology.New(c.H0, omega, opts...)
}

func (c CosmologyConfig) clone() CosmologyConfig {
	c.NeutrinoMasses = append([]float64(nil), c.NeutrinoMasses...)
	return c
}
