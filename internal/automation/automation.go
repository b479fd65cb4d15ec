package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/experiment"
	"github.com/san-kum/cosmocalc/internal/logger"
)

var ErrNoSaver = errors.New("automation: step asks to save but no store was given")

// Scenario is a scripted sequence of surveys.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one survey. Sections left out keep their defaults; an
// explicit cosmology section replaces the preset.
type ScenarioStep struct {
	Name        string                    `yaml:"name"`
	Preset      string                    `yaml:"preset"`
	Cosmology   *config.CosmologyConfig   `yaml:"cosmology"`
	Integration *config.IntegrationConfig `yaml:"integration"`
	Grid        *config.GridConfig        `yaml:"grid"`
	Save        bool                      `yaml:"save"`
}

// Saver persists a survey result and returns its run ID.
type Saver interface {
	Save(result *experiment.Result) (string, error)
}

// Outcome is the result of one scenario step.
type Outcome struct {
	Step   string
	RunID  string
	Result *experiment.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config resolves the step against the defaults.
func (s ScenarioStep) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", experiment.ErrUnknownPreset, s.Preset)
		}
		cfg.Preset = s.Preset
		cfg.Cosmology = *p
	}
	if s.Cosmology != nil {
		cfg.Cosmology = *s.Cosmology
	}
	if s.Integration != nil {
		cfg.Integration = *s.Integration
	}
	if s.Grid != nil {
		cfg.Grid = *s.Grid
	}
	return cfg, nil
}

// RunScenario executes all steps in order, stopping at the first failure.
// Outcomes of the steps that completed are returned alongside the error.
func RunScenario(ctx context.Context, scenario *Scenario, saver Saver, log *logger.Logger) ([]Outcome, error) {
	log = logger.OrNop(log)
	outcomes := make([]Outcome, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i+1)
		}
		log.Info("scenario step", "scenario", scenario.Name, "step", name, "index", i+1, "of", len(scenario.Steps))

		if step.Save && saver == nil {
			return outcomes, fmt.Errorf("step %d: %w", i+1, ErrNoSaver)
		}

		cfg, err := step.Config()
		if err != nil {
			return outcomes, fmt.Errorf("step %d: %w", i+1, err)
		}

		exp := experiment.New(cfg, log)
		if err := exp.Setup(); err != nil {
			return outcomes, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return outcomes, fmt.Errorf("step %d run: %w", i+1, err)
		}

		out := Outcome{Step: name, Result: result}
		if step.Save {
			if out.RunID, err = saver.Save(result); err != nil {
				return outcomes, fmt.Errorf("step %d save: %w", i+1, err)
			}
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}
