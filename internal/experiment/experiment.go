package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/logger"
)

// Result is one completed survey.
type Result struct {
	Cosmology *cosmology.FLRW
	Rule      string
	Step      float64
	Rows      []Row
	Elapsed   time.Duration
}

type Experiment struct {
	cfg      *config.Config
	registry *Registry
	log      *logger.Logger
	calc     *distance.Calculator
	grid     []cosmology.Redshift
}

func New(cfg *config.Config, log *logger.Logger) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
		log:      logger.OrNop(log),
	}
}

// Setup builds the cosmology, the quadrature rule and the grid.
func (e *Experiment) Setup() error {
	cosmo, err := e.cfg.Cosmology.Build()
	if err != nil {
		return fmt.Errorf("cosmology: %w", err)
	}
	rule, err := e.registry.GetIntegrator(e.cfg.Integration.Rule)
	if err != nil {
		return err
	}
	grid, err := Grid(e.cfg.Grid)
	if err != nil {
		return err
	}

	opts := []distance.Option{
		distance.WithRule(rule),
		distance.WithStep(e.cfg.Integration.Step),
	}
	if e.cfg.Integration.Memo {
		opts = append(opts, distance.WithMemo())
	}
	e.calc = distance.New(cosmo, opts...)
	e.grid = grid

	e.log.Debug("experiment ready", "cosmology", cosmo.String(), "rule", rule.Name(), "points", len(grid))
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.calc == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	start := time.Now()
	survey := NewSurvey(e.calc, e.cfg.Integration.Workers, e.log)
	rows, err := survey.Run(ctx, e.grid)
	if err != nil {
		return nil, err
	}

	return &Result{
		Cosmology: e.calc.Cosmology(),
		Rule:      e.calc.Rule().Name(),
		Step:      e.cfg.Integration.Step,
		Rows:      rows,
		Elapsed:   time.Since(start),
	}, nil
}

// Calculator returns the distance engine built by Setup.
func (e *Experiment) Calculator() *distance.Calculator {
	return e.calc
}
