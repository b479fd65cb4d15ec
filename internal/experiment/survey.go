package experiment

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/logger"
	"github.com/san-kum/cosmocalc/internal/units"
)

// Row is every tabulated quantity at one redshift.
type Row struct {
	distance.Distances

	Hubble         units.NonNegative[units.KmPerSecPerMpc] `json:"hubble_km_s_mpc"`
	OmegaM         units.NonNegative[units.Ratio]          `json:"omega_m"`
	OmegaDE        units.NonNegative[units.Ratio]          `json:"omega_de"`
	OmegaK         units.Quantity[units.Ratio]             `json:"omega_k"`
	OmegaR         units.NonNegative[units.Ratio]          `json:"omega_r"`
	CMBTemperature units.NonNegative[units.Kelvin]         `json:"tcmb_k"`
}

// Columns names the values returned by Row.Values, in order.
var Columns = []string{
	"z", "dc_mpc", "dm_mpc", "da_mpc", "dl_mpc", "vc_mpc3", "lookback_gyr", "mu",
	"h_km_s_mpc", "omega_m", "omega_de", "omega_k", "omega_r", "tcmb_k",
}

// Values flattens the row for tabular output. The distance modulus is -Inf
// at z = 0.
func (r Row) Values() []float64 {
	mu := math.Inf(-1)
	if r.DistanceModulus != nil {
		mu = r.DistanceModulus.Value()
	}
	return []float64{
		r.Redshift,
		r.RadialComoving.Value(),
		r.Transverse.Value(),
		r.AngularDiameter.Value(),
		r.Luminosity.Value(),
		r.ComovingVolume.Value(),
		r.LookbackTime.Value(),
		mu,
		r.Hubble.Value(),
		r.OmegaM.Value(),
		r.OmegaDE.Value(),
		r.OmegaK.Value(),
		r.OmegaR.Value(),
		r.CMBTemperature.Value(),
	}
}

// Survey tabulates a calculator over a redshift grid.
type Survey struct {
	calc    *distance.Calculator
	workers int
	log     *logger.Logger
}

func NewSurvey(calc *distance.Calculator, workers int, log *logger.Logger) *Survey {
	if workers < 1 {
		workers = 1
	}
	return &Survey{calc: calc, workers: workers, log: logger.OrNop(log)}
}

// Evaluate computes one row.
func (s *Survey) Evaluate(ctx context.Context, z cosmology.Redshift) (Row, error) {
	d, err := s.calc.All(ctx, z)
	if err != nil {
		return Row{}, err
	}
	c := s.calc.Cosmology()
	return Row{
		Distances:      d,
		Hubble:         c.H(z),
		OmegaM:         c.OmegaM(z),
		OmegaDE:        c.OmegaDE(z),
		OmegaK:         c.OmegaK(z),
		OmegaR:         c.OmegaGamma(z).Add(c.OmegaNu(z)),
		CMBTemperature: c.CMBTemperature(z),
	}, nil
}

// Run evaluates every redshift on up to workers goroutines. Rows come back
// in grid order. The first error or a canceled context stops the survey.
func (s *Survey) Run(ctx context.Context, zs []cosmology.Redshift) ([]Row, error) {
	start := time.Now()
	rows := make([]Row, len(zs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, z := range zs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := s.Evaluate(gctx, z)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Warn("survey aborted", "points", len(zs), "error", err)
		return nil, err
	}

	s.log.Debug("survey done",
		"cosmology", s.calc.Cosmology().Name(),
		"rule", s.calc.Rule().Name(),
		"points", len(zs),
		"elapsed", time.Since(start),
	)
	return rows, nil
}
