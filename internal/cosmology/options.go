package cosmology

import (
	"fmt"

	"github.com/san-kum/cosmocalc/internal/constants"
	"github.com/san-kum/cosmocalc/internal/units"
)

// settings collects optional inputs before validation.
type settings struct {
	name      string
	reference string
	tcmb0     *float64
	nEff      float64
	massesEV  []float64
	tolerance *float64
}

func defaultSettings() settings {
	masses := constants.DefaultNeutrinoMasses()
	ev := make([]float64, len(masses))
	for i, m := range masses {
		ev[i] = m.Value()
	}
	return settings{
		nEff:     constants.DefaultNEff.Value(),
		massesEV: ev,
	}
}

// Option configures optional cosmology inputs.
type Option func(*settings)

func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithReference records the literature source of the parameters.
func WithReference(ref string) Option {
	return func(s *settings) { s.reference = ref }
}

// WithCMBTemperature enables the photon and neutrino contributions.
func WithCMBTemperature(kelvin float64) Option {
	return func(s *settings) { s.tcmb0 = &kelvin }
}

// WithNeutrinos sets N_eff and the neutrino rest masses in eV. The number of
// masses must equal floor(nEff).
func WithNeutrinos(nEff float64, massesEV ...float64) Option {
	return func(s *settings) {
		s.nEff = nEff
		s.massesEV = append([]float64(nil), massesEV...)
	}
}

// WithCurvatureTolerance makes flatness checks and the curvature branch
// treat |Ω_k| <= tol as flat. The default of 0 compares exactly.
func WithCurvatureTolerance(tol float64) Option {
	return func(s *settings) { s.tolerance = &tol }
}

type validated struct {
	tcmb0     *units.NonNegative[units.Kelvin]
	nEff      units.NonNegative[units.Ratio]
	masses    []units.NonNegative[units.ElectronVolt]
	tolerance float64
}

func (s settings) validate() (validated, error) {
	var v validated

	if s.tcmb0 != nil {
		t, err := units.NewNonNegative[units.Kelvin](*s.tcmb0)
		if err != nil {
			return v, fmt.Errorf("CMB temperature: %w", err)
		}
		v.tcmb0 = &t
	}

	nEff, err := units.NewNonNegative[units.Ratio](s.nEff)
	if err != nil {
		return v, fmt.Errorf("N_eff: %w", err)
	}
	v.nEff = nEff

	v.masses = make([]units.NonNegative[units.ElectronVolt], len(s.massesEV))
	for i, m := range s.massesEV {
		mass, err := units.NewNonNegative[units.ElectronVolt](m)
		if err != nil {
			return v, fmt.Errorf("neutrino mass %d: %w", i, err)
		}
		v.masses[i] = mass
	}
	if int(nEff.Floor()) != len(v.masses) {
		return v, fmt.Errorf("%w: floor(N_eff)=%d but %d masses given",
			ErrNeutrinoCountMismatch, int(nEff.Floor()), len(v.masses))
	}

	if s.tolerance != nil {
		tol, err := units.NewNonNegative[units.Ratio](*s.tolerance)
		if err != nil {
			return v, fmt.Errorf("curvature tolerance: %w", err)
		}
		v.tolerance = tol.Value()
	}
	return v, nil
}
