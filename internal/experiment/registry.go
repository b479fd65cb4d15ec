package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/integrators"
)

type Registry struct {
	integrators map[string]func() integrators.Rule
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() integrators.Rule),
	}

	r.integrators["euler"] = func() integrators.Rule { return integrators.NewEuler() }
	r.integrators["midpoint"] = func() integrators.Rule { return integrators.NewMidpoint() }
	r.integrators["rk4"] = func() integrators.Rule { return integrators.NewRK4() }
	r.integrators["rk45"] = func() integrators.Rule { return integrators.NewRK45() }

	return r
}

func (r *Registry) GetIntegrator(name string) (integrators.Rule, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIntegrator, name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCosmology builds the named preset.
func (r *Registry) GetCosmology(preset string) (*cosmology.FLRW, error) {
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, preset)
	}
	return cfg.Build()
}

func (r *Registry) ListPresets() []string {
	return config.ListPresets()
}
