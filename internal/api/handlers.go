package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/units"
)

// maxRedshifts caps the z values accepted in one request.
const maxRedshifts = 256

// errOverflow marks a result too large for float64, which JSON cannot carry.
var errOverflow = errors.New("result overflows float64")

type PresetInfo struct {
	Name      string  `json:"name"`
	Reference string  `json:"reference,omitempty"`
	H0        float64 `json:"h0"`
	OmegaM0   float64 `json:"omega_m0"`
	OmegaDE0  float64 `json:"omega_de0"`
	OmegaB0   float64 `json:"omega_b0"`
	OmegaK0   float64 `json:"omega_k0"`
	TCMB0     float64 `json:"tcmb0"`
	NEff      float64 `json:"n_eff"`
}

type DistanceResponse struct {
	Cosmology string               `json:"cosmology"`
	Results   []distance.Distances `json:"results"`
}

type Density struct {
	Redshift        float64                                        `json:"z"`
	Hubble          units.NonNegative[units.KmPerSecPerMpc]        `json:"hubble_km_s_mpc"`
	E               float64                                        `json:"e"`
	CriticalDensity units.NonNegative[units.KilogramPerCubicMeter] `json:"critical_density_kg_m3"`
	OmegaM          units.NonNegative[units.Ratio]                 `json:"omega_m"`
	OmegaB          units.NonNegative[units.Ratio]                 `json:"omega_b"`
	OmegaDM         units.NonNegative[units.Ratio]                 `json:"omega_dm"`
	OmegaDE         units.NonNegative[units.Ratio]                 `json:"omega_de"`
	OmegaGamma      units.NonNegative[units.Ratio]                 `json:"omega_gamma"`
	OmegaNu         units.NonNegative[units.Ratio]                 `json:"omega_nu"`
	OmegaK          units.Quantity[units.Ratio]                    `json:"omega_k"`
	OmegaTot        units.Quantity[units.Ratio]                    `json:"omega_tot"`
	CMBTemperature  units.NonNegative[units.Kelvin]                `json:"tcmb_k"`
	NuTemperature   units.NonNegative[units.Kelvin]                `json:"tnu_k"`
}

type DensityResponse struct {
	Cosmology string    `json:"cosmology"`
	Results   []Density `json:"results"`
}

func (s *Server) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (s *Server) presets(c *gin.Context) {
	names := config.ListPresets()
	out := make([]PresetInfo, 0, len(names))
	for _, name := range names {
		cosmo, err := s.cosmology(name)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "preset_invalid", err)
			return
		}
		out = append(out, PresetInfo{
			Name:      name,
			Reference: cosmo.Reference(),
			H0:        cosmo.H0().Value(),
			OmegaM0:   cosmo.OmegaM0().Value(),
			OmegaDE0:  cosmo.OmegaDE0().Value(),
			OmegaB0:   cosmo.OmegaB0().Value(),
			OmegaK0:   cosmo.OmegaK0().Value(),
			TCMB0:     cosmo.CMBTemperature0().Value(),
			NEff:      cosmo.NEff().Value(),
		})
	}
	RespondOK(c, out)
}

func (s *Server) distances(c *gin.Context) {
	calc, zs, ok := s.request(c)
	if !ok {
		return
	}

	out := DistanceResponse{
		Cosmology: calc.Cosmology().Name(),
		Results:   make([]distance.Distances, 0, len(zs)),
	}
	for _, z := range zs {
		d, err := calc.All(c.Request.Context(), z)
		if err != nil {
			RespondError(c, http.StatusServiceUnavailable, "canceled", err)
			return
		}
		vals := []float64{d.Transverse.Value(), d.Luminosity.Value(), d.ComovingVolume.Value()}
		if d.DistanceModulus != nil {
			vals = append(vals, d.DistanceModulus.Value())
		}
		if !finite(vals...) {
			RespondError(c, http.StatusUnprocessableEntity, "out_of_range", fmt.Errorf("%w at z=%g", errOverflow, z.Float()))
			return
		}
		out.Results = append(out.Results, d)
	}
	RespondOK(c, out)
}

func (s *Server) density(c *gin.Context) {
	calc, zs, ok := s.request(c)
	if !ok {
		return
	}
	cosmo := calc.Cosmology()

	out := DensityResponse{
		Cosmology: cosmo.Name(),
		Results:   make([]Density, 0, len(zs)),
	}
	for _, z := range zs {
		if !finite(cosmo.H(z).Value(), cosmo.CriticalDensity(z).Value()) {
			RespondError(c, http.StatusUnprocessableEntity, "out_of_range", fmt.Errorf("%w at z=%g", errOverflow, z.Float()))
			return
		}
		out.Results = append(out.Results, Density{
			Redshift:        z.Float(),
			Hubble:          cosmo.H(z),
			E:               cosmo.E(z),
			CriticalDensity: cosmo.CriticalDensity(z),
			OmegaM:          cosmo.OmegaM(z),
			OmegaB:          cosmo.OmegaB(z),
			OmegaDM:         cosmo.OmegaDM(z),
			OmegaDE:         cosmo.OmegaDE(z),
			OmegaGamma:      cosmo.OmegaGamma(z),
			OmegaNu:         cosmo.OmegaNu(z),
			OmegaK:          cosmo.OmegaK(z),
			OmegaTot:        cosmo.OmegaTot(z),
			CMBTemperature:  cosmo.CMBTemperature(z),
			NuTemperature:   cosmo.NeutrinoTemperature(z),
		})
	}
	RespondOK(c, out)
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// request resolves the preset and redshift query parameters. On failure it
// has already written the error response.
func (s *Server) request(c *gin.Context) (*distance.Calculator, []cosmology.Redshift, bool) {
	preset := c.DefaultQuery("preset", s.defaultPreset)
	calc, err := s.calculator(preset)
	if err != nil {
		if errors.Is(err, errUnknownPreset) {
			RespondError(c, http.StatusNotFound, "unknown_preset", err)
		} else {
			RespondError(c, http.StatusInternalServerError, "preset_invalid", err)
		}
		return nil, nil, false
	}

	zs, err := parseRedshifts(c.QueryArray("z"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_redshift", err)
		return nil, nil, false
	}
	return calc, zs, true
}

// parseRedshifts accepts repeated z parameters and comma-separated lists.
func parseRedshifts(raw []string) ([]cosmology.Redshift, error) {
	var zs []cosmology.Redshift
	for _, param := range raw {
		for _, field := range strings.Split(param, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("z=%q: not a number", field)
			}
			z, err := cosmology.NewRedshift(v)
			if err != nil {
				return nil, err
			}
			zs = append(zs, z)
		}
	}
	switch {
	case len(zs) == 0:
		return nil, fmt.Errorf("at least one z is required")
	case len(zs) > maxRedshifts:
		return nil, fmt.Errorf("at most %d redshifts per request", maxRedshifts)
	}
	return zs, nil
}
