package config

import "sort"

const planckTCMB = 2.7255

// Presets are literature cosmologies plus the reference models used to
// validate the distance engine.
var Presets = map[string]CosmologyConfig{
	"planck18": {
		Name: "planck18", Reference: "Planck Collaboration 2020, A&A 641, A6 (Table 2, TT,TE,EE+lowE+lensing+BAO)",
		H0: 67.66, Matter: 0.30966, Baryon: 0.04897, CMBTemperature: planckTCMB,
		NEff: 3.046, NeutrinoMasses: []float64{0, 0, 0.06}, Flat: true,
	},
	"planck15": {
		Name: "planck15", Reference: "Planck Collaboration 2016, A&A 594, A13 (Table 4, TT,TE,EE+lowP+lensing+ext)",
		H0: 67.74, Matter: 0.3075, Baryon: 0.0486, CMBTemperature: planckTCMB,
		NEff: 3.046, NeutrinoMasses: []float64{0, 0, 0.06}, Flat: true,
	},
	"planck13": {
		Name: "planck13", Reference: "Planck Collaboration 2014, A&A 571, A16 (Table 5, Planck+WP+highL+BAO)",
		H0: 67.77, Matter: 0.30712, Baryon: 0.048252, CMBTemperature: planckTCMB,
		NEff: 3.046, NeutrinoMasses: []float64{0, 0, 0.06}, Flat: true,
	},
	"wmap9": {
		Name: "wmap9", Reference: "Hinshaw et al. 2013, ApJS 208, 19 (Table 4, WMAP9+eCMB+BAO+H0)",
		H0: 69.32, Matter: 0.2865, Baryon: 0.04628, CMBTemperature: 2.725,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0}, Flat: true,
	},
	"wmap7": {
		Name: "wmap7", Reference: "Komatsu et al. 2011, ApJS 192, 18 (Table 1, WMAP+BAO+H0 ML)",
		H0: 70.4, Matter: 0.272, Baryon: 0.0455, CMBTemperature: 2.725,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0}, Flat: true,
	},
	"wmap5": {
		Name: "wmap5", Reference: "Komatsu et al. 2009, ApJS 180, 330 (Table 1, WMAP+BAO+SN ML)",
		H0: 70.2, Matter: 0.277, Baryon: 0.0459, CMBTemperature: 2.725,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0}, Flat: true,
	},
	"flat-lcdm": {
		Name: "flat-lcdm", H0: 69.6, Matter: 0.286, DarkEnergy: 0.714, Baryon: 0.05,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0},
	},
	"open": {
		Name: "open", H0: 69.6, Matter: 0.286, DarkEnergy: 0, Baryon: 0.05,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0},
	},
	"closed": {
		Name: "closed", H0: 69.6, Matter: 0.286, DarkEnergy: 0.8, Baryon: 0.05,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0},
	},
	"concordance": {
		Name: "concordance", H0: 70, Matter: 0.27, DarkEnergy: 0.73, Baryon: 0.044,
		NEff: 3.04, NeutrinoMasses: []float64{0, 0, 0},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *CosmologyConfig {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	c := preset.clone()
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
