package units

// Dimension is the physical dimension a unit measures.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Time
	Temperature
	Energy
	Mass
	Density
	Volume
	Velocity
	HubbleRate
	// Composite covers the derived units that only appear in physical
	// constants (J/K, m^3 kg^-1 s^-2, ...).
	Composite
)

var dimensionNames = map[Dimension]string{
	Dimensionless: "dimensionless",
	Length:        "length",
	Time:          "time",
	Temperature:   "temperature",
	Energy:        "energy",
	Mass:          "mass",
	Density:       "density",
	Volume:        "volume",
	Velocity:      "velocity",
	HubbleRate:    "hubble rate",
	Composite:     "composite",
}

func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Unit is implemented by the empty tag types below. The zero value of a tag
// is all that is ever needed.
type Unit interface {
	Symbol() string
	Dimension() Dimension
}

type (
	Ratio                 struct{}
	Magnitude             struct{}
	Meter                 struct{}
	Kilometer             struct{}
	Megaparsec            struct{}
	CubicMegaparsec       struct{}
	Second                struct{}
	Gigayear              struct{}
	Kelvin                struct{}
	Joule                 struct{}
	ElectronVolt          struct{}
	Kilogram              struct{}
	Gram                  struct{}
	KilogramPerCubicMeter struct{}
	MeterPerSecond        struct{}
	KmPerSecPerMpc        struct{}
	HInvMpc               struct{}

	JoulePerKelvin            struct{}
	JouleSecond               struct{}
	CubicMeterPerKgSecond2    struct{}
	WattPerMeter2Kelvin4      struct{}
	JoulePerCubicMeterKelvin4 struct{}
)

func (Ratio) Symbol() string                       { return "" }
func (Ratio) Dimension() Dimension                 { return Dimensionless }
func (Magnitude) Symbol() string                   { return "mag" }
func (Magnitude) Dimension() Dimension             { return Dimensionless }
func (Meter) Symbol() string                       { return "m" }
func (Meter) Dimension() Dimension                 { return Length }
func (Kilometer) Symbol() string                   { return "km" }
func (Kilometer) Dimension() Dimension             { return Length }
func (Megaparsec) Symbol() string                  { return "Mpc" }
func (Megaparsec) Dimension() Dimension            { return Length }
func (HInvMpc) Symbol() string                     { return "Mpc/h" }
func (HInvMpc) Dimension() Dimension               { return Length }
func (CubicMegaparsec) Symbol() string             { return "Mpc^3" }
func (CubicMegaparsec) Dimension() Dimension       { return Volume }
func (Second) Symbol() string                      { return "s" }
func (Second) Dimension() Dimension                { return Time }
func (Gigayear) Symbol() string                    { return "Gyr" }
func (Gigayear) Dimension() Dimension              { return Time }
func (Kelvin) Symbol() string                      { return "K" }
func (Kelvin) Dimension() Dimension                { return Temperature }
func (Joule) Symbol() string                       { return "J" }
func (Joule) Dimension() Dimension                 { return Energy }
func (ElectronVolt) Symbol() string                { return "eV" }
func (ElectronVolt) Dimension() Dimension          { return Energy }
func (Kilogram) Symbol() string                    { return "kg" }
func (Kilogram) Dimension() Dimension              { return Mass }
func (Gram) Symbol() string                        { return "g" }
func (Gram) Dimension() Dimension                  { return Mass }
func (KilogramPerCubicMeter) Symbol() string       { return "kg/m^3" }
func (KilogramPerCubicMeter) Dimension() Dimension { return Density }
func (MeterPerSecond) Symbol() string              { return "m/s" }
func (MeterPerSecond) Dimension() Dimension        { return Velocity }
func (KmPerSecPerMpc) Symbol() string              { return "km/s/Mpc" }
func (KmPerSecPerMpc) Dimension() Dimension        { return HubbleRate }

func (JoulePerKelvin) Symbol() string                  { return "J/K" }
func (JoulePerKelvin) Dimension() Dimension            { return Composite }
func (JouleSecond) Symbol() string                     { return "J s" }
func (JouleSecond) Dimension() Dimension               { return Composite }
func (CubicMeterPerKgSecond2) Symbol() string          { return "m^3/(kg s^2)" }
func (CubicMeterPerKgSecond2) Dimension() Dimension    { return Composite }
func (WattPerMeter2Kelvin4) Symbol() string            { return "W/(m^2 K^4)" }
func (WattPerMeter2Kelvin4) Dimension() Dimension      { return Composite }
func (JoulePerCubicMeterKelvin4) Symbol() string       { return "J/(m^3 K^4)" }
func (JoulePerCubicMeterKelvin4) Dimension() Dimension { return Composite }
