package units

// Conversion factors.
const (
	MetersPerKilometer = 1000.0
	MetersPerMpc       = 3.086e+22
	KilometersPerMpc   = 3.086e+19
	GramsPerKilogram   = 1000.0

	SecondsPerYear = 3.154e+7
	SecondsPerGyr  = 3.154e+16

	// ElectronVoltToJoule is exact since the 2019 SI redefinition.
	ElectronVoltToJoule = 1.602176634e-19

	// SpeedOfLight in m/s, exact by definition of the metre. It lives here
	// because mass-energy conversion needs it and constants imports units.
	SpeedOfLight = 299792458.0
)

func KilometersToMeters(km Quantity[Kilometer]) Quantity[Meter] {
	return Of[Meter](km.v * MetersPerKilometer)
}

func MetersToKilometers(m Quantity[Meter]) Quantity[Kilometer] {
	return Of[Kilometer](m.v / MetersPerKilometer)
}

func MpcToKilometers(mpc Quantity[Megaparsec]) Quantity[Kilometer] {
	return Of[Kilometer](mpc.v * KilometersPerMpc)
}

func MpcToMeters(mpc Quantity[Megaparsec]) Quantity[Meter] {
	return Of[Meter](mpc.v * MetersPerMpc)
}

func MetersToMpc(m Quantity[Meter]) Quantity[Megaparsec] {
	return Of[Megaparsec](m.v / MetersPerMpc)
}

// JoulesToKilograms converts energy to its rest mass, m = E/c^2.
func JoulesToKilograms(e Quantity[Joule]) Quantity[Kilogram] {
	return Of[Kilogram](e.v / (SpeedOfLight * SpeedOfLight))
}

// KilogramsToJoules converts rest mass to energy, E = mc^2.
func KilogramsToJoules(m Quantity[Kilogram]) Quantity[Joule] {
	return Of[Joule](m.v * SpeedOfLight * SpeedOfLight)
}

func ElectronVoltsToJoules(ev Quantity[ElectronVolt]) Quantity[Joule] {
	return Of[Joule](ev.v * ElectronVoltToJoule)
}

func JoulesToElectronVolts(e Quantity[Joule]) Quantity[ElectronVolt] {
	return Of[ElectronVolt](e.v / ElectronVoltToJoule)
}

func GramsToKilograms(g Quantity[Gram]) Quantity[Kilogram] {
	return Of[Kilogram](g.v / GramsPerKilogram)
}

func KilogramsToGrams(kg Quantity[Kilogram]) Quantity[Gram] {
	return Of[Gram](kg.v * GramsPerKilogram)
}

func SecondsToGigayears(s Quantity[Second]) Quantity[Gigayear] {
	return Of[Gigayear](s.v / SecondsPerGyr)
}

func GigayearsToSeconds(gyr Quantity[Gigayear]) Quantity[Second] {
	return Of[Second](gyr.v * SecondsPerGyr)
}
