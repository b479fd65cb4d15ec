package units

import (
	"math"
	"testing"
)

func relErr(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestLengthConversions(t *testing.T) {
	if got := KilometersToMeters(Of[Kilometer](2.5)).Value(); got != 2500 {
		t.Errorf("km->m: got %f", got)
	}
	if got := MpcToKilometers(Of[Megaparsec](1)).Value(); got != KilometersPerMpc {
		t.Errorf("Mpc->km: got %e", got)
	}
	if got := MpcToMeters(Of[Megaparsec](2)).Value(); got != 2*MetersPerMpc {
		t.Errorf("Mpc->m: got %e", got)
	}

	back := MetersToMpc(MpcToMeters(Of[Megaparsec](6482.5)))
	if relErr(back.Value(), 6482.5) > 1e-15 {
		t.Errorf("Mpc round trip: got %f", back.Value())
	}
	km := MetersToKilometers(KilometersToMeters(Of[Kilometer](42)))
	if km.Value() != 42 {
		t.Errorf("km round trip: got %f", km.Value())
	}
}

func TestMassEnergyEquivalence(t *testing.T) {
	// ~1 kg
	mass := JoulesToKilograms(Of[Joule](8.9e16))
	if mass.Value() < 0.99 || mass.Value() > 1.01 {
		t.Errorf("expected ~1 kg, got %f", mass.Value())
	}

	energy := KilogramsToJoules(Of[Kilogram](1))
	if energy.Value() < 8.9e16 || energy.Value() > 9.05e16 {
		t.Errorf("expected ~9e16 J, got %e", energy.Value())
	}
}

func TestMassEnergyRoundTrip(t *testing.T) {
	for _, j := range []float64{1e-30, 1.602176634e-19, 1, 8.9e16, 3.2e44} {
		got := KilogramsToJoules(JoulesToKilograms(Of[Joule](j))).Value()
		if relErr(got, j) > 1e-6 {
			t.Errorf("J->kg->J: %e became %e", j, got)
		}
	}
	for _, kg := range []float64{9.109e-31, 1, 1.989e30} {
		got := JoulesToKilograms(KilogramsToJoules(Of[Kilogram](kg))).Value()
		if relErr(got, kg) > 1e-6 {
			t.Errorf("kg->J->kg: %e became %e", kg, got)
		}
	}
}

func TestTimeConversions(t *testing.T) {
	gyr := SecondsToGigayears(Of[Second](SecondsPerGyr * 13.8))
	if relErr(gyr.Value(), 13.8) > 1e-15 {
		t.Errorf("s->Gyr: got %f", gyr.Value())
	}
	s := GigayearsToSeconds(Of[Gigayear](1))
	if s.Value() != SecondsPerGyr {
		t.Errorf("Gyr->s: got %e", s.Value())
	}
}

func TestEnergyMassUnits(t *testing.T) {
	j := ElectronVoltsToJoules(Of[ElectronVolt](1))
	if j.Value() != ElectronVoltToJoule {
		t.Errorf("eV->J: got %e", j.Value())
	}
	if relErr(JoulesToElectronVolts(j).Value(), 1) > 1e-15 {
		t.Error("eV round trip failed")
	}
	if GramsToKilograms(Of[Gram](1500)).Value() != 1.5 {
		t.Error("g->kg failed")
	}
	if KilogramsToGrams(Of[Kilogram](1.5)).Value() != 1500 {
		t.Error("kg->g failed")
	}
}
