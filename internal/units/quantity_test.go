package units

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func TestNewNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 2.7255, false},
		{"negative", -1e-12, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNonNegative[Kelvin](tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("expected ErrInvalidValue, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMustNonNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative value")
		}
	}()
	MustNonNegative[Kilogram](-1)
}

func TestZeroOne(t *testing.T) {
	if Zero[Megaparsec]().Value() != 0 {
		t.Error("zero should be 0")
	}
	if One[Megaparsec]().Value() != 1 {
		t.Error("one should be 1")
	}
	if NonNegativeZero[Ratio]().Value() != 0 || NonNegativeOne[Ratio]().Value() != 1 {
		t.Error("non-negative zero/one mismatch")
	}
}

func TestArithmetic(t *testing.T) {
	a := Of[Megaparsec](3.5)
	b := Of[Megaparsec](1.25)

	if got := a.Add(b).Value(); got != 4.75 {
		t.Errorf("add: got %f", got)
	}
	if got := b.Sub(a).Value(); got != -2.25 {
		t.Errorf("sub: got %f", got)
	}
	if got := a.Scale(2).Value(); got != 7 {
		t.Errorf("scale: got %f", got)
	}
	if got := b.Sub(a).Abs().Value(); got != 2.25 {
		t.Errorf("abs: got %f", got)
	}
	if !b.Less(a) || a.Less(b) {
		t.Error("less is wrong")
	}
}

func TestNonNegativeSubCanGoNegative(t *testing.T) {
	m := MustNonNegative[Ratio](0.05)
	b := MustNonNegative[Ratio](0.3)

	diff := m.Sub(b)
	if diff.Value() >= 0 {
		t.Errorf("expected negative difference, got %f", diff.Value())
	}
	if _, err := diff.NonNegative(); !errors.Is(err, ErrInvalidValue) {
		t.Error("narrowing a negative difference should fail")
	}

	sum := m.Add(b)
	if math.Abs(sum.Value()-0.35) > 1e-15 {
		t.Errorf("add: got %f", sum.Value())
	}
}

func TestPowers(t *testing.T) {
	q := Of[Second](2)
	if got := q.Powi(10); got != 1024 {
		t.Errorf("powi: got %f", got)
	}
	if got := q.Powi(-2); got != 0.25 {
		t.Errorf("powi negative: got %f", got)
	}
	if got := q.Powi(0); got != 1 {
		t.Errorf("powi zero: got %f", got)
	}
	if got := q.Powf(0.5); math.Abs(got-math.Sqrt2) > 1e-15 {
		t.Errorf("powf: got %f", got)
	}

	n := MustNonNegative[Ratio](3.04)
	if n.Floor() != 3 {
		t.Errorf("floor: got %f", n.Floor())
	}
	if got := n.Powi(2); math.Abs(got-3.04*3.04) > 1e-12 {
		t.Errorf("powi: got %f", got)
	}
}

func TestString(t *testing.T) {
	if got := Of[Megaparsec](1.5).String(); got != "1.5 Mpc" {
		t.Errorf("got %q", got)
	}
	if got := Of[Ratio](0.3).String(); got != "0.3" {
		t.Errorf("got %q", got)
	}
	if got := MustNonNegative[Kelvin](2.7255).String(); got != "2.7255 K" {
		t.Errorf("got %q", got)
	}
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		D Quantity[Megaparsec] `json:"d"`
		T NonNegative[Kelvin]  `json:"t"`
	}{Of[Megaparsec](6482.5), MustNonNegative[Kelvin](2.7255)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"d":6482.5,"t":2.7255}` {
		t.Errorf("unexpected json: %s", data)
	}

	var n NonNegative[Kelvin]
	if err := json.Unmarshal([]byte(`-3`), &n); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct {
		unit Unit
		want Dimension
	}{
		{Megaparsec{}, Length},
		{Kilometer{}, Length},
		{Gigayear{}, Time},
		{Kelvin{}, Temperature},
		{Joule{}, Energy},
		{ElectronVolt{}, Energy},
		{Kilogram{}, Mass},
		{KilogramPerCubicMeter{}, Density},
		{CubicMegaparsec{}, Volume},
		{KmPerSecPerMpc{}, HubbleRate},
		{Ratio{}, Dimensionless},
	}

	for _, tt := range tests {
		if got := tt.unit.Dimension(); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.unit.Symbol(), tt.want, got)
		}
	}
}
