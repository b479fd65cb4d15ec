package viz

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cosmocalc/internal/config"
	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
	"github.com/san-kum/cosmocalc/internal/experiment"
)

func surveyRows(t *testing.T) []experiment.Row {
	t.Helper()
	c, err := cosmology.TwoComponent(0.3, 0.7, 70)
	if err != nil {
		t.Fatal(err)
	}
	zs, err := experiment.Grid(config.GridConfig{ZMin: 0, ZMax: 2, Points: 9})
	if err != nil {
		t.Fatal(err)
	}
	rows, err := experiment.NewSurvey(distance.New(c), 2, nil).Run(context.Background(), zs)
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestColumns(t *testing.T) {
	rows := surveyRows(t)

	data, err := Columns(rows, "dl_mpc", "mu")
	if err != nil {
		t.Fatal(err)
	}
	if len(data[0]) != len(rows) {
		t.Errorf("expected %d luminosity values, got %d", len(rows), len(data[0]))
	}
	if len(data[1]) != len(rows)-1 {
		t.Errorf("expected the z=0 modulus to be dropped, got %d values", len(data[1]))
	}

	if _, err := Columns(rows, "redshift"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestPlot(t *testing.T) {
	rows := surveyRows(t)

	out, err := Plot(rows, []string{"dc_mpc"}, DefaultPlotOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "dc_mpc vs z [0, 2]") {
		t.Errorf("expected default caption, got:\n%s", out)
	}

	out, err = Plot(rows, []string{"dc_mpc", "da_mpc"}, PlotOptions{Height: 5, Width: 30, Caption: "both"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "both") {
		t.Error("expected custom caption")
	}

	if _, err := Plot(nil, []string{"dc_mpc"}, DefaultPlotOptions()); err == nil {
		t.Error("expected error for empty rows")
	}
}

func TestTable(t *testing.T) {
	out := Table([]string{"quantity", "value"}, [][]string{{"luminosity", "25930.214 Mpc"}})
	for _, want := range []string{"quantity", "luminosity", "25930.214 Mpc"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := SparklineChart([]float64{1, 2, 3, 4}, 4); got == "" {
		t.Error("expected sparkline output")
	}
	if got := SparklineChart(nil, 3); got != "───" {
		t.Errorf("expected flat line, got %q", got)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Explorer, keys ...string) Explorer {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Explorer)
	}
	return m
}

func newTestExplorer() Explorer {
	build := func(name string) (*cosmology.FLRW, error) {
		cfg := config.GetPreset(name)
		if cfg == nil {
			return nil, errors.New("no such preset")
		}
		return cfg.Build()
	}
	return NewExplorer([]string{"concordance", "open"}, build)
}

func TestExplorerNavigation(t *testing.T) {
	m := newTestExplorer()
	if !strings.Contains(m.View(), "concordance") {
		t.Fatal("menu should list presets")
	}

	m = press(t, m, "down", "enter")
	if !strings.Contains(m.View(), "OPEN") {
		t.Errorf("expected detail view of the open preset:\n%s", m.View())
	}

	m = press(t, m, "l")
	if m.Redshift() != 1.1 {
		t.Errorf("expected z=1.1, got %g", m.Redshift())
	}
	m = press(t, m, "+", "h", "h")
	if m.Redshift() != 0 {
		t.Errorf("redshift should clamp at 0, got %g", m.Redshift())
	}

	m = press(t, m, "esc")
	if !strings.Contains(m.View(), "COSMOCALC") {
		t.Error("esc should return to the menu")
	}
}

func TestExplorerTypedRedshift(t *testing.T) {
	m := press(t, newTestExplorer(), "enter", "e", "3", ".", "5", "enter")
	if m.Redshift() != 3.5 {
		t.Errorf("expected z=3.5, got %g", m.Redshift())
	}

	m = press(t, m, "e", "-", "1", "enter")
	if m.Redshift() != 3.5 {
		t.Errorf("negative redshift should be rejected, got %g", m.Redshift())
	}
	if !strings.Contains(m.View(), "non-negative") {
		t.Error("expected the redshift error in the view")
	}
}
