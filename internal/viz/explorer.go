package viz

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/cosmocalc/internal/cosmology"
	"github.com/san-kum/cosmocalc/internal/distance"
)

const (
	stateMenu = iota
	stateDetail
)

const (
	sparkPoints = 48
	minStepZ    = 1e-3
	maxStepZ    = 10.0
)

// Builder constructs the cosmology behind a preset name.
type Builder func(name string) (*cosmology.FLRW, error)

// Explorer is a Bubble Tea model for browsing presets and redshifts.
type Explorer struct {
	state, cursor int
	presets       []string
	build         Builder

	calc    *distance.Calculator
	z, dz   float64
	current distance.Distances
	spark   []float64

	editing bool
	editBuf string
	err     error

	width, height int
}

func NewExplorer(presets []string, build Builder) Explorer {
	return Explorer{
		presets: presets,
		build:   build,
		z:       1,
		dz:      0.1,
		width:   80,
		height:  24,
	}
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.state {
		case stateMenu:
			return m.menuKey(msg)
		case stateDetail:
			return m.detailKey(msg)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m Explorer) menuKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.presets) == 0 {
			return m, nil
		}
		c, err := m.build(m.presets[m.cursor])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.calc = distance.New(c, distance.WithMemo())
		m.state, m.err = stateDetail, nil
		m.recompute()
	}
	return m, nil
}

func (m Explorer) detailKey(msg tea.KeyMsg) (Explorer, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			m.editing = false
			v, err := strconv.ParseFloat(m.editBuf, 64)
			if err == nil {
				_, err = cosmology.NewRedshift(v)
			}
			m.editBuf = ""
			if err != nil {
				m.err = err
				return m, nil
			}
			m.z, m.err = v, nil
			m.recompute()
		case "esc":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		m.state, m.err = stateMenu, nil
	case "enter", "e":
		m.editing, m.editBuf = true, ""
	case "left", "h":
		m.z = max(0, m.z-m.dz)
		m.recompute()
	case "right", "l":
		m.z += m.dz
		m.recompute()
	case "+", "up", "k":
		m.dz = min(maxStepZ, m.dz*10)
	case "-", "down", "j":
		m.dz = max(minStepZ, m.dz/10)
	}
	return m, nil
}

// recompute refreshes the distances at m.z and the luminosity distance
// sparkline over [0, m.z].
func (m *Explorer) recompute() {
	z := cosmology.MustRedshift(m.z)
	d, err := m.calc.All(context.Background(), z)
	if err != nil {
		m.err = err
		return
	}
	m.current = d

	spark := make([]float64, 0, sparkPoints+1)
	for i := 0; i <= sparkPoints; i++ {
		zi := cosmology.MustRedshift(m.z * float64(i) / sparkPoints)
		spark = append(spark, m.calc.Luminosity(zi).Value())
	}
	m.spark = spark
}

// Redshift is the redshift shown in the detail view.
func (m Explorer) Redshift() float64 { return m.z }

func (m Explorer) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateDetail:
		return m.viewDetail()
	}
	return ""
}

func (m Explorer) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientTitle.Render("COSMOCALC") + "\n    " + Subtle.Render("FLRW distance explorer") + "\n    " + Subtle.Render("──────────────────────") + "\n\n")
	for i, name := range m.presets {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s\n", GradientTitle.Render("▸"), Selected.Render(name)))
		} else {
			b.WriteString(fmt.Sprintf("      %s\n", Subtle.Render(name)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + KeyHints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m Explorer) viewDetail() string {
	c := m.calc.Cosmology()
	z := cosmology.MustRedshift(m.z)
	d := m.current

	var b strings.Builder
	b.WriteString("\n  " + GradientTitle.Render(strings.ToUpper(c.Name())) + "\n  " + Subtle.Render(c.String()) + "\n\n")

	zLine := fmt.Sprintf("%.4g", m.z)
	if m.editing {
		zLine = m.editBuf + "_"
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s\n\n",
		MetricLabel.Render("z"), MetricValue.Render(zLine),
		MetricLabel.Render("step"), MetricValue.Render(fmt.Sprintf("%g", m.dz))))

	mu := "-inf"
	if d.DistanceModulus != nil {
		mu = fmt.Sprintf("%.4f", d.DistanceModulus.Value())
	}
	rows := [][]string{
		{"comoving radial", fmt.Sprintf("%.3f Mpc", d.RadialComoving.Value())},
		{"comoving transverse", fmt.Sprintf("%.3f Mpc", d.Transverse.Value())},
		{"angular diameter", fmt.Sprintf("%.3f Mpc", d.AngularDiameter.Value())},
		{"luminosity", fmt.Sprintf("%.3f Mpc", d.Luminosity.Value())},
		{"comoving volume", fmt.Sprintf("%.4e Mpc^3", d.ComovingVolume.Value())},
		{"lookback time", fmt.Sprintf("%.4f Gyr", d.LookbackTime.Value())},
		{"distance modulus", mu},
		{"H(z)", c.H(z).String()},
		{"Ω_M(z)", fmt.Sprintf("%.5f", c.OmegaM(z).Value())},
		{"Ω_DE(z)", fmt.Sprintf("%.5f", c.OmegaDE(z).Value())},
		{"Ω_k(z)", fmt.Sprintf("%.5f", c.OmegaK(z).Value())},
		{"T_CMB(z)", c.CMBTemperature(z).String()},
	}
	b.WriteString(Table([]string{"quantity", "value"}, rows) + "\n\n")

	width := max(10, min(m.width-6, sparkPoints+1))
	b.WriteString("  " + MetricLabel.Render("D_L over [0, z] ") + SparklineChart(m.spark, width) + "\n")
	if m.err != nil {
		b.WriteString("\n  " + ErrorText.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + KeyHints("h/l", "z", "+/-", "step", "e", "type z", "esc", "back", "q", "quit") + "\n")
	return b.String()
}

func RunExplorer(presets []string, build Builder) error {
	_, err := tea.NewProgram(NewExplorer(presets, build), tea.WithAltScreen()).Run()
	return err
}
