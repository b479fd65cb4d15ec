package export

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/san-kum/cosmocalc/internal/experiment"
	"github.com/san-kum/cosmocalc/internal/viz"
)

var ErrNothingToDraw = errors.New("export: no curve has two finite points")

var strokeColors = []string{"#00ff00", "#00bfff", "#ff00ff", "#ffd700", "#ff4500"}

// Point is one vertex of a curve.
type Point struct {
	X, Y float64
}

// Curves pairs each named survey column with the redshift, skipping
// non-finite values such as the distance modulus at z = 0.
func Curves(rows []experiment.Row, names ...string) ([][]Point, error) {
	curves := make([][]Point, len(names))
	for k, name := range names {
		idx := slices.Index(experiment.Columns, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", viz.ErrUnknownColumn, name)
		}
		pts := make([]Point, 0, len(rows))
		for _, r := range rows {
			v := r.Values()[idx]
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			pts = append(pts, Point{X: r.Redshift, Y: v})
		}
		curves[k] = pts
	}
	return curves, nil
}

// CurvesToSVG draws the curves in one shared frame. Curves with fewer than
// two points are skipped; the result is empty when none remain.
func CurvesToSVG(curves [][]Point, width, height int) string {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	drawable := 0
	for _, c := range curves {
		if len(c) < 2 {
			continue
		}
		drawable++
		for _, p := range c {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if drawable == 0 {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	color := 0
	for _, c := range curves {
		if len(c) < 2 {
			continue
		}
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColors[color%len(strokeColors)])
		color++
		for i, p := range c {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SurveySVG writes the named columns of a survey as an SVG plot.
func SurveySVG(w io.Writer, rows []experiment.Row, names []string, width, height int) error {
	curves, err := Curves(rows, names...)
	if err != nil {
		return err
	}
	svg := CurvesToSVG(curves, width, height)
	if svg == "" {
		return ErrNothingToDraw
	}
	_, err = io.WriteString(w, svg)
	return err
}
