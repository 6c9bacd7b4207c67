package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/paramosc/internal/figure"
)

const gutter = 9

// Plot draws the series of a panel onto a fresh canvas of cols x rows
// cells. Segments are clipped against the panel window.
func Plot(p figure.Panel, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	if p.X.Span() <= 0 || p.Y.Span() <= 0 {
		return c
	}
	tx := func(x float64) float64 {
		return (x - p.X.Min) / p.X.Span() * float64(c.PixelsX()-1)
	}
	ty := func(y float64) float64 {
		return (p.Y.Max - y) / p.Y.Span() * float64(c.PixelsY()-1)
	}

	if p.Grid {
		if p.Y.Contains(0) {
			c.DashH(int(math.Round(ty(0))))
		}
		if p.X.Contains(0) {
			c.DashV(int(math.Round(tx(0))))
		}
	}

	for _, s := range p.Series {
		n := min(len(s.X), len(s.Y))
		if n == 1 && p.X.Contains(s.X[0]) && p.Y.Contains(s.Y[0]) {
			c.Set(int(math.Round(tx(s.X[0]))), int(math.Round(ty(s.Y[0]))))
		}
		for i := 1; i < n; i++ {
			x0, y0, x1, y1, ok := clip(p.X, p.Y, s.X[i-1], s.Y[i-1], s.X[i], s.Y[i])
			if !ok {
				continue
			}
			c.DrawLine(
				int(math.Round(tx(x0))), int(math.Round(ty(y0))),
				int(math.Round(tx(x1))), int(math.Round(ty(y1))),
			)
		}
	}
	return c
}

// clip is Liang-Barsky segment clipping against the window.
func clip(xr, yr figure.Range, x0, y0, x1, y1 float64) (float64, float64, float64, float64, bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xr.Min},
		{dx, xr.Max - x0},
		{-dy, y0 - yr.Min},
		{dy, yr.Max - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// RenderPanel frames a plotted panel with its title, tick labels and axis
// labels.
func RenderPanel(p figure.Panel, cols, rows int, th Theme) string {
	body := th.frame().Render(Plot(p, cols, rows).String())
	bodyW := lipgloss.Width(body)

	// frame adds one line above and below the canvas
	axis := make([]string, rows+2)
	for i := range axis {
		axis[i] = strings.Repeat(" ", gutter)
	}
	axis[1] = padLeft(tick(p.Y.Max)+" ┤", gutter)
	axis[rows] = padLeft(tick(p.Y.Min)+" ┤", gutter)
	if rows > 3 {
		axis[(rows+1)/2] = padLeft(p.YLabel+"  ", gutter)
	}
	left := th.muted().Render(strings.Join(axis, "\n"))

	lo, hi := tick(p.X.Min), tick(p.X.Max)
	space := max(1, bodyW-len(lo)-len(hi))
	xticks := strings.Repeat(" ", gutter) + lo + strings.Repeat(" ", space) + hi
	xlabel := strings.Repeat(" ", gutter) + lipgloss.PlaceHorizontal(bodyW, lipgloss.Center, p.XLabel)

	title := strings.Repeat(" ", gutter) + lipgloss.PlaceHorizontal(bodyW, lipgloss.Center, th.title().Render(p.Title))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, left, body),
		th.muted().Render(xticks),
		th.muted().Render(xlabel),
	)
}

// RenderFigure lays the panels of a figure side by side.
func RenderFigure(f figure.Figure, cols, rows int, th Theme) string {
	panels := make([]string, 0, len(f.Panels))
	for i, p := range f.Panels {
		if i > 0 {
			panels = append(panels, "  ")
		}
		panels = append(panels, RenderPanel(p, cols, rows, th))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	if len(f.Panels) > 1 && f.Title != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, th.title().Render(f.Title), "", out)
	}
	return out
}

func tick(v float64) string {
	return fmt.Sprintf("%.3g", v)
}

func padLeft(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return s
	}
	return strings.Repeat(" ", n-w) + s
}
