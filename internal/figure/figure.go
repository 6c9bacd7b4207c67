// Package figure describes what gets drawn, independent of the renderer.
package figure

import (
	"math"
	"strconv"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/config"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/trajectory"
)

// Range is a rendering window. Data outside it is clipped when drawn, never
// when sampled.
type Range struct {
	Min, Max float64
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Series is an ordered polyline.
type Series struct {
	Name string
	X, Y []float64
}

type Panel struct {
	Title  string
	XLabel string
	YLabel string
	X, Y   Range
	Grid   bool
	Series []Series
}

type Figure struct {
	// Name is the file stem used by exporters.
	Name   string
	Title  string
	Panels []Panel
}

// PhasePortraits builds the two-panel figure of the growing and decaying
// branches.
func PhasePortraits(growing, decaying []trajectory.Point, axes config.AxesConfig) Figure {
	return Figure{
		Name:  "phase_portraits",
		Title: "Phase portraits",
		Panels: []Panel{
			portrait("Solution for mu > 0", growing, axes.Growing),
			portrait("Solution for mu < 0", decaying, axes.Decaying),
		},
	}
}

func portrait(title string, pts []trajectory.Point, w config.Window) Panel {
	theta, thetaDot := trajectory.Columns(pts)
	r := Range{Min: w.Min, Max: w.Max}
	return Panel{
		Title:  title,
		XLabel: "theta",
		YLabel: "theta'",
		X:      r,
		Y:      r,
		Grid:   true,
		Series: []Series{{Name: title, X: theta, Y: thetaDot}},
	}
}

// Bifurcation builds the (w, h) stability boundary figure.
func Bifurcation(c analysis.Curve, hMax float64) Figure {
	ws, hs := c.Columns()
	title := "Bifurcation diagram for parametric oscillator with w0 = " + FormatW0(c.W0)
	return Figure{
		Name:  "bifurcation",
		Title: title,
		Panels: []Panel{{
			Title:  title,
			XLabel: "w",
			YLabel: "h",
			X:      Range{Min: math.Min(0, 2*c.W0), Max: math.Max(0, 2*c.W0)},
			Y:      Range{Min: 0, Max: hMax},
			Grid:   true,
			Series: []Series{{Name: "h = 2|1-(w/w0)^2|", X: ws, Y: hs}},
		}},
	}
}

// FormatW0 prints a float the way the title always has: integral values keep
// a trailing ".0".
func FormatW0(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'I' || c == 'N' {
			return s
		}
	}
	return s + ".0"
}

// Build returns the figures for a solved run. A run without a real solution
// has no figures.
func Build(res oscillator.Result, growing, decaying []trajectory.Point, c analysis.Curve, axes config.AxesConfig) []Figure {
	if res.Verdict != oscillator.Growing {
		return nil
	}
	return []Figure{
		PhasePortraits(growing, decaying, axes),
		Bifurcation(c, axes.HMax),
	}
}
