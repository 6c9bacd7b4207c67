// Package trajectory samples the analytic solutions theta(t) and theta'(t)
// of the two branches mu > 0 and mu < 0.
package trajectory

import (
	"iter"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/paramosc/internal/oscillator"
)

// Branch selects the sign of mu.
type Branch int

const (
	Growing  Branch = 1
	Decaying Branch = -1
)

func (b Branch) String() string {
	if b == Decaying {
		return "mu < 0"
	}
	return "mu > 0"
}

// Point is one sample of the phase portrait.
type Point struct {
	T        float64 `json:"t"`
	Theta    float64 `json:"theta"`
	ThetaDot float64 `json:"theta_dot"`
}

// Grid is the half-open time range [Start, End) sampled every Step.
type Grid struct {
	Start, End, Step float64
}

func DefaultGrid() Grid {
	return Grid{Start: 0, End: 200, Step: 0.005}
}

func (g Grid) Len() int {
	if g.Step <= 0 || g.End <= g.Start {
		return 0
	}
	return int(math.Ceil((g.End - g.Start) / g.Step))
}

// At returns the i-th sample time. Times are not accumulated, so At(0) is
// exactly Start.
func (g Grid) At(i int) float64 {
	return g.Start + float64(i)*g.Step
}

// Eval evaluates the branch at time t.
func Eval(w, mu, phi float64, b Branch, t float64) Point {
	smu := float64(b) * mu
	env := math.Exp(smu * t)
	arg := w*t + phi
	cos, sin := math.Cos(arg), math.Sin(arg)
	return Point{
		T:        t,
		Theta:    env * cos,
		ThetaDot: smu*env*cos - env*w*sin,
	}
}

// Points is a lazy sequence over the grid. Each range over it starts again
// from the first sample.
func Points(res oscillator.Result, b Branch, g Grid) iter.Seq[Point] {
	w, mu, phi := res.Params.W, res.Mu, res.Phi
	n := g.Len()
	return func(yield func(Point) bool) {
		for i := 0; i < n; i++ {
			if !yield(Eval(w, mu, phi, b, g.At(i))) {
				return
			}
		}
	}
}

// Sample materialises Points.
func Sample(res oscillator.Result, b Branch, g Grid) []Point {
	out := make([]Point, 0, g.Len())
	for p := range Points(res, b, g) {
		out = append(out, p)
	}
	return out
}

// Columns splits a trajectory into theta and theta' slices.
func Columns(pts []Point) (theta, thetaDot []float64) {
	theta = make([]float64, len(pts))
	thetaDot = make([]float64, len(pts))
	for i, p := range pts {
		theta[i] = p.Theta
		thetaDot[i] = p.ThetaDot
	}
	return theta, thetaDot
}

// Extent is the bounding box of a trajectory.
type Extent struct {
	MinTheta, MaxTheta       float64
	MinThetaDot, MaxThetaDot float64
}

func Bounds(pts []Point) Extent {
	if len(pts) == 0 {
		return Extent{}
	}
	theta, thetaDot := Columns(pts)
	return Extent{
		MinTheta:    floats.Min(theta),
		MaxTheta:    floats.Max(theta),
		MinThetaDot: floats.Min(thetaDot),
		MaxThetaDot: floats.Max(thetaDot),
	}
}
