package analysis

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/paramosc/internal/oscillator"
)

// MaxCurvePoints bounds the number of samples BifurcationCurve may produce.
const MaxCurvePoints = 1_000_000

var ErrCurveTooDense = errors.New("analysis: bifurcation curve too dense")

// CurveLen is the number of samples BifurcationCurve(w0, step) returns.
// It saturates at MaxCurvePoints+1 instead of overflowing.
func CurveLen(w0, step float64) int {
	span := math.Abs(2 * w0)
	if step <= 0 || span == 0 {
		return 2
	}
	n := math.Round(span/step) + 1
	if !(n <= MaxCurvePoints) {
		return MaxCurvePoints + 1
	}
	return max(2, int(n))
}

// CheckCurve rejects a step that is too fine for w0.
func CheckCurve(w0, step float64) error {
	if n := CurveLen(w0, step); n > MaxCurvePoints {
		return fmt.Errorf("%w: w0 %g with step %g needs more than %d points", ErrCurveTooDense, w0, step, MaxCurvePoints)
	}
	return nil
}

// CurvePoint is one (w, h) sample of the stability boundary.
type CurvePoint struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Curve is the boundary h = 2|1-(w/w0)^2| for fixed w0.
type Curve struct {
	W0     float64      `json:"w0"`
	Points []CurvePoint `json:"points"`
}

// BifurcationCurve samples the boundary over w in [0, 2 w0], both ends
// included. The step is shrunk so the last sample lands on 2 w0. Values are
// never clipped; h reaches 6 at w = 2 w0. Callers bound the density with
// CheckCurve first.
func BifurcationCurve(w0, step float64) Curve {
	span := 2 * w0
	n := CurveLen(w0, step)

	ws := floats.Span(make([]float64, n), 0, span)
	ws[n-1] = span
	pts := make([]CurvePoint, n)
	for i, w := range ws {
		pts[i] = CurvePoint{W: w, H: oscillator.Delta(oscillator.Params{W0: w0, W: w})}
	}
	return Curve{W0: w0, Points: pts}
}

// Columns splits the curve into w and h slices.
func (c Curve) Columns() (ws, hs []float64) {
	ws = make([]float64, len(c.Points))
	hs = make([]float64, len(c.Points))
	for i, p := range c.Points {
		ws[i], hs[i] = p.W, p.H
	}
	return ws, hs
}

// Unstable reports whether (w, h) lies strictly above the curve.
func (c Curve) Unstable(w, h float64) bool {
	return oscillator.Classify(oscillator.Params{W0: c.W0, W: w, H: h}) == oscillator.Growing
}
