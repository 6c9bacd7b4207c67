package trajectory

import (
	"math"
	"testing"

	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solved(t *testing.T) oscillator.Result {
	t.Helper()
	res, err := oscillator.Solve(oscillator.Params{W0: 1.0, W: 1.01, H: 0.1})
	require.NoError(t, err)
	require.Equal(t, oscillator.Growing, res.Verdict)
	return res
}

func TestDefaultGridLen(t *testing.T) {
	g := DefaultGrid()
	assert.Equal(t, 40000, g.Len())
	assert.Equal(t, 0.0, g.At(0))
	assert.InDelta(t, 199.995, g.At(g.Len()-1), 1e-9)
}

func TestGridLen(t *testing.T) {
	tests := []struct {
		name string
		g    Grid
		want int
	}{
		{"unit", Grid{0, 1, 0.25}, 4},
		{"partial step", Grid{0, 1, 0.3}, 4},
		{"offset", Grid{1, 2, 0.5}, 2},
		{"empty", Grid{1, 1, 0.1}, 0},
		{"zero step", Grid{0, 1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.g.Len())
		})
	}
}

func TestFirstSampleIsCosPhi(t *testing.T) {
	res := solved(t)
	for _, b := range []Branch{Growing, Decaying} {
		pts := Sample(res, b, DefaultGrid())
		require.Len(t, pts, 40000)
		assert.Equal(t, math.Cos(res.Phi), pts[0].Theta, b.String())
		assert.Equal(t, 0.0, pts[0].T)
	}
}

func TestBranchesDivergeInEnvelope(t *testing.T) {
	res := solved(t)
	g := DefaultGrid()

	grow := Bounds(Sample(res, Growing, g))
	decay := Bounds(Sample(res, Decaying, g))

	assert.Greater(t, grow.MaxTheta, 1e1)
	assert.Less(t, decay.MaxTheta, 1.0+1e-12)
	assert.Less(t, math.Abs(decay.MinTheta), 1.0+1e-12)
}

func TestThetaDotIsDerivative(t *testing.T) {
	res := solved(t)
	const h = 1e-6
	for _, b := range []Branch{Growing, Decaying} {
		for _, tm := range []float64{0.5, 3, 17.25, 90} {
			p := Eval(res.Params.W, res.Mu, res.Phi, b, tm)
			fwd := Eval(res.Params.W, res.Mu, res.Phi, b, tm+h)
			back := Eval(res.Params.W, res.Mu, res.Phi, b, tm-h)
			numeric := (fwd.Theta - back.Theta) / (2 * h)
			scale := math.Max(1, math.Abs(p.ThetaDot))
			assert.InDelta(t, numeric, p.ThetaDot, 1e-5*scale, "%s t=%g", b, tm)
		}
	}
}

func TestPointsRestartable(t *testing.T) {
	res := solved(t)
	seq := Points(res, Decaying, Grid{0, 1, 0.1})

	var first, second []Point
	for p := range seq {
		first = append(first, p)
	}
	for p := range seq {
		second = append(second, p)
	}
	assert.Len(t, first, 10)
	assert.Equal(t, first, second)
}

func TestPointsEarlyBreak(t *testing.T) {
	res := solved(t)
	n := 0
	for range Points(res, Growing, DefaultGrid()) {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestColumnsAndBounds(t *testing.T) {
	pts := []Point{{Theta: 1, ThetaDot: -2}, {Theta: -3, ThetaDot: 4}}
	theta, thetaDot := Columns(pts)
	assert.Equal(t, []float64{1, -3}, theta)
	assert.Equal(t, []float64{-2, 4}, thetaDot)

	assert.Equal(t, Extent{MinTheta: -3, MaxTheta: 1, MinThetaDot: -2, MaxThetaDot: 4}, Bounds(pts))
	assert.Equal(t, Extent{}, Bounds(nil))
}
