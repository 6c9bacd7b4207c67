package figure

import (
	"testing"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/config"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/trajectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatW0(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{0.5, "0.5"},
		{-2, "-2.0"},
		{12.25, "12.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatW0(tt.in))
	}
}

func TestBuild(t *testing.T) {
	res, err := oscillator.Solve(oscillator.Params{W0: 1, W: 1.01, H: 0.1})
	require.NoError(t, err)

	g := trajectory.Grid{Start: 0, End: 1, Step: 0.1}
	grow := trajectory.Sample(res, trajectory.Growing, g)
	decay := trajectory.Sample(res, trajectory.Decaying, g)
	curve := analysis.BifurcationCurve(1, 0.005)
	axes := config.DefaultConfig().Axes

	figs := Build(res, grow, decay, curve, axes)
	require.Len(t, figs, 2)

	portraits := figs[0]
	require.Len(t, portraits.Panels, 2)
	assert.Equal(t, "Solution for mu > 0", portraits.Panels[0].Title)
	assert.Equal(t, Range{Min: -100, Max: 100}, portraits.Panels[0].X)
	assert.Equal(t, "Solution for mu < 0", portraits.Panels[1].Title)
	assert.Equal(t, Range{Min: -0.1, Max: 0.1}, portraits.Panels[1].Y)
	assert.Equal(t, "theta'", portraits.Panels[1].YLabel)
	assert.Len(t, portraits.Panels[0].Series[0].X, 10)

	bif := figs[1]
	assert.Equal(t, "Bifurcation diagram for parametric oscillator with w0 = 1.0", bif.Title)
	assert.Equal(t, Range{Min: 0, Max: 2}, bif.Panels[0].X)
	assert.Equal(t, Range{Min: 0, Max: 2}, bif.Panels[0].Y)

	// the window clips h at 2 but the data keeps the 6 at w = 2 w0
	hs := bif.Panels[0].Series[0].Y
	assert.InDelta(t, 6, hs[len(hs)-1], 1e-12)
}

func TestBuildWithoutSolution(t *testing.T) {
	res, err := oscillator.Solve(oscillator.Params{W0: 1, W: 2, H: 0.01})
	require.NoError(t, err)
	assert.Nil(t, Build(res, nil, nil, analysis.BifurcationCurve(1, 0.005), config.DefaultConfig().Axes))
}
