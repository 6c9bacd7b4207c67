package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/config"
	"github.com/san-kum/paramosc/internal/figure"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/trajectory"
)

func testFigures(t *testing.T) []figure.Figure {
	t.Helper()
	res, err := oscillator.Solve(oscillator.Params{W0: 1, W: 1.01, H: 0.1})
	require.NoError(t, err)

	g := trajectory.Grid{Start: 0, End: 50, Step: 0.05}
	grow := trajectory.Sample(res, trajectory.Growing, g)
	decay := trajectory.Sample(res, trajectory.Decaying, g)
	cfg := config.DefaultConfig()
	return figure.Build(res, grow, decay, analysis.BifurcationCurve(1, 0.01), cfg.Axes)
}

func smallOptions(format string) Options {
	return Options{Format: format, DPI: 72, WidthIn: 4, HeightIn: 2}
}

func TestPanelKeepsWindow(t *testing.T) {
	figs := testFigures(t)
	p, err := Panel(figs[1].Panels[0])
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 2.0, p.X.Max)
	assert.Equal(t, 2.0, p.Y.Max)
	assert.Equal(t, "w", p.X.Label.Text)
}

func TestWriteFigurePNG(t *testing.T) {
	figs := testFigures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteFigure(&buf, figs[0], smallOptions("png")))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestWriteFigureSVG(t *testing.T) {
	figs := testFigures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteFigure(&buf, figs[1], smallOptions("svg")))
	assert.True(t, strings.Contains(buf.String(), "<svg"))
}

func TestWriteFigureErrors(t *testing.T) {
	figs := testFigures(t)
	var buf bytes.Buffer
	assert.Error(t, WriteFigure(&buf, figs[0], smallOptions("gif")))
	assert.Error(t, WriteFigure(&buf, figure.Figure{Name: "empty"}, smallOptions("png")))

	bad := []Options{
		{Format: "png", DPI: 0, WidthIn: 4, HeightIn: 2},
		{Format: "svg", DPI: 72, WidthIn: -4, HeightIn: 2},
		{Format: "png", DPI: 72, WidthIn: 4, HeightIn: 0},
	}
	for _, opts := range bad {
		assert.NotPanics(t, func() {
			assert.Error(t, WriteFigure(&buf, figs[1], opts))
		}, "%+v", opts)
	}
}

func TestSaveAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := SaveAll(dir, testFigures(t), smallOptions("png"))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "phase_portraits.png"),
		filepath.Join(dir, "bifurcation.png"),
	}, paths)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestXYsDropsNonFinite(t *testing.T) {
	s := figure.Series{X: []float64{0, 1, 2}, Y: []float64{0, math.Inf(1), 2}}
	assert.Len(t, xys(s), 2)
}
