// Package export writes figures to image files with gonum/plot.
package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/san-kum/paramosc/internal/figure"
)

// Options control the size and encoding of exported figures.
type Options struct {
	Format   string // "png" or "svg"
	DPI      int
	WidthIn  float64
	HeightIn float64
}

var seriesColors = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
}

// Panel converts a figure panel into a gonum plot with fixed axis ranges.
func Panel(p figure.Panel) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Y.Label.Text = p.YLabel
	pl.X.Min, pl.X.Max = p.X.Min, p.X.Max
	pl.Y.Min, pl.Y.Max = p.Y.Min, p.Y.Max
	stylePlot(pl)

	if p.Grid {
		pl.Add(plotter.NewGrid())
	}
	for i, s := range p.Series {
		line, err := plotter.NewLine(xys(s))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Color = seriesColors[i%len(seriesColors)]
		pl.Add(line)
	}
	// Add widens the data range; the window is fixed
	pl.X.Min, pl.X.Max = p.X.Min, p.X.Max
	pl.Y.Min, pl.Y.Max = p.Y.Min, p.Y.Max
	return pl, nil
}

// xys drops non-finite samples, which plotter rejects.
func xys(s figure.Series) plotter.XYs {
	n := min(len(s.X), len(s.Y))
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Title.Padding = vg.Points(6)
	p.X.Label.TextStyle.Font.Size = vg.Points(11)
	p.Y.Label.TextStyle.Font.Size = vg.Points(11)
	p.X.Tick.Label.Font.Size = vg.Points(9)
	p.Y.Tick.Label.Font.Size = vg.Points(9)
}

// WriteFigure draws all panels of f side by side onto one canvas.
func WriteFigure(w io.Writer, f figure.Figure, opts Options) error {
	if len(f.Panels) == 0 {
		return fmt.Errorf("figure %q has no panels", f.Name)
	}
	if opts.WidthIn <= 0 || opts.HeightIn <= 0 {
		return fmt.Errorf("invalid size %gx%g in", opts.WidthIn, opts.HeightIn)
	}
	plots := make([]*plot.Plot, len(f.Panels))
	for i, p := range f.Panels {
		pl, err := Panel(p)
		if err != nil {
			return err
		}
		plots[i] = pl
	}

	width := vg.Length(opts.WidthIn) * vg.Inch
	height := vg.Length(opts.HeightIn) * vg.Inch

	var (
		c  vg.CanvasWriterTo
		dc draw.Canvas
	)
	switch opts.Format {
	case "svg":
		sc := vgsvg.New(width, height)
		c, dc = sc, draw.New(sc)
	case "png", "":
		if opts.DPI <= 0 {
			return fmt.Errorf("invalid dpi %d", opts.DPI)
		}
		ic := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(opts.DPI))
		c, dc = vgimg.PngCanvas{Canvas: ic}, draw.New(ic)
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	grid := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for j := range plots {
		plots[j].Draw(grid[0][j])
	}

	bw := bufio.NewWriter(w)
	if _, err := c.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write %s: %w", opts.Format, err)
	}
	return bw.Flush()
}

// SaveFigure writes f to dir/<name>.<format> and returns the path.
func SaveFigure(dir string, f figure.Figure, opts Options) (string, error) {
	if opts.Format == "" {
		opts.Format = "png"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create directory: %w", err)
	}
	path := filepath.Join(dir, f.Name+"."+opts.Format)
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := WriteFigure(file, f, opts); err != nil {
		return "", err
	}
	return path, file.Close()
}

// SaveAll exports every figure and returns the written paths in order.
func SaveAll(dir string, figs []figure.Figure, opts Options) ([]string, error) {
	paths := make([]string, 0, len(figs))
	for _, f := range figs {
		path, err := SaveFigure(dir, f, opts)
		if err != nil {
			return paths, fmt.Errorf("export %s: %w", f.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
