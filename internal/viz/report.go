package viz

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/trajectory"
)

// Summary renders the solver output as label/value rows.
func Summary(res oscillator.Result, th Theme) string {
	s := analysis.Summarize(res)
	rows := [][2]string{
		{"params", res.Params.String()},
		{"delta", fmt.Sprintf("%.6g", s.Delta)},
		{"margin", fmt.Sprintf("%+.6g", s.Margin)},
	}
	verdict := lipgloss.NewStyle().Bold(true).Foreground(th.Warning).Render(res.Verdict.String())
	if res.Verdict == oscillator.Growing {
		verdict = lipgloss.NewStyle().Bold(true).Foreground(th.Success).Render(res.Verdict.String())
		rows = append(rows,
			[2]string{"mu", fmt.Sprintf("%.12g", res.Mu)},
			[2]string{"phi", fmt.Sprintf("%.12g", res.Phi)},
			[2]string{"doubling time", doubling(s.DoublingTime)},
			[2]string{"residuals", fmt.Sprintf("%.2e  %.2e", s.Residual1, s.Residual2)},
		)
	}

	lines := []string{th.label().Render("verdict") + verdict}
	for _, r := range rows {
		lines = append(lines, th.label().Render(r[0])+th.value().Render(r[1]))
	}
	return strings.Join(lines, "\n")
}

func doubling(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.6g", v)
}

// ThetaPreview plots theta(t) of a trajectory, resampled to width columns.
func ThetaPreview(pts []trajectory.Point, b trajectory.Branch, width, height int) string {
	if len(pts) == 0 {
		return ""
	}
	theta, _ := trajectory.Columns(pts)
	return asciigraph.Plot(theta,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("theta(t), %s", b)),
	)
}

// Report writes the summary and, for a solved run, the theta(t) preview of
// the decaying branch.
func Report(w io.Writer, res oscillator.Result, decaying []trajectory.Point, th Theme) error {
	out := Summary(res, th)
	if res.Verdict == oscillator.Growing && len(decaying) > 0 {
		out += "\n\n" + ThetaPreview(decaying, trajectory.Decaying, 64, 8)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
