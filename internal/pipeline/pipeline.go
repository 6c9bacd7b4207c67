// Package pipeline composes input, solver, sampler and figure building into
// the single straight-line run of the program.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/config"
	"github.com/san-kum/paramosc/internal/figure"
	"github.com/san-kum/paramosc/internal/input"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/trajectory"
)

type Options struct {
	Grid      trajectory.Grid
	CurveStep float64
	Axes      config.AxesConfig
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultConfig())
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Grid: trajectory.Grid{
			Start: cfg.Sampling.TStart,
			End:   cfg.Sampling.TEnd,
			Step:  cfg.Sampling.Dt,
		},
		CurveStep: cfg.Sampling.CurveStep,
		Axes:      cfg.Axes,
	}
}

// Outcome is everything a run produced. Only Result is set when there is no
// real solution.
type Outcome struct {
	Result   oscillator.Result
	Growing  []trajectory.Point
	Decaying []trajectory.Point
	Curve    analysis.Curve
	Figures  []figure.Figure
}

func (o *Outcome) Solved() bool {
	return o.Result.Verdict == oscillator.Growing
}

// Run reads the params once and carries them through the solver. A
// NoRealSolution verdict returns a nil error.
func Run(in input.Provider, opts Options, logger *zap.Logger) (*Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p, err := in.Params()
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}
	logger.Debug("params read", zap.Float64("w0", p.W0), zap.Float64("w", p.W), zap.Float64("h", p.H))

	res, err := oscillator.Solve(p)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", p, err)
	}
	logger.Debug("classified",
		zap.Stringer("verdict", res.Verdict),
		zap.Float64("delta", res.Delta))

	out := &Outcome{Result: res}
	if !out.Solved() {
		return out, nil
	}
	logger.Debug("solved", zap.Float64("mu", res.Mu), zap.Float64("phi", res.Phi))

	if err := analysis.CheckCurve(p.W0, opts.CurveStep); err != nil {
		return nil, err
	}
	out.Growing = trajectory.Sample(res, trajectory.Growing, opts.Grid)
	out.Decaying = trajectory.Sample(res, trajectory.Decaying, opts.Grid)
	out.Curve = analysis.BifurcationCurve(p.W0, opts.CurveStep)
	out.Figures = figure.Build(res, out.Growing, out.Decaying, out.Curve, opts.Axes)
	logger.Debug("sampled",
		zap.Int("trajectory_points", len(out.Growing)),
		zap.Int("curve_points", len(out.Curve.Points)),
		zap.Int("figures", len(out.Figures)))
	return out, nil
}
