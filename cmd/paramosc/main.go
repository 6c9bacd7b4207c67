package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/config"
	"github.com/san-kum/paramosc/internal/export"
	"github.com/san-kum/paramosc/internal/figure"
	"github.com/san-kum/paramosc/internal/input"
	"github.com/san-kum/paramosc/internal/logging"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/pipeline"
	"github.com/san-kum/paramosc/internal/viz"
)

type flags struct {
	configFile string
	preset     string
	w0, w, h   float64
	outDir     string
	format     string
	view       string
	theme      string
	verbose    bool
	curveStep  float64
}

// main runs the analysis; on error it prints the error and exits with 1.
// "No real solution" is a normal outcome and exits with 0.
func main() {
	rootCmd := newRootCmd(os.Stdin, os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var f flags

	rootCmd := &cobra.Command{
		Use:   "paramosc",
		Short: "growth rate, phase portraits and stability boundary of a parametric oscillator",
		Long: `paramosc analyses theta'' + w0^2 (1 + h cos(2wt)) theta = 0 with the ansatz
theta(t) = e^(mu t) cos(wt + phi).

Without flags it prompts for w0, w and h, reports whether a real growth
rate exists and shows the phase portraits and the bifurcation diagram.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, &f, in, out)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&f.preset, "preset", "", "use a named parameter preset")
	rootCmd.Flags().Float64Var(&f.w0, "w0", 1.0, "natural frequency (with --w and --h skips the prompts)")
	rootCmd.Flags().Float64Var(&f.w, "w", 1.0, "drive frequency")
	rootCmd.Flags().Float64Var(&f.h, "h", 0.0, "modulation depth")
	rootCmd.Flags().StringVar(&f.outDir, "out", "", "export figures into this directory")
	rootCmd.Flags().StringVar(&f.format, "format", "png", "export format (png, svg)")
	rootCmd.Flags().StringVar(&f.view, "view", "tui", "presentation (tui, ascii, none)")
	rootCmd.Flags().StringVar(&f.theme, "theme", "minimal", "color theme")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(out)
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve [w0]",
		Short: "plot the bifurcation curve h = 2|1-(w/w0)^2|",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotCurve(args[0], f.curveStep, out)
		},
	}
	curveCmd.Flags().Float64Var(&f.curveStep, "step", config.DefaultCurveStep, "w sampling step")

	rootCmd.AddCommand(presetsCmd, curveCmd)
	return rootCmd
}

func runAnalysis(cmd *cobra.Command, f *flags, in io.Reader, out io.Writer) error {
	cfg := config.DefaultConfig()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	// flags override config only when given
	if cmd.Flags().Changed("out") {
		cfg.Output.Dir = f.outDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = f.format
	}
	if cmd.Flags().Changed("view") {
		cfg.View.Mode = f.view
	}
	if cmd.Flags().Changed("theme") {
		cfg.View.Theme = f.theme
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(f.verbose, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	provider, err := chooseProvider(cmd, f, cfg, in, out)
	if err != nil {
		return err
	}

	outcome, err := pipeline.Run(provider, pipeline.OptionsFromConfig(cfg), logger)
	if err != nil {
		return err
	}
	if !outcome.Solved() {
		_, err := fmt.Fprintln(out, oscillator.NoRealSolutionMessage)
		return err
	}

	if cfg.Output.Dir != "" {
		paths, err := export.SaveAll(cfg.Output.Dir, outcome.Figures, export.Options{
			Format:   cfg.Output.Format,
			DPI:      cfg.Output.DPI,
			WidthIn:  cfg.Output.WidthIn,
			HeightIn: cfg.Output.HeightIn,
		})
		if err != nil {
			return err
		}
		for _, p := range paths {
			logger.Info("figure exported", zap.String("path", p))
			fmt.Fprintf(out, "wrote %s\n", p)
		}
	}

	return present(cfg, outcome, in, out)
}

func chooseProvider(cmd *cobra.Command, f *flags, cfg *config.Config, in io.Reader, out io.Writer) (input.Provider, error) {
	set := 0
	for _, name := range []string{"w0", "w", "h"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	switch {
	case set == 3:
		return input.Fixed(oscillator.Params{W0: f.w0, W: f.w, H: f.h}), nil
	case set > 0:
		return nil, fmt.Errorf("--w0, --w and --h must be given together")
	case f.preset != "":
		return input.Preset(f.preset)
	}
	if p, ok := input.FromConfig(cfg); ok {
		return p, nil
	}
	return input.NewPrompt(in, out), nil
}

func present(cfg *config.Config, o *pipeline.Outcome, in io.Reader, out io.Writer) error {
	th := viz.GetTheme(cfg.View.Theme)
	switch cfg.View.Mode {
	case "tui":
		v := viz.NewViewer(o.Figures, viz.Summary(o.Result, th), th, cfg.View.Width, cfg.View.Height)
		return viz.RunViewer(v, tea.WithInput(in), tea.WithOutput(out))
	case "ascii":
		if err := viz.Report(out, o.Result, o.Decaying, th); err != nil {
			return err
		}
		fmt.Fprintln(out)
		return viz.Static(out, o.Figures, th, cfg.View.Width, cfg.View.Height)
	default:
		return viz.Report(out, o.Result, o.Decaying, th)
	}
}

func listPresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tW0\tW\tH\tVERDICT")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\n", name, p.W0, p.W, p.H, oscillator.Classify(p))
	}
	return w.Flush()
}

func plotCurve(arg string, step float64, out io.Writer) error {
	w0, err := input.ParseFloat("w0", arg)
	if err != nil {
		return err
	}
	if err := (oscillator.Params{W0: w0}).Validate(); err != nil {
		return err
	}

	if err := analysis.CheckCurve(w0, step); err != nil {
		return err
	}
	curve := analysis.BifurcationCurve(w0, step)
	_, hs := curve.Columns()
	graph := asciigraph.Plot(hs,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("h over w in [0, %g]; unstable above the curve", 2*w0)),
	)
	fmt.Fprintln(out, "Bifurcation diagram for parametric oscillator with w0 = "+figure.FormatW0(w0))
	fmt.Fprintln(out, graph)
	return nil
}
