package pipeline_test

import (
	"errors"
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/san-kum/paramosc/internal/analysis"
	"github.com/san-kum/paramosc/internal/input"
	"github.com/san-kum/paramosc/internal/oscillator"
	"github.com/san-kum/paramosc/internal/pipeline"
)

var _ = Describe("Run", func() {
	var opts pipeline.Options

	BeforeEach(func() {
		opts = pipeline.DefaultOptions()
	})

	run := func(p oscillator.Params) *pipeline.Outcome {
		out, err := pipeline.Run(input.Fixed(p), opts, zap.NewNop())
		Expect(err).NotTo(HaveOccurred())
		return out
	}

	Context("with the resonant sample input", func() {
		var out *pipeline.Outcome

		BeforeEach(func() {
			out = run(oscillator.Params{W0: 1.0, W: 1.01, H: 0.1})
		})

		It("finds a real growth rate", func() {
			Expect(out.Solved()).To(BeTrue())
			Expect(out.Result.Delta).To(BeNumerically("~", 0.0402, 1e-12))
			Expect(out.Result.Mu).To(BeNumerically("~", 0.022775362258788123, 1e-12))
			Expect(out.Result.Phi).To(BeNumerically("~", 0.584199308660487, 1e-12))
		})

		It("samples both branches over the full grid", func() {
			Expect(out.Growing).To(HaveLen(40000))
			Expect(out.Decaying).To(HaveLen(40000))
			Expect(out.Growing[0].Theta).To(Equal(math.Cos(out.Result.Phi)))
			Expect(out.Decaying[0].Theta).To(Equal(math.Cos(out.Result.Phi)))
		})

		It("builds the portrait and bifurcation figures", func() {
			Expect(out.Figures).To(HaveLen(2))
			Expect(out.Figures[0].Panels).To(HaveLen(2))
			Expect(out.Figures[1].Title).To(HaveSuffix("w0 = 1.0"))

			pts := out.Curve.Points
			Expect(pts[0].H).To(Equal(2.0))
			Expect(pts[len(pts)-1].H).To(BeNumerically("~", 6, 1e-12))
		})
	})

	DescribeTable("reports no real solution without sampling",
		func(p oscillator.Params) {
			out := run(p)
			Expect(out.Solved()).To(BeFalse())
			Expect(out.Result.Verdict).To(Equal(oscillator.NoRealSolution))
			Expect(out.Growing).To(BeEmpty())
			Expect(out.Decaying).To(BeEmpty())
			Expect(out.Figures).To(BeEmpty())
		},
		Entry("exact resonance without drive", oscillator.Params{W0: 1, W: 1, H: 0}),
		Entry("far detuned", oscillator.Params{W0: 1, W: 2, H: 0.01}),
		Entry("on the boundary", oscillator.Params{W0: 1, W: 0, H: 2}),
	)

	It("aborts on unparsable input", func() {
		prompt := input.NewPrompt(strings.NewReader("1\nfast\n0.1\n"), GinkgoWriter)
		_, err := pipeline.Run(prompt, opts, nil)
		Expect(errors.Is(err, input.ErrParse)).To(BeTrue())
	})

	It("fails on w0 = 0", func() {
		_, err := pipeline.Run(input.Fixed(oscillator.Params{W0: 0, W: 1, H: 1}), opts, nil)
		Expect(err).To(MatchError(oscillator.ErrNumericDomain))
	})

	It("refuses a bifurcation curve too dense to sample", func() {
		opts.CurveStep = 1e-9
		_, err := pipeline.Run(input.Fixed(oscillator.Params{W0: 1, W: 1.01, H: 0.1}), opts, nil)
		Expect(err).To(MatchError(analysis.ErrCurveTooDense))
	})

	It("honours a shorter grid", func() {
		opts.Grid.End = 1
		out := run(oscillator.Params{W0: 1, W: 1.01, H: 0.1})
		Expect(out.Growing).To(HaveLen(200))
	})
})
