package analysis

import (
	"math"

	"github.com/san-kum/paramosc/internal/oscillator"
)

// Summary collects the derived quantities printed next to the figures.
type Summary struct {
	Delta float64
	// Margin is h - delta; positive inside the instability tongue.
	Margin float64
	// DoublingTime is ln2/mu for the growing branch, +Inf when mu == 0.
	DoublingTime float64
	Residual1    float64
	Residual2    float64
}

func Summarize(res oscillator.Result) Summary {
	s := Summary{
		Delta:        res.Delta,
		Margin:       res.Params.H - res.Delta,
		DoublingTime: math.Inf(1),
	}
	if res.Verdict != oscillator.Growing {
		return s
	}
	if res.Mu > 0 {
		s.DoublingTime = math.Ln2 / res.Mu
	}
	s.Residual1, s.Residual2 = oscillator.Residuals(res.Params, res.Mu, res.Phi)
	return s
}
