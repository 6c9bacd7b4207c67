package oscillator

import "math"

// Verdict is the outcome of the stability classifier.
type Verdict int

const (
	NoRealSolution Verdict = iota
	Growing
)

// NoRealSolutionMessage is printed when the classifier rejects the params.
const NoRealSolutionMessage = "Unfortunately, this parametric oscillator has no real solutions"

func (v Verdict) String() string {
	switch v {
	case Growing:
		return "growing"
	default:
		return "no real solution"
	}
}

// Delta is the stability threshold 2|1-(w/w0)^2|.
func Delta(p Params) float64 {
	r := p.W / p.W0
	return 2 * math.Abs(1-r*r)
}

// Classify reports Growing only for h strictly above Delta; the boundary
// itself has no real solution.
func Classify(p Params) Verdict {
	if p.H > Delta(p) {
		return Growing
	}
	return NoRealSolution
}
