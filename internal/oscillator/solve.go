package oscillator

import (
	"math"
)

// Result is the tagged outcome of Solve. Mu and Phi are set only when
// Verdict is Growing.
type Result struct {
	Params  Params  `json:"params"`
	Delta   float64 `json:"delta"`
	Verdict Verdict `json:"verdict"`
	Mu      float64 `json:"mu"`
	Phi     float64 `json:"phi"`
}

// Coefficients returns b and c of x^2 + b x + c = 0 with x = mu^2.
func Coefficients(p Params) (b, c float64) {
	w2, w02 := p.W*p.W, p.W0*p.W0
	b = 2 * (w2 + w02)
	c = (w2-w02)*(w2-w02) - p.H*p.H/4*math.Pow(p.W0, 4)
	return b, c
}

// Roots returns both roots of the biquadratic in x = mu^2, "+" branch first.
// Since b > 0 for any w0 != 0 the "-" root is always negative, and the "+"
// root is non-negative exactly when c <= 0.
func Roots(p Params) (plus, minus float64, err error) {
	b, c := Coefficients(p)
	d := b*b - 4*c
	if d < 0 || math.IsNaN(d) {
		return 0, 0, &DomainError{Quantity: "discriminant", Value: d}
	}
	sd := math.Sqrt(d)
	return (-b + sd) / 2, (-b - sd) / 2, nil
}

// GrowthRate solves for mu >= 0. It fails with ErrNoRealSolution when the
// classifier rejects p.
func GrowthRate(p Params) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if Classify(p) != Growing {
		return 0, ErrNoRealSolution
	}
	x, _, err := Roots(p)
	if err != nil {
		return 0, err
	}
	if x < 0 || math.IsInf(x, 0) {
		return 0, &DomainError{Quantity: "mu^2", Value: x}
	}
	return math.Sqrt(x), nil
}

// Phase returns atan2(P(mu), Q(mu)). The argument order fixes the quadrant.
func Phase(p Params, mu float64) float64 {
	return math.Atan2(phaseP(p, mu), 2*p.W*mu)
}

func phaseP(p Params, mu float64) float64 {
	return p.W0*p.W0 - p.W*p.W + mu*mu + p.H/2*p.W0*p.W0
}

func phaseR(p Params, mu float64) float64 {
	return p.W0*p.W0 - p.W*p.W + mu*mu - p.H/2*p.W0*p.W0
}

// Residuals evaluates the two linear equations in cos(phi), sin(phi) that
// the ansatz has to satisfy. Both vanish for a consistent (mu, phi).
func Residuals(p Params, mu, phi float64) (r1, r2 float64) {
	q := 2 * p.W * mu
	sin, cos := math.Sincos(phi)
	r1 = phaseP(p, mu)*cos - q*sin
	r2 = q*cos + phaseR(p, mu)*sin
	return r1, r2
}

// Solve runs classifier, growth-rate and phase solver in sequence. A
// NoRealSolution verdict is not an error.
func Solve(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	res := Result{Params: p, Delta: Delta(p), Verdict: Classify(p)}
	if res.Verdict != Growing {
		return res, nil
	}

	mu, err := GrowthRate(p)
	if err != nil {
		return Result{}, err
	}
	phi := Phase(p, mu)
	if math.IsNaN(phi) {
		return Result{}, &DomainError{Quantity: "phi", Value: phi}
	}
	res.Mu, res.Phi = mu, phi
	return res, nil
}
