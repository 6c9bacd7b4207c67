// Package oscillator holds the closed-form analysis of the parametric
// oscillator theta'' + w0^2 (1 + h cos(2wt)) theta = 0 under the ansatz
// theta(t) = e^(mu t) cos(wt + phi).
package oscillator

import (
	"fmt"
	"math"
)

// Params are the three scalars of a single analysis.
type Params struct {
	W0 float64 `yaml:"w0" json:"w0"`
	W  float64 `yaml:"w" json:"w"`
	H  float64 `yaml:"h" json:"h"`
}

func (p Params) Validate() error {
	for _, q := range []struct {
		name string
		v    float64
	}{{"w0", p.W0}, {"w", p.W}, {"h", p.H}} {
		if math.IsNaN(q.v) || math.IsInf(q.v, 0) {
			return &DomainError{Quantity: q.name, Value: q.v}
		}
	}
	if p.W0 == 0 {
		return &DomainError{Quantity: "w0", Value: p.W0}
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("w0=%g w=%g h=%g", p.W0, p.W, p.H)
}
