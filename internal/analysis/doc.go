// Package analysis provides the parameter-plane view of the oscillator.
//
//   - [BifurcationCurve]: the boundary h = 2|1-(w/w0)^2| sampled over [0, 2 w0]
//   - [Summarize]: stability margin, doubling time and solver residuals
//
// Points above the curve belong to the instability tongue around w = w0,
// where the ansatz has a real growth rate:
//
//	c := analysis.BifurcationCurve(1.0, 0.005)
//	if c.Unstable(1.01, 0.1) {
//	    // mu > 0 exists
//	}
package analysis
