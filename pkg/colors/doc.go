// Package colors parses user color specs and provides the color ramps used
// for gradient gauge arcs.
//
// # Parsing
//
// [Parse] accepts CSS/SVG color names ("limegreen", "orange") and hex
// notation ("#0f0", "#32cd32"). Names resolve through
// golang.org/x/image/colornames; hex through go-colorful.
//
// # Ramps
//
// A [Ramp] maps t in [0, 1] onto a color by interpolating between evenly
// spaced stops. The built-in ramps are the perceptually ordered matplotlib
// maps (plasma, viridis, inferno, magma) sampled at eleven stops, plus two
// diverging ramps for dashboards:
//
//   - traffic: green → yellow → red
//   - universal: blue → gray → orange (color-blind safe)
//
// Example:
//
//	r, _ := colors.Lookup("plasma")
//	c := r.At(0.5) // #cc4778
package colors
