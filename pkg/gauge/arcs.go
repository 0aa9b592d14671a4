package gauge

import "image/color"

// ArcKind tells sinks what an arc represents.
type ArcKind string

const (
	ArcTrack    ArcKind = "track"    // full 0°–180° background arc
	ArcActive   ArcKind = "active"   // flat arc from 0° to the reading
	ArcGradient ArcKind = "gradient" // one ramp segment drawn over the active arc
)

// Arc is a stroked circular band between two gauge angles.
// Start and End are degrees; End may be less than Start for negative readings.
type Arc struct {
	Kind   ArcKind
	Start  float64
	End    float64
	Radius float64
	Width  float64
	Color  color.NRGBA
}

// Sweep returns End-Start.
func (a Arc) Sweep() float64 { return a.End - a.Start }

// ComposeArcs returns the arcs of a gauge at angle, in drawing order:
// the track, then the flat active arc, then the gradient segments when
// gradient is set. A zero angle yields only the track.
func ComposeArcs(angle float64, c color.NRGBA, gradient bool, opts ...Option) []Arc {
	cfg := newConfig(opts)
	return composeArcs(angle, c, gradient, cfg, cfg.frame())
}

func composeArcs(angle float64, c color.NRGBA, gradient bool, cfg config, f Frame) []Arc {
	width := f.StrokeWidth()
	arcs := make([]Arc, 0, 2+cfg.segments)
	arcs = append(arcs, Arc{
		Kind: ArcTrack, Start: 0, End: 180,
		Radius: f.Radius, Width: width, Color: cfg.theme.Track,
	})

	if angle == 0 {
		return arcs
	}

	arcs = append(arcs, Arc{
		Kind: ArcActive, Start: 0, End: angle,
		Radius: f.Radius, Width: width, Color: c,
	})
	if !gradient {
		return arcs
	}

	n := cfg.segments
	for i := 0; i < n; i++ {
		arcs = append(arcs, Arc{
			Kind:   ArcGradient,
			Start:  angle * float64(i) / float64(n),
			End:    angle * float64(i+1) / float64(n),
			Radius: f.Radius,
			Width:  width,
			Color:  cfg.palette.At(float64(i) / float64(n)),
		})
	}
	return arcs
}

// SweepOf sums the sweeps of all arcs of the given kind.
func SweepOf(arcs []Arc, kind ArcKind) float64 {
	var total float64
	for _, a := range arcs {
		if a.Kind == kind {
			total += a.Sweep()
		}
	}
	return total
}
