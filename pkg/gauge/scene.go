package gauge

import "image/color"

// Scene is a fully laid out gauge, ready for a sink.
// Primitives are listed in drawing order: arcs, tick labels, needle, label.
type Scene struct {
	Spec       Spec
	Angle      float64 // normalized reading
	Frame      Frame
	Background color.NRGBA
	Arcs       []Arc
	Ticks      []Text
	Needle     Needle
	Label      Label
}

// Size returns the square image side in pixels.
func (s *Scene) Size() int { return int(s.Frame.Size) }

// Build runs the gauge stages on spec.
//
// The only fatal input is a non-positive Max (INVALID_SCALE); labels that
// fail validation are reported as INVALID_INPUT.
func Build(spec Spec, opts ...Option) (*Scene, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	f := cfg.frame()

	angle, err := Normalize(spec.Value, spec.Max, cfg.clamp)
	if err != nil {
		return nil, err
	}
	ticks, err := BuildTicks(spec.Max)
	if err != nil {
		return nil, err
	}

	needle := ProjectNeedle(angle, f)
	needle.Color = cfg.theme.Needle
	texts, label := PlaceLabels(ticks, spec, f, cfg.theme)

	return &Scene{
		Spec:       spec,
		Angle:      angle,
		Frame:      f,
		Background: cfg.theme.Background,
		Arcs:       composeArcs(angle, spec.Color, spec.Gradient, cfg, f),
		Ticks:      texts,
		Needle:     needle,
		Label:      label,
	}, nil
}
