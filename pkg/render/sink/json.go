package sink

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/speedo/pkg/colors"
	"github.com/matzehuels/speedo/pkg/gauge"
)

type jsonOutput struct {
	Size        int        `json:"size"`
	Center      jsonPoint  `json:"center"`
	Radius      float64    `json:"radius"`
	Orientation string     `json:"orientation"`
	Background  string     `json:"background"`
	Spec        jsonSpec   `json:"spec"`
	Angle       float64    `json:"angle"`
	Arcs        []jsonArc  `json:"arcs"`
	Ticks       []jsonText `json:"ticks"`
	Needle      jsonNeedle `json:"needle"`
	Label       jsonLabel  `json:"label"`
}

type jsonSpec struct {
	Value    *float64 `json:"value"` // null for NaN and ±Inf
	Max      int      `json:"max"`
	Title    string   `json:"title,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Color    string   `json:"color"`
	Gradient bool     `json:"gradient,omitempty"`
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonArc struct {
	Kind    string  `json:"kind"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Radius  float64 `json:"radius"`
	Width   float64 `json:"width"`
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
}

type jsonText struct {
	Pos   jsonPoint `json:"pos"`
	Text  string    `json:"text"`
	Size  float64   `json:"size"`
	Color string    `json:"color"`
}

type jsonNeedle struct {
	Angle   float64     `json:"angle"`
	Tip     jsonPoint   `json:"tip"`
	Polygon []jsonPoint `json:"polygon"`
	Color   string      `json:"color"`
}

type jsonLabel struct {
	Pos        jsonPoint `json:"pos"`
	Lines      []string  `json:"lines"`
	Size       float64   `json:"size"`
	LineHeight float64   `json:"line_height"`
	Color      string    `json:"color"`
}

// RenderJSON exports the scene geometry. Angles are degrees from the zero
// end; positions are pixels with y pointing down.
func RenderJSON(s *gauge.Scene) ([]byte, error) {
	out := jsonOutput{
		Size:        s.Size(),
		Center:      toJSONPoint(s.Frame.Center),
		Radius:      s.Frame.Radius,
		Orientation: s.Frame.Orientation.String(),
		Background:  colors.Hex(s.Background),
		Spec: jsonSpec{
			Value:    finite(s.Spec.Value),
			Max:      s.Spec.Max,
			Title:    s.Spec.Title,
			Unit:     s.Spec.Unit,
			Color:    colors.Hex(s.Spec.Color),
			Gradient: s.Spec.Gradient,
		},
		Angle: s.Angle,
		Arcs:  make([]jsonArc, len(s.Arcs)),
		Ticks: make([]jsonText, len(s.Ticks)),
		Needle: jsonNeedle{
			Angle:   s.Needle.Angle,
			Tip:     toJSONPoint(s.Needle.Tip),
			Polygon: make([]jsonPoint, len(s.Needle.Polygon)),
			Color:   colors.Hex(s.Needle.Color),
		},
		Label: jsonLabel{
			Pos:        toJSONPoint(s.Label.Pos),
			Lines:      s.Label.Lines,
			Size:       s.Label.Size,
			LineHeight: s.Label.LineHeight,
			Color:      colors.Hex(s.Label.Color),
		},
	}

	for i, a := range s.Arcs {
		out.Arcs[i] = jsonArc{
			Kind:    string(a.Kind),
			Start:   a.Start,
			End:     a.End,
			Radius:  a.Radius,
			Width:   a.Width,
			Color:   colors.Hex(a.Color),
			Opacity: colors.Opacity(a.Color),
		}
	}
	for i, t := range s.Ticks {
		out.Ticks[i] = jsonText{Pos: toJSONPoint(t.Pos), Text: t.Text, Size: t.Size, Color: colors.Hex(t.Color)}
	}
	for i, p := range s.Needle.Polygon {
		out.Needle.Polygon[i] = toJSONPoint(p)
	}

	return json.MarshalIndent(out, "", "  ")
}

func toJSONPoint(p gauge.Point) jsonPoint { return jsonPoint{X: p.X, Y: p.Y} }

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
