package sink

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/speedo/pkg/fonts"
	"github.com/matzehuels/speedo/pkg/gauge"
)

// RenderPNG rasterizes the scene. The drawing context lives only for the
// duration of the call.
func RenderPNG(s *gauge.Scene) ([]byte, error) {
	regular, err := fonts.Regular()
	if err != nil {
		return nil, err
	}
	bold, err := fonts.Bold()
	if err != nil {
		return nil, err
	}

	size := s.Size()
	dc := gg.NewContext(size, size)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(s.Background))
	dc.SetLineCap(gg.LineCapButt)

	for _, a := range s.Arcs {
		if err := strokeArc(dc, s.Frame, a); err != nil {
			return nil, fmt.Errorf("draw %s arc: %w", a.Kind, err)
		}
	}

	if len(s.Ticks) > 0 {
		face := regular.Face(s.Ticks[0].Size)
		for _, t := range s.Ticks {
			drawCentered(dc, face, t.Text, t.Pos.X, t.Pos.Y, t.Color)
		}
	}

	if err := fillNeedle(dc, s.Needle); err != nil {
		return nil, fmt.Errorf("draw needle: %w", err)
	}

	face := bold.Face(s.Label.Size)
	for i, y := range s.Label.LineCenters() {
		drawCentered(dc, face, s.Label.Lines[i], s.Label.Pos.X, y, s.Label.Color)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func strokeArc(dc *gg.Context, f gauge.Frame, a gauge.Arc) error {
	lo, hi, ok := screenRange(f, a)
	if !ok {
		return nil
	}
	dc.ClearPath()
	dc.SetColor(a.Color)
	dc.SetLineWidth(a.Width)
	dc.DrawArc(f.Center.X, f.Center.Y, a.Radius, lo, hi)
	return dc.Stroke()
}

func fillNeedle(dc *gg.Context, n gauge.Needle) error {
	if len(n.Polygon) == 0 {
		return nil
	}
	dc.ClearPath()
	dc.SetColor(n.Color)
	dc.MoveTo(n.Polygon[0].X, n.Polygon[0].Y)
	for _, p := range n.Polygon[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	return dc.Fill()
}

// drawCentered draws s with its box centered on (x, y).
func drawCentered(dc *gg.Context, face text.Face, s string, x, y float64, c color.NRGBA) {
	m := face.Metrics()
	dc.SetFont(face)
	dc.SetColor(c)
	dc.DrawString(s, x-face.Advance(s)/2, y+(m.Ascent-m.Descent)/2)
}
