package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/matzehuels/speedo/pkg/colors"
	"github.com/matzehuels/speedo/pkg/fonts"
	"github.com/matzehuels/speedo/pkg/gauge"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	embedFont bool
}

// WithEmbeddedFont inlines the Go fonts as @font-face data URIs so the SVG
// looks the same on systems without them. Adds roughly 250 KB.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embedFont = true } }

// RenderSVG writes the scene as a standalone SVG document.
func RenderSVG(s *gauge.Scene, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	size := s.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		size, size, size, size)

	if r.embedFont {
		renderFontDefs(&buf)
	}
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n", size, size, colors.Hex(s.Background))

	for _, a := range s.Arcs {
		renderArc(&buf, s.Frame, a)
	}
	for _, t := range s.Ticks {
		renderText(&buf, t.Pos.X, t.Pos.Y, t.Text, t.Size, t.Color, false)
	}
	renderNeedle(&buf, s.Needle)
	for i, y := range s.Label.LineCenters() {
		renderText(&buf, s.Label.Pos.X, y, s.Label.Lines[i], s.Label.Size, s.Label.Color, true)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderFontDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs><style>\n")
	fmt.Fprintf(buf, "    @font-face { font-family: '%s'; font-weight: normal; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
		fonts.FontFamily, fonts.RegularBase64())
	fmt.Fprintf(buf, "    @font-face { font-family: '%s'; font-weight: bold; src: url(data:font/ttf;base64,%s) format('truetype'); }\n",
		fonts.FontFamily, fonts.BoldBase64())
	buf.WriteString("  </style></defs>\n")
}

// renderArc emits the arc as a path of chunks no wider than a half turn,
// which keeps the SVG arc flags unambiguous.
func renderArc(buf *bytes.Buffer, f gauge.Frame, a gauge.Arc) {
	start, end := span(a)
	if start == end {
		return
	}

	n := int(math.Ceil(math.Abs(end-start) / 180))
	cw := 0
	if (end > start) == (f.Orientation == gauge.Clockwise) {
		cw = 1
	}

	var d strings.Builder
	p := f.At(start, a.Radius)
	fmt.Fprintf(&d, "M %.2f %.2f", p.X, p.Y)
	for i := 1; i <= n; i++ {
		p = f.At(start+(end-start)*float64(i)/float64(n), a.Radius)
		fmt.Fprintf(&d, " A %.2f %.2f 0 0 %d %.2f %.2f", a.Radius, a.Radius, cw, p.X, p.Y)
	}

	fmt.Fprintf(buf, `  <path class="arc-%s" d="%s" fill="none" stroke="%s"%s stroke-width="%.2f"/>`+"\n",
		a.Kind, d.String(), colors.Hex(a.Color), opacityAttr("stroke-opacity", a.Color), a.Width)
}

func renderNeedle(buf *bytes.Buffer, n gauge.Needle) {
	pts := make([]string, len(n.Polygon))
	for i, p := range n.Polygon {
		pts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(buf, `  <polygon class="needle" points="%s" fill="%s"%s/>`+"\n",
		strings.Join(pts, " "), colors.Hex(n.Color), opacityAttr("fill-opacity", n.Color))
}

func renderText(buf *bytes.Buffer, x, y float64, text string, size float64, col color.NRGBA, bold bool) {
	weight := ""
	if bold {
		weight = ` font-weight="bold"`
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-size="%.2f"%s fill="%s"%s>%s</text>`+"\n",
		x, y, fonts.FallbackFontFamily, size, weight, colors.Hex(col), opacityAttr("fill-opacity", col), escapeXML(text))
}

// opacityAttr returns the opacity attribute for translucent colors, or
// nothing for opaque ones.
func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%.2f"`, name, colors.Opacity(c))
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
