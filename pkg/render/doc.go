// Package render holds format conversion shared by the gauge sinks.
//
// Gauges are drawn natively to SVG and PNG (see the [sink] subpackage).
// PDF output is produced from the SVG by the external rsvg-convert tool:
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(ctx, svg)
//
// rsvg-convert ships with librsvg. When it is missing, conversions fail with
// an UNSUPPORTED error so callers can fall back to another format.
//
// [sink]: github.com/matzehuels/speedo/pkg/render/sink
package render
