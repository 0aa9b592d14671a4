// Package sink turns a laid out [gauge.Scene] into image bytes.
//
// # Formats
//
//   - PNG: native raster via the gogpu/gg software rasterizer
//   - SVG: hand-written vector output
//   - PDF: SVG converted with rsvg-convert (see [render.ToPDF])
//   - JSON: the scene's geometry for external renderers
//
// [Render] is the one-call entry point: it builds the scene and returns an
// [Artifact] that owns the produced bytes.
//
//	art, err := sink.Render(spec, sink.FormatPNG, gauge.WithSize(800))
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("speed.png", art.Data, 0o644)
//
// All renderers are deterministic: the same scene always yields the same
// bytes.
//
// [render.ToPDF]: github.com/matzehuels/speedo/pkg/render.ToPDF
package sink
