package sink

import (
	"context"

	"github.com/matzehuels/speedo/pkg/gauge"
	"github.com/matzehuels/speedo/pkg/render"
)

// RenderPDF renders the scene as PDF via SVG conversion. The fonts are
// embedded so the PDF does not depend on what librsvg finds installed.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s *gauge.Scene, opts ...SVGOption) ([]byte, error) {
	opts = append([]SVGOption{WithEmbeddedFont()}, opts...)
	return render.ToPDF(ctx, RenderSVG(s, opts...))
}
