// Package pkg provides the core libraries for speedo gauge rendering.
//
// # Overview
//
// Speedo draws semicircular analog gauges: a 180° scale from 0 to a maximum,
// numbered ticks, an arc filled up to the current value (flat or as a
// palette gradient), a needle and a value/title label under the pivot.
// The pkg directory is organized into three areas:
//
//  1. [gauge] - Domain logic (normalization, ticks, arcs, needle, labels)
//  2. [render/sink] - Output formats (PNG, SVG, PDF, JSON)
//  3. [pipeline] - Orchestration with caching, used by the CLI, [dashboard]
//     batches and the HTTP [server]
//
// # Architecture
//
// The data flow is a straight line:
//
//	gauge.Spec (value, max, title, unit, color, gradient)
//	         ↓
//	    [gauge] package (Build: angle, ticks, arcs, needle, labels)
//	         ↓
//	    gauge.Scene (plain geometry, no drawing state)
//	         ↓
//	    [render/sink] package (RenderPNG, RenderSVG, RenderPDF, RenderJSON)
//	         ↓
//	    PNG/SVG/PDF/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/speedo/pkg/colors"
//	    "github.com/matzehuels/speedo/pkg/gauge"
//	    "github.com/matzehuels/speedo/pkg/render/sink"
//	)
//
//	spec := gauge.Spec{
//	    Value:    80,
//	    Max:      220,
//	    Title:    "Speed",
//	    Unit:     "km/h",
//	    Color:    colors.MustParse("limegreen"),
//	    Gradient: true,
//	}
//	art, err := sink.Render(spec, sink.FormatPNG, gauge.WithSize(800))
//
// # Main Packages
//
// [gauge] - Pure layout. [gauge.Build] turns a Spec into a Scene; every
// step (Normalize, BuildTicks, ComposeArcs, ProjectNeedle, PlaceLabels) is
// exported and testable on its own.
//
// [colors] - Color parsing (CSS names, hex) and gradient palettes.
//
// [fonts] - Embedded Go fonts for raster and vector text.
//
// [render] - External conversion through rsvg-convert (SVG to PDF/PNG).
//
// [cache] - Artifact caches: file (CLI), memory and Redis (server).
//
// [observability] - Hooks for build, render, cache and HTTP events.
//
// [errors] - Structured error codes shared by the CLI and the server.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test -run Example ./...  # Examples only
//
// Redis tests run when SPEEDO_TEST_REDIS_URL points at a server.
//
// [gauge]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/gauge
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/render/sink
// [render]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/pipeline
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/dashboard
// [server]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/server
// [colors]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/colors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/speedo/pkg/errors
package pkg
