// Package pipeline provides the gauge rendering pipeline for speedo.
//
// This package turns loosely typed [Options] (CLI flags, TOML entries, HTTP
// requests) into rendered artifacts. By centralizing this logic, the CLI,
// the dashboard batch and the HTTP server behave the same way and share
// one cache.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: validate options and lay out the gauge (see [gauge.Build])
//  2. Render: produce one artifact per requested format (see [sink])
//
// Artifacts are cached by a hash of everything that affects the output. When
// every requested format is cached the build stage is skipped entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Value:   80,
//	    Max:     220,
//	    Title:   "Speed",
//	    Unit:    "km/h",
//	    Formats: []string{"png", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"].Data
//
// Render several gauges concurrently:
//
//	results := runner.RenderBatch(ctx, []pipeline.Options{speed, rpm, temp, fuel})
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/speedo/pkg/buildinfo"
	"github.com/matzehuels/speedo/pkg/cache"
	"github.com/matzehuels/speedo/pkg/colors"
	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/gauge"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Dashboard, and Server
// =============================================================================

const (
	// DefaultColor is the active arc color when none is given.
	DefaultColor = "orange"

	// DefaultSize is the default square image side in pixels.
	DefaultSize = gauge.DefaultSize

	// MinSize and MaxSize bound the image side.
	MinSize = 32
	MaxSize = 4096

	// DefaultSegments is the default number of gradient segments.
	DefaultSegments = gauge.DefaultSegments

	// MaxSegments bounds the gradient segment count.
	MaxSegments = 1000

	// DefaultFormat is rendered when no format is requested.
	DefaultFormat = sink.FormatPNG

	// DefaultPalette is the gradient ramp when none is given.
	DefaultPalette = colors.DefaultRamp

	// DefaultTheme is the color theme when none is given.
	DefaultTheme = "dark"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for rendering one gauge.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Gauge
	Value    float64 `json:"value"`
	Max      int     `json:"max"`
	Title    string  `json:"title,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Color    string  `json:"color,omitempty"` // CSS name or hex
	Gradient bool    `json:"gradient,omitempty"`

	// Appearance
	Size        int    `json:"size,omitempty"`
	Segments    int    `json:"segments,omitempty"`
	Palette     string `json:"palette,omitempty"`
	Theme       string `json:"theme,omitempty"`
	Orientation string `json:"orientation,omitempty"` // ccw or cw
	Clamp       string `json:"clamp,omitempty"`       // clamp or overflow

	// Output
	Formats []string `json:"formats,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // bypass the artifact cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has succeeded.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the laid out gauge. Nil when every artifact came from cache.
	Scene *gauge.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string]*sink.Artifact

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for a pipeline run.
type CacheInfo struct {
	Hits      []string // formats served from cache
	RenderHit bool     // whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats normalizes format names in place, drops duplicates and
// rejects unknown formats.
func ValidateFormats(formats []string) ([]string, error) {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		parsed, err := sink.ParseFormat(f)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, parsed) {
			out = append(out, parsed)
		}
	}
	return out, nil
}

// ParseFormats splits a comma separated format list such as "png,svg".
func ParseFormats(s string) ([]string, error) {
	var parts []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return ValidateFormats(parts)
}

// ValidateSize checks the image side.
func ValidateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return errs.New(errs.ErrCodeInvalidInput, "size must be between %d and %d, got %d", MinSize, MaxSize, size)
	}
	return nil
}

// ValidateSegments checks the gradient segment count.
func ValidateSegments(n int) error {
	if n < 1 || n > MaxSegments {
		return errs.New(errs.ErrCodeInvalidInput, "segments must be between 1 and %d, got %d", MaxSegments, n)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills empty fields with their defaults. Max has no default:
// a missing scale is an error.
func (o *Options) SetDefaults() {
	if o.Color == "" {
		o.Color = DefaultColor
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Segments == 0 {
		o.Segments = DefaultSegments
	}
	if o.Palette == "" {
		o.Palette = DefaultPalette
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Orientation == "" {
		o.Orientation = gauge.CounterClockwise.String()
	}
	if o.Clamp == "" {
		o.Clamp = gauge.ClampRange.String()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if _, err := o.Spec(); err != nil {
		return err
	}
	if _, err := o.GaugeOptions(); err != nil {
		return err
	}
	if err := ValidateSize(o.Size); err != nil {
		return err
	}
	if err := ValidateSegments(o.Segments); err != nil {
		return err
	}
	formats, err := ValidateFormats(o.Formats)
	if err != nil {
		return err
	}
	o.Formats = formats

	o.validated = true
	return nil
}

// Spec converts the options to a gauge spec.
func (o *Options) Spec() (gauge.Spec, error) {
	c, err := colors.Parse(o.Color)
	if err != nil {
		return gauge.Spec{}, err
	}
	spec := gauge.Spec{
		Value:    o.Value,
		Max:      o.Max,
		Title:    o.Title,
		Unit:     o.Unit,
		Color:    c,
		Gradient: o.Gradient,
	}
	return spec, spec.Validate()
}

// GaugeOptions converts appearance fields to gauge build options.
func (o *Options) GaugeOptions() ([]gauge.Option, error) {
	palette, err := colors.Lookup(o.Palette)
	if err != nil {
		return nil, err
	}
	theme, err := gauge.ThemeByName(o.Theme)
	if err != nil {
		return nil, err
	}
	orientation, err := gauge.ParseOrientation(o.Orientation)
	if err != nil {
		return nil, err
	}
	clamp, err := gauge.ParseClampPolicy(o.Clamp)
	if err != nil {
		return nil, err
	}
	return []gauge.Option{
		gauge.WithSize(o.Size),
		gauge.WithSegments(o.Segments),
		gauge.WithPalette(palette),
		gauge.WithTheme(theme),
		gauge.WithOrientation(orientation),
		gauge.WithClamp(clamp),
	}, nil
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Value:       gauge.FormatValue(o.Value),
		Max:         o.Max,
		Title:       o.Title,
		Unit:        o.Unit,
		Color:       strings.ToLower(strings.TrimSpace(o.Color)),
		Gradient:    o.Gradient,
		Format:      format,
		Size:        o.Size,
		Segments:    o.Segments,
		Palette:     strings.ToLower(o.Palette),
		Theme:       strings.ToLower(o.Theme),
		Orientation: strings.ToLower(o.Orientation),
		Clamp:       strings.ToLower(o.Clamp),
		Renderer:    buildinfo.Renderer(),
	}
}

// Name returns a short identifier for logs and file names: the title,
// or "gauge" when untitled.
func (o *Options) Name() string {
	if o.Title == "" {
		return "gauge"
	}
	return o.Title
}
