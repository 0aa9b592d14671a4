package sink

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/gauge"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

var mediaTypes = map[string]string{
	FormatPNG:  "image/png",
	FormatSVG:  "image/svg+xml",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatPNG, FormatSVG, FormatPDF, FormatJSON}
}

// ParseFormat normalizes a format name and rejects unknown ones.
func ParseFormat(s string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if _, ok := mediaTypes[f]; !ok {
		return "", errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// MediaType returns the MIME type of a format, or "" if unknown.
func MediaType(format string) string { return mediaTypes[format] }

// Artifact is a rendered gauge. It owns Data; callers may keep or write it.
type Artifact struct {
	Format    string
	MediaType string
	Width     int
	Height    int
	Data      []byte
}

// NewArtifact wraps already rendered bytes, e.g. from a cache.
func NewArtifact(format string, size int, data []byte) *Artifact {
	return &Artifact{
		Format:    format,
		MediaType: MediaType(format),
		Width:     size,
		Height:    size,
		Data:      data,
	}
}

// ETag returns a strong entity tag derived from the artifact bytes.
func (a *Artifact) ETag() string {
	sum := sha256.Sum256(a.Data)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// Render builds the gauge for spec and renders it in format.
func Render(spec gauge.Spec, format string, opts ...gauge.Option) (*Artifact, error) {
	return RenderContext(context.Background(), spec, format, opts...)
}

// RenderContext is Render with a context for the external PDF converter.
func RenderContext(ctx context.Context, spec gauge.Spec, format string, opts ...gauge.Option) (*Artifact, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	scene, err := gauge.Build(spec, opts...)
	if err != nil {
		return nil, err
	}
	return RenderScene(ctx, scene, f)
}

// RenderScene renders an already built scene.
func RenderScene(ctx context.Context, s *gauge.Scene, format string) (*Artifact, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatPNG:
		data, err = RenderPNG(s)
	case FormatSVG:
		data = RenderSVG(s)
	case FormatPDF:
		data, err = RenderPDF(ctx, s)
	case FormatJSON:
		data, err = RenderJSON(s)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
	if err != nil {
		return nil, err
	}
	return NewArtifact(format, s.Size(), data), nil
}
