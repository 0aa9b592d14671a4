package render

import (
	"context"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func TestToPDFMissingTool(t *testing.T) {
	old := converter
	converter = "speedo-no-such-converter"
	defer func() { converter = old }()

	if Available() {
		t.Fatal("Available() = true for a missing tool")
	}
	_, err := ToPDF(context.Background(), []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	if !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want UNSUPPORTED", err)
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	pdf, err := ToPDF(context.Background(), svg)
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("output does not look like a PDF: %q", pdf[:min(len(pdf), 8)])
	}
}
