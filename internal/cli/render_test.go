package cli

import (
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

func TestOutputBase(t *testing.T) {
	tests := []struct {
		output string
		title  string
		want   string
	}{
		{"", "Speed", "speed"},
		{"", "Coolant Temp", "coolant-temp"},
		{"", "", "gauge"},
		{"out/rpm", "RPM", "out/rpm"},
		{"out/rpm.png", "RPM", "out/rpm"},
		{"out/rpm.SVG", "RPM", "out/rpm"},
		{"out/v1.2", "", "out/v1.2"},
		{"-", "Speed", "-"},
	}

	for _, tt := range tests {
		if got := outputBase(tt.output, tt.title); got != tt.want {
			t.Errorf("outputBase(%q, %q) = %q, want %q", tt.output, tt.title, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "fuel")
	arts := map[string]*sink.Artifact{
		"svg":  sink.NewArtifact("svg", 500, []byte("<svg/>")),
		"json": sink.NewArtifact("json", 500, []byte("{}")),
	}

	paths, err := writeArtifacts(base, []string{"svg", "json", "png"}, arts)
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	if len(paths) != 2 || paths[0] != base+".svg" || paths[1] != base+".json" {
		t.Errorf("paths = %v, want [%s.svg %s.json]", paths, base, base)
	}
	data, err := os.ReadFile(base + ".json")
	if err != nil || string(data) != "{}" {
		t.Errorf("json file = %q, %v", data, err)
	}
	if got := totalBytes(arts); got != 8 {
		t.Errorf("totalBytes = %d, want 8", got)
	}
}

func TestWriteArtifactsStdoutNeedsOneFormat(t *testing.T) {
	arts := map[string]*sink.Artifact{
		"svg": sink.NewArtifact("svg", 500, []byte("<svg/>")),
		"png": sink.NewArtifact("png", 500, []byte("png")),
	}
	_, err := writeArtifacts(stdoutPath, []string{"svg", "png"}, arts)
	if !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want %v", err, errs.ErrCodeInvalidPath)
	}
}
