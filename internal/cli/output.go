package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/speedo/pkg/dashboard"
	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/render/sink"
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

// outputBase returns the path stem for a gauge's files. An explicit output
// loses a known format extension, so "-o speed.png" and "-o speed" agree.
func outputBase(output, title string) string {
	if output != "" {
		ext := strings.TrimPrefix(filepath.Ext(output), ".")
		if slices.Contains(sink.Formats(), strings.ToLower(ext)) {
			return strings.TrimSuffix(output, filepath.Ext(output))
		}
		return output
	}
	if slug := dashboard.Slug(title); slug != "" {
		return slug
	}
	return "gauge"
}

// outputPath joins a stem and a format.
func outputPath(base, format string) string {
	return base + "." + format
}

// writeArtifacts writes each artifact to base.<format> in the given format
// order and returns the written paths.
func writeArtifacts(base string, formats []string, artifacts map[string]*sink.Artifact) ([]string, error) {
	if base == stdoutPath {
		if len(formats) != 1 {
			return nil, errs.New(errs.ErrCodeInvalidPath, "stdout output needs exactly one format, got %d", len(formats))
		}
		_, err := os.Stdout.Write(artifacts[formats[0]].Data)
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		art, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(base, format)
		if err := errs.ValidateOutputPath(path); err != nil {
			return paths, err
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, art.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// totalBytes sums artifact sizes for the stats line.
func totalBytes(artifacts map[string]*sink.Artifact) int {
	n := 0
	for _, a := range artifacts {
		n += len(a.Data)
	}
	return n
}
