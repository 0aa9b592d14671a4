package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func TestExecuteDashboardDefault(t *testing.T) {
	c := newTestCLI(t)
	out := t.TempDir()

	if err := execute(context.Background(), c, []string{"dashboard", "-o", out, "-f", "svg"}); err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	for _, name := range []string{"speed", "rpm", "temp", "fuel"} {
		if _, err := os.Stat(filepath.Join(out, name+".svg")); err != nil {
			t.Errorf("missing %s.svg: %v", name, err)
		}
	}
}

func TestExecuteDashboardInit(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "cockpit.toml")

	if err := execute(context.Background(), c, []string{"dashboard", "init", path}); err != nil {
		t.Fatalf("dashboard init: %v", err)
	}
	err := execute(context.Background(), c, []string{"dashboard", "init", path})
	if !errs.Is(err, errs.ErrCodeInvalidPath) {
		t.Errorf("second init error = %v, want %v", err, errs.ErrCodeInvalidPath)
	}
	if err := execute(context.Background(), c, []string{"dashboard", "init", "--force", path}); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out := filepath.Join(dir, "out")
	if err := execute(context.Background(), c, []string{"dashboard", path, "-o", out, "-f", "json"}); err != nil {
		t.Fatalf("dashboard %s: %v", path, err)
	}
	if _, err := os.Stat(filepath.Join(out, "rpm.json")); err != nil {
		t.Errorf("missing rpm.json: %v", err)
	}
}

func TestExecuteDashboardPartialFailure(t *testing.T) {
	c := newTestCLI(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	cfg := `
format = "svg"

[[gauge]]
title = "Good"
max = 10

[[gauge]]
title = "Bad"
max = 0
`
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	if err := execute(context.Background(), c, []string{"dashboard", path, "-o", out}); err == nil {
		t.Error("dashboard with a failing gauge succeeded")
	}
	if _, err := os.Stat(filepath.Join(out, "good.svg")); err != nil {
		t.Errorf("good gauge not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "bad.svg")); err == nil {
		t.Error("bad gauge was written")
	}
}

func TestExecuteDashboardMissingFile(t *testing.T) {
	err := execute(context.Background(), newTestCLI(t), []string{"dashboard", filepath.Join(t.TempDir(), "nope.toml")})
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want %v", err, errs.ErrCodeFileNotFound)
	}
}

func TestSubset(t *testing.T) {
	got := subset([]string{"a", "b", "c", "d"}, []int{0, 2})
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("subset = %v, want [a c]", got)
	}
}
