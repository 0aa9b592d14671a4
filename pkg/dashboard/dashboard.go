// Package dashboard loads sets of gauges from TOML files.
//
// A dashboard is a flat list of gauges sharing output settings. It carries
// no layout: rendering a dashboard yields one artifact per gauge and format,
// which the caller arranges however it likes.
//
//	format = "png,svg"
//	palette = "plasma"
//	output = "gauges"
//
//	[[gauge]]
//	title = "Speed"
//	unit = "km/h"
//	value = 80
//	max = 220
//	color = "limegreen"
//	gradient = true
//
// Top-level appearance keys apply to every gauge; the same keys inside a
// [[gauge]] table override them for that gauge. Unknown keys are rejected
// so typos do not silently fall back to defaults.
package dashboard

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/speedo/pkg/errors"
	"github.com/matzehuels/speedo/pkg/pipeline"
)

// Config is a decoded dashboard file.
type Config struct {
	Format      string  `toml:"format,omitempty"` // comma separated, e.g. "png,svg"
	Output      string  `toml:"output,omitempty"` // directory for rendered files
	Size        int     `toml:"size,omitempty"`
	Segments    int     `toml:"segments,omitempty"`
	Palette     string  `toml:"palette,omitempty"`
	Theme       string  `toml:"theme,omitempty"`
	Orientation string  `toml:"orientation,omitempty"`
	Clamp       string  `toml:"clamp,omitempty"`
	Gauges      []Gauge `toml:"gauge"`
}

// Gauge is one [[gauge]] table.
type Gauge struct {
	Name     string  `toml:"name,omitempty"` // file stem; derived from the title when empty
	Title    string  `toml:"title"`
	Unit     string  `toml:"unit,omitempty"`
	Value    float64 `toml:"value"`
	Max      int     `toml:"max"`
	Color    string  `toml:"color,omitempty"`
	Gradient bool    `toml:"gradient,omitempty"`

	Size        int    `toml:"size,omitempty"`
	Segments    int    `toml:"segments,omitempty"`
	Palette     string `toml:"palette,omitempty"`
	Theme       string `toml:"theme,omitempty"`
	Orientation string `toml:"orientation,omitempty"`
	Clamp       string `toml:"clamp,omitempty"`
}

// Default returns the four car gauges: speed, RPM, temperature and fuel.
func Default() *Config {
	return &Config{
		Format: pipeline.DefaultFormat,
		Gauges: []Gauge{
			{Title: "Speed", Unit: "km/h", Value: 80, Max: 220, Color: "limegreen", Gradient: true},
			{Title: "RPM", Unit: "RPM", Value: 3000, Max: 8000, Color: "red", Gradient: true},
			{Title: "Temp", Unit: "°C", Value: 70, Max: 120, Color: "blue", Gradient: true},
			{Title: "Fuel", Unit: "%", Value: 50, Max: 100, Color: "orange", Gradient: true},
		},
	}
}

// Load reads and validates a dashboard file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "dashboard file %s", path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and validates a dashboard from r.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse dashboard")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Encode writes the dashboard as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// String returns the TOML form of the dashboard.
func (c *Config) String() string {
	var buf bytes.Buffer
	_ = c.Encode(&buf)
	return buf.String()
}

// Validate checks structure only. Per-gauge values are validated when the
// gauges are rendered, so one bad gauge does not block the rest.
func (c *Config) Validate() error {
	if len(c.Gauges) == 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "dashboard has no [[gauge]] entries")
	}
	if c.Format != "" {
		if _, err := pipeline.ParseFormats(c.Format); err != nil {
			return err
		}
	}
	seen := make(map[string]int, len(c.Gauges))
	for i, name := range c.Names() {
		if j, dup := seen[name]; dup {
			return errs.New(errs.ErrCodeInvalidConfig, "gauges %d and %d both write %q; set distinct names", j+1, i+1, name)
		}
		seen[name] = i
	}
	return nil
}

// Formats returns the output formats, defaulting to png.
func (c *Config) Formats() []string {
	formats, err := pipeline.ParseFormats(c.Format)
	if err != nil || len(formats) == 0 {
		return []string{pipeline.DefaultFormat}
	}
	return formats
}

// Options converts every gauge to pipeline options, applying top-level
// settings where the gauge does not override them.
func (c *Config) Options() []pipeline.Options {
	formats := c.Formats()
	out := make([]pipeline.Options, len(c.Gauges))
	for i, g := range c.Gauges {
		out[i] = pipeline.Options{
			Value:       g.Value,
			Max:         g.Max,
			Title:       g.Title,
			Unit:        g.Unit,
			Color:       g.Color,
			Gradient:    g.Gradient,
			Size:        firstInt(g.Size, c.Size),
			Segments:    firstInt(g.Segments, c.Segments),
			Palette:     firstString(g.Palette, c.Palette),
			Theme:       firstString(g.Theme, c.Theme),
			Orientation: firstString(g.Orientation, c.Orientation),
			Clamp:       firstString(g.Clamp, c.Clamp),
			Formats:     formats,
		}
	}
	return out
}

// Names returns the file stem of each gauge.
func (c *Config) Names() []string {
	names := make([]string, len(c.Gauges))
	for i, g := range c.Gauges {
		names[i] = g.FileName(i)
	}
	return names
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// FileName returns the gauge's file stem: Name if set, else a slug of the
// title, else "gauge-<index+1>".
func (g Gauge) FileName(index int) string {
	src := g.Name
	if src == "" {
		src = g.Title
	}
	if slug := Slug(src); slug != "" {
		return slug
	}
	return "gauge-" + strconv.Itoa(index+1)
}

// Slug lowercases s and joins its ASCII letter and digit runs with dashes.
// It returns "" when s has none.
func Slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

func firstInt(vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
