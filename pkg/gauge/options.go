package gauge

import "github.com/matzehuels/speedo/pkg/colors"

// Defaults applied when no option overrides them.
const (
	DefaultSize     = 500 // pixels, square
	DefaultSegments = 50  // gradient segments along the active arc
)

// Option customizes how a gauge is built.
type Option func(*config)

type config struct {
	size        int
	segments    int
	palette     Palette
	theme       Theme
	clamp       ClampPolicy
	orientation Orientation
}

func newConfig(opts []Option) config {
	cfg := config{
		size:     DefaultSize,
		segments: DefaultSegments,
		palette:  colors.Plasma,
		theme:    Dark,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) frame() Frame {
	return NewFrame(float64(c.size), c.orientation)
}

// WithSize sets the square image side in pixels. Non-positive sizes are ignored.
func WithSize(px int) Option {
	return func(c *config) {
		if px > 0 {
			c.size = px
		}
	}
}

// WithSegments sets how many segments a gradient arc is split into.
// Non-positive counts are ignored.
func WithSegments(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.segments = n
		}
	}
}

// WithPalette sets the gradient ramp. A nil palette is ignored.
func WithPalette(p Palette) Option {
	return func(c *config) {
		if p != nil {
			c.palette = p
		}
	}
}

// WithTheme sets background, track, tick label and needle colors.
func WithTheme(t Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithClamp sets the out-of-range policy.
func WithClamp(p ClampPolicy) Option {
	return func(c *config) { c.clamp = p }
}

// WithOrientation sets which end of the arc holds zero.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}
