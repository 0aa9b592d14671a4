package colors

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

// Parse converts a color spec into an opaque NRGBA color.
// Names are matched case-insensitively; hex specs may omit the leading '#'.
func Parse(spec string) (color.NRGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return color.NRGBA{}, errs.New(errs.ErrCodeInvalidColor, "color cannot be empty")
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, errs.New(errs.ErrCodeInvalidColor, "unknown color %q (use a CSS name or #rrggbb)", spec)
	}
	return toNRGBA(c), nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(spec string) color.NRGBA {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Opacity returns the alpha channel of c in [0, 1].
func Opacity(c color.NRGBA) float64 {
	return float64(c.A) / 255
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
