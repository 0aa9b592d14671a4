package gauge

import "image/color"

// Palette maps a position t in [0, 1] along the active arc to a color.
// Implementations must be safe for concurrent use.
type Palette interface {
	At(t float64) color.NRGBA
}

// PaletteFunc adapts a function to the Palette interface.
type PaletteFunc func(t float64) color.NRGBA

// At calls f(t).
func (f PaletteFunc) At(t float64) color.NRGBA { return f(t) }
