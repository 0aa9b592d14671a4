package gauge

import (
	"image/color"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

// Spec describes one gauge. It is treated as immutable.
type Spec struct {
	Value    float64     // current reading, nominally in [0, Max]
	Max      int         // scale upper bound; must be > 0
	Title    string      // second line of the center label
	Unit     string      // appended to the value on the first line
	Color    color.NRGBA // active arc and center label color
	Gradient bool        // draw the active arc as a color ramp
}

// Validate rejects specs that cannot be rendered.
// Only the scale is fatal; any reading is accepted.
func (s Spec) Validate() error {
	if s.Max <= 0 {
		return errs.New(errs.ErrCodeInvalidScale, "max must be positive, got %d", s.Max)
	}
	if err := errs.ValidateLabel("title", s.Title); err != nil {
		return err
	}
	return errs.ValidateLabel("unit", s.Unit)
}
