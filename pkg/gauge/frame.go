package gauge

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

// Orientation selects which end of the arc holds zero.
type Orientation int

const (
	// CounterClockwise puts 0 at the right end and Max at the left.
	CounterClockwise Orientation = iota
	// Clockwise puts 0 at the left end and Max at the right.
	Clockwise
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "ccw"
	case Clockwise:
		return "cw"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// ParseOrientation accepts "ccw"/"counterclockwise" and "cw"/"clockwise".
// Empty selects CounterClockwise.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ccw", "counterclockwise":
		return CounterClockwise, nil
	case "cw", "clockwise":
		return Clockwise, nil
	}
	return CounterClockwise, errs.New(errs.ErrCodeInvalidOrientation, "invalid orientation: %q (must be 'ccw' or 'cw')", s)
}

// Point is a position in image pixels, y pointing down.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p*k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Frame fixes where a gauge sits in its square image.
type Frame struct {
	Size        float64 // image side in pixels
	Center      Point   // arc pivot
	Radius      float64 // arc centerline radius
	Orientation Orientation
}

// Proportions of a gauge relative to its image side and radius.
const (
	radiusRatio      = 0.36
	strokeRatio      = 0.15 // arc stroke width / radius
	tickRadiusRatio  = 1.15
	valueOffsetRatio = 0.4
	tickFontRatio    = 0.028
	valueFontRatio   = 0.044
	lineSpacing      = 1.2
)

// NewFrame centers a gauge in a size×size image.
func NewFrame(size float64, o Orientation) Frame {
	return Frame{
		Size:        size,
		Center:      Point{size / 2, size / 2},
		Radius:      size * radiusRatio,
		Orientation: o,
	}
}

// StrokeWidth is the width of the track and active arcs.
func (f Frame) StrokeWidth() float64 { return f.Radius * strokeRatio }

// At returns the point at gauge angle deg and distance r from the pivot.
func (f Frame) At(deg, r float64) Point {
	return f.Center.Add(f.Direction(deg).Scale(r))
}

// Direction returns the unit vector pointing toward gauge angle deg.
func (f Frame) Direction(deg float64) Point {
	rad := deg * math.Pi / 180
	dx := math.Cos(rad)
	if f.Orientation == Clockwise {
		dx = -dx
	}
	return Point{dx, -math.Sin(rad)}
}

// ScreenAngle converts a gauge angle to radians in image space, where
// angles grow clockwise from the positive x axis.
func (f Frame) ScreenAngle(deg float64) float64 {
	rad := deg * math.Pi / 180
	if f.Orientation == Clockwise {
		return math.Pi + rad
	}
	return -rad
}
