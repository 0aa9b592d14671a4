package gauge

import "image/color"

// Needle proportions relative to the arc radius.
const (
	needleLengthRatio = 0.9 // pivot to tip, head included
	shaftWidthRatio   = 0.02
	headWidthRatio    = 0.05
	headLengthRatio   = 0.1
)

// Needle is the arrow pointing at the reading.
type Needle struct {
	Angle   float64
	Pivot   Point
	Tip     Point
	Polygon []Point // closed outline: shaft, head, shaft
	Color   color.NRGBA
}

// ProjectNeedle builds the needle outline for angle within frame.
// Color is the dark theme accent; Build replaces it with the configured theme's.
func ProjectNeedle(angle float64, f Frame) Needle {
	var (
		u      = f.Direction(angle)
		n      = Point{-u.Y, u.X}
		length = f.Radius * needleLengthRatio
		shaft  = f.Radius * shaftWidthRatio / 2
		head   = f.Radius * headWidthRatio / 2
		base   = f.Center.Add(u.Scale(length - f.Radius*headLengthRatio))
		tip    = f.Center.Add(u.Scale(length))
	)

	return Needle{
		Angle: angle,
		Pivot: f.Center,
		Tip:   tip,
		Polygon: []Point{
			f.Center.Add(n.Scale(shaft)),
			base.Add(n.Scale(shaft)),
			base.Add(n.Scale(head)),
			tip,
			base.Add(n.Scale(-head)),
			base.Add(n.Scale(-shaft)),
			f.Center.Add(n.Scale(-shaft)),
		},
		Color: Dark.Needle,
	}
}
