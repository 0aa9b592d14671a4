package gauge

import (
	"image/color"
	"strconv"
)

// Text is a single centered string.
type Text struct {
	Pos   Point // center of the text box
	Text  string
	Size  float64 // font size in pixels
	Color color.NRGBA
	Bold  bool
}

// Label is the centered value/title block under the pivot.
type Label struct {
	Pos        Point    // center of the block
	Lines      []string // value line, then the title if any
	Size       float64
	LineHeight float64 // baseline to baseline
	Color      color.NRGBA
}

// FormatValue prints v in its shortest decimal form: 80, 80.5, -10.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValueLine returns "<value> <unit>", or just the value without a unit.
func ValueLine(value float64, unit string) string {
	if unit == "" {
		return FormatValue(value)
	}
	return FormatValue(value) + " " + unit
}

// PlaceLabels positions tick labels outside the arc and the value/title
// block below the pivot.
func PlaceLabels(ticks []Tick, spec Spec, f Frame, theme Theme) ([]Text, Label) {
	tickSize := f.Size * tickFontRatio
	texts := make([]Text, len(ticks))
	for i, t := range ticks {
		texts[i] = Text{
			Pos:   f.At(t.Angle, f.Radius*tickRadiusRatio),
			Text:  strconv.Itoa(t.Value),
			Size:  tickSize,
			Color: theme.TickLabel,
		}
	}

	lines := []string{ValueLine(spec.Value, spec.Unit)}
	if spec.Title != "" {
		lines = append(lines, spec.Title)
	}
	size := f.Size * valueFontRatio
	label := Label{
		Pos:        Point{f.Center.X, f.Center.Y + f.Radius*valueOffsetRatio},
		Lines:      lines,
		Size:       size,
		LineHeight: size * lineSpacing,
		Color:      spec.Color,
	}
	return texts, label
}

// LineCenters returns the vertical center of each label line.
func (l Label) LineCenters() []float64 {
	ys := make([]float64, len(l.Lines))
	top := l.Pos.Y - l.LineHeight*float64(len(l.Lines)-1)/2
	for i := range l.Lines {
		ys[i] = top + l.LineHeight*float64(i)
	}
	return ys
}
