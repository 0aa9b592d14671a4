package gauge

import (
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{80, "80"},
		{80.5, "80.5"},
		{-10, "-10"},
		{3000, "3000"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlaceLabels(t *testing.T) {
	f := NewFrame(500, CounterClockwise)
	ticks, _ := BuildTicks(220)
	spec := Spec{Value: 80, Max: 220, Title: "Speed", Unit: "km/h", Color: lime}

	texts, label := PlaceLabels(ticks, spec, f, Dark)

	if len(texts) != len(ticks) {
		t.Fatalf("len(texts) = %d, want %d", len(texts), len(ticks))
	}
	for i, tx := range texts {
		if d := dist(tx.Pos, f.Center); !approx(d, f.Radius*tickRadiusRatio) {
			t.Errorf("tick %d at distance %v, want %v", i, d, f.Radius*tickRadiusRatio)
		}
		if tx.Color != Dark.TickLabel {
			t.Errorf("tick %d color = %v", i, tx.Color)
		}
	}
	if texts[0].Text != "0" || texts[len(texts)-1].Text != "220" {
		t.Errorf("tick labels = %q..%q", texts[0].Text, texts[len(texts)-1].Text)
	}
	if texts[0].Pos.X <= f.Center.X {
		t.Error("zero label should sit right of the pivot")
	}

	if len(label.Lines) != 2 || label.Lines[0] != "80 km/h" || label.Lines[1] != "Speed" {
		t.Errorf("Lines = %q", label.Lines)
	}
	if label.Color != lime {
		t.Errorf("label color = %v, want %v", label.Color, lime)
	}
	if want := f.Center.Y + 0.4*f.Radius; !approx(label.Pos.Y, want) {
		t.Errorf("label Y = %v, want %v", label.Pos.Y, want)
	}
	if !approx(label.LineHeight, label.Size*1.2) {
		t.Errorf("LineHeight = %v, want %v", label.LineHeight, label.Size*1.2)
	}
}

func TestPlaceLabelsNoTitle(t *testing.T) {
	f := NewFrame(500, CounterClockwise)
	_, label := PlaceLabels([]Tick{{0, 0}, {1, 180}}, Spec{Value: 0.5, Max: 1}, f, Dark)
	if len(label.Lines) != 1 || label.Lines[0] != "0.5" {
		t.Errorf("Lines = %q, want [0.5]", label.Lines)
	}
	ys := label.LineCenters()
	if len(ys) != 1 || ys[0] != label.Pos.Y {
		t.Errorf("LineCenters = %v, want [%v]", ys, label.Pos.Y)
	}
}

func TestLineCenters(t *testing.T) {
	l := Label{Pos: Point{0, 100}, Lines: []string{"a", "b"}, LineHeight: 20}
	ys := l.LineCenters()
	if len(ys) != 2 || math.Abs(ys[0]-90) > 1e-9 || math.Abs(ys[1]-110) > 1e-9 {
		t.Errorf("LineCenters = %v, want [90 110]", ys)
	}
}
