package gauge

import (
	"math"
	"testing"
)

func dist(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func TestProjectNeedle(t *testing.T) {
	f := NewFrame(500, CounterClockwise)
	length := f.Radius * needleLengthRatio

	tests := []struct {
		angle float64
		tip   Point
	}{
		{0, Point{250 + length, 250}},
		{90, Point{250, 250 - length}},
		{180, Point{250 - length, 250}},
		{270, Point{250, 250 + length}},
	}

	for _, tt := range tests {
		n := ProjectNeedle(tt.angle, f)
		if dist(n.Tip, tt.tip) > 1e-9 {
			t.Errorf("ProjectNeedle(%v).Tip = %+v, want %+v", tt.angle, n.Tip, tt.tip)
		}
		if n.Pivot != f.Center {
			t.Errorf("Pivot = %+v, want %+v", n.Pivot, f.Center)
		}
		if len(n.Polygon) != 7 {
			t.Fatalf("len(Polygon) = %d, want 7", len(n.Polygon))
		}
		if n.Polygon[3] != n.Tip {
			t.Errorf("Polygon[3] = %+v, want tip", n.Polygon[3])
		}
		if w := dist(n.Polygon[0], n.Polygon[6]); !approx(w, f.Radius*shaftWidthRatio) {
			t.Errorf("shaft width = %v, want %v", w, f.Radius*shaftWidthRatio)
		}
		if w := dist(n.Polygon[2], n.Polygon[4]); !approx(w, f.Radius*headWidthRatio) {
			t.Errorf("head width = %v, want %v", w, f.Radius*headWidthRatio)
		}
	}
}

func TestProjectNeedleClockwise(t *testing.T) {
	f := NewFrame(500, Clockwise)
	n := ProjectNeedle(0, f)
	if n.Tip.X >= f.Center.X {
		t.Errorf("clockwise zero should point left, tip = %+v", n.Tip)
	}
	n = ProjectNeedle(180, f)
	if n.Tip.X <= f.Center.X {
		t.Errorf("clockwise max should point right, tip = %+v", n.Tip)
	}
}

func TestProjectNeedleLength(t *testing.T) {
	f := NewFrame(300, CounterClockwise)
	for a := -360.0; a <= 540; a += 15 {
		n := ProjectNeedle(a, f)
		if got := dist(n.Pivot, n.Tip); !approx(got, f.Radius*needleLengthRatio) {
			t.Errorf("needle length at %v° = %v", a, got)
		}
	}
}
