package gauge

import (
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func tickValues(ticks []Tick) []int {
	vs := make([]int, len(ticks))
	for i, t := range ticks {
		vs[i] = t.Value
	}
	return vs
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildTicks(t *testing.T) {
	tests := []struct {
		max  int
		want []int
	}{
		{220, []int{0, 22, 44, 66, 88, 110, 132, 154, 176, 198, 220}},
		{8000, []int{0, 800, 1600, 2400, 3200, 4000, 4800, 5600, 6400, 7200, 8000}},
		{100, []int{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{1, []int{0, 1}},
		{5, []int{0, 1, 2, 3, 4, 5}},
		// step 12: 120 is within half a step of 125 and gives way
		{125, []int{0, 12, 24, 36, 48, 60, 72, 84, 96, 108, 125}},
		// step 13: 130 is 7 away from 137, more than half a step
		{137, []int{0, 13, 26, 39, 52, 65, 78, 91, 104, 117, 130, 137}},
	}

	for _, tt := range tests {
		ticks, err := BuildTicks(tt.max)
		if err != nil {
			t.Fatalf("BuildTicks(%d) error: %v", tt.max, err)
		}
		if got := tickValues(ticks); !equalInts(got, tt.want) {
			t.Errorf("BuildTicks(%d) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestBuildTicksEndpoints(t *testing.T) {
	for _, max := range []int{1, 3, 9, 10, 11, 19, 99, 120, 125, 220, 999, 8000} {
		ticks, err := BuildTicks(max)
		if err != nil {
			t.Fatalf("BuildTicks(%d) error: %v", max, err)
		}
		first, last := ticks[0], ticks[len(ticks)-1]
		if first.Value != 0 || first.Angle != 0 {
			t.Errorf("BuildTicks(%d) first = %+v, want {0 0}", max, first)
		}
		if last.Value != max || last.Angle != 180 {
			t.Errorf("BuildTicks(%d) last = %+v, want {%d 180}", max, last, max)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i].Angle <= ticks[i-1].Angle {
				t.Errorf("BuildTicks(%d) not increasing at %d", max, i)
			}
		}
	}
}

func TestBuildTicksAngles(t *testing.T) {
	ticks, _ := BuildTicks(220)
	for _, tk := range ticks {
		want := float64(tk.Value) / 220 * 180
		if !approx(tk.Angle, want) {
			t.Errorf("tick %d angle = %v, want %v", tk.Value, tk.Angle, want)
		}
	}
}

func TestBuildTicksInvalidScale(t *testing.T) {
	if _, err := BuildTicks(0); !errs.Is(err, errs.ErrCodeInvalidScale) {
		t.Errorf("BuildTicks(0) error = %v, want INVALID_SCALE", err)
	}
}

func TestTickStep(t *testing.T) {
	tests := []struct{ max, want int }{
		{1, 1}, {9, 1}, {10, 1}, {19, 1}, {20, 2}, {220, 22}, {8000, 800},
	}
	for _, tt := range tests {
		if got := TickStep(tt.max); got != tt.want {
			t.Errorf("TickStep(%d) = %d, want %d", tt.max, got, tt.want)
		}
	}
}
