package gauge

import (
	"math"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		max    int
		policy ClampPolicy
		want   float64
	}{
		{"speed", 80, 220, ClampRange, 80.0 / 220 * 180},
		{"rpm", 3000, 8000, ClampRange, 67.5},
		{"zero", 0, 120, ClampRange, 0},
		{"full", 100, 100, ClampRange, 180},
		{"below range clamps", -10, 100, ClampRange, 0},
		{"above range clamps", 150, 100, ClampRange, 180},
		{"below range overflows", -10, 100, ClampOverflow, -18},
		{"above range overflows", 150, 100, ClampOverflow, 270},
		{"overflow bounded", 1e9, 100, ClampOverflow, 540},
		{"nan", math.NaN(), 100, ClampRange, 0},
		{"nan overflow", math.NaN(), 100, ClampOverflow, 0},
		{"+inf", math.Inf(1), 100, ClampRange, 180},
		{"-inf", math.Inf(-1), 100, ClampRange, 0},
		{"+inf overflow", math.Inf(1), 100, ClampOverflow, 540},
		{"-inf overflow", math.Inf(-1), 100, ClampOverflow, -360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.value, tt.max, tt.policy)
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if !approx(got, tt.want) {
				t.Errorf("Normalize(%v, %d) = %v, want %v", tt.value, tt.max, got, tt.want)
			}
		})
	}
}

func TestNormalizeSpeed(t *testing.T) {
	got, _ := Normalize(80, 220, ClampRange)
	if math.Abs(got-65.4545) > 1e-4 {
		t.Errorf("Normalize(80, 220) = %v, want ~65.4545", got)
	}
}

func TestNormalizeInvalidScale(t *testing.T) {
	for _, max := range []int{0, -1, -100} {
		_, err := Normalize(10, max, ClampRange)
		if !errs.Is(err, errs.ErrCodeInvalidScale) {
			t.Errorf("Normalize(10, %d) error = %v, want INVALID_SCALE", max, err)
		}
	}
}

func TestNormalizeMonotone(t *testing.T) {
	const max = 220
	prev := -1.0
	for v := 0.0; v <= max; v += 0.5 {
		got, err := Normalize(v, max, ClampRange)
		if err != nil {
			t.Fatal(err)
		}
		if got < 0 || got > 180 {
			t.Fatalf("Normalize(%v) = %v, outside [0, 180]", v, got)
		}
		if got < prev {
			t.Fatalf("Normalize not monotone at %v: %v < %v", v, got, prev)
		}
		prev = got
	}
}

func TestParseClampPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ClampPolicy
		wantErr bool
	}{
		{"", ClampRange, false},
		{"clamp", ClampRange, false},
		{"Overflow", ClampOverflow, false},
		{"wrap", ClampRange, true},
	}
	for _, tt := range tests {
		got, err := ParseClampPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseClampPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseClampPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if ClampOverflow.String() != "overflow" {
		t.Errorf("ClampOverflow.String() = %q", ClampOverflow.String())
	}
}
