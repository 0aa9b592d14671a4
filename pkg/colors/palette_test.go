package colors

import (
	"math"
	"slices"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func TestRampEndpoints(t *testing.T) {
	tests := []struct {
		ramp  *Ramp
		start string
		mid   string
		end   string
	}{
		{Plasma, "#0d0887", "#cc4778", "#f0f921"},
		{Viridis, "#440154", "#21918c", "#fde725"},
		{Inferno, "#000004", "#bc3754", "#fcffa4"},
		{Magma, "#000004", "#b73779", "#fcfdbf"},
		{Traffic, "#00ff00", "#ffff00", "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.ramp.Name(), func(t *testing.T) {
			if got := Hex(tt.ramp.At(0)); got != tt.start {
				t.Errorf("At(0) = %s, want %s", got, tt.start)
			}
			if got := Hex(tt.ramp.At(0.5)); got != tt.mid {
				t.Errorf("At(0.5) = %s, want %s", got, tt.mid)
			}
			if got := Hex(tt.ramp.At(1)); got != tt.end {
				t.Errorf("At(1) = %s, want %s", got, tt.end)
			}
		})
	}
}

func TestRampClampsInput(t *testing.T) {
	if Plasma.At(-1) != Plasma.At(0) {
		t.Error("At(-1) should equal At(0)")
	}
	if Plasma.At(2) != Plasma.At(1) {
		t.Error("At(2) should equal At(1)")
	}
	if Plasma.At(math.NaN()) != Plasma.At(0) {
		t.Error("At(NaN) should equal At(0)")
	}
}

func TestRampOpaque(t *testing.T) {
	for i := 0; i <= 20; i++ {
		if c := Viridis.At(float64(i) / 20); c.A != 255 {
			t.Fatalf("At(%v) alpha = %d, want 255", float64(i)/20, c.A)
		}
	}
}

func TestRampInterpolates(t *testing.T) {
	// Halfway between the first two traffic stops: green → yellow.
	c := Traffic.At(0.25)
	if c.G != 255 || c.B != 0 {
		t.Errorf("At(0.25) = %v, want full green and no blue", c)
	}
	if c.R < 120 || c.R > 135 {
		t.Errorf("At(0.25).R = %d, want ~128", c.R)
	}
}

func TestNewRampErrors(t *testing.T) {
	if _, err := NewRamp("one", "#000000"); !errs.Is(err, errs.ErrCodeInvalidPalette) {
		t.Errorf("single stop error = %v, want %v", err, errs.ErrCodeInvalidPalette)
	}
	if _, err := NewRamp("bad", "#000000", "nothex"); !errs.Is(err, errs.ErrCodeInvalidPalette) {
		t.Errorf("bad stop error = %v, want %v", err, errs.ErrCodeInvalidPalette)
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("")
	if err != nil || r != Plasma {
		t.Errorf("Lookup(\"\") = %v, %v; want plasma", r, err)
	}
	r, err = Lookup("VIRIDIS")
	if err != nil || r != Viridis {
		t.Errorf("Lookup(VIRIDIS) = %v, %v; want viridis", r, err)
	}
	if _, err := Lookup("jet"); !errs.Is(err, errs.ErrCodeInvalidPalette) {
		t.Errorf("Lookup(jet) error = %v, want %v", err, errs.ErrCodeInvalidPalette)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"inferno", "magma", "plasma", "traffic", "universal", "viridis"}
	if !slices.Equal(names, want) {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}
