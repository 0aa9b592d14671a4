package colors

import (
	"image/color"
	"testing"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want color.NRGBA
	}{
		{"limegreen", color.NRGBA{0x32, 0xcd, 0x32, 0xff}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"orange", color.NRGBA{0xff, 0xa5, 0x00, 0xff}},
		{"  LimeGreen ", color.NRGBA{0x32, 0xcd, 0x32, 0xff}},
		{"#32cd32", color.NRGBA{0x32, 0xcd, 0x32, 0xff}},
		{"32CD32", color.NRGBA{0x32, 0xcd, 0x32, 0xff}},
		{"#0f0", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, spec := range []string{"", "   ", "notacolor", "#12", "#zzzzzz"} {
		_, err := Parse(spec)
		if err == nil {
			t.Errorf("Parse(%q) should fail", spec)
			continue
		}
		if !errs.Is(err, errs.ErrCodeInvalidColor) {
			t.Errorf("Parse(%q) code = %v, want %v", spec, errs.GetCode(err), errs.ErrCodeInvalidColor)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{0x32, 0xcd, 0x32, 0x10}); got != "#32cd32" {
		t.Errorf("Hex() = %q, want %q", got, "#32cd32")
	}
}
