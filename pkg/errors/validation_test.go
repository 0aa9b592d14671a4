package errors

import (
	"strings"
	"testing"
)

func TestValidateLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "Speed", false},
		{"unit with symbol", "°C", false},
		{"empty", "", false},
		{"spaces", "Fuel Level", false},
		{"max length", strings.Repeat("x", MaxLabelLength), false},

		{"too long", strings.Repeat("x", MaxLabelLength+1), true},
		{"newline", "RPM\nx1000", true},
		{"tab", "a\tb", true},
		{"null byte", "foo\x00bar", true},
		{"invalid utf8", "\xff\xfe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLabel("title", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLabel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateLabel(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "speed.png", false},
		{"nested", "out/gauges/rpm.svg", false},
		{"absolute", "/tmp/fuel.pdf", false},

		{"empty", "", true},
		{"directory", "out/", true},
		{"null byte", "a\x00.png", true},
		{"control char", "a\x01.png", true},
		{"too long", strings.Repeat("a", 501), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
