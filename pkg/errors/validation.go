package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength bounds titles and units. Anything longer would not fit
// under the pivot anyway.
const MaxLabelLength = 64

// ValidateLabel validates a display label (title or unit).
// Empty labels are allowed; the gauge simply leaves the line blank.
//
// Rejected:
//   - invalid UTF-8
//   - control characters, including newlines (the value label owns the line break)
//   - more than MaxLabelLength runes
func ValidateLabel(field, s string) error {
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidInput, "%s is not valid UTF-8", field)
	}
	if n := utf8.RuneCountInString(s); n > MaxLabelLength {
		return New(ErrCodeInvalidInput, "%s too long (%d runes, max %d)", field, n, MaxLabelLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains control characters", field)
		}
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
