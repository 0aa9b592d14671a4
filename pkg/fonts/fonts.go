// Package fonts provides the embedded Go fonts used for gauge labels.
//
// The TTF data comes from golang.org/x/image/font/gofont and is compiled
// into the binary, so raster output never depends on system fonts. Parsed
// font sources are created once per process and shared; they are read-only
// and safe for concurrent use.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name used when the font is embedded in SVG.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for SVG viewers without the embedded font.
const FallbackFontFamily = `'Go', 'DejaVu Sans', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the regular weight TTF data.
func RegularTTF() []byte { return goregular.TTF }

// BoldTTF returns the bold weight TTF data.
func BoldTTF() []byte { return gobold.TTF }

type source struct {
	once sync.Once
	data []byte
	name string
	src  *text.FontSource
	err  error
	b64  string
}

func (s *source) load() {
	s.once.Do(func() {
		s.src, s.err = text.NewFontSource(s.data)
		if s.err != nil {
			s.err = fmt.Errorf("parse %s font: %w", s.name, s.err)
		}
		s.b64 = base64.StdEncoding.EncodeToString(s.data)
	})
}

var (
	regular = &source{data: goregular.TTF, name: "regular"}
	bold    = &source{data: gobold.TTF, name: "bold"}
)

// Regular returns the shared regular weight font source.
func Regular() (*text.FontSource, error) {
	regular.load()
	return regular.src, regular.err
}

// Bold returns the shared bold weight font source.
func Bold() (*text.FontSource, error) {
	bold.load()
	return bold.src, bold.err
}

// RegularBase64 returns the regular TTF as base64 for @font-face data URIs.
// The result is cached after first computation.
func RegularBase64() string {
	regular.load()
	return regular.b64
}

// BoldBase64 returns the bold TTF as base64 for @font-face data URIs.
func BoldBase64() string {
	bold.load()
	return bold.b64
}
