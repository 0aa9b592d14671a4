package gauge

import (
	"image/color"
	"sort"
	"strings"

	errs "github.com/matzehuels/speedo/pkg/errors"
)

// Theme holds the colors a gauge uses besides its own.
type Theme struct {
	Name       string
	Background color.NRGBA
	Track      color.NRGBA // inactive arc, alpha included
	TickLabel  color.NRGBA
	Needle     color.NRGBA
}

// trackAlpha is 40% opacity.
const trackAlpha = 102

var (
	// Dark is the default: white labels and a red needle on black.
	Dark = Theme{
		Name:       "dark",
		Background: color.NRGBA{0, 0, 0, 255},
		Track:      color.NRGBA{128, 128, 128, trackAlpha},
		TickLabel:  color.NRGBA{255, 255, 255, 255},
		Needle:     color.NRGBA{255, 0, 0, 255},
	}

	// Light suits white pages.
	Light = Theme{
		Name:       "light",
		Background: color.NRGBA{255, 255, 255, 255},
		Track:      color.NRGBA{128, 128, 128, trackAlpha},
		TickLabel:  color.NRGBA{51, 51, 51, 255},
		Needle:     color.NRGBA{214, 39, 40, 255},
	}
)

var themes = map[string]Theme{
	Dark.Name:  Dark,
	Light.Name: Light,
}

// ThemeByName looks up a theme. Empty selects Dark.
func ThemeByName(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Dark, nil
	}
	if t, ok := themes[name]; ok {
		return t, nil
	}
	return Theme{}, errs.New(errs.ErrCodeInvalidTheme, "unknown theme: %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
}

// ThemeNames lists available themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
