package plot

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Theme groups the colors used to draw a chart. Themes are plain values
// passed per call; rendering keeps no process-wide drawing state.
type Theme struct {
	Name       string
	Background drawing.Color
	Canvas     drawing.Color
	Text       drawing.Color
	Series     drawing.Color
	Overlay    drawing.Color
}

var defaultTheme = Theme{
	Name:       "default",
	Background: drawing.ColorWhite,
	Canvas:     drawing.ColorWhite,
	Text:       drawing.Color{R: 51, G: 51, B: 51, A: 255},
	Series:     drawing.Color{R: 0, G: 116, B: 217, A: 255},
	Overlay:    drawing.Color{R: 255, G: 65, B: 54, A: 255},
}

var themes = map[string]Theme{
	"default": defaultTheme,
	"light": {
		Name:       "light",
		Background: drawing.Color{R: 250, G: 250, B: 250, A: 255},
		Canvas:     drawing.ColorWhite,
		Text:       drawing.Color{R: 68, G: 68, B: 68, A: 255},
		Series:     drawing.Color{R: 46, G: 134, B: 193, A: 255},
		Overlay:    drawing.Color{R: 230, G: 126, B: 34, A: 255},
	},
	"dark": {
		Name:       "dark",
		Background: drawing.Color{R: 30, G: 30, B: 34, A: 255},
		Canvas:     drawing.Color{R: 40, G: 40, B: 46, A: 255},
		Text:       drawing.Color{R: 220, G: 220, B: 220, A: 255},
		Series:     drawing.Color{R: 97, G: 218, B: 251, A: 255},
		Overlay:    drawing.Color{R: 255, G: 184, B: 108, A: 255},
	},
}

// themeByName returns the named theme. Unknown or empty names fall back to
// the default theme rather than failing.
func themeByName(name string) Theme {
	if th, ok := themes[strings.ToLower(name)]; ok {
		return th
	}
	return defaultTheme
}
