// Package styles defines the visual vocabulary for chart rendering: the
// drawable primitives sinks hand to a Style, the Style interface itself,
// theme palettes, and deterministic series color assignment.
package styles

import "github.com/precastlab/qcradial/pkg/chart"

// FallbackColor is used for any series outside the assigned domain, so an
// unknown key renders visibly instead of invisibly.
const FallbackColor = "#9e9e9e"

// PaletteLight is the default series palette on the light theme.
var PaletteLight = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// PaletteDark is the default series palette on the dark theme; hues match
// PaletteLight but are lifted for contrast against dark backgrounds.
var PaletteDark = []string{
	"#6ea2d8", "#ffab52", "#ff7b7e", "#8fd8d3", "#7cc570",
	"#ffe066", "#cf9cc4", "#ffb7c0", "#bd9478", "#d4cbc6",
}

// PaletteFor returns the default palette for a theme.
func PaletteFor(theme string) []string {
	if theme == chart.ThemeDark {
		return PaletteDark
	}
	return PaletteLight
}

// ColorMap is a total, deterministic mapping from series keys to colors.
// The same series domain always produces the same mapping; keys outside
// the domain map to FallbackColor.
type ColorMap struct {
	colors map[string]string
}

// Assign maps each series to a palette color in domain order, cycling the
// palette when there are more series than colors. An empty palette assigns
// FallbackColor to everything.
func Assign(series []string, palette []string) ColorMap {
	m := ColorMap{colors: make(map[string]string, len(series))}
	for i, s := range series {
		if len(palette) == 0 {
			m.colors[s] = FallbackColor
			continue
		}
		m.colors[s] = palette[i%len(palette)]
	}
	return m
}

// Color returns the color for a series, or FallbackColor for unknown keys.
func (m ColorMap) Color(series string) string {
	if c, ok := m.colors[series]; ok {
		return c
	}
	return FallbackColor
}
