package styles

import "bytes"

// Style defines the visual appearance for chart rendering. Implementations
// control how sectors, grid rings, tick labels and the legend are drawn.
type Style interface {
	// RenderDefs writes SVG <defs>/<style> content shared by the chart.
	RenderDefs(buf *bytes.Buffer)
	// RenderBackground writes the page background for the frame.
	RenderBackground(buf *bytes.Buffer, width, height float64)
	// RenderSector writes the SVG for a single stacked segment arc.
	RenderSector(buf *bytes.Buffer, s Sector)
	// RenderRing writes the SVG for a radial grid circle.
	RenderRing(buf *bytes.Buffer, r Ring)
	// RenderRingLabel writes the SVG for a grid ring's value label.
	RenderRingLabel(buf *bytes.Buffer, l RingLabel)
	// RenderCategoryTick writes the SVG for an angular tick and its label.
	RenderCategoryTick(buf *bytes.Buffer, t CategoryTick)
	// RenderLegendEntry writes the SVG for one legend swatch and label.
	RenderLegendEntry(buf *bytes.Buffer, e LegendEntry)
}

// Sector contains everything needed to draw one annular segment.
type Sector struct {
	ID      string // element identifier, unique per (category, series)
	Path    string // SVG path data
	Color   string // fill color
	Tooltip string // hover text; empty disables the tooltip
}

// Ring is a radial grid circle.
type Ring struct {
	CX, CY, R float64
}

// RingLabel is the value label drawn on a grid ring, with a halo stroke
// behind the text so it stays legible over colored arcs.
type RingLabel struct {
	X, Y float64
	Text string
}

// CategoryTick is an angular axis tick: a short line at the band midpoint
// plus a label rotated to read right-side-up.
type CategoryTick struct {
	X1, Y1, X2, Y2 float64 // tick line
	LabelX, LabelY float64
	RotationDeg    float64 // rotation about the label anchor
	Text           string
}

// LegendEntry is one swatch + label pair in the series legend.
type LegendEntry struct {
	X, Y  float64 // top-left of the swatch
	Color string
	Text  string
}
