package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/precastlab/qcradial/pkg/chart"
)

// ink holds the non-series colors of a theme.
type ink struct {
	text string
	grid string
	halo string // ring label halo; matches the page background
}

var (
	lightInk = ink{text: "#1f2430", grid: "#c3c9d2", halo: "#ffffff"}
	darkInk  = ink{text: "#e6e9ef", grid: "#4a5160", halo: "#1b1e24"}
)

// Simple is the default flat rendering style. Sector fills come from the
// series color map; axis ink follows the theme.
type Simple struct {
	ink ink
}

// NewSimple returns the flat style for the given theme.
func NewSimple(theme string) Simple {
	if theme == chart.ThemeDark {
		return Simple{ink: darkInk}
	}
	return Simple{ink: lightInk}
}

const (
	fontFamily   = "ui-sans-serif, system-ui, sans-serif"
	tickFontSize = 11.0
	ringFontSize = 10.0
	swatchSize   = 12.0
)

func (s Simple) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>text { font-family: %s; }</style>\n", fontFamily)
}

func (s Simple) RenderBackground(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, `  <rect class="background" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		width, height, s.ink.halo)
}

func (s Simple) RenderSector(buf *bytes.Buffer, sec Sector) {
	if sec.Path == "" {
		return
	}
	fmt.Fprintf(buf, `  <path id="%s" class="sector" d="%s" fill="%s">`,
		EscapeXML(sec.ID), sec.Path, sec.Color)
	if sec.Tooltip != "" {
		fmt.Fprintf(buf, "<title>%s</title>", EscapeXML(sec.Tooltip))
	}
	buf.WriteString("</path>\n")
}

func (s Simple) RenderRing(buf *bytes.Buffer, r Ring) {
	fmt.Fprintf(buf, `  <circle class="grid" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="0.5"/>`+"\n",
		r.CX, r.CY, r.R, s.ink.grid)
}

func (s Simple) RenderRingLabel(buf *bytes.Buffer, l RingLabel) {
	// Halo pass first, then the readable text on top.
	fmt.Fprintf(buf, `  <text class="ring-label-halo" x="%.2f" y="%.2f" font-size="%.0f" text-anchor="middle" stroke="%s" stroke-width="4" fill="none">%s</text>`+"\n",
		l.X, l.Y, ringFontSize, s.ink.halo, EscapeXML(l.Text))
	fmt.Fprintf(buf, `  <text class="ring-label" x="%.2f" y="%.2f" font-size="%.0f" text-anchor="middle" fill="%s">%s</text>`+"\n",
		l.X, l.Y, ringFontSize, s.ink.text, EscapeXML(l.Text))
}

func (s Simple) RenderCategoryTick(buf *bytes.Buffer, t CategoryTick) {
	fmt.Fprintf(buf, `  <line class="tick" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"/>`+"\n",
		t.X1, t.Y1, t.X2, t.Y2, s.ink.text)
	fmt.Fprintf(buf, `  <text class="tick-label" x="%.2f" y="%.2f" font-size="%.0f" text-anchor="middle" fill="%s" transform="rotate(%.2f %.2f %.2f)">%s</text>`+"\n",
		t.LabelX, t.LabelY, tickFontSize, s.ink.text, t.RotationDeg, t.LabelX, t.LabelY, EscapeXML(t.Text))
}

func (s Simple) RenderLegendEntry(buf *bytes.Buffer, e LegendEntry) {
	fmt.Fprintf(buf, `  <rect class="swatch" x="%.2f" y="%.2f" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		e.X, e.Y, swatchSize, swatchSize, e.Color)
	fmt.Fprintf(buf, `  <text class="legend-label" x="%.2f" y="%.2f" font-size="%.0f" fill="%s">%s</text>`+"\n",
		e.X+swatchSize+6, e.Y+swatchSize-2, tickFontSize, s.ink.text, EscapeXML(e.Text))
}

// EscapeXML escapes text for safe embedding in SVG markup.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

var _ Style = Simple{}
