// Package sink encodes a resolved layout.Figure into output artifacts:
// standalone SVG, pretty-printed JSON, and rasterized PNG/PDF via
// rsvg-convert. Sinks never recompute geometry; everything they draw comes
// straight off the figure.
package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/precastlab/qcradial/pkg/chart/layout"
	"github.com/precastlab/qcradial/pkg/chart/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style    styles.Style
	palette  []string
	tooltips bool
}

// WithStyle overrides the theme's default style.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithPalette overrides the series palette for this render only.
func WithPalette(p []string) SVGOption { return func(r *svgRenderer) { r.palette = p } }

// WithoutTooltips disables the native <title> hover tooltips on sectors.
func WithoutTooltips() SVGOption { return func(r *svgRenderer) { r.tooltips = false } }

// RenderSVG encodes the figure as a standalone SVG document. Output is
// deterministic: the same figure and options always produce identical
// bytes.
func RenderSVG(fig layout.Figure, opts ...SVGOption) []byte {
	r := svgRenderer{tooltips: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.NewSimple(fig.Theme)
	}

	palette := r.palette
	if palette == nil {
		palette = fig.Palette
	}
	if len(palette) == 0 {
		palette = styles.PaletteFor(fig.Theme)
	}
	colors := styles.Assign(fig.Series, palette)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		fig.Width, fig.Height, fig.Width, fig.Height)

	r.style.RenderDefs(&buf)
	r.style.RenderBackground(&buf, fig.Width, fig.Height)

	for _, ring := range fig.Rings {
		r.style.RenderRing(&buf, styles.Ring{CX: fig.CX, CY: fig.CY, R: ring.R})
	}

	for _, sec := range fig.Sectors {
		tooltip := ""
		if r.tooltips {
			tooltip = fmt.Sprintf("%s %s\n%s", sec.Category, sec.Series, styles.FormatGrouped(sec.Value))
		}
		r.style.RenderSector(&buf, styles.Sector{
			ID:      sectorID(sec.Category, sec.Series),
			Path:    sec.Path,
			Color:   colors.Color(sec.Series),
			Tooltip: tooltip,
		})
	}

	for _, l := range fig.RingLabels {
		r.style.RenderRingLabel(&buf, styles.RingLabel{X: l.X, Y: l.Y, Text: l.Text})
	}

	for _, t := range fig.CategoryTicks {
		r.style.RenderCategoryTick(&buf, styles.CategoryTick{
			X1: t.X1, Y1: t.Y1, X2: t.X2, Y2: t.Y2,
			LabelX: t.LabelX, LabelY: t.LabelY,
			RotationDeg: t.RotationDeg,
			Text:        t.Category,
		})
	}

	for _, e := range fig.Legend {
		r.style.RenderLegendEntry(&buf, styles.LegendEntry{
			X: e.X, Y: e.Y,
			Color: colors.Color(e.Series),
			Text:  e.Series,
		})
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// sectorID builds a DOM-safe element id for a (category, series) pair.
func sectorID(category, series string) string {
	return "sector-" + sanitizeID(category) + "-" + sanitizeID(series)
}

func sanitizeID(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
