package sink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/chart/layout"
)

func buildFigure(t *testing.T, opts chart.Options) layout.Figure {
	t.Helper()
	fig, err := layout.Build([]chart.Observation{
		{Category: "mesh_mold", Series: "approved", Value: 1200},
		{Category: "mesh_mold", Series: "rejected", Value: 100},
		{Category: "curing", Series: "approved", Value: 800},
	}, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return fig
}

func TestRenderSVG(t *testing.T) {
	fig := buildFigure(t, chart.Options{})
	svg := string(RenderSVG(fig))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Errorf("missing svg header: %.80s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Errorf("missing closing tag: %.40s", svg[len(svg)-40:])
	}
	if got := strings.Count(svg, `class="sector"`); got != 3 {
		t.Errorf("sector count = %d, want 3", got)
	}
	if !strings.Contains(svg, `class="background"`) {
		t.Error("missing background rect")
	}
	if got := strings.Count(svg, `class="swatch"`); got != 2 {
		t.Errorf("legend swatch count = %d, want 2", got)
	}
	if !strings.Contains(svg, `viewBox="0 0 800.0 800.0"`) {
		t.Error("missing viewBox")
	}
}

func TestRenderSVGTooltips(t *testing.T) {
	fig := buildFigure(t, chart.Options{})

	t.Run("on by default with grouped values", func(t *testing.T) {
		// The newline between label and value is escaped for XML embedding.
		svg := string(RenderSVG(fig))
		if !strings.Contains(svg, "<title>mesh_mold approved&#xA;1,200</title>") {
			t.Errorf("missing tooltip in %.200s", svg)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		svg := string(RenderSVG(fig, WithoutTooltips()))
		if strings.Contains(svg, "<title>") {
			t.Error("tooltips present despite WithoutTooltips")
		}
	})
}

func TestRenderSVGDeterministic(t *testing.T) {
	fig := buildFigure(t, chart.Options{})
	a := RenderSVG(fig)
	b := RenderSVG(fig)
	if !bytes.Equal(a, b) {
		t.Error("RenderSVG is not deterministic")
	}
}

func TestRenderSVGPaletteOverride(t *testing.T) {
	fig := buildFigure(t, chart.Options{})
	svg := string(RenderSVG(fig, WithPalette([]string{"#101010", "#202020"})))

	if !strings.Contains(svg, `fill="#101010"`) {
		t.Error("palette override not applied")
	}
}

func TestRenderSVGDarkTheme(t *testing.T) {
	fig := buildFigure(t, chart.Options{Theme: chart.ThemeDark})
	svg := string(RenderSVG(fig))

	// Dark page background instead of white.
	if strings.Contains(svg, `fill="#ffffff"`) {
		t.Error("dark theme rendered a white background")
	}
}

func TestSectorID(t *testing.T) {
	tests := []struct {
		category string
		series   string
		want     string
	}{
		{"mesh_mold", "approved", "sector-mesh_mold-approved"},
		{"surface finish", "re/worked", "sector-surface-finish-re-worked"},
	}
	for _, tt := range tests {
		if got := sectorID(tt.category, tt.series); got != tt.want {
			t.Errorf("sectorID(%q, %q) = %q, want %q", tt.category, tt.series, got, tt.want)
		}
	}
}
