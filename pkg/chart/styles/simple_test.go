package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
)

func TestNewSimpleThemes(t *testing.T) {
	light := NewSimple(chart.ThemeLight)
	dark := NewSimple(chart.ThemeDark)

	var lb, db bytes.Buffer
	light.RenderBackground(&lb, 800, 800)
	dark.RenderBackground(&db, 800, 800)

	if !strings.Contains(lb.String(), lightInk.halo) {
		t.Errorf("light background %q missing %q", lb.String(), lightInk.halo)
	}
	if !strings.Contains(db.String(), darkInk.halo) {
		t.Errorf("dark background %q missing %q", db.String(), darkInk.halo)
	}
}

func TestRenderSector(t *testing.T) {
	s := NewSimple(chart.ThemeLight)

	t.Run("with tooltip", func(t *testing.T) {
		var buf bytes.Buffer
		s.RenderSector(&buf, Sector{
			ID:      "sector-curing-approved",
			Path:    "M0,0L1,1Z",
			Color:   "#4e79a7",
			Tooltip: "curing approved\n1,200",
		})
		out := buf.String()
		if !strings.Contains(out, `<title>curing approved&#xA;1,200</title>`) {
			t.Errorf("output missing tooltip: %q", out)
		}
		if !strings.Contains(out, `fill="#4e79a7"`) {
			t.Errorf("output missing fill: %q", out)
		}
	})

	t.Run("without tooltip", func(t *testing.T) {
		var buf bytes.Buffer
		s.RenderSector(&buf, Sector{ID: "s", Path: "M0,0Z", Color: "#fff"})
		if strings.Contains(buf.String(), "<title>") {
			t.Errorf("output has tooltip: %q", buf.String())
		}
	})

	t.Run("empty path skipped", func(t *testing.T) {
		var buf bytes.Buffer
		s.RenderSector(&buf, Sector{ID: "s", Path: "", Color: "#fff"})
		if buf.Len() != 0 {
			t.Errorf("output = %q, want empty", buf.String())
		}
	})
}

func TestRenderRingLabelHalo(t *testing.T) {
	s := NewSimple(chart.ThemeLight)
	var buf bytes.Buffer
	s.RenderRingLabel(&buf, RingLabel{X: 400, Y: 100, Text: "1.2k"})

	out := buf.String()
	halo := strings.Index(out, "ring-label-halo")
	text := strings.Index(out, `class="ring-label"`)
	if halo < 0 || text < 0 || halo > text {
		t.Errorf("halo must precede text: %q", out)
	}
}

func TestRenderCategoryTickRotation(t *testing.T) {
	s := NewSimple(chart.ThemeLight)
	var buf bytes.Buffer
	s.RenderCategoryTick(&buf, CategoryTick{
		X1: 1, Y1: 2, X2: 3, Y2: 4,
		LabelX: 10, LabelY: 20, RotationDeg: 45, Text: "curing",
	})
	if !strings.Contains(buf.String(), `transform="rotate(45.00 10.00 20.00)"`) {
		t.Errorf("output missing rotation: %q", buf.String())
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a<b", "a&lt;b"},
		{"a&b", "a&amp;b"},
		{"a>b", "a&gt;b"},
	}
	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatGrouped(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1200, "1,200"},
		{1234567, "1,234,567"},
		{1200.5, "1,200.50"},
	}
	for _, tt := range tests {
		if got := FormatGrouped(tt.v); got != tt.want {
			t.Errorf("FormatGrouped(%g) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
