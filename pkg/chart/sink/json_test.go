package sink

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/chart/layout"
)

func TestRenderJSON(t *testing.T) {
	fig := buildFigure(t, chart.Options{})

	data, err := RenderJSON(fig, WithJSONStyle("simple"))
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out struct {
		Style string `json:"style"`
		layout.Figure
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if out.Style != "simple" {
		t.Errorf("style = %q, want %q", out.Style, "simple")
	}
	if !reflect.DeepEqual(out.Figure, fig) {
		t.Error("figure did not survive the round trip")
	}
}

func TestRenderJSONNoStyle(t *testing.T) {
	fig := buildFigure(t, chart.Options{})
	data, err := RenderJSON(fig)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := raw["style"]; ok {
		t.Error("style key present without WithJSONStyle")
	}
	if _, ok := raw["sectors"]; !ok {
		t.Error("sectors key missing")
	}
}
