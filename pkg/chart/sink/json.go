package sink

import (
	"encoding/json"

	"github.com/precastlab/qcradial/pkg/chart/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name (e.g. "simple") in the output for
// round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// RenderJSON exports the figure as a pretty-printed JSON document. The
// output carries every resolved coordinate, so external tools can re-render
// the chart without reimplementing layout, and a round trip through
// RenderJSON and back produces an identical figure.
func RenderJSON(fig layout.Figure, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := struct {
		Style string `json:"style,omitempty"`
		layout.Figure
	}{r.style, fig}

	return json.MarshalIndent(out, "", "  ")
}
