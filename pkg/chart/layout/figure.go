// Package layout turns normalized observations into a Figure: a fully
// resolved, immutable scene graph with every radius, angle and path
// computed. Sinks (SVG, JSON, raster conversion) consume Figures without
// redoing any geometry, so one Build feeds any number of outputs and the
// Figure itself is a stable cache artifact.
package layout

// Figure is the resolved scene graph for one chart. All coordinates are in
// the SVG pixel space of the Width x Height frame. A Figure is built once
// and never mutated; treat every slice as read-only.
type Figure struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`

	// MaxTotal is the largest stacked category total, the domain maximum
	// of the radial scale.
	MaxTotal float64 `json:"max_total"`

	Theme   string   `json:"theme"`
	Palette []string `json:"palette,omitempty"`

	Categories []string `json:"categories"`
	Series     []string `json:"series"`

	Sectors       []Sector       `json:"sectors"`
	CategoryTicks []CategoryTick `json:"category_ticks"`
	Rings         []Ring         `json:"rings"`
	RingLabels    []RingLabel    `json:"ring_labels"`
	Legend        []LegendEntry  `json:"legend"`

	// Dropped counts input rows discarded during normalization.
	Dropped int `json:"dropped,omitempty"`
}

// Empty reports whether the figure has no data sectors. Empty figures
// still carry their frame, base ring and legend-free axis.
func (f Figure) Empty() bool { return len(f.Sectors) == 0 }

// Sector is one stacked segment with its geometry fully resolved. Path is
// the SVG path data; it is empty for zero-width segments, which sinks skip
// when drawing but keep in structural output.
type Sector struct {
	Category string  `json:"category"`
	Series   string  `json:"series"`
	Value    float64 `json:"value"`

	StartAngle  float64 `json:"start_angle"`
	EndAngle    float64 `json:"end_angle"`
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`

	Path string `json:"path,omitempty"`
}

// CategoryTick is the angular axis mark at a category band's midpoint: a
// short radial line outside the outer radius plus a rotated label.
type CategoryTick struct {
	Category string  `json:"category"`
	MidAngle float64 `json:"mid_angle"`

	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`

	LabelX      float64 `json:"label_x"`
	LabelY      float64 `json:"label_y"`
	RotationDeg float64 `json:"rotation_deg"`
}

// Ring is a radial grid circle at a tick value. The base ring at the inner
// radius has Value 0.
type Ring struct {
	Value float64 `json:"value"`
	R     float64 `json:"r"`
}

// RingLabel is the formatted value label for a grid ring, placed at
// 12 o'clock just above the ring.
type RingLabel struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// LegendEntry positions one series in the legend. Colors are assigned at
// render time from the figure's palette.
type LegendEntry struct {
	Series string  `json:"series"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}
