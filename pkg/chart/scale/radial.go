package scale

import "math"

// Radial maps a cumulative stacked value in [0, max] to a radius in
// [inner, outer] using a square-root transform:
//
//	r(v) = inner + (outer - inner) * sqrt(v / max)
//
// With the square root, the annular area between two cumulative values is
// proportional to the value delta (exactly when inner is 0), so a segment
// twice as large covers twice the area. A plain linear radius map would
// visually inflate outer segments and is deliberately not offered.
type Radial struct {
	max    float64
	inner  float64
	outer  float64
	spread float64
}

// NewRadial builds a radial scale over [0, max] mapping to
// [inner, outer]. A non-positive max produces a degenerate scale that maps
// every value to inner, which keeps an empty chart rendering its axis at
// the inner radius without dividing by zero.
func NewRadial(max, inner, outer float64) Radial {
	return Radial{max: max, inner: inner, outer: outer, spread: outer - inner}
}

// Max returns the domain maximum.
func (r Radial) Max() float64 { return r.max }

// Inner returns the radius mapped to value 0.
func (r Radial) Inner() float64 { return r.inner }

// Outer returns the radius mapped to the domain maximum.
func (r Radial) Outer() float64 { return r.outer }

// Radius maps a cumulative value to a radius. Values are clamped to the
// domain; NaN maps to inner.
func (r Radial) Radius(v float64) float64 {
	if r.max <= 0 || v <= 0 || math.IsNaN(v) {
		return r.inner
	}
	if v >= r.max {
		return r.outer
	}
	return r.inner + r.spread*math.Sqrt(v/r.max)
}
