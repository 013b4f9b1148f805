// Package scale provides the two scales of a radial stacked bar chart: a
// discrete angular band scale over the category domain and a continuous
// area-preserving radial scale over cumulative stacked values, plus nice
// tick generation for the radial axis.
//
// Scales are immutable value types built from their domain and bounds;
// they hold no mutable state and are deterministic, so rebuilding a scale
// from the same inputs always yields identical mappings.
package scale

import "math"

// FullCircle is the angular range covered by a band scale.
const FullCircle = 2 * math.Pi

// Band maps an ordered category domain onto non-overlapping angular bands
// of equal width spanning [0, 2π). A padding fraction of each band step is
// left empty between neighboring bands.
//
// Angles are in radians, measured clockwise from 12 o'clock.
type Band struct {
	domain    []string
	index     map[string]int
	step      float64
	bandwidth float64
	offset    float64
}

// NewBand builds a band scale over domain with the given inter-band
// padding fraction. Padding outside [0, 1) is clamped.
func NewBand(domain []string, padding float64) Band {
	padding = math.Max(0, math.Min(padding, 0.999))

	b := Band{
		domain: domain,
		index:  make(map[string]int, len(domain)),
	}
	for i, c := range domain {
		b.index[c] = i
	}
	if n := len(domain); n > 0 {
		b.step = FullCircle / float64(n)
		b.bandwidth = b.step * (1 - padding)
		b.offset = b.step * padding / 2
	}
	return b
}

// Len returns the number of bands.
func (b Band) Len() int { return len(b.domain) }

// Bandwidth returns the angular width of each band.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the angular distance between band starts (bandwidth plus
// padding).
func (b Band) Step() float64 { return b.step }

// AngleOf returns the start angle of the category's band. The second
// return is false for categories outside the domain.
func (b Band) AngleOf(category string) (float64, bool) {
	i, ok := b.index[category]
	if !ok {
		return 0, false
	}
	return float64(i)*b.step + b.offset, true
}

// Mid returns the angular midpoint of the category's band.
func (b Band) Mid(category string) (float64, bool) {
	a, ok := b.AngleOf(category)
	if !ok {
		return 0, false
	}
	return a + b.bandwidth/2, true
}
