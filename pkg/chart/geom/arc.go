// Package geom converts stacked segments into drawable annular sectors and
// decides label orientation on the circle.
//
// Angle convention: radians, 0 at 12 o'clock, increasing clockwise. The
// conversion to Cartesian coordinates is x = cx + r·sin(a),
// y = cy − r·cos(a), which matches the SVG coordinate system (y grows
// downward).
package geom

import (
	"fmt"
	"math"
	"strings"
)

// Sector describes one annular sector ("donut slice") bounded by two radii
// and two angles, with optional corner padding.
type Sector struct {
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64

	// PadAngle trims the sector on both angular edges. It is expressed in
	// radians at PadRadius and scaled by 1/r at each radius, so the linear
	// gap width between neighboring sectors is radius-independent.
	PadAngle  float64
	PadRadius float64
}

// Point converts a polar coordinate to Cartesian around (cx, cy).
func Point(cx, cy, r, angle float64) (x, y float64) {
	return cx + r*math.Sin(angle), cy - r*math.Cos(angle)
}

// padInset returns the angular trim applied to one edge at radius r,
// clamped to half the sector's span so edges cannot cross.
func (s Sector) padInset(r float64) float64 {
	if s.PadAngle <= 0 || s.PadRadius <= 0 || r <= 0 {
		return 0
	}
	inset := (s.PadAngle / 2) * (s.PadRadius / r)
	if half := (s.EndAngle - s.StartAngle) / 2; inset > half {
		inset = half
	}
	return inset
}

// Path renders the sector as an SVG path around the center (cx, cy). A
// degenerate sector (zero angular span after padding, or zero radial
// extent) returns the empty string; callers can skip emitting it. The
// result never contains NaN coordinates.
func (s Sector) Path(cx, cy float64) string {
	span := s.EndAngle - s.StartAngle
	if span <= 0 || s.OuterRadius <= 0 || s.OuterRadius <= s.InnerRadius {
		return ""
	}

	outIn := s.padInset(s.OuterRadius)
	a0o, a1o := s.StartAngle+outIn, s.EndAngle-outIn
	if a1o < a0o {
		a0o, a1o = (a0o+a1o)/2, (a0o+a1o)/2
	}
	large := 0
	if a1o-a0o > math.Pi {
		large = 1
	}

	var b strings.Builder

	x0, y0 := Point(cx, cy, s.OuterRadius, a0o)
	x1, y1 := Point(cx, cy, s.OuterRadius, a1o)
	fmt.Fprintf(&b, "M%.2f,%.2f", x0, y0)
	fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 1 %.2f,%.2f", s.OuterRadius, s.OuterRadius, large, x1, y1)

	if s.InnerRadius > 0 {
		inIn := s.padInset(s.InnerRadius)
		a0i, a1i := s.StartAngle+inIn, s.EndAngle-inIn
		if a1i < a0i {
			a0i, a1i = (a0i+a1i)/2, (a0i+a1i)/2
		}
		x2, y2 := Point(cx, cy, s.InnerRadius, a1i)
		x3, y3 := Point(cx, cy, s.InnerRadius, a0i)
		fmt.Fprintf(&b, "L%.2f,%.2f", x2, y2)
		fmt.Fprintf(&b, "A%.2f,%.2f 0 %d 0 %.2f,%.2f", s.InnerRadius, s.InnerRadius, large, x3, y3)
	} else {
		// Wedge down to the center.
		fmt.Fprintf(&b, "L%.2f,%.2f", cx, cy)
	}

	b.WriteString("Z")
	return b.String()
}
