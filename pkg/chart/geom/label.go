package geom

import "math"

// Flip reports whether a label at the given mid angle sits in the lower
// half of the circle and must be rotated 180° to stay right-side-up. The
// boundary is (mid + π/2) mod 2π ≥ π: the flip region covers angles whose
// reading direction would otherwise point downward.
func Flip(mid float64) bool {
	m := math.Mod(mid+math.Pi/2, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m >= math.Pi
}

// LabelRotation returns the rotation in degrees for a category tick label
// at the given mid angle. The base rotation aligns the text baseline with
// the tangent at the band midpoint; flipped labels get 180° more so the
// bottom half of the circle reads left-to-right.
func LabelRotation(mid float64) float64 {
	deg := mid*180/math.Pi - 90
	if Flip(mid) {
		deg += 180
	}
	return deg
}
