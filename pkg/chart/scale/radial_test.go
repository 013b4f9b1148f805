package scale

import (
	"math"
	"testing"
)

func TestRadialRadius(t *testing.T) {
	r := NewRadial(100, 50, 250)

	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"zero maps to inner", 0, 50},
		{"max maps to outer", 100, 250},
		{"quarter maps to half spread", 25, 50 + 200*0.5},
		{"above max clamps to outer", 150, 250},
		{"negative clamps to inner", -10, 50},
		{"NaN maps to inner", math.NaN(), 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Radius(tt.v); !almostEqual(got, tt.want) {
				t.Errorf("Radius(%g) = %g, want %g", tt.v, got, tt.want)
			}
		})
	}
}

func TestRadialSqrtAreaProportionality(t *testing.T) {
	// With inner = 0 the annulus area between consecutive cumulative values
	// is exactly proportional to the value delta.
	r := NewRadial(300, 0, 100)

	area := func(v0, v1 float64) float64 {
		r0, r1 := r.Radius(v0), r.Radius(v1)
		return math.Pi * (r1*r1 - r0*r0)
	}

	a1 := area(0, 100)
	a2 := area(100, 300)
	if ratio := a2 / a1; !almostEqual(ratio, 2) {
		t.Errorf("area ratio = %g, want 2", ratio)
	}
}

func TestRadialDegenerateMax(t *testing.T) {
	r := NewRadial(0, 40, 200)
	for _, v := range []float64{0, 1, 100} {
		if got := r.Radius(v); got != 40 {
			t.Errorf("Radius(%g) = %g, want inner 40", v, got)
		}
	}
}

func TestRadialAccessors(t *testing.T) {
	r := NewRadial(500, 40, 200)
	if r.Max() != 500 || r.Inner() != 40 || r.Outer() != 200 {
		t.Errorf("accessors = %g, %g, %g, want 500, 40, 200", r.Max(), r.Inner(), r.Outer())
	}
}
