package geom

import (
	"math"
	"strings"
	"testing"
)

func TestPoint(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		wantX  float64
		wantY  float64
	}{
		{"twelve o'clock", 0, 100, 0},
		{"three o'clock", math.Pi / 2, 200, 100},
		{"six o'clock", math.Pi, 100, 200},
		{"nine o'clock", 3 * math.Pi / 2, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Point(100, 100, 100, tt.angle)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("Point(angle=%g) = (%g, %g), want (%g, %g)", tt.angle, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestSectorPath(t *testing.T) {
	s := Sector{
		InnerRadius: 50,
		OuterRadius: 100,
		StartAngle:  0,
		EndAngle:    math.Pi / 2,
	}
	path := s.Path(200, 200)

	if path == "" {
		t.Fatal("Path() returned empty string for a valid sector")
	}
	if !strings.HasPrefix(path, "M") || !strings.HasSuffix(path, "Z") {
		t.Errorf("Path() = %q, want M...Z", path)
	}
	if strings.Contains(path, "NaN") {
		t.Errorf("Path() contains NaN: %q", path)
	}
	// Two arcs: outer rim and inner rim.
	if got := strings.Count(path, "A"); got != 2 {
		t.Errorf("arc count = %d, want 2", got)
	}
}

func TestSectorPathDegenerate(t *testing.T) {
	tests := []struct {
		name string
		s    Sector
	}{
		{"zero span", Sector{InnerRadius: 50, OuterRadius: 100, StartAngle: 1, EndAngle: 1}},
		{"negative span", Sector{InnerRadius: 50, OuterRadius: 100, StartAngle: 2, EndAngle: 1}},
		{"zero outer radius", Sector{InnerRadius: 0, OuterRadius: 0, StartAngle: 0, EndAngle: 1}},
		{"outer inside inner", Sector{InnerRadius: 100, OuterRadius: 50, StartAngle: 0, EndAngle: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Path(200, 200); got != "" {
				t.Errorf("Path() = %q, want empty", got)
			}
		})
	}
}

func TestSectorPathWedge(t *testing.T) {
	// Inner radius zero closes down to the center instead of an inner arc.
	s := Sector{OuterRadius: 100, StartAngle: 0, EndAngle: 1}
	path := s.Path(200, 200)

	if got := strings.Count(path, "A"); got != 1 {
		t.Errorf("arc count = %d, want 1", got)
	}
	if !strings.Contains(path, "L200.00,200.00") {
		t.Errorf("Path() = %q, want line to center", path)
	}
}

func TestSectorPathLargeArcFlag(t *testing.T) {
	wide := Sector{InnerRadius: 50, OuterRadius: 100, StartAngle: 0, EndAngle: 3 * math.Pi / 2}
	if path := wide.Path(200, 200); !strings.Contains(path, " 1 1 ") {
		t.Errorf("wide sector path %q missing large-arc flag", path)
	}

	narrow := Sector{InnerRadius: 50, OuterRadius: 100, StartAngle: 0, EndAngle: math.Pi / 4}
	if path := narrow.Path(200, 200); strings.Contains(path, " 1 1 ") {
		t.Errorf("narrow sector path %q has large-arc flag", path)
	}
}

func TestSectorPadInsetClamped(t *testing.T) {
	// A pad angle wider than the sector collapses it to the midpoint rather
	// than crossing the edges.
	s := Sector{
		InnerRadius: 50,
		OuterRadius: 100,
		StartAngle:  0,
		EndAngle:    0.01,
		PadAngle:    1,
		PadRadius:   50,
	}
	path := s.Path(200, 200)
	if strings.Contains(path, "NaN") {
		t.Errorf("Path() contains NaN: %q", path)
	}
}

func TestSectorPadScalesWithRadius(t *testing.T) {
	s := Sector{
		InnerRadius: 50,
		OuterRadius: 200,
		StartAngle:  0,
		EndAngle:    1,
		PadAngle:    0.1,
		PadRadius:   50,
	}
	// At the pad radius the inset is PadAngle/2; at four times the radius
	// it shrinks by the same factor.
	if got := s.padInset(50); math.Abs(got-0.05) > 1e-9 {
		t.Errorf("padInset(50) = %g, want 0.05", got)
	}
	if got := s.padInset(200); math.Abs(got-0.0125) > 1e-9 {
		t.Errorf("padInset(200) = %g, want 0.0125", got)
	}
}
