package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/precastlab/qcradial/pkg/chart"
)

var sampleObs = []chart.Observation{
	{Category: "mesh_mold", Series: "approved", Value: 1200},
	{Category: "mesh_mold", Series: "rejected", Value: 100},
	{Category: "reinforcement", Series: "approved", Value: 950},
	{Category: "reinforcement", Series: "reworked", Value: 40},
	{Category: "curing", Series: "approved", Value: 800},
	{Category: "surface_finish", Series: "approved", Value: 700},
	{Category: "surface_finish", Series: "rejected", Value: 12},
}

func TestBuild(t *testing.T) {
	fig, err := Build(sampleObs, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if fig.Width != chart.DefaultWidth || fig.Height != chart.DefaultHeight {
		t.Errorf("frame = %g x %g, want defaults", fig.Width, fig.Height)
	}
	if fig.CX != fig.Width/2 || fig.CY != fig.Height/2 {
		t.Errorf("center = (%g, %g), want frame center", fig.CX, fig.CY)
	}
	if fig.MaxTotal != 1300 {
		t.Errorf("MaxTotal = %g, want 1300", fig.MaxTotal)
	}
	if len(fig.Sectors) != len(sampleObs) {
		t.Errorf("len(Sectors) = %d, want %d", len(fig.Sectors), len(sampleObs))
	}
	if len(fig.CategoryTicks) != 4 {
		t.Errorf("len(CategoryTicks) = %d, want 4", len(fig.CategoryTicks))
	}
	if len(fig.Legend) != 3 {
		t.Errorf("len(Legend) = %d, want 3", len(fig.Legend))
	}
	if fig.Empty() {
		t.Error("Empty() = true, want false")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(sampleObs, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Same data, permuted input order.
	shuffled := make([]chart.Observation, len(sampleObs))
	for i, o := range sampleObs {
		shuffled[len(sampleObs)-1-i] = o
	}
	b, err := Build(shuffled, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("Build is not order invariant")
	}
}

func TestBuildEmpty(t *testing.T) {
	fig, err := Build(nil, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if !fig.Empty() {
		t.Error("Empty() = false, want true")
	}
	if len(fig.CategoryTicks) != 0 {
		t.Errorf("len(CategoryTicks) = %d, want 0", len(fig.CategoryTicks))
	}
	// The base ring survives so an empty chart still shows its axis.
	if len(fig.Rings) != 1 || fig.Rings[0].Value != 0 {
		t.Errorf("Rings = %v, want only the base ring", fig.Rings)
	}
	if len(fig.RingLabels) != 0 {
		t.Errorf("len(RingLabels) = %d, want 0", len(fig.RingLabels))
	}
}

func TestBuildGeometry(t *testing.T) {
	fig, err := Build(sampleObs, chart.Options{Width: 800, Height: 800})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	wantOuter := 800.0/2 - 48
	if math.Abs(fig.OuterRadius-wantOuter) > 1e-9 {
		t.Errorf("OuterRadius = %g, want %g", fig.OuterRadius, wantOuter)
	}
	wantInner := chart.DefaultInnerRadiusFraction * wantOuter
	if math.Abs(fig.InnerRadius-wantInner) > 1e-9 {
		t.Errorf("InnerRadius = %g, want %g", fig.InnerRadius, wantInner)
	}

	for _, s := range fig.Sectors {
		if s.OuterRadius > fig.OuterRadius+1e-9 {
			t.Errorf("sector %s/%s outer radius %g exceeds figure outer %g",
				s.Category, s.Series, s.OuterRadius, fig.OuterRadius)
		}
		if s.InnerRadius < fig.InnerRadius-1e-9 {
			t.Errorf("sector %s/%s inner radius %g below figure inner %g",
				s.Category, s.Series, s.InnerRadius, fig.InnerRadius)
		}
	}

	// The largest category's stack reaches exactly the outer radius.
	var maxR float64
	for _, s := range fig.Sectors {
		if s.OuterRadius > maxR {
			maxR = s.OuterRadius
		}
	}
	if math.Abs(maxR-fig.OuterRadius) > 1e-9 {
		t.Errorf("max sector radius = %g, want %g", maxR, fig.OuterRadius)
	}
}

func TestBuildSeriesOrder(t *testing.T) {
	fig, err := Build(sampleObs, chart.Options{
		SeriesOrder: []string{"rejected", "reworked", "approved"},
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"rejected", "reworked", "approved"}
	if !reflect.DeepEqual(fig.Series, want) {
		t.Errorf("Series = %v, want %v", fig.Series, want)
	}

	// mesh_mold now stacks rejected first, so its approved segment starts
	// at the rejected segment's outer radius.
	var rejected, approved Sector
	for _, s := range fig.Sectors {
		if s.Category != "mesh_mold" {
			continue
		}
		switch s.Series {
		case "rejected":
			rejected = s
		case "approved":
			approved = s
		}
	}
	if math.Abs(approved.InnerRadius-rejected.OuterRadius) > 1e-9 {
		t.Errorf("approved starts at %g, rejected ends at %g", approved.InnerRadius, rejected.OuterRadius)
	}
}

func TestBuildZeroWidthSegmentKept(t *testing.T) {
	obs := []chart.Observation{
		{Category: "curing", Series: "approved", Value: 100},
		{Category: "curing", Series: "rejected", Value: 0},
	}
	fig, err := Build(obs, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(fig.Sectors) != 2 {
		t.Fatalf("len(Sectors) = %d, want 2", len(fig.Sectors))
	}
	zero := fig.Sectors[1]
	if zero.Value != 0 {
		t.Fatalf("second sector value = %g, want 0", zero.Value)
	}
	if zero.Path != "" {
		t.Errorf("zero-width sector has path %q, want empty", zero.Path)
	}
}

func TestBuildInvalidOptions(t *testing.T) {
	if _, err := Build(sampleObs, chart.Options{Theme: "sepia"}); err == nil {
		t.Error("Build() with invalid theme: error = nil, want error")
	}
}

func TestBuildRingLabels(t *testing.T) {
	fig, err := Build(sampleObs, chart.Options{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(fig.RingLabels) != len(fig.Rings)-1 {
		t.Fatalf("len(RingLabels) = %d, want %d", len(fig.RingLabels), len(fig.Rings)-1)
	}
	for _, l := range fig.RingLabels {
		if l.X != fig.CX {
			t.Errorf("ring label X = %g, want center %g", l.X, fig.CX)
		}
		if l.Y >= fig.CY {
			t.Errorf("ring label Y = %g, want above center %g", l.Y, fig.CY)
		}
		if l.Text == "" {
			t.Error("ring label has empty text")
		}
	}
}
