package layout

import (
	"math"

	"github.com/precastlab/qcradial/pkg/chart"
	"github.com/precastlab/qcradial/pkg/chart/geom"
	"github.com/precastlab/qcradial/pkg/chart/scale"
)

const (
	// labelMargin reserves room outside the outer radius for category
	// tick labels.
	labelMargin = 48.0

	tickLength      = 6.0
	tickLabelOffset = 20.0
	ringLabelNudge  = 4.0

	legendX    = 16.0
	legendY    = 16.0
	legendStep = 18.0
)

// Build computes the complete scene graph for a set of observations.
//
// Build is deterministic: the same observations (in any order) and options
// always produce an identical Figure. An empty or fully-dropped input
// yields a figure with no sectors, the base ring, and no category ticks.
func Build(obs []chart.Observation, opts chart.Options) (Figure, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return Figure{}, err
	}

	var nopts []chart.NormalizeOption
	if len(opts.SeriesOrder) > 0 {
		nopts = append(nopts, chart.WithSeriesOrder(opts.SeriesOrder))
	}
	d := chart.Normalize(obs, nopts...)
	st := chart.BuildStack(d)

	cx, cy := opts.Width/2, opts.Height/2
	outer := math.Min(opts.Width, opts.Height)/2 - labelMargin
	if outer < 0 {
		outer = 0
	}
	inner := opts.InnerRadiusFraction * outer

	band := scale.NewBand(d.Categories, opts.CategoryPadding)
	radial := scale.NewRadial(st.Max, inner, outer)

	fig := Figure{
		Width:       opts.Width,
		Height:      opts.Height,
		CX:          cx,
		CY:          cy,
		InnerRadius: inner,
		OuterRadius: outer,
		MaxTotal:    st.Max,
		Theme:       opts.Theme,
		Palette:     opts.Palette,
		Categories:  d.Categories,
		Series:      d.Series,
		Dropped:     d.Dropped,
	}

	for _, seg := range st.Segments {
		start, ok := band.AngleOf(seg.Category)
		if !ok {
			continue
		}
		end := start + band.Bandwidth()
		sec := geom.Sector{
			InnerRadius: radial.Radius(seg.Start),
			OuterRadius: radial.Radius(seg.End),
			StartAngle:  start,
			EndAngle:    end,
			PadAngle:    opts.PadAngle,
			PadRadius:   inner,
		}
		fig.Sectors = append(fig.Sectors, Sector{
			Category:    seg.Category,
			Series:      seg.Series,
			Value:       seg.Value(),
			StartAngle:  start,
			EndAngle:    end,
			InnerRadius: sec.InnerRadius,
			OuterRadius: sec.OuterRadius,
			Path:        sec.Path(cx, cy),
		})
	}

	for _, cat := range d.Categories {
		mid, ok := band.Mid(cat)
		if !ok {
			continue
		}
		x1, y1 := geom.Point(cx, cy, outer, mid)
		x2, y2 := geom.Point(cx, cy, outer+tickLength, mid)
		lx, ly := geom.Point(cx, cy, outer+tickLabelOffset, mid)
		fig.CategoryTicks = append(fig.CategoryTicks, CategoryTick{
			Category:    cat,
			MidAngle:    mid,
			X1:          x1,
			Y1:          y1,
			X2:          x2,
			Y2:          y2,
			LabelX:      lx,
			LabelY:      ly,
			RotationDeg: geom.LabelRotation(mid),
		})
	}

	// The base ring stands in for the zero tick.
	fig.Rings = append(fig.Rings, Ring{Value: 0, R: inner})
	for _, v := range scale.Ticks(st.Max, opts.TickCount) {
		r := radial.Radius(v)
		fig.Rings = append(fig.Rings, Ring{Value: v, R: r})
		fig.RingLabels = append(fig.RingLabels, RingLabel{
			Value: v,
			Text:  scale.FormatSI(v),
			X:     cx,
			Y:     cy - r - ringLabelNudge,
		})
	}

	for i, ser := range d.Series {
		fig.Legend = append(fig.Legend, LegendEntry{
			Series: ser,
			X:      legendX,
			Y:      legendY + float64(i)*legendStep,
		})
	}

	return fig, nil
}
