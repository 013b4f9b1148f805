package chart

// Segment is one series' contribution to a category's stacked bar,
// expressed as a cumulative offset interval. End - Start equals the
// observation value; within a category, segments are contiguous in
// series-domain order.
type Segment struct {
	Category string  `json:"category"`
	Series   string  `json:"series"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
}

// Value returns the observation value the segment represents.
func (s Segment) Value() float64 { return s.End - s.Start }

// Stack holds the stacked segments for a dataset plus the per-category
// cumulative totals.
type Stack struct {
	Segments []Segment
	Totals   map[string]float64

	// Max is the largest category total. It is the domain maximum of the
	// radial scale.
	Max float64
}

// BuildStack computes cumulative per-series offsets for each category.
//
// For every category, series are accumulated in series-domain order. A
// (category, series) pair absent from the data contributes no segment and
// does not break contiguity for subsequent series; a pair present with
// value 0 yields a zero-width segment (Start == End).
func BuildStack(d Dataset) Stack {
	values := make(map[[2]string]float64, len(d.Observations))
	present := make(map[[2]string]bool, len(d.Observations))
	for _, o := range d.Observations {
		k := [2]string{o.Category, o.Series}
		values[k] = o.Value
		present[k] = true
	}

	st := Stack{
		Segments: make([]Segment, 0, len(d.Observations)),
		Totals:   make(map[string]float64, len(d.Categories)),
	}

	for _, cat := range d.Categories {
		offset := 0.0
		for _, ser := range d.Series {
			k := [2]string{cat, ser}
			if !present[k] {
				continue
			}
			v := values[k]
			st.Segments = append(st.Segments, Segment{
				Category: cat,
				Series:   ser,
				Start:    offset,
				End:      offset + v,
			})
			offset += v
		}
		st.Totals[cat] = offset
		if offset > st.Max {
			st.Max = offset
		}
	}
	return st
}
