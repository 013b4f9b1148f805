// Package chart defines the data model for radial stacked bar charts:
// quality-control observations, the normalization rules that turn a raw
// observation list into stable category/series domains, and the stacking
// algorithm that converts per-series counts into cumulative offsets.
//
// The package is purely computational. Geometry lives in chart/geom and
// chart/scale, scene construction in chart/layout, and output encoding in
// chart/sink.
package chart

import (
	"math"
	"slices"
	"strings"
)

// Observation is a single QC data point: how many units of a category
// (an inspection stage, e.g. "mesh_mold") fell into a series bucket
// (an outcome, e.g. "approved").
type Observation struct {
	Category string  `json:"category"`
	Series   string  `json:"series"`
	Value    float64 `json:"value"`
}

// Dataset is the normalized form of an observation list. Observations are
// sorted by (category, series), duplicates are aggregated, and the two
// domains are derived from first-appearance order after sorting, so the
// same logical dataset always produces the same Dataset regardless of
// input order.
type Dataset struct {
	Observations []Observation
	Categories   []string
	Series       []string

	// Dropped counts rows discarded during normalization (negative values,
	// missing category or series).
	Dropped int
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizer)

type normalizer struct {
	seriesOrder []string
}

// WithSeriesOrder overrides the derived series domain with an explicit
// stacking order. Series present in the data but absent from the order are
// appended in sorted order; entries with no data are ignored.
func WithSeriesOrder(order []string) NormalizeOption {
	return func(n *normalizer) { n.seriesOrder = order }
}

// Normalize deduplicates and sorts raw observations into a Dataset.
//
// Rules:
//   - rows with an empty category or series are dropped
//   - negative values are dropped (a negative count is always a data bug)
//   - NaN and infinite values are coerced to 0
//   - duplicate (category, series) pairs are summed
//   - output is sorted by (category, series) using string comparison
//
// Normalize is pure and idempotent: permuting the input produces an
// identical Dataset.
func Normalize(obs []Observation, opts ...NormalizeOption) Dataset {
	var n normalizer
	for _, opt := range opts {
		opt(&n)
	}

	type pairKey struct{ cat, ser string }
	sums := make(map[pairKey]float64, len(obs))
	dropped := 0

	for _, o := range obs {
		if o.Category == "" || o.Series == "" {
			dropped++
			continue
		}
		v := o.Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		if v < 0 {
			dropped++
			continue
		}
		sums[pairKey{o.Category, o.Series}] += v
	}

	out := make([]Observation, 0, len(sums))
	for k, v := range sums {
		out = append(out, Observation{Category: k.cat, Series: k.ser, Value: v})
	}
	slices.SortFunc(out, func(a, b Observation) int {
		if c := strings.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return strings.Compare(a.Series, b.Series)
	})

	d := Dataset{
		Observations: out,
		Categories:   distinct(out, func(o Observation) string { return o.Category }),
		Series:       distinct(out, func(o Observation) string { return o.Series }),
		Dropped:      dropped,
	}

	if len(n.seriesOrder) > 0 {
		d.Series = applySeriesOrder(d.Series, n.seriesOrder)
	}
	return d
}

// distinct returns the unique values of key in first-appearance order.
func distinct(obs []Observation, key func(Observation) string) []string {
	seen := make(map[string]struct{}, len(obs))
	var out []string
	for _, o := range obs {
		k := key(o)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// applySeriesOrder reorders derived to match order, appending any series
// not mentioned in order (already sorted, since derived is sort-derived).
func applySeriesOrder(derived, order []string) []string {
	present := make(map[string]struct{}, len(derived))
	for _, s := range derived {
		present[s] = struct{}{}
	}

	out := make([]string, 0, len(derived))
	used := make(map[string]struct{}, len(order))
	for _, s := range order {
		if _, ok := present[s]; !ok {
			continue
		}
		if _, dup := used[s]; dup {
			continue
		}
		used[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range derived {
		if _, ok := used[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
