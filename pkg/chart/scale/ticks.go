package scale

import (
	"math"
	"strconv"
	"strings"
)

// Ticks returns "nice" tick values covering (0, max], roughly count of
// them. Steps are powers of ten times 1, 2 or 5. The zero tick is omitted
// (the chart's base ring at the inner radius stands in for it). A
// non-positive max yields no ticks.
func Ticks(max float64, count int) []float64 {
	if max <= 0 || count < 1 {
		return nil
	}
	step := tickStep(max, count)
	if step <= 0 {
		return nil
	}

	var out []float64
	// Multiply rather than accumulate so long runs stay exact.
	for i := 1; ; i++ {
		v := float64(i) * step
		if v > max*(1+1e-9) {
			break
		}
		out = append(out, v)
	}
	return out
}

// tickStep picks the nice step size for roughly count ticks over [0, max].
// The thresholds follow the standard sqrt(50)/sqrt(10)/sqrt(2) breakpoints
// so the chosen step is the 1/2/5 multiple closest in log space.
func tickStep(max float64, count int) float64 {
	raw := max / float64(count)
	power := math.Floor(math.Log10(raw))
	p := math.Pow(10, power)
	err := raw / p
	switch {
	case err >= math.Sqrt(50):
		p *= 10
	case err >= math.Sqrt(10):
		p *= 5
	case err >= math.Sqrt2:
		p *= 2
	}
	return p
}

// siPrefixes maps exponent/3 to the SI abbreviation used for tick labels.
var siPrefixes = []string{"", "k", "M", "G", "T"}

// FormatSI renders a tick value with an abbreviated SI suffix: 500 stays
// "500", 1200 becomes "1.2k", 3000000 becomes "3M". Trailing zeros in the
// mantissa are trimmed.
func FormatSI(v float64) string {
	if v == 0 {
		return "0"
	}
	neg := ""
	if v < 0 {
		neg = "-"
		v = -v
	}

	tier := 0
	for v >= 1000 && tier < len(siPrefixes)-1 {
		v /= 1000
		tier++
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	// Cap mantissa precision at one decimal for label compactness.
	if i := strings.IndexByte(s, '.'); i >= 0 && len(s) > i+2 {
		s = strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
	}
	return neg + s + siPrefixes[tier]
}
