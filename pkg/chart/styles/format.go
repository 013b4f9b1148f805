package styles

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupPrinter = message.NewPrinter(language.English)

// FormatGrouped formats a value with thousands separators for tooltip and
// legend text. Whole values render without a fractional part; everything
// else keeps two decimals.
func FormatGrouped(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return groupPrinter.Sprintf("%d", int64(v))
	}
	return groupPrinter.Sprintf("%.2f", v)
}
