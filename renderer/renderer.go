// Package renderer renders analysis results as markdown reports for the
// terminal. Each report kind has its own renderer producing a plain
// markdown string; styling is the caller's concern.
package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// barWidth is the width, in cells, of a full chart bar.
const barWidth = 20

// usd formats an amount as US dollars with thousands separators.
func usd(v float64) string {
	return money.NewFromFloat(v, money.USD).Display()
}

// signedUSD is usd with an explicit sign for positive amounts.
func signedUSD(v float64) string {
	if v > 0 {
		return "+" + usd(v)
	}
	return usd(v)
}

// bar renders a horizontal chart bar proportional to value/max. Zero and
// negative maxima render as empty.
func bar(value, max float64) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / max * barWidth))
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n)
}

// percent formats a ratio of part to whole as a percentage.
func percent(part, whole float64) string {
	if whole == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", part/whole*100)
}
