// Package analysis holds the pure derived-metric calculations: percent change
// against a reference price, drawdown-level tables from the all-time high, and
// the highlight bucket for the current price.
package analysis

import (
	"math"
	"strconv"
	"strings"

	"StockDash/internal/domain/models"
)

// Default drawdown table shape: buckets at 0%, 10%, ... 70%.
const (
	DefaultStepPercent = 10
	DefaultMaxPercent  = 80
)

// NoHighlight is returned by HighlightIndex when no bucket can be determined.
const NoHighlight = -1

// PercentChange returns the change of current against reference as a
// two-decimal percentage string. Missing inputs or a zero reference resolve
// to "N/A"; no error path exists.
func PercentChange(current, reference *float64) string {
	if current == nil || reference == nil || *reference == 0 {
		return models.NotAvailable
	}
	pct := ((*current - *reference) / *reference) * 100
	return formatPercent(round2(pct))
}

// DrawdownLevels builds the threshold table from the all-time high: one level
// per stepPct from 0 up to but excluding maxPct. A nil all-time high yields an
// empty table.
func DrawdownLevels(allTimeHigh *float64, stepPct, maxPct int) []models.DrawdownLevel {
	if allTimeHigh == nil || stepPct <= 0 {
		return nil
	}
	levels := make([]models.DrawdownLevel, 0, maxPct/stepPct+1)
	for p := 0; p < maxPct; p += stepPct {
		levels = append(levels, models.DrawdownLevel{
			PercentDrop:    p,
			PriceThreshold: round2(*allTimeHigh * (1 - float64(p)/100)),
		})
	}
	return levels
}

// HighlightIndex returns the index of the drawdown bucket the current price
// occupies: the largest level whose percent-drop the price has reached.
// A price at or above the all-time high maps to index 0 and a price below
// every threshold to the last index. Absent inputs return NoHighlight.
func HighlightIndex(current, allTimeHigh *float64, levels []models.DrawdownLevel) int {
	if current == nil || allTimeHigh == nil || *allTimeHigh == 0 || len(levels) == 0 {
		return NoHighlight
	}
	dropPct := (1 - *current / *allTimeHigh) * 100
	if dropPct <= 0 {
		return 0
	}
	idx := 0
	for i, lvl := range levels {
		if float64(lvl.PercentDrop) <= dropPct {
			idx = i
		}
	}
	return idx
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatPercent renders a rounded value the way the dashboard displays it:
// minimal digits but always at least one decimal place ("20.0%", "3.45%").
func formatPercent(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}
