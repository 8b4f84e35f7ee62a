// Package indicator computes price overlays drawn on candlestick charts.
package indicator

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
)

// Line is one overlay series aligned with the input candles. Values inside
// the warm-up window are NaN.
type Line struct {
	Name   string
	Color  string
	Values core.Series[float64]
}

// Indicator turns candles into one or more overlay lines.
type Indicator interface {
	// Name returns the label of the indicator, e.g. "EMA(9)".
	Name() string
	// Warmup returns the number of leading candles without a value.
	Warmup() int
	// Lines computes the overlay. It returns nil when there are not
	// enough candles.
	Lines(candles []core.Candle) []Line
}

// enoughData reports whether candles cover a full period.
func enoughData(candles []core.Candle, period int) bool {
	return period > 0 && len(candles) >= period
}

// maskWarmup replaces the first warmup values with NaN. talib leaves zeros
// there, which would otherwise be drawn as real prices.
func maskWarmup(values []float64, warmup int) core.Series[float64] {
	out := make(core.Series[float64], len(values))
	for i, v := range values {
		if i < warmup {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
	}
	return out
}
