package indicator

import (
	"fmt"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/markcheno/go-talib"
)

// SuperTrend creates the SuperTrend overlay: a trailing band factor ATRs
// away from the median price that flips sides when the close crosses it.
func SuperTrend(atrPeriod int, factor float64, color string) Indicator {
	return &superTrend{atrPeriod: atrPeriod, factor: factor, color: color}
}

type superTrend struct {
	atrPeriod int
	factor    float64
	color     string
}

func (s superTrend) Name() string {
	return fmt.Sprintf("SuperTrend(%d, %g)", s.atrPeriod, s.factor)
}

// Warmup covers the ATR lookback plus the candle needed to seed the bands.
func (s superTrend) Warmup() int {
	return s.atrPeriod + 1
}

func (s superTrend) Lines(candles []core.Candle) []Line {
	if !enoughData(candles, s.Warmup()+1) {
		return nil
	}

	n := len(candles)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := core.Closes(candles)
	for i, c := range candles {
		high[i], low[i] = c.High, c.Low
	}

	atr := talib.Atr(high, low, closes, s.atrPeriod)

	upper := make([]float64, n)
	lower := make([]float64, n)
	trend := make([]float64, n)

	for i := 1; i < n; i++ {
		median := (high[i] + low[i]) / 2
		basicUpper := median + atr[i]*s.factor
		basicLower := median - atr[i]*s.factor

		if basicUpper < upper[i-1] || closes[i-1] > upper[i-1] {
			upper[i] = basicUpper
		} else {
			upper[i] = upper[i-1]
		}

		if basicLower > lower[i-1] || closes[i-1] < lower[i-1] {
			lower[i] = basicLower
		} else {
			lower[i] = lower[i-1]
		}

		// follow the band the trend was on, switching when the close crosses it
		if trend[i-1] == upper[i-1] {
			if closes[i] > upper[i] {
				trend[i] = lower[i]
			} else {
				trend[i] = upper[i]
			}
		} else {
			if closes[i] < lower[i] {
				trend[i] = upper[i]
			} else {
				trend[i] = lower[i]
			}
		}
	}

	return []Line{{Name: s.Name(), Color: s.color, Values: maskWarmup(trend, s.Warmup())}}
}
