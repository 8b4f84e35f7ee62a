package core

import (
	"math"
	"time"
)

// Candle is one OHLCV observation
type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume,omitempty"`
}

// Bullish reports whether the candle closed at or above its open
func (c Candle) Bullish() bool { return c.Close >= c.Open }

// IsEmpty checks if the candle carries no prices at all
func (c Candle) IsEmpty() bool { return c.Open == 0 && c.High == 0 && c.Low == 0 && c.Close == 0 }

// Closes returns the close prices of candles in order
func Closes(candles []Candle) Series[float64] {
	closes := make(Series[float64], len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}

// HeikinAshi turns a candle stream into Heikin-Ashi candles.
// A zero HeikinAshi is ready to use; feed candles in time order.
type HeikinAshi struct {
	previous Candle
	started  bool
}

// NewHeikinAshi creates a new HeikinAshi calculator
func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// Next transforms c into its Heikin-Ashi counterpart:
//   - HA_Close = (Open + High + Low + Close) / 4
//   - HA_Open = (previous HA_Open + previous HA_Close) / 2
//   - HA_High = Max(High, HA_Open, HA_Close)
//   - HA_Low = Min(Low, HA_Open, HA_Close)
//
// The first candle seeds the previous open/close with its own values.
func (ha *HeikinAshi) Next(c Candle) Candle {
	prevOpen, prevClose := ha.previous.Open, ha.previous.Close
	if !ha.started {
		prevOpen, prevClose = c.Open, c.Close
		ha.started = true
	}

	out := Candle{Time: c.Time, Volume: c.Volume}
	out.Open = (prevOpen + prevClose) / 2
	out.Close = (c.Open + c.High + c.Low + c.Close) / 4
	out.High = math.Max(c.High, math.Max(out.Open, out.Close))
	out.Low = math.Min(c.Low, math.Min(out.Open, out.Close))

	ha.previous = out

	return out
}

// ToHeikinAshi converts a whole candle slice, leaving the input untouched
func ToHeikinAshi(candles []Candle) []Candle {
	ha := NewHeikinAshi()
	out := make([]Candle, len(candles))
	for i, c := range candles {
		out[i] = ha.Next(c)
	}
	return out
}
