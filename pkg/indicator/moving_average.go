package indicator

import (
	"fmt"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/markcheno/go-talib"
)

// MaType selects the averaging method of MovingAverage.
type MaType = talib.MaType

const (
	TypeSMA  = talib.SMA  // Simple Moving Average
	TypeEMA  = talib.EMA  // Exponential Moving Average
	TypeWMA  = talib.WMA  // Weighted Moving Average
	TypeDEMA = talib.DEMA // Double Exponential Moving Average
	TypeTEMA = talib.TEMA // Triple Exponential Moving Average
)

var maNames = map[MaType]string{
	TypeSMA:  "SMA",
	TypeEMA:  "EMA",
	TypeWMA:  "WMA",
	TypeDEMA: "DEMA",
	TypeTEMA: "TEMA",
}

// MovingAverage creates a moving average of close prices.
// period: the number of candles averaged
// color: the colour of the overlay line
func MovingAverage(maType MaType, period int, color string) Indicator {
	return &movingAverage{maType: maType, period: period, color: color}
}

// SMA creates a Simple Moving Average overlay.
func SMA(period int, color string) Indicator {
	return MovingAverage(TypeSMA, period, color)
}

// EMA creates an Exponential Moving Average overlay.
func EMA(period int, color string) Indicator {
	return MovingAverage(TypeEMA, period, color)
}

type movingAverage struct {
	maType MaType
	period int
	color  string
}

func (m movingAverage) Name() string {
	name, ok := maNames[m.maType]
	if !ok {
		name = "MA"
	}
	return fmt.Sprintf("%s(%d)", name, m.period)
}

func (m movingAverage) Warmup() int {
	lookback := m.period - 1
	switch m.maType {
	case TypeDEMA:
		return 2 * lookback
	case TypeTEMA:
		return 3 * lookback
	default:
		return lookback
	}
}

func (m movingAverage) Lines(candles []core.Candle) []Line {
	if !enoughData(candles, m.period) {
		return nil
	}

	values := talib.Ma(core.Closes(candles), m.period, m.maType)

	return []Line{{
		Name:   m.Name(),
		Color:  m.color,
		Values: maskWarmup(values, m.Warmup()),
	}}
}
