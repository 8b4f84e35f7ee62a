package indicator

import (
	"fmt"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/markcheno/go-talib"
)

// BollingerBands creates upper, middle and lower bands around a simple
// moving average, deviation standard deviations apart.
func BollingerBands(period int, deviation float64, color string) Indicator {
	return &bollinger{period: period, deviation: deviation, color: color}
}

type bollinger struct {
	period    int
	deviation float64
	color     string
}

func (b bollinger) Name() string {
	return fmt.Sprintf("BB(%d, %g)", b.period, b.deviation)
}

func (b bollinger) Warmup() int {
	return b.period - 1
}

func (b bollinger) Lines(candles []core.Candle) []Line {
	if !enoughData(candles, b.period) {
		return nil
	}

	upper, middle, lower := talib.BBands(core.Closes(candles), b.period, b.deviation, b.deviation, talib.SMA)
	warmup := b.Warmup()

	return []Line{
		{Name: b.Name() + " upper", Color: b.color, Values: maskWarmup(upper, warmup)},
		{Name: b.Name() + " middle", Color: b.color, Values: maskWarmup(middle, warmup)},
		{Name: b.Name() + " lower", Color: b.color, Values: maskWarmup(lower, warmup)},
	}
}
