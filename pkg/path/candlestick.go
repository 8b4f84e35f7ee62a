package path

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
)

// Wick is a vertical segment from Y1 to Y2 at X.
type Wick struct {
	X  float64 `json:"x"`
	Y1 float64 `json:"y1"`
	Y2 float64 `json:"y2"`
}

// CandleGeometry is the drawable form of one OHLC observation.
type CandleGeometry struct {
	Bullish   bool `json:"bullish"`
	Body      Rect `json:"body"`
	UpperWick Wick `json:"upperWick"`
	LowerWick Wick `json:"lowerWick"`
}

type candleY struct {
	high, low, top, bottom, height float64
}

// scaleCandle maps prices to pixels. The body spans open and close and is at
// least one pixel tall.
func scaleCandle(c core.Candle, yScale ScaleFunc) candleY {
	open, cls := yScale(c.Open), yScale(c.Close)
	top, bottom := math.Min(open, cls), math.Max(open, cls)

	return candleY{
		high:   yScale(c.High),
		low:    yScale(c.Low),
		top:    top,
		bottom: bottom,
		height: math.Max(bottom-top, 1),
	}
}

// Candlestick computes the body and wicks of c centred on x.
func Candlestick(c core.Candle, x, bodyWidth float64, yScale ScaleFunc) CandleGeometry {
	y := scaleCandle(c, yScale)

	return CandleGeometry{
		Bullish: c.Bullish(),
		Body: Rect{
			X:      Round(x - bodyWidth/2),
			Y:      Round(y.top),
			Width:  Round(bodyWidth),
			Height: Round(y.height),
		},
		UpperWick: Wick{X: Round(x), Y1: Round(y.high), Y2: Round(y.top)},
		LowerWick: Wick{X: Round(x), Y1: Round(y.bottom), Y2: Round(y.low)},
	}
}

// DefaultWickWidth is the wick thickness of CandlestickPath.
const DefaultWickWidth = 1

// CandlestickPath draws the upper wick, the body and the lower wick of c as
// three closed rectangles in one path, so it can be filled in one go.
func CandlestickPath(c core.Candle, x, bodyWidth, wickWidth float64, yScale ScaleFunc) Path {
	y := scaleCandle(c, yScale)
	halfWick := wickWidth / 2

	p := make(Path, 0, 15)
	p.MoveTo(x-halfWick, y.high).
		RelVertical(y.top - y.high).
		RelHorizontal(wickWidth).
		RelVertical(y.high - y.top).
		Close()

	p.MoveTo(x-bodyWidth/2, y.top).
		RelHorizontal(bodyWidth).
		RelVertical(y.height).
		RelHorizontal(-bodyWidth).
		Close()

	p.MoveTo(x-halfWick, y.bottom).
		RelVertical(y.low - y.bottom).
		RelHorizontal(wickWidth).
		RelVertical(y.bottom - y.low).
		Close()

	return p
}

// CandlestickParts returns the body rectangle and a single wick line from
// high to low as separate paths, for styling them apart.
func CandlestickParts(c core.Candle, x, bodyWidth float64, yScale ScaleFunc) (body, wick Path, bullish bool) {
	y := scaleCandle(c, yScale)

	body.MoveTo(x-bodyWidth/2, y.top).
		RelHorizontal(bodyWidth).
		RelVertical(y.height).
		RelHorizontal(-bodyWidth).
		Close()

	wick.MoveTo(x, y.high).LineTo(x, y.low)

	return body, wick, c.Bullish()
}

// OHLCRange returns the lowest low and highest high of candles, or 0, 0 when
// there are none.
func OHLCRange(candles []core.Candle) (lo, hi float64) {
	if len(candles) == 0 {
		return 0, 0
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range candles {
		lo = math.Min(lo, c.Low)
		hi = math.Max(hi, c.High)
	}

	return lo, hi
}

// VolumeBar sizes a volume bar centred on x and anchored at areaBottom. Its
// height is the share of maxVolume times areaHeight.
func VolumeBar(volume, maxVolume, x, barWidth, areaHeight, areaBottom float64) Rect {
	var height float64
	if maxVolume > 0 {
		height = volume / maxVolume * areaHeight
	}

	return Rect{
		X:      Round(x - barWidth/2),
		Y:      Round(areaBottom - height),
		Width:  Round(barWidth),
		Height: Round(height),
	}
}
