package layout

import (
	"math"
	"strconv"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"
	"github.com/raykavin/chartkit/pkg/scale"

	"github.com/samber/lo"
)

// CandleShape is one positioned candle.
type CandleShape struct {
	Index    int                 `json:"index"`
	Candle   core.Candle         `json:"candle"`
	X        float64             `json:"x"`
	Geometry path.CandleGeometry `json:"geometry"`
	Path     path.Path           `json:"path"`
	Volume   *path.Rect          `json:"volume,omitempty"`
}

// Overlay is an indicator line drawn in the price scale.
type Overlay struct {
	Name   string       `json:"name"`
	Color  string       `json:"color"`
	Points []core.Point `json:"points"`
	Path   path.Path    `json:"path"`
}

// CandlestickLayout is the result of ComputeCandlestickLayout. PriceBottom
// is the lowest pixel of the price area; the volume strip, when enabled,
// fills the space below it.
type CandlestickLayout struct {
	Candles     []CandleShape `json:"candles"`
	Overlays    []Overlay     `json:"overlays,omitempty"`
	PriceExtent [2]float64    `json:"priceExtent"`
	BodyWidth   float64       `json:"bodyWidth"`
	PriceBottom float64       `json:"priceBottom"`
	IndexScale  *scale.Band   `json:"-"`
	PriceScale  *scale.Linear `json:"-"`
}

// indexKeys labels candles by their position so that gaps in time are not
// drawn.
func indexKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

// ComputeCandlestickLayout places candles on a band scale over their index and
// a nice linear price scale. Indicator overlays share the price scale and
// widen its extent; their warm-up values are not drawn. With WithVolume the
// bottom of the plot holds volume bars scaled to the largest volume.
func ComputeCandlestickLayout(candles []core.Candle, size Size, opts ...Option) CandlestickLayout {
	cfg := newConfig(opts)

	shown := candles
	if cfg.heikinAshi {
		shown = core.ToHeikinAshi(candles)
	}

	var lines []indicatorLine
	for i, ind := range cfg.indicators {
		for _, line := range ind.Lines(candles) {
			lines = append(lines, indicatorLine{
				name:   line.Name,
				color:  core.SeriesColor(line.Color, "", i+1),
				values: line.Values,
			})
		}
	}

	extent := priceExtent(shown, lines)

	volumeHeight := math.Max(0, math.Min(cfg.volumeRatio, 1)) * size.Height
	priceBottom := size.Height - volumeHeight

	band := scale.NewBandPadded(indexKeys(len(shown)), [2]float64{0, size.Width}, cfg.bandPadding)
	price := scale.NewLinear(extent, [2]float64{priceBottom, 0}, true, false)
	bodyWidth := band.Bandwidth() * cfg.bodyRatio

	cfg.log.WithFields(map[string]any{
		"candles":     len(shown),
		"extent":      extent,
		"domain":      price.Domain(),
		"overlays":    len(lines),
		"heikinAshi":  cfg.heikinAshi,
		"volumeRatio": cfg.volumeRatio,
	}).Debug("candlestick layout scales")

	maxVolume := lo.Max(lo.Map(shown, func(c core.Candle, _ int) float64 {
		return c.Volume
	}))

	out := CandlestickLayout{
		Candles:     make([]CandleShape, len(shown)),
		PriceExtent: extent,
		BodyWidth:   bodyWidth,
		PriceBottom: priceBottom,
		IndexScale:  band,
		PriceScale:  price,
	}

	for i, c := range shown {
		x, _ := band.Center(strconv.Itoa(i))

		shape := CandleShape{
			Index:    i,
			Candle:   c,
			X:        x,
			Geometry: path.Candlestick(c, x, bodyWidth, price.Call),
			Path:     path.CandlestickPath(c, x, bodyWidth, path.DefaultWickWidth, price.Call),
		}
		if volumeHeight > 0 {
			rect := path.VolumeBar(c.Volume, maxVolume, x, bodyWidth, volumeHeight, size.Height)
			shape.Volume = &rect
		}

		out.Candles[i] = shape
	}

	for _, line := range lines {
		var points []core.Point
		for i, v := range line.values {
			if i >= len(shown) || math.IsNaN(v) {
				continue
			}
			x, _ := band.Center(strconv.Itoa(i))
			points = append(points, core.Pt(x, price.Call(v)))
		}

		out.Overlays = append(out.Overlays, Overlay{
			Name:   line.name,
			Color:  line.color,
			Points: points,
			Path:   path.Line(points, path.CurveLinear, 0),
		})
	}

	return out
}

type indicatorLine struct {
	name   string
	color  string
	values core.Series[float64]
}

// priceExtent spans the candle lows and highs and every drawn indicator
// value. No data yields [0, 100].
func priceExtent(candles []core.Candle, lines []indicatorLine) [2]float64 {
	if len(candles) == 0 {
		return [2]float64{0, 100}
	}

	low, high := path.OHLCRange(candles)
	for _, line := range lines {
		for _, v := range line.values {
			if math.IsNaN(v) {
				continue
			}
			low, high = math.Min(low, v), math.Max(high, v)
		}
	}

	return [2]float64{low, high}
}
