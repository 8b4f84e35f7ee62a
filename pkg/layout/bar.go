package layout

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"
	"github.com/raykavin/chartkit/pkg/scale"

	"github.com/samber/lo"
)

// Bar is one positioned bar. Width and Height are never negative.
type Bar struct {
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	SeriesIndex int            `json:"seriesIndex"`
	PointIndex  int            `json:"pointIndex"`
	Category    string         `json:"category"`
	Value       float64        `json:"value"`
	Point       core.DataPoint `json:"-"`
}

// Rect returns the bar rectangle with the given corner radius.
func (b Bar) Rect(radius float64) path.Rect {
	return path.BarRect(b.X, b.Y, b.Width, b.Height, radius)
}

// BarSeries holds the bars of one input series.
type BarSeries struct {
	Series      core.DataSeries `json:"-"`
	SeriesIndex int             `json:"seriesIndex"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Bars        []Bar           `json:"bars"`
}

// BarLayout is the result of ComputeBarLayout.
type BarLayout struct {
	Series        []BarSeries   `json:"series"`
	Categories    []string      `json:"categories"`
	ValueExtent   [2]float64    `json:"valueExtent"`
	Orientation   Orientation   `json:"orientation"`
	CategoryScale *scale.Band   `json:"-"`
	ValueScale    *scale.Linear `json:"-"`
}

// barExtent returns the value extent. Plain bars span the raw values and 0.
// Stacked bars span the per-category positive and negative totals.
func barExtent(series []core.DataSeries, keys []string, stacked bool) [2]float64 {
	if !stacked {
		extent, ok := core.Extent(yValues(series))
		if !ok {
			return [2]float64{0, 100}
		}
		return core.ExtentWithZero(extent)
	}

	totals := stackTotals(series, keys)

	var extent [2]float64
	for _, t := range totals {
		extent[0] = math.Min(extent[0], t.negative)
		extent[1] = math.Max(extent[1], t.positive)
	}
	return extent
}

type stackTotal struct {
	positive, negative float64
}

func stackTotals(series []core.DataSeries, keys []string) map[string]*stackTotal {
	totals := make(map[string]*stackTotal, len(keys))
	for _, key := range keys {
		totals[key] = &stackTotal{}
	}

	for _, s := range series {
		for _, p := range s.Data {
			t := totals[p.X.String()]
			if p.Y >= 0 {
				t.positive += p.Y
			} else {
				t.negative += p.Y
			}
		}
	}
	return totals
}

type pointRef struct {
	series, point int
}

// stackSegments stacks every category independently, in series order, and
// returns the segment of each point.
func stackSegments(series []core.DataSeries, keys []string, valueScale *scale.Linear) map[pointRef]path.StackSegment {
	refs := make(map[string][]pointRef, len(keys))
	for si, s := range series {
		for pi, p := range s.Data {
			key := p.X.String()
			refs[key] = append(refs[key], pointRef{si, pi})
		}
	}

	segments := make(map[pointRef]path.StackSegment)
	for _, key := range keys {
		values := lo.Map(refs[key], func(r pointRef, _ int) float64 {
			return series[r.series].Data[r.point].Y
		})
		for i, seg := range path.StackedBarPositions(values, valueScale.Call, 0) {
			segments[refs[key][i]] = seg
		}
	}
	return segments
}

// ComputeBarLayout positions the bars of every series. Categories are the
// union of x keys across series in first-seen order. Bars are grouped side
// by side when grouping is enabled and there is more than one series, and
// stacked from the zero baseline when stacking is enabled, with positive and
// negative values growing in opposite directions.
func ComputeBarLayout(series []core.DataSeries, size Size, opts ...Option) BarLayout {
	cfg := newConfig(opts)
	horizontal := cfg.orientation == Horizontal

	keys := categories(series)
	extent := barExtent(series, keys, cfg.stacked)

	bandRange := [2]float64{0, size.Width}
	valueRange := [2]float64{size.Height, 0}
	if horizontal {
		bandRange = [2]float64{0, size.Height}
		valueRange = [2]float64{0, size.Width}
	}

	band := scale.NewBandPadded(keys, bandRange, cfg.bandPadding)
	value := scale.NewLinear(extent, valueRange, true, false)

	cfg.log.WithFields(map[string]any{
		"categories": len(keys),
		"extent":     extent,
		"domain":     value.Domain(),
		"stacked":    cfg.stacked,
	}).Debug("bar layout scales")

	var segments map[pointRef]path.StackSegment
	if cfg.stacked {
		segments = stackSegments(series, keys, value)
	}

	zero := value.Call(0)
	bandwidth := band.Bandwidth()
	grouped := cfg.grouped && len(series) > 1

	out := BarLayout{
		Series:        make([]BarSeries, len(series)),
		Categories:    keys,
		ValueExtent:   extent,
		Orientation:   cfg.orientation,
		CategoryScale: band,
		ValueScale:    value,
	}

	for si, s := range series {
		bars := make([]Bar, 0, len(s.Data))

		for pi, p := range s.Data {
			key := p.X.String()
			start, ok := band.Call(key)
			if !ok {
				cfg.log.WithField("category", key).Warn("bar category outside band domain, skipped")
				continue
			}

			thickness := bandwidth
			if grouped {
				start, thickness = path.GroupedBarPosition(si, len(series), start, bandwidth, cfg.groupPadding)
			}

			from, to := zero, value.Call(p.Y)
			if cfg.stacked {
				seg := segments[pointRef{si, pi}]
				from, to = seg.Start, seg.End
			}
			low, high := math.Min(from, to), math.Max(from, to)

			bar := Bar{
				SeriesIndex: si,
				PointIndex:  pi,
				Category:    key,
				Value:       p.Y,
				Point:       p,
			}
			if horizontal {
				bar.X, bar.Y = low, start
				bar.Width, bar.Height = high-low, thickness
			} else {
				bar.X, bar.Y = start, low
				bar.Width, bar.Height = thickness, high-low
			}
			bar.Width = math.Max(0, bar.Width)
			bar.Height = math.Max(0, bar.Height)

			bars = append(bars, bar)
		}

		out.Series[si] = BarSeries{
			Series:      s,
			SeriesIndex: si,
			Name:        s.Name,
			Color:       core.SeriesColor(s.Color, s.Intent, si),
			Bars:        bars,
		}
	}

	return out
}
