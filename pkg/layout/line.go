package layout

import (
	"math"
	"time"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"
	"github.com/raykavin/chartkit/pkg/scale"

	"github.com/samber/lo"
)

// LinePoint is a placed point of a line with the data point it came from.
// PointIndex is the position of Point in the series data, which differs from
// the position in LineSeries.Points once a point has been skipped.
type LinePoint struct {
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Point      core.DataPoint `json:"point"`
	PointIndex int            `json:"pointIndex"`
}

// Pt returns the screen position.
func (p LinePoint) Pt() core.Point {
	return core.Pt(p.X, p.Y)
}

// LineSeries holds the geometry of one input series.
type LineSeries struct {
	Series      core.DataSeries `json:"-"`
	SeriesIndex int             `json:"seriesIndex"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	Points      []LinePoint     `json:"points"`
	Path        path.Path       `json:"path"`
	Area        path.Path       `json:"area,omitempty"`
	Length      float64         `json:"length"`
}

// LineLayout is the result of ComputeLineLayout. Exactly one of XScale and
// CategoryScale is set, TimeScale is set as well when XKind is XTime.
type LineLayout struct {
	Series        []LineSeries     `json:"series"`
	XKind         core.XKind       `json:"xKind"`
	YExtent       [2]float64       `json:"yExtent"`
	XScale        scale.Continuous `json:"-"`
	TimeScale     *scale.Time      `json:"-"`
	CategoryScale *scale.Band      `json:"-"`
	YScale        *scale.Linear    `json:"-"`
}

// detectXKind inspects only the first point of the first series. Empty input
// is treated as numeric.
func detectXKind(series []core.DataSeries) core.XKind {
	if len(series) == 0 || len(series[0].Data) == 0 {
		return core.XNumber
	}
	return series[0].Data[0].X.Kind
}

func xExtent(series []core.DataSeries) ([2]float64, bool) {
	var values []float64
	for _, s := range series {
		for _, p := range s.Data {
			if v := p.X.Float(); !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	}
	return core.Extent(values)
}

// ComputeLineLayout builds the x scale matching the kind of the first x
// value, a nice y scale including 0, and one line path per series. With
// WithArea the area under each line is closed to the bottom of the plot.
func ComputeLineLayout(series []core.DataSeries, size Size, opts ...Option) LineLayout {
	cfg := newConfig(opts)

	out := LineLayout{
		Series: make([]LineSeries, len(series)),
		XKind:  detectXKind(series),
	}

	yExtent, ok := core.Extent(yValues(series))
	if ok {
		yExtent = core.ExtentWithZero(yExtent)
	} else {
		yExtent = [2]float64{0, 100}
	}
	out.YExtent = yExtent
	out.YScale = scale.NewLinear(yExtent, [2]float64{size.Height, 0}, true, false)

	xRange := [2]float64{0, size.Width}
	var xOf func(core.XValue) (float64, bool)

	switch out.XKind {
	case core.XCategory:
		out.CategoryScale = scale.NewBandPadded(categories(series), xRange, DefaultLinePadding)
		xOf = func(x core.XValue) (float64, bool) {
			return out.CategoryScale.Center(x.String())
		}
	case core.XTime:
		extent, _ := xExtent(series)
		loc := series[0].Data[0].X.Time.Location()
		domain := [2]time.Time{
			time.UnixMilli(int64(extent[0])).In(loc),
			time.UnixMilli(int64(extent[1])).In(loc),
		}
		out.TimeScale = scale.NewTime(domain, xRange, true, false)
		out.XScale = out.TimeScale.Millis()
	default:
		extent, ok := xExtent(series)
		if !ok {
			extent = [2]float64{0, 1}
		}
		out.XScale = scale.NewLinear(extent, xRange, true, false)
	}

	if xOf == nil {
		xOf = func(x core.XValue) (float64, bool) {
			v := x.Float()
			if math.IsNaN(v) {
				return 0, false
			}
			return out.XScale.Call(v), true
		}
	}

	cfg.log.WithFields(map[string]any{
		"series":  len(series),
		"xKind":   out.XKind.String(),
		"yExtent": yExtent,
		"yDomain": out.YScale.Domain(),
	}).Debug("line layout scales")

	for si, s := range series {
		placed := make([]LinePoint, 0, len(s.Data))
		for pi, p := range s.Data {
			x, ok := xOf(p.X)
			if !ok {
				cfg.log.WithFields(map[string]any{
					"x":     p.X.String(),
					"point": pi,
				}).Warn("line point outside x domain, skipped")
				continue
			}
			placed = append(placed, LinePoint{
				X:          x,
				Y:          out.YScale.Call(p.Y),
				Point:      p,
				PointIndex: pi,
			})
		}
		points := lo.Map(placed, func(p LinePoint, _ int) core.Point { return p.Pt() })

		ls := LineSeries{
			Series:      s,
			SeriesIndex: si,
			Name:        s.Name,
			Color:       core.SeriesColor(s.Color, s.Intent, si),
			Points:      placed,
			Path:        path.Line(points, cfg.curve, cfg.tension),
			Length:      path.ApproximateLength(points),
		}
		if cfg.showArea {
			ls.Area = path.Area(points, size.Height, cfg.curve, cfg.tension)
		}

		out.Series[si] = ls
	}

	return out
}
