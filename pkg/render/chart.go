// Package render draws computed layouts as SVG documents and PNG previews.
//
// A Chart is a flat list of shapes, labels, axes and grid lines in plot
// coordinates. The Add methods fill it from layout results; WriteSVG and
// WritePNG turn it into output.
package render

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/raykavin/chartkit/pkg/axis"
	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/layout"
	"github.com/raykavin/chartkit/pkg/path"
	"github.com/raykavin/chartkit/pkg/scale"
)

// ErrEmptyCanvas is returned when the plot area has no size.
var ErrEmptyCanvas = errors.New("empty canvas")

// DefaultTickCount is the number of ticks asked from continuous axes.
const DefaultTickCount = 6

// Margin is the space around the plot area that holds axes and the title.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// DefaultMargin leaves room for tick labels on the left and bottom.
var DefaultMargin = Margin{Top: 30, Right: 20, Bottom: 40, Left: 60}

// Anchor aligns a label to its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Shape is a path with its paint. An empty Fill or Stroke is not painted.
type Shape struct {
	Path        path.Path
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
}

// Label is a piece of text in plot coordinates.
type Label struct {
	X      float64
	Y      float64
	Text   string
	Anchor Anchor
}

// Axis is a row of ticks along one edge of the plot.
type Axis struct {
	Position axis.Position
	Ticks    []axis.Tick
}

// Chart is a drawable chart.
type Chart struct {
	Width      float64
	Height     float64
	Margin     Margin
	Title      string
	Background string
	Grid       []axis.GridLine
	Axes       []Axis
	Shapes     []Shape
	Labels     []Label
}

// Option configures a Chart.
type Option func(*Chart)

// WithTitle sets the title drawn above the plot.
func WithTitle(title string) Option {
	return func(c *Chart) {
		c.Title = title
	}
}

// WithMargin replaces DefaultMargin.
func WithMargin(m Margin) Option {
	return func(c *Chart) {
		c.Margin = m
	}
}

// WithBackground sets the fill of the whole canvas.
func WithBackground(color string) Option {
	return func(c *Chart) {
		c.Background = color
	}
}

// NewChart creates an empty chart of the given outer size.
func NewChart(width, height float64, options ...Option) *Chart {
	c := &Chart{
		Width:      width,
		Height:     height,
		Margin:     DefaultMargin,
		Background: "#ffffff",
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Plot returns the size of the area inside the margins.
func (c *Chart) Plot() layout.Size {
	return layout.Size{
		Width:  math.Max(0, c.Width-c.Margin.Left-c.Margin.Right),
		Height: math.Max(0, c.Height-c.Margin.Top-c.Margin.Bottom),
	}
}

func (c *Chart) validate() error {
	plot := c.Plot()
	if plot.Width <= 0 || plot.Height <= 0 {
		return fmt.Errorf("%w: %gx%g plot in %gx%g canvas", ErrEmptyCanvas, plot.Width, plot.Height, c.Width, c.Height)
	}
	return nil
}

func (c *Chart) addAxis(pos axis.Position, ticks []axis.Tick, grid bool) {
	c.Axes = append(c.Axes, Axis{Position: pos, Ticks: ticks})
	if grid {
		c.Grid = append(c.Grid, axis.Grid(ticks, pos, c.Plot())...)
	}
}

func barRadii(bar layout.Bar, horizontal bool, r float64) path.CornerRadii {
	switch {
	case r <= 0:
		return path.CornerRadii{}
	case horizontal && bar.Value >= 0:
		return path.CornerRadii{0, r, r, 0}
	case horizontal:
		return path.CornerRadii{r, 0, 0, r}
	case bar.Value >= 0:
		return path.TopRadii(r)
	default:
		return path.CornerRadii{0, 0, r, r}
	}
}

// AddBars draws a bar layout with the value axis gridded. radius rounds the
// outer end of every bar.
func (c *Chart) AddBars(l layout.BarLayout, radius float64) {
	horizontal := l.Orientation == layout.Horizontal

	if horizontal {
		c.addAxis(axis.Bottom, axis.Linear(l.ValueScale, DefaultTickCount, nil), true)
		c.addAxis(axis.Left, axis.Band(l.CategoryScale), false)
	} else {
		c.addAxis(axis.Bottom, axis.Band(l.CategoryScale), false)
		c.addAxis(axis.Left, axis.Linear(l.ValueScale, DefaultTickCount, nil), true)
	}

	for _, s := range l.Series {
		for _, b := range s.Bars {
			p := path.BarPath(b.X, b.Y, b.Width, b.Height, barRadii(b, horizontal, radius))
			if len(p) == 0 {
				continue
			}
			c.Shapes = append(c.Shapes, Shape{Path: p, Fill: s.Color})
		}
	}
}

// AddLines draws a line layout, areas first so lines stay on top.
func (c *Chart) AddLines(l layout.LineLayout) {
	switch {
	case l.CategoryScale != nil:
		c.addAxis(axis.Bottom, axis.Band(l.CategoryScale), false)
	case l.TimeScale != nil:
		c.addAxis(axis.Bottom, axis.Time(l.TimeScale, DefaultTickCount), true)
	default:
		if linear, ok := l.XScale.(*scale.Linear); ok {
			c.addAxis(axis.Bottom, axis.Linear(linear, DefaultTickCount, nil), true)
		}
	}
	c.addAxis(axis.Left, axis.Linear(l.YScale, DefaultTickCount, nil), true)

	for _, s := range l.Series {
		if len(s.Area) > 0 {
			c.Shapes = append(c.Shapes, Shape{Path: s.Area, Fill: s.Color, Opacity: 0.2})
		}
	}
	for _, s := range l.Series {
		if len(s.Path) > 0 {
			c.Shapes = append(c.Shapes, Shape{Path: s.Path, Stroke: s.Color, StrokeWidth: 2})
		}
	}
}

// AddCandles draws candles coloured by direction, their volume bars and the
// indicator overlays.
func (c *Chart) AddCandles(l layout.CandlestickLayout) {
	times := make([]time.Time, len(l.Candles))
	for i, candle := range l.Candles {
		times[i] = candle.Candle.Time
	}

	c.addAxis(axis.Bottom, axis.CandleTimes(l.IndexScale, times, DefaultTickCount), false)
	c.addAxis(axis.Left, axis.Linear(l.PriceScale, DefaultTickCount, nil), true)

	up, down := core.IntentSuccess.Color(), core.IntentDanger.Color()

	for _, candle := range l.Candles {
		color := down
		if candle.Geometry.Bullish {
			color = up
		}

		if v := candle.Volume; v != nil && v.Height > 0 {
			c.Shapes = append(c.Shapes, Shape{
				Path:    path.BarPath(v.X, v.Y, v.Width, v.Height, path.CornerRadii{}),
				Fill:    color,
				Opacity: 0.4,
			})
		}
		c.Shapes = append(c.Shapes, Shape{Path: candle.Path, Fill: color})
	}

	for _, overlay := range l.Overlays {
		if len(overlay.Path) > 0 {
			c.Shapes = append(c.Shapes, Shape{Path: overlay.Path, Stroke: overlay.Color, StrokeWidth: 1.5})
		}
	}
}

// AddPie draws the slices with their percentage at the centroid and their
// label at the end of a leader line.
func (c *Chart) AddPie(l layout.PieLayout) {
	for _, s := range l.Slices {
		c.Shapes = append(c.Shapes, Shape{Path: s.Path, Fill: s.Color, Stroke: "#ffffff", StrokeWidth: 1})
		c.Shapes = append(c.Shapes, Shape{Path: s.Leader, Stroke: s.Color, StrokeWidth: 1})

		c.Labels = append(c.Labels, Label{
			X:      s.Centroid.X,
			Y:      s.Centroid.Y,
			Text:   fmt.Sprintf("%.0f%%", s.Angle.Percentage),
			Anchor: AnchorMiddle,
		})

		anchor := AnchorStart
		if math.Cos(s.Centroid.Angle) < 0 {
			anchor = AnchorEnd
		}
		end := l.OuterRadius + layout.LeaderLength + 4
		c.Labels = append(c.Labels, Label{
			X:      l.Center.X + end*math.Cos(s.Centroid.Angle),
			Y:      l.Center.Y + end*math.Sin(s.Centroid.Angle),
			Text:   s.Label,
			Anchor: anchor,
		})
	}
}
