package render

import (
	"fmt"
	"io"
	"math"

	"github.com/raykavin/chartkit/pkg/axis"
	"github.com/raykavin/chartkit/pkg/path"

	svg "github.com/ajstarks/svgo"
)

const (
	fontSize  = 11
	axisColor = "#94a3b8"
	gridColor = "#e2e8f0"
	textColor = "#475569"
)

func segment(x1, y1, x2, y2 float64) string {
	var p path.Path
	p.MoveTo(x1, y1).LineTo(x2, y2)
	return p.String()
}

func shapeStyle(s Shape) string {
	fill, stroke := "none", "none"
	if s.Fill != "" {
		fill = s.Fill
	}
	if s.Stroke != "" {
		stroke = s.Stroke
	}

	style := fmt.Sprintf("fill:%s;stroke:%s", fill, stroke)
	if s.Stroke != "" {
		style += fmt.Sprintf(";stroke-width:%g;stroke-linejoin:round;stroke-linecap:round", math.Max(s.StrokeWidth, 1))
	}
	if s.Opacity > 0 && s.Opacity < 1 {
		style += fmt.Sprintf(";opacity:%g", s.Opacity)
	}
	return style
}

func round(v float64) int {
	return int(math.Round(v))
}

// tickLabel returns where the label of a tick goes and how it is aligned.
func tickLabel(pos axis.Position, offset, width, height float64) (x, y float64, anchor Anchor) {
	switch pos {
	case axis.Top:
		return offset, -8, AnchorMiddle
	case axis.Left:
		return -8, offset + 4, AnchorEnd
	case axis.Right:
		return width + 8, offset + 4, AnchorStart
	default:
		return offset, height + 16, AnchorMiddle
	}
}

func axisLine(pos axis.Position, width, height float64) string {
	switch pos {
	case axis.Top:
		return segment(0, 0, width, 0)
	case axis.Left:
		return segment(0, 0, 0, height)
	case axis.Right:
		return segment(width, 0, width, height)
	default:
		return segment(0, height, width, height)
	}
}

// WriteSVG writes c as a standalone SVG document.
func WriteSVG(w io.Writer, c *Chart) error {
	if err := c.validate(); err != nil {
		return err
	}
	plot := c.Plot()

	canvas := svg.New(w)
	canvas.Start(round(c.Width), round(c.Height), fmt.Sprintf(`font-family="sans-serif" font-size="%d"`, fontSize))
	defer canvas.End()

	if c.Background != "" {
		canvas.Rect(0, 0, round(c.Width), round(c.Height), "fill:"+c.Background)
	}
	if c.Title != "" {
		canvas.Title(c.Title)
		canvas.Text(round(c.Width/2), round(c.Margin.Top*0.65), c.Title,
			fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s", fontSize+3, textColor))
	}

	canvas.Gtransform(fmt.Sprintf("translate(%g,%g)", c.Margin.Left, c.Margin.Top))
	defer canvas.Gend()

	for _, g := range c.Grid {
		canvas.Path(segment(g.X1, g.Y1, g.X2, g.Y2), "stroke:"+gridColor+";stroke-width:1")
	}

	for _, s := range c.Shapes {
		if len(s.Path) == 0 {
			continue
		}
		canvas.Path(s.Path.String(), shapeStyle(s))
	}

	for _, a := range c.Axes {
		canvas.Path(axisLine(a.Position, plot.Width, plot.Height), "stroke:"+axisColor+";stroke-width:1")
		for _, t := range a.Ticks {
			x, y, anchor := tickLabel(a.Position, t.Offset, plot.Width, plot.Height)
			canvas.Text(round(x), round(y), t.Label, fmt.Sprintf("text-anchor:%s;fill:%s", anchor, textColor))
		}
	}

	for _, l := range c.Labels {
		canvas.Text(round(l.X), round(l.Y), l.Text, fmt.Sprintf("text-anchor:%s;fill:%s", l.Anchor, textColor))
	}

	return nil
}
