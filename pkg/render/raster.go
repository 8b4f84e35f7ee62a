package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizer draws shapes onto an RGBA image, offset by the plot margin.
type rasterizer struct {
	img    *image.RGBA
	dx, dy float64
}

func (r *rasterizer) paint(col color.NRGBA, build func(v *vector.Rasterizer)) {
	if col.A == 0 {
		return
	}
	b := r.img.Bounds()
	v := vector.NewRasterizer(b.Dx(), b.Dy())
	v.DrawOp = draw.Over
	build(v)
	v.Draw(r.img, b, image.NewUniform(col), image.Point{})
}

func (r *rasterizer) fill(lines []polyline, col color.NRGBA) {
	r.paint(col, func(v *vector.Rasterizer) {
		for _, l := range lines {
			if len(l.points) < 3 {
				continue
			}
			v.MoveTo(float32(l.points[0].X+r.dx), float32(l.points[0].Y+r.dy))
			for _, pt := range l.points[1:] {
				v.LineTo(float32(pt.X+r.dx), float32(pt.Y+r.dy))
			}
			v.ClosePath()
		}
	})
}

// stroke draws every segment as a quad. All quads wind the same way, so
// overlaps at joins do not cancel out.
func (r *rasterizer) stroke(lines []polyline, col color.NRGBA, width float64) {
	half := math.Max(width, 1) / 2

	r.paint(col, func(v *vector.Rasterizer) {
		for _, l := range lines {
			points := l.points
			if l.closed && len(points) > 1 {
				points = append(points[:len(points):len(points)], points[0])
			}

			for i := 1; i < len(points); i++ {
				a, b := points[i-1], points[i]
				dx, dy := b.X-a.X, b.Y-a.Y
				length := math.Hypot(dx, dy)
				if length == 0 {
					continue
				}
				nx, ny := -dy/length*half, dx/length*half

				v.MoveTo(float32(a.X+nx+r.dx), float32(a.Y+ny+r.dy))
				v.LineTo(float32(b.X+nx+r.dx), float32(b.Y+ny+r.dy))
				v.LineTo(float32(b.X-nx+r.dx), float32(b.Y-ny+r.dy))
				v.LineTo(float32(a.X-nx+r.dx), float32(a.Y-ny+r.dy))
				v.ClosePath()
			}
		}
	})
}

func (r *rasterizer) text(x, y float64, s string, anchor Anchor, col color.NRGBA) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}

	width := float64(d.MeasureString(s).Ceil())
	switch anchor {
	case AnchorMiddle:
		x -= width / 2
	case AnchorEnd:
		x -= width
	}

	d.Dot = fixed.P(round(x+r.dx), round(y+r.dy))
	d.DrawString(s)
}

func paintColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

// Rasterize draws c into a new image. Unknown colours are drawn black.
func Rasterize(c *Chart) (*image.RGBA, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	plot := c.Plot()

	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(c.Width)), int(math.Ceil(c.Height))))
	if c.Background != "" {
		draw.Draw(img, img.Bounds(), image.NewUniform(paintColor(c.Background)), image.Point{}, draw.Src)
	}

	r := &rasterizer{img: img}
	if c.Title != "" {
		r.text(c.Width/2, c.Margin.Top*0.65, c.Title, AnchorMiddle, paintColor(textColor))
	}

	r.dx, r.dy = c.Margin.Left, c.Margin.Top

	for _, g := range c.Grid {
		line := polyline{points: []core.Point{core.Pt(g.X1, g.Y1), core.Pt(g.X2, g.Y2)}}
		r.stroke([]polyline{line}, paintColor(gridColor), 1)
	}

	for _, s := range c.Shapes {
		lines := flatten(s.Path)
		if len(lines) == 0 {
			continue
		}
		if s.Fill != "" {
			r.fill(lines, withOpacity(paintColor(s.Fill), s.Opacity))
		}
		if s.Stroke != "" {
			r.stroke(lines, withOpacity(paintColor(s.Stroke), s.Opacity), s.StrokeWidth)
		}
	}

	for _, a := range c.Axes {
		line, err := path.Parse(axisLine(a.Position, plot.Width, plot.Height))
		if err != nil {
			return nil, fmt.Errorf("axis line: %w", err)
		}
		r.stroke(flatten(line), paintColor(axisColor), 1)
		for _, t := range a.Ticks {
			x, y, anchor := tickLabel(a.Position, t.Offset, plot.Width, plot.Height)
			r.text(x, y, t.Label, anchor, paintColor(textColor))
		}
	}

	for _, l := range c.Labels {
		r.text(l.X, l.Y, l.Text, l.Anchor, paintColor(textColor))
	}

	return img, nil
}

// WritePNG rasterizes c and encodes it as PNG.
func WritePNG(w io.Writer, c *Chart) error {
	img, err := Rasterize(c)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
