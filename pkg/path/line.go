package path

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
)

// Curve selects how consecutive points of a line are joined.
type Curve string

const (
	CurveLinear     Curve = "linear"
	CurveMonotone   Curve = "monotone"
	CurveCardinal   Curve = "cardinal"
	CurveStep       Curve = "step"
	CurveStepBefore Curve = "stepBefore"
	CurveStepAfter  Curve = "stepAfter"
	CurveBasis      Curve = "basis"
)

// DefaultTension is the cardinal spline tension used by the chart layouts.
const DefaultTension = 0.5

// Curves lists every supported curve.
var Curves = []Curve{
	CurveLinear, CurveMonotone, CurveCardinal,
	CurveStep, CurveStepBefore, CurveStepAfter, CurveBasis,
}

// Valid reports whether c is a known curve.
func (c Curve) Valid() bool {
	for _, known := range Curves {
		if c == known {
			return true
		}
	}
	return false
}

// Line joins points with the given curve. An empty input yields an empty
// path, a single point a lone move, and two points always a straight line.
// Unknown curves are drawn linear. tension only affects cardinal curves.
func Line(points []core.Point, curve Curve, tension float64) Path {
	if len(points) <= 2 {
		return linear(points)
	}

	switch curve {
	case CurveMonotone:
		return monotone(points)
	case CurveCardinal:
		return cardinal(points, tension)
	case CurveStep:
		return step(points, 0.5)
	case CurveStepBefore:
		return step(points, 0)
	case CurveStepAfter:
		return step(points, 1)
	case CurveBasis:
		return basis(points)
	default:
		return linear(points)
	}
}

// Area closes the line of points down to the baseline y with two straight
// segments. Empty input yields an empty path.
func Area(points []core.Point, baseline float64, curve Curve, tension float64) Path {
	if len(points) == 0 {
		return nil
	}

	p := Line(points, curve, tension)
	first, last := points[0], points[len(points)-1]
	p.LineTo(last.X, baseline).LineTo(first.X, baseline).Close()

	return p
}

// ApproximateLength is the polyline length of points scaled by 1.3 to make
// up for curvature. It only drives stroke animations.
func ApproximateLength(points []core.Point) float64 {
	if len(points) < 2 {
		return 0
	}

	var length float64
	for i := 1; i < len(points); i++ {
		length += points[i-1].Distance(points[i])
	}

	return length * 1.3
}

func linear(points []core.Point) Path {
	if len(points) == 0 {
		return nil
	}

	p := make(Path, 0, len(points))
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}

	return p
}

// monotoneTangents computes Fritsch-Carlson tangents: the mean of adjacent
// secant slopes, zero where the slope changes sign, then scaled down so that
// α²+β² never exceeds 9 on any segment.
func monotoneTangents(points []core.Point) []float64 {
	n := len(points)
	tangents := make([]float64, n)
	if n < 2 {
		return tangents
	}

	slopes := make([]float64, n-1)
	for i := range slopes {
		dx := points[i+1].X - points[i].X
		if dx != 0 {
			slopes[i] = (points[i+1].Y - points[i].Y) / dx
		}
	}

	tangents[0] = slopes[0]
	tangents[n-1] = slopes[n-2]
	for i := 1; i < n-1; i++ {
		if slopes[i-1]*slopes[i] > 0 {
			tangents[i] = (slopes[i-1] + slopes[i]) / 2
		}
	}

	for i, m := range slopes {
		if m == 0 {
			tangents[i], tangents[i+1] = 0, 0
			continue
		}

		alpha := tangents[i] / m
		beta := tangents[i+1] / m
		if s := alpha*alpha + beta*beta; s > 9 {
			t := 3 / math.Sqrt(s)
			tangents[i] = t * alpha * m
			tangents[i+1] = t * beta * m
		}
	}

	return tangents
}

func monotone(points []core.Point) Path {
	tangents := monotoneTangents(points)

	p := make(Path, 0, len(points))
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		dx := (p1.X - p0.X) / 3
		p.CubicTo(
			p0.X+dx, p0.Y+tangents[i-1]*dx,
			p1.X-dx, p1.Y-tangents[i]*dx,
			p1.X, p1.Y,
		)
	}

	return p
}

func cardinal(points []core.Point, tension float64) Path {
	t := 1 - tension
	last := len(points) - 1

	p := make(Path, 0, len(points))
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i <= last; i++ {
		p0 := points[max(0, i-2)]
		p1 := points[i-1]
		p2 := points[i]
		p3 := points[min(last, i+1)]

		p.CubicTo(
			p1.X+(p2.X-p0.X)/6*t, p1.Y+(p2.Y-p0.Y)/6*t,
			p2.X-(p3.X-p1.X)/6*t, p2.Y-(p3.Y-p1.Y)/6*t,
			p2.X, p2.Y,
		)
	}

	return p
}

// step draws right angles. position 0 goes vertical first, 1 horizontal
// first, anything between splits the horizontal run at that fraction.
func step(points []core.Point, position float64) Path {
	p := make(Path, 0, len(points)*3)
	p.MoveTo(points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]

		switch position {
		case 0:
			p.LineTo(p0.X, p1.Y)
		case 1:
			p.LineTo(p1.X, p0.Y)
		default:
			midX := p0.X + (p1.X-p0.X)*position
			p.LineTo(midX, p0.Y).LineTo(midX, p1.Y)
		}
		p.LineTo(p1.X, p1.Y)
	}

	return p
}

// basis approximates a uniform cubic B-spline through the control points.
func basis(points []core.Point) Path {
	n := len(points)

	p := make(Path, 0, n+1)
	p.MoveTo((points[0].X*2+points[1].X)/3, (points[0].Y*2+points[1].Y)/3)

	for i := 1; i < n-1; i++ {
		p0, p1, p2 := points[i-1], points[i], points[i+1]
		p.CubicTo(
			(p0.X+p1.X*2)/3, (p0.Y+p1.Y*2)/3,
			(p2.X+p1.X*2)/3, (p2.Y+p1.Y*2)/3,
			(p1.X+p2.X)/2, (p1.Y+p2.Y)/2,
		)
	}

	a, b := points[n-2], points[n-1]
	endX, endY := (b.X*2+a.X)/3, (b.Y*2+a.Y)/3
	p.CubicTo((a.X+b.X*2)/3, (a.Y+b.Y*2)/3, endX, endY, endX, endY)

	return p
}
