package render

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"
)

// curveSegments is the number of straight pieces a curve is flattened into.
const curveSegments = 16

// polyline is one flattened subpath.
type polyline struct {
	points []core.Point
	closed bool
}

// flatten turns a path into polylines. Relative and shorthand commands are
// resolved, curves and arcs are approximated by straight segments.
func flatten(p path.Path) []polyline {
	current := -1

	var (
		out      []polyline
		pen      core.Point
		start    core.Point
		lastCtrl core.Point
		lastOp   path.Op
	)

	emit := func(pt core.Point) {
		out[current].points = append(out[current].points, pt)
		pen = pt
	}

	for _, c := range p {
		args := c.Args
		abs := func(i int) core.Point {
			pt := core.Pt(args[i], args[i+1])
			if c.Relative {
				pt = core.Pt(pen.X+pt.X, pen.Y+pt.Y)
			}
			return pt
		}

		if c.Op != path.OpMove && current < 0 {
			out = append(out, polyline{points: []core.Point{pen}})
			current = len(out) - 1
		}

		switch c.Op {
		case path.OpMove:
			pt := abs(0)
			out = append(out, polyline{points: []core.Point{pt}})
			current = len(out) - 1
			pen, start = pt, pt
		case path.OpLine:
			emit(abs(0))
		case path.OpHorizontal:
			x := args[0]
			if c.Relative {
				x += pen.X
			}
			emit(core.Pt(x, pen.Y))
		case path.OpVertical:
			y := args[0]
			if c.Relative {
				y += pen.Y
			}
			emit(core.Pt(pen.X, y))
		case path.OpCubic, path.OpSmoothCubic:
			var c1 core.Point
			rest := 0
			if c.Op == path.OpCubic {
				c1, rest = abs(0), 2
			} else {
				c1 = pen
				if lastOp == path.OpCubic || lastOp == path.OpSmoothCubic {
					c1 = reflect(lastCtrl, pen)
				}
			}
			c2, end := abs(rest), abs(rest+2)
			for _, pt := range cubic(pen, c1, c2, end) {
				emit(pt)
			}
			lastCtrl = c2
		case path.OpQuad, path.OpSmoothQuad:
			var ctrl, end core.Point
			if c.Op == path.OpQuad {
				ctrl, end = abs(0), abs(2)
			} else {
				ctrl = pen
				if lastOp == path.OpQuad || lastOp == path.OpSmoothQuad {
					ctrl = reflect(lastCtrl, pen)
				}
				end = abs(0)
			}
			for _, pt := range quad(pen, ctrl, end) {
				emit(pt)
			}
			lastCtrl = ctrl
		case path.OpArc:
			end := abs(5)
			for _, pt := range arc(pen, args[0], args[1], args[2], args[3] != 0, args[4] != 0, end) {
				emit(pt)
			}
		case path.OpClose:
			out[current].closed = true
			current = -1
			pen = start
		}

		lastOp = c.Op
	}

	return out
}

func reflect(ctrl, about core.Point) core.Point {
	return core.Pt(2*about.X-ctrl.X, 2*about.Y-ctrl.Y)
}

func cubic(p0, p1, p2, p3 core.Point) []core.Point {
	points := make([]core.Point, curveSegments)
	for i := range points {
		t := float64(i+1) / curveSegments
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		points[i] = core.Pt(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
		)
	}
	return points
}

func quad(p0, p1, p2 core.Point) []core.Point {
	points := make([]core.Point, curveSegments)
	for i := range points {
		t := float64(i+1) / curveSegments
		mt := 1 - t
		a, b, c := mt*mt, 2*mt*t, t*t
		points[i] = core.Pt(a*p0.X+b*p1.X+c*p2.X, a*p0.Y+b*p1.Y+c*p2.Y)
	}
	return points
}

// arc converts an endpoint parameterized elliptical arc to its centre form
// and samples it. Degenerate radii give a straight line.
func arc(from core.Point, rx, ry, rotation float64, large, sweep bool, to core.Point) []core.Point {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []core.Point{to}
	}

	phi := rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)

	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// grow radii that cannot reach the end point
	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (from.X+to.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (from.Y+to.Y)/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	n := max(2, int(math.Ceil(math.Abs(delta)/(math.Pi/32))))
	points := make([]core.Point, n)
	for i := range points {
		if i == n-1 {
			points[i] = to
			break
		}
		a := theta + delta*float64(i+1)/float64(n)
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		points[i] = core.Pt(cosPhi*x-sinPhi*y+cx, sinPhi*x+cosPhi*y+cy)
	}
	return points
}
