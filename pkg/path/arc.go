package path

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
)

// fullCircleEpsilon is how close to 2π a span must be to draw a whole ring.
const fullCircleEpsilon = 0.001

// DefaultStartAngle puts the first slice at twelve o'clock.
const DefaultStartAngle = -math.Pi / 2

// ArcConfig describes a pie or donut segment. Angles are in radians, 0 at
// three o'clock and growing clockwise on screen.
type ArcConfig struct {
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
	// PadAngle is split evenly between both ends of the segment.
	PadAngle float64
}

// Centroid is the label anchor of an arc segment.
type Centroid struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle"`
	Radius float64 `json:"radius"`
}

// ArcAngle is the angular extent given to one value.
type ArcAngle struct {
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

func polar(cx, cy, radius, angle float64) core.Point {
	return core.Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
}

// Arc draws a pie wedge (InnerRadius 0) or a donut segment around
// (cx, cy). A span of a whole turn is drawn as two half arcs per ring.
func Arc(cx, cy float64, cfg ArcConfig) Path {
	start := cfg.StartAngle + cfg.PadAngle/2
	end := cfg.EndAngle - cfg.PadAngle/2
	span := end - start
	outer, inner := cfg.OuterRadius, cfg.InnerRadius

	var p Path

	if math.Abs(span) >= 2*math.Pi-fullCircleEpsilon {
		if inner > 0 {
			os, om := polar(cx, cy, outer, start), polar(cx, cy, outer, start+math.Pi)
			is, im := polar(cx, cy, inner, start), polar(cx, cy, inner, start+math.Pi)

			p.MoveTo(os.X, os.Y).
				ArcTo(outer, outer, 0, false, true, om.X, om.Y).
				ArcTo(outer, outer, 0, false, true, os.X, os.Y).
				MoveTo(is.X, is.Y).
				ArcTo(inner, inner, 0, false, false, im.X, im.Y).
				ArcTo(inner, inner, 0, false, false, is.X, is.Y).
				Close()
			return p
		}

		top, bottom := polar(cx, cy, outer, -math.Pi/2), polar(cx, cy, outer, math.Pi/2)
		p.MoveTo(top.X, top.Y).
			ArcTo(outer, outer, 0, false, true, bottom.X, bottom.Y).
			ArcTo(outer, outer, 0, false, true, top.X, top.Y).
			Close()
		return p
	}

	os, oe := polar(cx, cy, outer, start), polar(cx, cy, outer, end)
	large := span > math.Pi

	if inner > 0 {
		is, ie := polar(cx, cy, inner, start), polar(cx, cy, inner, end)
		p.MoveTo(os.X, os.Y).
			ArcTo(outer, outer, 0, large, true, oe.X, oe.Y).
			LineTo(ie.X, ie.Y).
			ArcTo(inner, inner, 0, large, false, is.X, is.Y).
			Close()
		return p
	}

	p.MoveTo(cx, cy).
		LineTo(os.X, os.Y).
		ArcTo(outer, outer, 0, large, true, oe.X, oe.Y).
		Close()
	return p
}

// ArcCentroid returns the point halfway along the segment's angle and radius.
func ArcCentroid(cx, cy float64, cfg ArcConfig) Centroid {
	angle := (cfg.StartAngle + cfg.EndAngle) / 2
	radius := (cfg.InnerRadius + cfg.OuterRadius) / 2
	pt := polar(cx, cy, radius, angle)

	return Centroid{X: pt.X, Y: pt.Y, Angle: angle, Radius: radius}
}

// ArcAngles shares a full turn among values in proportion to their absolute
// size, starting at startAngle. When every value is zero each one gets an
// equal share instead.
func ArcAngles(values []float64, startAngle float64) []ArcAngle {
	if len(values) == 0 {
		return nil
	}

	var total float64
	for _, v := range values {
		total += math.Abs(v)
	}

	angles := make([]ArcAngle, len(values))

	if total == 0 {
		slice := 2 * math.Pi / float64(len(values))
		for i, v := range values {
			angles[i] = ArcAngle{
				StartAngle: startAngle + float64(i)*slice,
				EndAngle:   startAngle + float64(i+1)*slice,
				Value:      v,
				Percentage: 100 / float64(len(values)),
			}
		}
		return angles
	}

	current := startAngle
	for i, v := range values {
		share := math.Abs(v) / total
		angles[i] = ArcAngle{
			StartAngle: current,
			EndAngle:   current + share*2*math.Pi,
			Value:      v,
			Percentage: share * 100,
		}
		current = angles[i].EndAngle
	}

	return angles
}

// RadialLine draws a spoke at angle from the inner to the outer radius.
func RadialLine(cx, cy, angle, inner, outer float64) Path {
	start, end := polar(cx, cy, inner, angle), polar(cx, cy, outer, angle)

	var p Path
	p.MoveTo(start.X, start.Y).LineTo(end.X, end.Y)
	return p
}
