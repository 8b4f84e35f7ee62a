// Package interpolate blends numbers, point sequences and paths for
// animated transitions.
package interpolate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/samber/lo"
)

// Lerp returns a + (b-a)*t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates both coordinates of two points.
func LerpPoint(a, b core.Point, t float64) core.Point {
	return core.Pt(Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t))
}

// InterpolatePoints blends two point sequences after resampling them to the
// same length.
func InterpolatePoints(from, to []core.Point, t float64) []core.Point {
	from, to = NormalizePointArrays(from, to)
	if len(from) != len(to) {
		// one side is empty
		return nil
	}

	return lo.Map(from, func(p core.Point, i int) core.Point {
		return LerpPoint(p, to[i], t)
	})
}

// NormalizePointArrays resamples the shorter sequence up to the length of the
// longer one. Equal lengths are returned unchanged.
func NormalizePointArrays(a, b []core.Point) ([]core.Point, []core.Point) {
	if len(a) == len(b) {
		return a, b
	}

	target := max(len(a), len(b))
	return ResamplePoints(a, target), ResamplePoints(b, target)
}

// ResamplePoints returns target points spread evenly along the index space
// of points, linearly interpolating between neighbours. A single point is
// repeated; an empty input stays empty.
func ResamplePoints(points []core.Point, target int) []core.Point {
	if len(points) == 0 || target <= 0 {
		return nil
	}
	if len(points) == target {
		return points
	}

	out := make([]core.Point, target)
	if len(points) == 1 || target == 1 {
		for i := range out {
			out[i] = points[0]
		}
		return out
	}

	last := len(points) - 1
	for i := range out {
		pos := float64(i) / float64(target-1) * float64(last)
		idx := int(math.Floor(pos))
		if idx >= last {
			out[i] = points[last]
			continue
		}
		out[i] = LerpPoint(points[idx], points[idx+1], pos-float64(idx))
	}

	return out
}

var (
	commandPattern  = regexp.MustCompile(`(?i)[MLHVCSQTAZ][^MLHVCSQTAZ]*`)
	separatorSplits = regexp.MustCompile(`[\s,]+`)
)

// endpointIndex is the position of the end x coordinate in each command's
// argument list. H and V carry a single coordinate.
var endpointIndex = map[byte]int{'M': 0, 'L': 0, 'C': 4, 'S': 2, 'Q': 2, 'A': 5}

// ParsePathToPoints extracts the end point of every command in a path string.
// Control points are dropped and relative commands are read as absolute, so
// the result only approximates the shape. Commands without an end point or
// with too few numbers are skipped.
func ParsePathToPoints(s string) []core.Point {
	var (
		points []core.Point
		x, y   float64
	)

	for _, cmd := range commandPattern.FindAllString(s, -1) {
		op := strings.ToUpper(cmd[:1])[0]
		args := lo.FilterMap(separatorSplits.Split(strings.TrimSpace(cmd[1:]), -1), func(field string, _ int) (float64, bool) {
			v, err := strconv.ParseFloat(field, 64)
			return v, err == nil
		})

		switch op {
		case 'H':
			if len(args) < 1 {
				continue
			}
			x = args[0]
		case 'V':
			if len(args) < 1 {
				continue
			}
			y = args[0]
		default:
			i, ok := endpointIndex[op]
			if !ok || len(args) < i+2 {
				continue
			}
			x, y = args[i], args[i+1]
		}

		points = append(points, core.Pt(x, y))
	}

	return points
}

// PointsToPath writes points as a polyline with three fixed decimals.
func PointsToPath(points []core.Point) string {
	var sb strings.Builder
	for i, p := range points {
		if i == 0 {
			sb.WriteString("M ")
		} else {
			sb.WriteString(" L ")
		}
		sb.WriteString(fixed(p.X))
		sb.WriteByte(' ')
		sb.WriteString(fixed(p.Y))
	}
	return sb.String()
}

func fixed(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if s == "-0.000" {
		return "0.000"
	}
	return s
}

// InterpolatePath morphs between two path strings at t by blending their end
// points. The result is always a polyline.
func InterpolatePath(from, to string, t float64) string {
	return PointsToPath(InterpolatePoints(ParsePathToPoints(from), ParsePathToPoints(to), t))
}

// EasedInterpolatePath is InterpolatePath with t passed through the named
// easing first. An empty name means easeInOut.
func EasedInterpolatePath(from, to string, t float64, easing string) string {
	if easing == "" {
		easing = EaseInOut
	}
	return InterpolatePath(from, to, Ease(easing)(t))
}
