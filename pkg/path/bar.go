package path

import "math"

// ScaleFunc maps a data value to a pixel position.
type ScaleFunc func(float64) float64

// Rect is an axis-aligned rectangle with optional uniform corner rounding.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	RX     float64 `json:"rx,omitempty"`
	RY     float64 `json:"ry,omitempty"`
}

// CornerRadii holds per-corner radii: top left, top right, bottom right,
// bottom left.
type CornerRadii [4]float64

// UniformRadii returns the same radius on all four corners.
func UniformRadii(r float64) CornerRadii {
	return CornerRadii{r, r, r, r}
}

// TopRadii rounds only the top corners, as for upward vertical bars.
func TopRadii(r float64) CornerRadii {
	return CornerRadii{r, r, 0, 0}
}

// BarRect builds a bar rectangle. Negative sizes become 0 and the radius is
// limited to half of the smaller side.
func BarRect(x, y, width, height, radius float64) Rect {
	w := math.Max(0, width)
	h := math.Max(0, height)

	r := Rect{X: Round(x), Y: Round(y), Width: Round(w), Height: Round(h)}
	if radius > 0 {
		rounded := Round(math.Min(radius, math.Min(w/2, h/2)))
		r.RX, r.RY = rounded, rounded
	}

	return r
}

// BarPath draws a bar with independent corner radii, each limited to half
// of the smaller side. A bar without area yields an empty path; a bar
// without rounding is a plain rectangle.
func BarPath(x, y, width, height float64, radii CornerRadii) Path {
	w := math.Max(0, width)
	h := math.Max(0, height)
	if w == 0 || h == 0 {
		return nil
	}

	limit := math.Min(w/2, h/2)
	for i, r := range radii {
		radii[i] = math.Max(0, math.Min(r, limit))
	}
	tl, tr, br, bl := radii[0], radii[1], radii[2], radii[3]

	var p Path
	if tl == 0 && tr == 0 && br == 0 && bl == 0 {
		p.MoveTo(x, y).RelHorizontal(w).RelVertical(h).RelHorizontal(-w).Close()
		return p
	}

	p.MoveTo(x+tl, y).RelHorizontal(w - tl - tr)
	if tr > 0 {
		p.RelArcTo(tr, tr, 0, false, true, tr, tr)
	}
	p.RelVertical(h - tr - br)
	if br > 0 {
		p.RelArcTo(br, br, 0, false, true, -br, br)
	}
	p.RelHorizontal(-(w - br - bl))
	if bl > 0 {
		p.RelArcTo(bl, bl, 0, false, true, -bl, -bl)
	}
	p.RelVertical(-(h - bl - tl))
	if tl > 0 {
		p.RelArcTo(tl, tl, 0, false, true, tl, -tl)
	}

	return *p.Close()
}

// DefaultMinBarSize keeps tiny values visible.
const DefaultMinBarSize = 1

// BarDimensions sizes a bar between scale(baseline) and scale(value) inside
// the band starting at bandStart. Its length never drops below minBarSize.
func BarDimensions(value float64, scale ScaleFunc, bandStart, bandwidth, baseline float64, horizontal bool, minBarSize float64) Rect {
	v := scale(value)
	b := scale(baseline)
	lo, hi := math.Min(v, b), math.Max(v, b)
	length := math.Max(hi-lo, minBarSize)

	if horizontal {
		return Rect{X: lo, Y: bandStart, Width: length, Height: bandwidth}
	}
	return Rect{X: bandStart, Y: lo, Width: bandwidth, Height: length}
}

// GroupedBarPosition splits a band into groupCount equal bars separated by
// bandwidth*groupPadding and returns the start and width of bar groupIndex.
func GroupedBarPosition(groupIndex, groupCount int, bandStart, bandwidth, groupPadding float64) (start, width float64) {
	if groupCount < 1 {
		groupCount = 1
	}

	gap := bandwidth * groupPadding
	width = (bandwidth - gap*float64(groupCount-1)) / float64(groupCount)

	return bandStart + float64(groupIndex)*(width+gap), width
}

// StackSegment is one stacked bar: Start and End are the scaled lower and
// upper data bounds of the segment.
type StackSegment struct {
	Start float64
	End   float64
	Value float64
}

// StackedBarPositions stacks values from baseline. Non-negative values grow
// one running total and negative values another, so the two stacks extend
// away from the baseline in opposite directions.
func StackedBarPositions(values []float64, scale ScaleFunc, baseline float64) []StackSegment {
	positive, negative := baseline, baseline

	segments := make([]StackSegment, len(values))
	for i, v := range values {
		if v >= 0 {
			start := positive
			positive += v
			segments[i] = StackSegment{Start: scale(start), End: scale(positive), Value: v}
			continue
		}

		end := negative
		negative += v
		segments[i] = StackSegment{Start: scale(negative), End: scale(end), Value: v}
	}

	return segments
}
