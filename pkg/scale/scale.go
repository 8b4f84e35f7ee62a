// Package scale maps data domains to pixel ranges and back.
//
// Linear and Time are continuous: every value has a position. Band is
// categorical and reports whether a key has a position at all, so callers
// always know which kind of scale they hold.
package scale

import "math"

// Continuous is the common surface of the Linear scale and the millisecond
// view of the Time scale.
type Continuous interface {
	Call(value float64) float64
	Invert(value float64) float64
	Domain() [2]float64
	Range() [2]float64
	Ticks(count int) []float64
}

// DefaultTickCount is the tick count used when a caller asks for none.
const DefaultTickCount = 10

// affine holds the shared linear map of Linear and Time.
type affine struct {
	d0, r0, r1 float64
	ratio      float64
	clamp      bool
}

func newAffine(d0, d1, r0, r1 float64, clamp bool) affine {
	a := affine{d0: d0, r0: r0, r1: r1, clamp: clamp}
	if span := d1 - d0; span != 0 {
		a.ratio = (r1 - r0) / span
	}
	return a
}

func (a affine) call(value float64) float64 {
	result := a.r0 + (value-a.d0)*a.ratio
	if a.clamp {
		result = math.Max(math.Min(a.r0, a.r1), math.Min(math.Max(a.r0, a.r1), result))
	}
	return result
}

func (a affine) invert(value float64) float64 {
	if a.ratio == 0 {
		return a.d0
	}
	return a.d0 + (value-a.r0)/a.ratio
}
