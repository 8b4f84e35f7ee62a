package scale

import "math"

// Linear is an affine map from a numeric domain to a pixel range.
type Linear struct {
	domain [2]float64
	rng    [2]float64
	affine
}

// NewLinear builds a linear scale. With nice set the domain is widened to
// round boundaries once, here. With clamp set outputs never leave the range.
func NewLinear(domain, rng [2]float64, nice, clamp bool) *Linear {
	if nice {
		domain[0], domain[1] = NiceExtent(domain[0], domain[1])
	}

	return &Linear{
		domain: domain,
		rng:    rng,
		affine: newAffine(domain[0], domain[1], rng[0], rng[1], clamp),
	}
}

// Call maps a domain value to the range. A zero-width domain maps everything
// to the range start.
func (s *Linear) Call(value float64) float64 {
	return s.call(value)
}

// Invert maps a range value back to the domain.
func (s *Linear) Invert(value float64) float64 {
	return s.invert(value)
}

// Domain returns the (possibly nice-adjusted) domain.
func (s *Linear) Domain() [2]float64 {
	return s.domain
}

// Range returns the output range.
func (s *Linear) Range() [2]float64 {
	return s.rng
}

// Ticks returns about count evenly spaced nice values covering the domain.
// A count below 2 is treated as 2.
func (s *Linear) Ticks(count int) []float64 {
	return LinearTicks(s.domain[0], s.domain[1], count)
}

// LinearTicks generates nice ticks from floor(lo/step)*step up to hi plus
// half a step.
func LinearTicks(lo, hi float64, count int) []float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	step := NiceStep(lo, hi, count)
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return []float64{roundTick(lo)}
	}

	start := math.Floor(lo/step) * step
	limit := hi + step*0.5

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > limit {
			break
		}
		ticks = append(ticks, roundTick(v))
	}

	return ticks
}
