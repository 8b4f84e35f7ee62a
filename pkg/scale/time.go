package scale

import (
	"math"
	"time"
)

// Time is a linear map from a time domain to a pixel range.
// Positions are computed on Unix milliseconds.
type Time struct {
	domain [2]time.Time
	rng    [2]float64
	affine
}

// NewTime builds a time scale. With nice set the domain is snapped to
// calendar boundaries in the location of the domain values.
func NewTime(domain [2]time.Time, rng [2]float64, nice, clamp bool) *Time {
	if nice {
		domain[0], domain[1] = NiceTimeExtent(domain[0], domain[1])
	}

	return &Time{
		domain: domain,
		rng:    rng,
		affine: newAffine(millis(domain[0]), millis(domain[1]), rng[0], rng[1], clamp),
	}
}

// Call maps a time to the range.
func (s *Time) Call(t time.Time) float64 {
	return s.call(millis(t))
}

// Invert maps a range value back to a time in the domain's location.
func (s *Time) Invert(value float64) time.Time {
	ms := s.invert(value)
	return time.UnixMilli(int64(math.Round(ms))).In(s.domain[0].Location())
}

// Domain returns the (possibly nice-adjusted) domain.
func (s *Time) Domain() [2]time.Time {
	return s.domain
}

// Range returns the output range.
func (s *Time) Range() [2]float64 {
	return s.rng
}

// Ticks returns calendar-aligned ticks inside the domain.
func (s *Time) Ticks(count int) []time.Time {
	return TimeTicks(s.domain[0], s.domain[1], count)
}

// Interval returns the calendar unit used for count ticks over the domain.
func (s *Time) Interval(count int) Interval {
	if count < 1 {
		count = DefaultTickCount
	}
	return BestInterval(s.domain[1].Sub(s.domain[0]), count)
}

// Millis returns a view of the scale over Unix milliseconds.
func (s *Time) Millis() Continuous {
	return timeMillis{s}
}

type timeMillis struct {
	s *Time
}

func (m timeMillis) Call(value float64) float64   { return m.s.call(value) }
func (m timeMillis) Invert(value float64) float64 { return m.s.invert(value) }
func (m timeMillis) Range() [2]float64            { return m.s.rng }

func (m timeMillis) Domain() [2]float64 {
	return [2]float64{millis(m.s.domain[0]), millis(m.s.domain[1])}
}

func (m timeMillis) Ticks(count int) []float64 {
	ticks := m.s.Ticks(count)
	out := make([]float64, len(ticks))
	for i, t := range ticks {
		out[i] = millis(t)
	}
	return out
}

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}
