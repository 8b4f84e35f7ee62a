package scale

import "math"

// Band places discrete categories on evenly sized bands.
type Band struct {
	domain    []string
	index     map[string]int
	rng       [2]float64
	step      float64
	bandwidth float64
	start     float64
	reverse   bool
}

// NewBand builds a band scale. Repeated keys keep their first position.
// paddingInner is the fraction of a step left between bands, paddingOuter
// the number of steps left before the first and after the last band, and
// align distributes the outer space (0 start, 0.5 centre, 1 end). All three
// are clamped to [0, 1]. With a descending range the first key gets the band
// nearest rng[0], so bands run from high to low values.
func NewBand(domain []string, rng [2]float64, paddingInner, paddingOuter, align float64) *Band {
	keys := make([]string, 0, len(domain))
	index := make(map[string]int, len(domain))
	for _, key := range domain {
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = len(keys)
		keys = append(keys, key)
	}

	s := &Band{domain: keys, index: index, rng: rng, reverse: rng[1] < rng[0]}

	n := float64(len(keys))
	if n == 0 {
		return s
	}

	paddingInner = clampUnit(paddingInner)
	paddingOuter = clampUnit(paddingOuter)
	align = clampUnit(align)

	lo, hi := rng[0], rng[1]
	if s.reverse {
		lo, hi = hi, lo
	}

	if denominator := n - paddingInner + 2*paddingOuter; denominator > 0 {
		s.step = (hi - lo) / denominator
	}
	s.bandwidth = s.step * (1 - paddingInner)
	s.start = lo + s.step*paddingOuter + (s.step-s.bandwidth)*align

	return s
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

// NewBandPadded builds a band scale from a single padding ratio: the inner
// gap is padding, each outer gap half of it, and bands are centred.
func NewBandPadded(domain []string, rng [2]float64, padding float64) *Band {
	return NewBand(domain, rng, padding, padding/2, 0.5)
}

// Call returns the start of the band for key, or false when key is not part
// of the domain.
func (s *Band) Call(key string) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	if s.reverse {
		i = len(s.domain) - 1 - i
	}
	return s.start + s.step*float64(i), true
}

// Center returns the middle of the band for key.
func (s *Band) Center(key string) (float64, bool) {
	start, ok := s.Call(key)
	if !ok {
		return 0, false
	}
	return start + s.bandwidth/2, true
}

// Bandwidth returns the width of each band.
func (s *Band) Bandwidth() float64 {
	return s.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (s *Band) Step() float64 {
	return s.step
}

// Domain returns the ordered keys.
func (s *Band) Domain() []string {
	return append([]string(nil), s.domain...)
}

// Range returns the output range.
func (s *Band) Range() [2]float64 {
	return s.rng
}
