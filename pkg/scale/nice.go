package scale

import "math"

// NiceNumber snaps x to 1, 2, 5 or 10 times a power of ten. In rounding mode
// the closest of those is chosen, otherwise the smallest one not below x.
func NiceNumber(x float64, round bool) float64 {
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}

	return nf * math.Pow(10, exp)
}

// NiceStep returns the tick step for a span split into roughly count pieces.
func NiceStep(lo, hi float64, count int) float64 {
	if count < 2 {
		count = 2
	}
	span := NiceNumber(hi-lo, false)
	return NiceNumber(span/float64(count-1), true)
}

// NiceExtent widens [lo, hi] outward to multiples of a nice step. A zero-width
// extent becomes [-1, 1] around zero and ±10% around any other value. A
// descending extent stays descending.
func NiceExtent(lo, hi float64) (float64, float64) {
	if lo == hi {
		if lo == 0 {
			return -1, 1
		}
		pad := math.Abs(lo) * 0.1
		return lo - pad, hi + pad
	}

	if lo > hi {
		low, high := NiceExtent(hi, lo)
		return high, low
	}

	step := NiceStep(lo, hi, DefaultTickCount)
	if step == 0 || math.IsNaN(step) {
		return lo, hi
	}

	return math.Floor(lo/step) * step, math.Ceil(hi/step) * step
}

// roundTick strips floating point noise such as 0.30000000000000004.
func roundTick(v float64) float64 {
	const precision = 1e12
	r := math.Round(v*precision) / precision
	if r == 0 {
		return 0
	}
	return r
}
