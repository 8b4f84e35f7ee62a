package core

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Series is an ordered run of comparable values
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// Extent returns the minimum and maximum of the series.
// ok is false for an empty series.
func (s Series[T]) Extent() (lo, hi T, ok bool) {
	if len(s) == 0 {
		return lo, hi, false
	}

	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi, true
}

// Extent returns [min, max] of values. An empty slice yields ok == false and
// a zero extent.
func Extent(values []float64) (extent [2]float64, ok bool) {
	if len(values) == 0 {
		return extent, false
	}
	return [2]float64{floats.Min(values), floats.Max(values)}, true
}

// ExtentWithZero widens an extent so that it includes 0.
func ExtentWithZero(extent [2]float64) [2]float64 {
	if extent[0] > 0 {
		extent[0] = 0
	}
	if extent[1] < 0 {
		extent[1] = 0
	}
	return extent
}
