package scale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_CallInvert(t *testing.T) {
	s := NewLinear([2]float64{0, 100}, [2]float64{300, 0}, false, false)

	assert.Equal(t, 150.0, s.Call(50))
	assert.Equal(t, 50.0, s.Invert(150))
	assert.Equal(t, 300.0, s.Call(0))
	assert.Equal(t, 0.0, s.Call(100))
}

func TestLinear_AffineLaw(t *testing.T) {
	domains := [][2]float64{{0, 100}, {-50, 25}, {3.5, -7.25}, {1e-3, 2e-3}}
	ranges := [][2]float64{{0, 800}, {400, 0}, {-10, 10}}
	values := []float64{-1000, -1, 0, 0.5, 42, 1e6}

	for _, d := range domains {
		for _, r := range ranges {
			s := NewLinear(d, r, false, false)
			for _, v := range values {
				assert.InDelta(t, v, s.Call(s.Invert(v)), 1e-6*math.Max(1, math.Abs(v)))
				assert.InDelta(t, v, s.Invert(s.Call(v)), 1e-6*math.Max(1, math.Abs(v)))
			}
		}
	}
}

func TestLinear_ZeroSpanDomain(t *testing.T) {
	s := NewLinear([2]float64{5, 5}, [2]float64{10, 90}, false, false)

	assert.Equal(t, 10.0, s.Call(5))
	assert.Equal(t, 10.0, s.Call(1000))
	assert.Equal(t, 5.0, s.Invert(50))
}

func TestLinear_Clamp(t *testing.T) {
	s := NewLinear([2]float64{0, 10}, [2]float64{100, 0}, false, true)

	assert.Equal(t, 100.0, s.Call(-5))
	assert.Equal(t, 0.0, s.Call(20))
	assert.Equal(t, 50.0, s.Call(5))
}

func TestLinear_NaNPropagates(t *testing.T) {
	s := NewLinear([2]float64{0, 10}, [2]float64{0, 100}, false, false)
	assert.True(t, math.IsNaN(s.Call(math.NaN())))
}

func TestNiceExtent(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   [2]float64
	}{
		{"already nice", 0, 100, [2]float64{0, 100}},
		{"widen", 3, 97, [2]float64{0, 100}},
		{"negative", -30, 100, [2]float64{-40, 100}},
		{"small", 0.12, 0.87, [2]float64{0.1, 0.9}},
		{"zero", 0, 0, [2]float64{-1, 1}},
		{"constant", 50, 50, [2]float64{45, 55}},
		{"negative constant", -20, -20, [2]float64{-22, -18}},
		{"descending", 97, 3, [2]float64{100, 0}},
		{"descending negative", 100, -30, [2]float64{100, -40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := NiceExtent(tt.lo, tt.hi)
			assert.InDelta(t, tt.want[0], lo, 1e-9)
			assert.InDelta(t, tt.want[1], hi, 1e-9)
		})
	}
}

func TestNiceNumber(t *testing.T) {
	assert.Equal(t, 1.0, NiceNumber(1, false))
	assert.Equal(t, 2.0, NiceNumber(1.2, false))
	assert.Equal(t, 5.0, NiceNumber(3, false))
	assert.Equal(t, 10.0, NiceNumber(7, false))

	assert.Equal(t, 1.0, NiceNumber(1.4, true))
	assert.Equal(t, 2.0, NiceNumber(2.9, true))
	assert.Equal(t, 5.0, NiceNumber(6.9, true))
	assert.Equal(t, 100.0, NiceNumber(72, true))
}

func TestLinear_Ticks(t *testing.T) {
	s := NewLinear([2]float64{0, 100}, [2]float64{0, 500}, false, false)

	assert.Equal(t, []float64{0, 20, 40, 60, 80, 100}, s.Ticks(5))
	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, s.Ticks(10))
}

func TestLinear_TicksRounding(t *testing.T) {
	ticks := LinearTicks(0, 1, 10)
	require.NotEmpty(t, ticks)

	assert.Equal(t, 0.0, ticks[0])
	assert.Contains(t, ticks, 0.3)
	assert.Contains(t, ticks, 0.7)
	assert.Equal(t, 1.0, ticks[len(ticks)-1])
}

func TestLinear_TicksDegenerate(t *testing.T) {
	assert.Equal(t, []float64{5}, LinearTicks(5, 5, 10))
	assert.NotEmpty(t, LinearTicks(0, 10, 0))
}

func TestLinear_NiceDomain(t *testing.T) {
	s := NewLinear([2]float64{-30, 100}, [2]float64{300, 0}, true, false)

	assert.Equal(t, [2]float64{-40, 100}, s.Domain())
	assert.Equal(t, [2]float64{300, 0}, s.Range())
	assert.InDelta(t, 300*100/140.0, s.Call(0), 1e-9)
}

func TestLinear_NiceDescendingDomain(t *testing.T) {
	s := NewLinear([2]float64{97, 3}, [2]float64{0, 300}, true, false)

	assert.Equal(t, [2]float64{100, 0}, s.Domain())
	assert.InDelta(t, 300, s.Call(0), 1e-9)
	assert.InDelta(t, 0, s.Call(100), 1e-9)
	assert.InDelta(t, 150, s.Call(50), 1e-9)

	plain := NewLinear([2]float64{100, 0}, [2]float64{0, 300}, false, false)
	nice := NewLinear([2]float64{100, 0}, [2]float64{0, 300}, true, false)
	assert.Equal(t, plain.Domain(), nice.Domain())
	assert.InDelta(t, plain.Call(0), nice.Call(0), 1e-9)
}
