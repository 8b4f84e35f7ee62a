package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Extent(t *testing.T) {
	lo, hi, ok := Series[float64]{3, -2, 8, 1}.Extent()
	require.True(t, ok)
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 8.0, hi)

	_, _, ok = Series[int]{}.Extent()
	assert.False(t, ok)
}

func TestSeries_Last(t *testing.T) {
	s := Series[int]{1, 2, 3}
	assert.Equal(t, 3, s.Last(0))
	assert.Equal(t, 2, s.Last(1))
	assert.Equal(t, 3, s.Length())
}

func TestExtent(t *testing.T) {
	extent, ok := Extent([]float64{5, 1, 9})
	require.True(t, ok)
	assert.Equal(t, [2]float64{1, 9}, extent)

	_, ok = Extent(nil)
	assert.False(t, ok)

	assert.Equal(t, [2]float64{0, 9}, ExtentWithZero([2]float64{1, 9}))
	assert.Equal(t, [2]float64{-4, 0}, ExtentWithZero([2]float64{-4, -1}))
	assert.Equal(t, [2]float64{-4, 2}, ExtentWithZero([2]float64{-4, 2}))
}

func TestSeriesColor(t *testing.T) {
	assert.Equal(t, "#123456", SeriesColor("#123456", IntentDanger, 0))
	assert.Equal(t, "#dc2626", SeriesColor("", IntentDanger, 0))
	assert.Equal(t, Palette[1], SeriesColor("", "", 1))
	assert.Equal(t, Palette[1], SeriesColor("", "unknown", 9))
}
