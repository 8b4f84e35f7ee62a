package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePieLayout(t *testing.T) {
	series := categorySeries("share", map[string]float64{"a": 1, "b": 1, "c": 2}, "a", "b", "c")
	series.Data[2].Label = "Charlie"
	series.Data[2].Color = "#123456"

	layout := ComputePieLayout(series, Size{Width: 200, Height: 100})

	assert.Equal(t, core.Pt(100, 50), layout.Center)
	assert.Equal(t, 50.0, layout.OuterRadius)
	assert.Zero(t, layout.InnerRadius)
	assert.Equal(t, 4.0, layout.Total)

	require.Len(t, layout.Slices, 3)

	first := layout.Slices[0]
	assert.Equal(t, "a", first.Label)
	assert.Equal(t, core.Palette[0], first.Color)
	assert.InDelta(t, -math.Pi/2, first.Angle.StartAngle, 1e-12)
	assert.InDelta(t, 0, first.Angle.EndAngle, 1e-12)
	assert.InDelta(t, 25, first.Angle.Percentage, 1e-12)
	assert.InDelta(t, -math.Pi/4, first.Centroid.Angle, 1e-12)
	assert.InDelta(t, 25, first.Centroid.Radius, 1e-12)
	assert.True(t, strings.HasPrefix(first.Path.String(), "M 100 50 L 100 0 "))
	assert.Equal(t, "M 135.355 14.645 L 143.841 6.159", first.Leader.String())

	last := layout.Slices[2]
	assert.Equal(t, "Charlie", last.Label)
	assert.Equal(t, "#123456", last.Color)
	assert.InDelta(t, 50, last.Angle.Percentage, 1e-12)
}

func TestComputePieLayout_Donut(t *testing.T) {
	series := categorySeries("share", map[string]float64{"a": 3, "b": 1}, "a", "b")

	layout := ComputePieLayout(series, Size{Width: 100, Height: 300}, WithInnerRadius(0.5), WithPadAngle(0.02))

	assert.Equal(t, 50.0, layout.OuterRadius)
	assert.Equal(t, 25.0, layout.InnerRadius)
	for _, s := range layout.Slices {
		assert.InDelta(t, 37.5, s.Centroid.Radius, 1e-12)
		assert.NotEmpty(t, s.Path)
	}
}

func TestComputePieLayout_Empty(t *testing.T) {
	layout := ComputePieLayout(core.DataSeries{}, Size{Width: 100, Height: 100})

	assert.Empty(t, layout.Slices)
	assert.Zero(t, layout.Total)
}
