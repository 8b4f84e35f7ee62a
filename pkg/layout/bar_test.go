package layout

import (
	"testing"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorySeries(name string, values map[string]float64, order ...string) core.DataSeries {
	s := core.DataSeries{ID: name, Name: name}
	for _, key := range order {
		s.Data = append(s.Data, core.DataPoint{X: core.CategoryX(key), Y: values[key]})
	}
	return s
}

func TestComputeBarLayout(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("sales", map[string]float64{"A": 10, "B": 20}, "A", "B"),
	}

	layout := ComputeBarLayout(series, Size{Width: 300, Height: 200})

	assert.Equal(t, []string{"A", "B"}, layout.Categories)
	assert.Equal(t, [2]float64{0, 20}, layout.ValueExtent)
	require.Len(t, layout.Series, 1)
	assert.Equal(t, core.Palette[0], layout.Series[0].Color)

	bars := layout.Series[0].Bars
	require.Len(t, bars, 2)

	assert.InDelta(t, 30, bars[0].X, 1e-9)
	assert.InDelta(t, 120, bars[0].Width, 1e-9)
	assert.InDelta(t, 100, bars[0].Y, 1e-9)
	assert.InDelta(t, 100, bars[0].Height, 1e-9)

	assert.InDelta(t, 180, bars[1].X, 1e-9)
	assert.InDelta(t, 0, bars[1].Y, 1e-9)
	assert.InDelta(t, 200, bars[1].Height, 1e-9)
	assert.Equal(t, "B", bars[1].Category)
	assert.Equal(t, 20.0, bars[1].Value)
}

func TestComputeBarLayout_CategoryUnion(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("a", map[string]float64{"Q2": 1, "Q1": 2}, "Q2", "Q1"),
		categorySeries("b", map[string]float64{"Q1": 3, "Q3": 4}, "Q1", "Q3"),
	}

	layout := ComputeBarLayout(series, Size{Width: 300, Height: 200})
	assert.Equal(t, []string{"Q2", "Q1", "Q3"}, layout.Categories)
}

func TestComputeBarLayout_NegativeValue(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("pnl", map[string]float64{"A": 10, "B": -10}, "A", "B"),
	}

	layout := ComputeBarLayout(series, Size{Width: 300, Height: 200})
	zero := layout.ValueScale.Call(0)

	bars := layout.Series[0].Bars
	require.Len(t, bars, 2)
	assert.InDelta(t, zero, bars[0].Y+bars[0].Height, 1e-9)
	assert.InDelta(t, zero, bars[1].Y, 1e-9)
	assert.Greater(t, bars[1].Height, 0.0)
}

func TestComputeBarLayout_StackedOppositeSides(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("gain", map[string]float64{"Q1": 100}, "Q1"),
		categorySeries("loss", map[string]float64{"Q1": -30}, "Q1"),
	}

	layout := ComputeBarLayout(series, Size{Width: 400, Height: 300}, WithStacked(true))

	assert.Equal(t, [2]float64{-30, 100}, layout.ValueExtent)
	assert.Equal(t, [2]float64{-40, 100}, layout.ValueScale.Domain())

	zero := layout.ValueScale.Call(0)
	gain := layout.Series[0].Bars[0]
	loss := layout.Series[1].Bars[0]

	assert.InDelta(t, zero, gain.Y+gain.Height, 1e-9)
	assert.InDelta(t, zero, loss.Y, 1e-9)
	assert.Greater(t, gain.Height, 0.0)
	assert.Greater(t, loss.Height, 0.0)
	assert.LessOrEqual(t, gain.Y+gain.Height, loss.Y+1e-9)

	// stacked bars share the full band
	assert.InDelta(t, gain.X, loss.X, 1e-9)
	assert.InDelta(t, gain.Width, loss.Width, 1e-9)
}

func TestComputeBarLayout_StackingConservation(t *testing.T) {
	order := []string{"A", "B", "C"}
	series := []core.DataSeries{
		categorySeries("s1", map[string]float64{"A": 10, "B": -5, "C": 7}, order...),
		categorySeries("s2", map[string]float64{"A": -4, "B": -6, "C": 3}, order...),
		categorySeries("s3", map[string]float64{"A": 8, "B": 12, "C": -2}, order...),
	}

	layout := ComputeBarLayout(series, Size{Width: 600, Height: 400}, WithStacked(true))
	value := layout.ValueScale
	zero := value.Call(0)

	positive := map[string]float64{}
	negative := map[string]float64{}
	for _, s := range series {
		for _, p := range s.Data {
			if p.Y >= 0 {
				positive[p.X.String()] += p.Y
			} else {
				negative[p.X.String()] += p.Y
			}
		}
	}

	for _, key := range order {
		var up, down float64
		for _, s := range layout.Series {
			for _, b := range s.Bars {
				if b.Category != key {
					continue
				}
				if b.Value >= 0 {
					up += b.Height
				} else {
					down += b.Height
				}
			}
		}

		assert.InDelta(t, zero-value.Call(positive[key]), up, 1e-9, key)
		assert.InDelta(t, value.Call(negative[key])-zero, down, 1e-9, key)
	}

	assert.Equal(t, [2]float64{-11, 18}, layout.ValueExtent)
}

func TestComputeBarLayout_Grouped(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("a", map[string]float64{"A": 10}, "A"),
		categorySeries("b", map[string]float64{"A": 20}, "A"),
	}

	layout := ComputeBarLayout(series, Size{Width: 200, Height: 100}, WithGrouped(true))

	first, second := layout.Series[0].Bars[0], layout.Series[1].Bars[0]
	assert.InDelta(t, 40, first.X, 1e-9)
	assert.InDelta(t, 72, first.Width, 1e-9)
	assert.InDelta(t, 128, second.X, 1e-9)
	assert.InDelta(t, 72, second.Width, 1e-9)
	assert.InDelta(t, 50, first.Height, 1e-9)
	assert.InDelta(t, 100, second.Height, 1e-9)
}

func TestComputeBarLayout_GroupedSingleSeries(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("a", map[string]float64{"A": 10}, "A"),
	}

	layout := ComputeBarLayout(series, Size{Width: 200, Height: 100}, WithGrouped(true))
	assert.InDelta(t, 160, layout.Series[0].Bars[0].Width, 1e-9)
}

func TestComputeBarLayout_Horizontal(t *testing.T) {
	series := []core.DataSeries{
		categorySeries("sales", map[string]float64{"A": 10, "B": 20}, "A", "B"),
	}

	layout := ComputeBarLayout(series, Size{Width: 300, Height: 200}, WithOrientation(Horizontal))
	assert.Equal(t, Horizontal, layout.Orientation)

	bar := layout.Series[0].Bars[0]
	assert.InDelta(t, 0, bar.X, 1e-9)
	assert.InDelta(t, 20, bar.Y, 1e-9)
	assert.InDelta(t, 150, bar.Width, 1e-9)
	assert.InDelta(t, 80, bar.Height, 1e-9)
}

func TestComputeBarLayout_Empty(t *testing.T) {
	layout := ComputeBarLayout(nil, Size{Width: 300, Height: 200})

	assert.Empty(t, layout.Series)
	assert.Empty(t, layout.Categories)
	assert.Equal(t, [2]float64{0, 100}, layout.ValueExtent)
}

func TestComputeBarLayout_SeriesColor(t *testing.T) {
	series := []core.DataSeries{
		{Name: "explicit", Color: "#000000", Data: []core.DataPoint{{X: core.CategoryX("A"), Y: 1}}},
		{Name: "intent", Intent: core.IntentDanger, Data: []core.DataPoint{{X: core.CategoryX("A"), Y: 1}}},
		{Name: "palette", Data: []core.DataPoint{{X: core.CategoryX("A"), Y: 1}}},
	}

	layout := ComputeBarLayout(series, Size{Width: 300, Height: 200})
	assert.Equal(t, "#000000", layout.Series[0].Color)
	assert.Equal(t, "#dc2626", layout.Series[1].Color)
	assert.Equal(t, core.Palette[2], layout.Series[2].Color)
}
