package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(name string, values ...float64) core.DataSeries {
	s := core.DataSeries{Name: name}
	for i, v := range values {
		s.Data = append(s.Data, core.DataPoint{X: core.NumberX(float64(i)), Y: v})
	}
	return s
}

func TestStats(t *testing.T) {
	stats, err := Stats(series("a", 4, 1, math.NaN(), 3, 2))
	require.NoError(t, err)

	assert.Equal(t, "a", stats.Name)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 1.0, stats.Min)
	assert.Equal(t, 4.0, stats.Max)
	assert.Equal(t, 10.0, stats.Sum)
	assert.InDelta(t, 2.5, stats.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3), stats.StdDev, 1e-12)
	assert.InDelta(t, 2, stats.Median, 1e-12)

	assert.GreaterOrEqual(t, stats.MeanInterval.Lower, 1.0)
	assert.LessOrEqual(t, stats.MeanInterval.Upper, 4.0)
	assert.LessOrEqual(t, stats.MeanInterval.Lower, stats.MeanInterval.Upper)
}

func TestStats_Single(t *testing.T) {
	stats, err := Stats(series("one", 7))
	require.NoError(t, err)
	assert.Zero(t, stats.StdDev)
	assert.Equal(t, 7.0, stats.Median)
	assert.Equal(t, 7.0, stats.MeanInterval.Mean)
}

func TestStats_Empty(t *testing.T) {
	_, err := Stats(series("none", math.NaN()))
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestBootstrap(t *testing.T) {
	assert.Equal(t, Interval{}, Bootstrap(nil, Mean, 100, 0.95))

	interval := Bootstrap([]float64{5, 5, 5}, Mean, 50, 0.9)
	assert.Equal(t, Interval{Lower: 5, Upper: 5, Mean: 5}, interval)
}

func TestBarTable(t *testing.T) {
	l := layout.ComputeBarLayout([]core.DataSeries{{
		Name: "sales",
		Data: []core.DataPoint{{X: core.CategoryX("Q1"), Y: 10}, {X: core.CategoryX("Q2"), Y: 20}},
	}}, layout.Size{Width: 300, Height: 200})

	var buf bytes.Buffer
	BarTable(&buf, l)

	out := buf.String()
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Q2")
	assert.Contains(t, out, "120.0")
	assert.Contains(t, out, "TOTAL")
}

func TestCandleTable(t *testing.T) {
	var buf bytes.Buffer
	CandleTable(&buf, []core.Candle{
		{Time: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 10},
		{Time: time.Date(2024, 3, 1, 9, 31, 0, 0, time.UTC), Open: 1.5, High: 1.6, Low: 1, Close: 1.2},
	})

	out := buf.String()
	assert.Contains(t, out, "2024-03-01 09:30")
	assert.Contains(t, out, "up")
	assert.Contains(t, out, "down")
}

func TestStatsTable(t *testing.T) {
	stats, err := Stats(series("visits", 1, 2, 3))
	require.NoError(t, err)

	var buf bytes.Buffer
	StatsTable(&buf, []SeriesStats{stats})
	assert.Contains(t, buf.String(), "visits")
	assert.Contains(t, buf.String(), "2.00")
}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, []float64{1, 2, 2, 3, 3, 3, 4, math.NaN()}, 3, 10))
	assert.NotEmpty(t, strings.TrimSpace(buf.String()))

	assert.ErrorIs(t, Histogram(&buf, nil, 3, 10), ErrNoValues)
}
