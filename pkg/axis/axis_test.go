package axis

import (
	"testing"
	"time"

	"github.com/raykavin/chartkit/pkg/layout"
	"github.com/raykavin/chartkit/pkg/scale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLinear(t *testing.T) {
	s := scale.NewLinear([2]float64{0, 100}, [2]float64{200, 0}, false, false)

	ticks := Linear(s, 5, nil)
	require.NotEmpty(t, ticks)

	assert.Equal(t, Tick{Offset: 200, Label: "0", Value: 0}, ticks[0])
	last := ticks[len(ticks)-1]
	assert.Equal(t, 100.0, last.Value)
	assert.Equal(t, "100", last.Label)
	assert.InDelta(t, 0, last.Offset, 1e-9)
}

func TestLinear_Thousands(t *testing.T) {
	s := scale.NewLinear([2]float64{0, 5000}, [2]float64{0, 500}, false, false)

	ticks := Linear(s, 5, nil)
	labels := make([]string, len(ticks))
	for i, tick := range ticks {
		labels[i] = tick.Label
	}
	assert.Contains(t, labels, "1,000")
	assert.Contains(t, labels, "5,000")
}

func TestNumberFormatter(t *testing.T) {
	tests := []struct {
		tag      language.Tag
		decimals int
		value    float64
		want     string
	}{
		{language.English, 2, 1234.5, "1,234.5"},
		{language.English, 2, 0.126, "0.13"},
		{language.English, 0, 1000000, "1,000,000"},
		{language.English, 2, 0, "0"},
		{language.English, 2, -2.5, "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, NewNumberFormatter(tt.tag, tt.decimals).Format(tt.value))
		})
	}
}

func TestTime(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	s := scale.NewTime([2]time.Time{start, start.AddDate(0, 0, 3)}, [2]float64{0, 300}, false, false)

	ticks := Time(s, 3)
	require.Len(t, ticks, 4)
	assert.Equal(t, "Jan 1", ticks[0].Label)
	assert.Equal(t, "Jan 4", ticks[3].Label)
	assert.InDelta(t, 100, ticks[1].Offset, 1e-9)
	assert.Equal(t, float64(start.UnixMilli()), ticks[0].Value)
}

func TestBand(t *testing.T) {
	s := scale.NewBandPadded([]string{"A", "B"}, [2]float64{0, 300}, 0.2)

	ticks := Band(s)
	require.Len(t, ticks, 2)
	assert.Equal(t, Tick{Offset: 90, Label: "A", Value: 0}, roundTick(ticks[0]))
	assert.Equal(t, Tick{Offset: 240, Label: "B", Value: 1}, roundTick(ticks[1]))
}

func TestCandleTimes(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	keys := make([]string, 24)
	times := make([]time.Time, 24)
	for i := range times {
		keys[i] = string(rune('a' + i))
		times[i] = start.Add(time.Duration(i) * time.Hour)
	}
	s := scale.NewBandPadded(keys, [2]float64{0, 240}, 0)

	ticks := CandleTimes(s, times, 6)
	require.Len(t, ticks, 6)
	assert.Equal(t, "00:00", ticks[0].Label)
	assert.Equal(t, "04:00", ticks[1].Label)
	assert.InDelta(t, 45, ticks[1].Offset, 1e-9)

	assert.Nil(t, CandleTimes(s, nil, 6))
}

func TestGrid(t *testing.T) {
	ticks := []Tick{{Offset: 10}, {Offset: 20}}
	size := layout.Size{Width: 300, Height: 200}

	assert.Equal(t, []GridLine{{10, 0, 10, 200}, {20, 0, 20, 200}}, Grid(ticks, Bottom, size))
	assert.Equal(t, []GridLine{{0, 10, 300, 10}, {0, 20, 300, 20}}, Grid(ticks, Left, size))
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		time     time.Time
		interval string
		want     string
	}{
		{time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC), "second", "14:30:15"},
		{time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), "hour", "14:30"},
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "week", "Mar 5"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "month", "Mar 2024"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "year", "2024"},
		{time.Date(2024, 3, 5, 14, 30, 15, 0, time.UTC), "", "14:30:15"},
		{time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), "", "09:00"},
		{time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "", "Mar 5"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "", "Mar 2024"},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "decade", "2024"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.time, tt.interval))
		})
	}
}

func roundTick(t Tick) Tick {
	t.Offset = float64(int(t.Offset*1e6+0.5)) / 1e6
	return t
}
