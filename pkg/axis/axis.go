// Package axis turns scales into labelled ticks and grid lines in pixel
// space.
package axis

import (
	"time"

	"github.com/raykavin/chartkit/pkg/layout"
	"github.com/raykavin/chartkit/pkg/scale"
)

// Position says which edge of the plot an axis is drawn on.
type Position string

const (
	Bottom Position = "bottom"
	Left   Position = "left"
	Top    Position = "top"
	Right  Position = "right"
)

// Horizontal reports whether the axis runs along the x direction.
func (p Position) Horizontal() bool {
	return p == Bottom || p == Top
}

// Tick is a labelled position on an axis. Offset is in pixels along the
// axis.
type Tick struct {
	Offset float64 `json:"offset"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
}

// GridLine is a segment across the plot area.
type GridLine struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Linear returns count nice ticks of s labelled with format. A nil format
// uses the English formatter with two decimals.
func Linear(s *scale.Linear, count int, format NumberFormatter) []Tick {
	if format == nil {
		format = DefaultNumberFormatter
	}

	values := s.Ticks(count)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Offset: s.Call(v), Label: format.Format(v), Value: v}
	}
	return ticks
}

// Time returns calendar aligned ticks of s labelled for the chosen interval.
// Value holds Unix milliseconds.
func Time(s *scale.Time, count int) []Tick {
	interval := s.Interval(count)

	values := s.Ticks(count)
	ticks := make([]Tick, len(values))
	for i, t := range values {
		ticks[i] = Tick{
			Offset: s.Call(t),
			Label:  FormatTime(t, interval.Name),
			Value:  float64(t.UnixMilli()),
		}
	}
	return ticks
}

// Band returns one tick per category at the band centre. Value holds the
// category index.
func Band(s *scale.Band) []Tick {
	keys := s.Domain()
	ticks := make([]Tick, len(keys))
	for i, key := range keys {
		center, _ := s.Center(key)
		ticks[i] = Tick{Offset: center, Label: key, Value: float64(i)}
	}
	return ticks
}

// BandLabels is like Band with labels taken from label(i) instead of the key,
// e.g. candle times for an index scale.
func BandLabels(s *scale.Band, label func(i int) string) []Tick {
	ticks := Band(s)
	for i := range ticks {
		ticks[i].Label = label(i)
	}
	return ticks
}

// Grid draws one line per tick across the plot. Ticks of a horizontal axis
// give vertical lines and ticks of a vertical axis horizontal ones.
func Grid(ticks []Tick, pos Position, size layout.Size) []GridLine {
	lines := make([]GridLine, len(ticks))
	for i, t := range ticks {
		if pos.Horizontal() {
			lines[i] = GridLine{X1: t.Offset, Y1: 0, X2: t.Offset, Y2: size.Height}
			continue
		}
		lines[i] = GridLine{X1: 0, Y1: t.Offset, X2: size.Width, Y2: t.Offset}
	}
	return lines
}

// CandleTimes labels an index band with the times of the candles it places.
func CandleTimes(s *scale.Band, times []time.Time, count int) []Tick {
	if len(times) == 0 {
		return nil
	}

	interval := scale.BestInterval(times[len(times)-1].Sub(times[0]), max(count, 1))
	ticks := BandLabels(s, func(i int) string {
		if i >= len(times) {
			return ""
		}
		return FormatTime(times[i], interval.Name)
	})

	if count < 1 || len(ticks) <= count {
		return ticks
	}

	every := (len(ticks) + count - 1) / count
	kept := make([]Tick, 0, count)
	for i, t := range ticks {
		if i%every == 0 {
			kept = append(kept, t)
		}
	}
	return kept
}
