package scale

import "time"

// Interval is a calendar unit used for nice time domains and ticks.
type Interval struct {
	Name string
	// Length is the nominal duration; month and year are approximations.
	Length time.Duration
	floor  func(t time.Time) time.Time
	step   func(t time.Time, n int) time.Time
}

// Floor rounds t down to the start of the interval in t's location.
func (i Interval) Floor(t time.Time) time.Time { return i.floor(t) }

// Step moves t forward by n intervals.
func (i Interval) Step(t time.Time, n int) time.Time { return i.step(t, n) }

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// Intervals lists the calendar units from the finest to the coarsest.
var Intervals = []Interval{
	{
		Name:   "second",
		Length: time.Second,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Second) },
	},
	{
		Name:   "minute",
		Length: time.Minute,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Minute) },
	},
	{
		Name:   "hour",
		Length: time.Hour,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Hour) },
	},
	{
		Name:   "day",
		Length: day,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
		},
	},
	{
		Name:   "week",
		Length: week,
		floor: func(t time.Time) time.Time {
			// weeks start on Sunday
			return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day()+7*n, 0, 0, 0, 0, t.Location())
		},
	},
	{
		Name:   "month",
		Length: month,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time {
			return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
		},
	},
	{
		Name:   "year",
		Length: year,
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		},
		step: func(t time.Time, n int) time.Time {
			return time.Date(t.Year()+n, time.January, 1, 0, 0, 0, 0, t.Location())
		},
	},
}

// BestInterval picks the calendar unit whose length is closest to span/count:
// the first unit whose target step falls below the midpoint between it and
// the next larger unit.
func BestInterval(span time.Duration, count int) Interval {
	if count < 1 {
		count = 1
	}
	target := float64(span) / float64(count)

	for i := 0; i < len(Intervals)-1; i++ {
		midpoint := float64(Intervals[i].Length+Intervals[i+1].Length) / 2
		if target < midpoint {
			return Intervals[i]
		}
	}

	return Intervals[len(Intervals)-1]
}

// TimeTicks returns calendar-aligned ticks within [start, end]. When the
// chosen unit yields more than 1.5×count ticks, every ceil(n/count)-th tick
// is kept.
func TimeTicks(start, end time.Time, count int) []time.Time {
	if count < 1 {
		count = DefaultTickCount
	}

	span := end.Sub(start)
	if span <= 0 {
		return []time.Time{start}
	}

	interval := BestInterval(span, count)

	current := interval.Floor(start)
	if current.Before(start) {
		current = interval.Step(current, 1)
	}

	var ticks []time.Time
	for !current.After(end) {
		ticks = append(ticks, current)
		current = interval.Step(current, 1)
	}

	if float64(len(ticks)) > float64(count)*1.5 {
		every := (len(ticks) + count - 1) / count
		kept := ticks[:0]
		for i, t := range ticks {
			if i%every == 0 {
				kept = append(kept, t)
			}
		}
		ticks = kept
	}

	return ticks
}

// NiceTimeExtent floors start and ceils end to the unit chosen for ten ticks.
func NiceTimeExtent(start, end time.Time) (time.Time, time.Time) {
	interval := BestInterval(end.Sub(start), DefaultTickCount)

	niceStart := interval.Floor(start)
	niceEnd := interval.Floor(end)
	if niceEnd.Before(end) {
		niceEnd = interval.Step(niceEnd, 1)
	}

	return niceStart, niceEnd
}
