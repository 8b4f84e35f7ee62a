package feed

import (
	"fmt"
	"time"

	"github.com/xhit/go-str2duration/v2"
)

// boundaries tells, per timeframe, whether t opens a new period.
var boundaries = map[string]func(t time.Time) bool{
	"1m":  func(t time.Time) bool { return t.Second() == 0 },
	"5m":  func(t time.Time) bool { return t.Minute()%5 == 0 && t.Second() == 0 },
	"10m": func(t time.Time) bool { return t.Minute()%10 == 0 && t.Second() == 0 },
	"15m": func(t time.Time) bool { return t.Minute()%15 == 0 && t.Second() == 0 },
	"30m": func(t time.Time) bool { return t.Minute()%30 == 0 && t.Second() == 0 },
	"1h":  func(t time.Time) bool { return t.Minute() == 0 && t.Second() == 0 },
	"2h":  func(t time.Time) bool { return t.Hour()%2 == 0 && t.Minute() == 0 && t.Second() == 0 },
	"4h":  func(t time.Time) bool { return t.Hour()%4 == 0 && t.Minute() == 0 && t.Second() == 0 },
	"12h": func(t time.Time) bool { return t.Hour()%12 == 0 && t.Minute() == 0 && t.Second() == 0 },
	"1d":  func(t time.Time) bool { return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 },
	"1w":  func(t time.Time) bool { return t.Weekday() == time.Sunday && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 },
}

// ParseTimeframe returns the length of a timeframe such as "15m" or "1d".
// Only timeframes with known period boundaries are accepted.
func ParseTimeframe(timeframe string) (time.Duration, error) {
	if _, ok := boundaries[timeframe]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeframe, timeframe)
	}

	d, err := str2duration.ParseDuration(timeframe)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidTimeframe, timeframe, err)
	}
	return d, nil
}

// isLastOfPeriod reports whether the candle opening at t is the last one of
// a target period, that is whether the next candle opens a new period.
func isLastOfPeriod(t time.Time, from time.Duration, target string) bool {
	return boundaries[target](t.Add(from).UTC())
}
