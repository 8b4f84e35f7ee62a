package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/samber/lo"
)

// defaultColumns is the column order of files without a header row.
var defaultColumns = map[string]int{
	"time": 0, "open": 1, "close": 2, "low": 3, "high": 4, "volume": 5,
}

var requiredColumns = []string{"time", "open", "close", "low", "high"}

// parseHeader returns the column index of every field. A first row whose
// first cell is a number is data, not a header.
func parseHeader(row []string) (columns map[string]int, isHeader bool, err error) {
	if _, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64); err == nil {
		return defaultColumns, false, nil
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(row[0])); err == nil {
		return defaultColumns, false, nil
	}

	columns = make(map[string]int, len(row))
	for i, name := range row {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, true, fmt.Errorf("%w: header misses column %q", ErrMalformedRow, name)
		}
	}

	return columns, true, nil
}

// parseTime reads Unix seconds, Unix milliseconds (13 digits and up) or an
// RFC 3339 timestamp. Times are returned in UTC.
func parseTime(s string) (time.Time, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if len(strings.TrimPrefix(s, "-")) >= 13 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func parseRow(row []string, columns map[string]int) (core.Candle, error) {
	field := func(name string) (string, bool) {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	raw, _ := field("time")
	t, err := parseTime(raw)
	if err != nil {
		return core.Candle{}, fmt.Errorf("time %q: %w", raw, err)
	}

	candle := core.Candle{Time: t}
	for _, col := range []struct {
		name string
		dst  *float64
	}{
		{"open", &candle.Open},
		{"close", &candle.Close},
		{"low", &candle.Low},
		{"high", &candle.High},
		{"volume", &candle.Volume},
	} {
		raw, ok := field(col.name)
		if !ok {
			if col.name == "volume" {
				continue
			}
			return core.Candle{}, fmt.Errorf("missing %s", col.name)
		}

		if *col.dst, err = strconv.ParseFloat(raw, 64); err != nil {
			return core.Candle{}, fmt.Errorf("%s %q: %w", col.name, raw, err)
		}
	}

	return candle, nil
}

// ReadCandlesCSV reads OHLCV candles. Files may start with a header naming
// the time, open, close, low, high and optional volume columns in any
// order; without one the columns are time, open, close, low, high, volume.
func ReadCandlesCSV(r io.Reader) ([]core.Candle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	columns, isHeader, err := parseHeader(rows[0])
	if err != nil {
		return nil, err
	}
	if isHeader {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	candles := make([]core.Candle, 0, len(rows))
	for i, row := range rows {
		candle, err := parseRow(row, columns)
		if err != nil {
			line := i + 1
			if isHeader {
				line++
			}
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

// ReadCandlesFile reads a CSV candle file.
func ReadCandlesFile(path string) ([]core.Candle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	candles, err := ReadCandlesCSV(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return candles, nil
}

// Limit keeps the candles opened within duration of the last one.
func Limit(candles []core.Candle, duration time.Duration) []core.Candle {
	if len(candles) == 0 || duration <= 0 {
		return candles
	}

	start := candles[len(candles)-1].Time.Add(-duration)
	return lo.Filter(candles, func(c core.Candle, _ int) bool {
		return c.Time.After(start)
	})
}

// Resample merges candles of timeframe from into candles of timeframe to.
// Leading candles before the first full period and a trailing incomplete
// period are dropped.
func Resample(candles []core.Candle, from, to string) ([]core.Candle, error) {
	fromDuration, err := ParseTimeframe(from)
	if err != nil {
		return nil, err
	}
	toDuration, err := ParseTimeframe(to)
	if err != nil {
		return nil, err
	}

	if from == to {
		return append([]core.Candle(nil), candles...), nil
	}
	if toDuration < fromDuration {
		return nil, fmt.Errorf("%w: cannot resample %s into shorter %s", ErrInvalidTimeframe, from, to)
	}

	first := -1
	for i, c := range candles {
		if boundaries[to](c.Time.UTC()) {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, nil
	}

	var (
		out      []core.Candle
		current  core.Candle
		inPeriod bool
	)
	for _, c := range candles[first:] {
		if !inPeriod {
			current = c
			inPeriod = true
		} else {
			current.High = math.Max(current.High, c.High)
			current.Low = math.Min(current.Low, c.Low)
			current.Close = c.Close
			current.Volume += c.Volume
		}

		if isLastOfPeriod(c.Time, fromDuration, to) {
			out = append(out, current)
			inPeriod = false
		}
	}

	return out, nil
}
