package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// XKind tells how an x value should be placed on an axis.
type XKind uint8

const (
	XNumber XKind = iota
	XCategory
	XTime
)

// String returns the kind name.
func (k XKind) String() string {
	switch k {
	case XNumber:
		return "number"
	case XCategory:
		return "category"
	case XTime:
		return "time"
	default:
		return "unknown"
	}
}

// dateLayouts are the string forms decoded as time values, tried in order.
var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// XValue is the x coordinate of a data point: a number, a category key or a timestamp.
type XValue struct {
	Kind     XKind
	Number   float64
	Category string
	Time     time.Time
}

// NumberX returns a numeric x value.
func NumberX(v float64) XValue { return XValue{Kind: XNumber, Number: v} }

// CategoryX returns a categorical x value.
func CategoryX(key string) XValue { return XValue{Kind: XCategory, Category: key} }

// TimeX returns a time x value.
func TimeX(t time.Time) XValue { return XValue{Kind: XTime, Time: t} }

// IsNumeric reports whether the value can be placed on a continuous axis.
func (x XValue) IsNumeric() bool { return x.Kind == XNumber || x.Kind == XTime }

// Float returns the continuous position of the value. Times are expressed in
// Unix milliseconds. Categories that do not parse as numbers yield NaN.
func (x XValue) Float() float64 {
	switch x.Kind {
	case XNumber:
		return x.Number
	case XTime:
		return float64(x.Time.UnixMilli())
	default:
		v, err := strconv.ParseFloat(x.Category, 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

// String returns the category key used to place the value on a band axis.
func (x XValue) String() string {
	switch x.Kind {
	case XNumber:
		return strconv.FormatFloat(x.Number, 'f', -1, 64)
	case XTime:
		return x.Time.Format(time.RFC3339)
	default:
		return x.Category
	}
}

// MarshalJSON encodes numbers as JSON numbers and categories and times as strings.
func (x XValue) MarshalJSON() ([]byte, error) {
	switch x.Kind {
	case XNumber:
		return json.Marshal(x.Number)
	case XTime:
		return json.Marshal(x.Time.Format(time.RFC3339Nano))
	case XCategory:
		return json.Marshal(x.Category)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownXKind, x.Kind)
	}
}

// UnmarshalJSON accepts a JSON number, or a string. Strings holding an RFC 3339
// timestamp or a plain date decode as times, anything else as a category.
func (x *XValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: empty", ErrInvalidXValue)
	}

	if data[0] != '"' {
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidXValue, data)
		}
		*x = NumberX(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidXValue, data)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*x = TimeX(t)
			return nil
		}
	}

	*x = CategoryX(s)
	return nil
}

// DataPoint is a single observation of a series.
type DataPoint struct {
	X     XValue  `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
	Color string  `json:"color,omitempty"`
}

// DataSeries is an ordered list of data points with presentation hints.
type DataSeries struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Color  string      `json:"color,omitempty"`
	Intent Intent      `json:"intent,omitempty"`
	Data   []DataPoint `json:"data"`
}

// YValues returns the y values of the series in order.
func (s DataSeries) YValues() Series[float64] {
	values := make(Series[float64], len(s.Data))
	for i, p := range s.Data {
		values[i] = p.Y
	}
	return values
}
