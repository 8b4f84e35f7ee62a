package core

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  XKind
		str   string
	}{
		{"number", `12.5`, XNumber, "12.5"},
		{"category", `"Jan"`, XCategory, "Jan"},
		{"date", `"2024-03-01"`, XTime, "2024-03-01T00:00:00Z"},
		{"timestamp", `"2024-03-01T10:30:00Z"`, XTime, "2024-03-01T10:30:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var x XValue
			require.NoError(t, json.Unmarshal([]byte(tt.input), &x))
			assert.Equal(t, tt.kind, x.Kind)
			assert.Equal(t, tt.str, x.String())
		})
	}
}

func TestXValue_UnmarshalJSONInvalid(t *testing.T) {
	var x XValue
	require.ErrorIs(t, x.UnmarshalJSON([]byte("null")), ErrInvalidXValue)
	require.ErrorIs(t, x.UnmarshalJSON([]byte("{")), ErrInvalidXValue)
}

func TestXValue_Float(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3.0, NumberX(3).Float())
	assert.Equal(t, float64(ts.UnixMilli()), TimeX(ts).Float())
	assert.Equal(t, 7.0, CategoryX("7").Float())
	assert.True(t, math.IsNaN(CategoryX("Q1").Float()))
}

func TestDataSeries_RoundTrip(t *testing.T) {
	input := `{"id":"s1","name":"Sales","intent":"success","data":[{"x":"Q1","y":100},{"x":"Q2","y":-30}]}`

	var series DataSeries
	require.NoError(t, json.Unmarshal([]byte(input), &series))
	require.Len(t, series.Data, 2)
	assert.Equal(t, IntentSuccess, series.Intent)
	assert.Equal(t, Series[float64]{100, -30}, series.YValues())

	out, err := json.Marshal(series)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}
