package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSeriesJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `[{"name":"sales","data":[{"x":"Q1","y":10},{"x":"Q2","y":-3}]}]`},
		{"document", `{"series":[{"name":"sales","data":[{"x":"Q1","y":10},{"x":"Q2","y":-3}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := ReadSeriesJSON(strings.NewReader(tt.input))
			require.NoError(t, err)
			require.Len(t, series, 1)

			s := series[0]
			assert.Equal(t, "series-0", s.ID)
			assert.Equal(t, "sales", s.Name)
			require.Len(t, s.Data, 2)
			assert.Equal(t, core.CategoryX("Q1"), s.Data[0].X)
			assert.Equal(t, -3.0, s.Data[1].Y)
		})
	}
}

func TestReadSeriesJSON_Errors(t *testing.T) {
	_, err := ReadSeriesJSON(strings.NewReader("  "))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadSeriesJSON(strings.NewReader("[]"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadSeriesJSON(strings.NewReader(`[{"data":[{"x":null,"y":1}]}]`))
	assert.ErrorIs(t, err, core.ErrInvalidXValue)

	_, err = ReadSeriesJSON(strings.NewReader(`{"series":`))
	assert.Error(t, err)
}

func TestReadSeriesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "series.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":"a","data":[{"x":1,"y":2}]}]`), 0o600))

	series, err := ReadSeriesFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a", series[0].ID)
	assert.Equal(t, core.NumberX(1), series[0].Data[0].X)

	_, err = ReadSeriesFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
