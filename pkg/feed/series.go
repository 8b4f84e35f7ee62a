package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/raykavin/chartkit/pkg/core"
)

type seriesDocument struct {
	Series []core.DataSeries `json:"series"`
}

// ReadSeriesJSON decodes data series from r. The document is either an array
// of series or an object with a "series" array. A series without an id gets
// its position as id.
func ReadSeriesJSON(r io.Reader) ([]core.DataSeries, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read series: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var series []core.DataSeries
	if data[0] == '[' {
		err = json.Unmarshal(data, &series)
	} else {
		var doc seriesDocument
		err = json.Unmarshal(data, &doc)
		series = doc.Series
	}
	if err != nil {
		return nil, fmt.Errorf("decode series: %w", err)
	}

	if len(series) == 0 {
		return nil, ErrEmptyInput
	}

	for i := range series {
		if series[i].ID == "" {
			series[i].ID = fmt.Sprintf("series-%d", i)
		}
	}

	return series, nil
}

// ReadSeriesFile reads a JSON series document from a file.
func ReadSeriesFile(path string) ([]core.DataSeries, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := ReadSeriesJSON(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}
