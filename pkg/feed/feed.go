// Package feed loads chart input: data series from JSON, candles from CSV
// files and candles from the Binance kline API.
package feed

import (
	"errors"
)

var (
	// ErrEmptyInput is returned when a source holds no data at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidTimeframe is returned for timeframes that are not supported.
	ErrInvalidTimeframe = errors.New("invalid timeframe")
	// ErrMalformedRow is returned for CSV rows that cannot be read as candles.
	ErrMalformedRow = errors.New("malformed row")
)
