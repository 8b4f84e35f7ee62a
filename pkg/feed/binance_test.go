package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kline(openTime time.Time, open, high, low, closePrice, volume string) *binance.Kline {
	return &binance.Kline{
		OpenTime: openTime.UnixMilli(),
		Open:     open,
		High:     high,
		Low:      low,
		Close:    closePrice,
		Volume:   volume,
	}
}

func TestBinanceSource_CandlesByLimit(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	var got KlineRequest
	source := NewBinanceSource(WithFetcher(func(_ context.Context, req KlineRequest) ([]*binance.Kline, error) {
		got = req
		return []*binance.Kline{
			kline(start, "10", "12", "9", "11", "100"),
			kline(start.Add(time.Hour), "11", "13", "10", "12", "50"),
			kline(start.Add(2*time.Hour), "12", "12", "12", "12", "1"),
		}, nil
	}))

	candles, err := source.CandlesByLimit(context.Background(), "BTCUSDT", "1h", 2)
	require.NoError(t, err)

	assert.Equal(t, KlineRequest{Symbol: "BTCUSDT", Interval: "1h", Limit: 3}, got)
	require.Len(t, candles, 2)
	assert.Equal(t, start, candles[0].Time)
	assert.Equal(t, 12.0, candles[0].High)
	assert.Equal(t, 50.0, candles[1].Volume)
}

func TestBinanceSource_CandlesByPeriod(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	var got KlineRequest
	source := NewBinanceSource(WithFetcher(func(_ context.Context, req KlineRequest) ([]*binance.Kline, error) {
		got = req
		return []*binance.Kline{kline(start, "1", "2", "0.5", "1.5", "10")}, nil
	}))

	candles, err := source.CandlesByPeriod(context.Background(), "ETHUSDT", "1d", start, end)
	require.NoError(t, err)
	require.Len(t, candles, 1)
	assert.Equal(t, start, got.Start)
	assert.Equal(t, end, got.End)
	assert.Equal(t, 1.5, candles[0].Close)
}

func TestBinanceSource_Retry(t *testing.T) {
	calls := 0
	source := NewBinanceSource(
		WithRetry(2, time.Millisecond, 2*time.Millisecond),
		WithFetcher(func(context.Context, KlineRequest) ([]*binance.Kline, error) {
			calls++
			if calls < 3 {
				return nil, errors.New("timeout")
			}
			return []*binance.Kline{kline(time.Unix(0, 0), "1", "1", "1", "1", "1")}, nil
		}),
	)

	candles, err := source.CandlesByPeriod(context.Background(), "BTCUSDT", "1m", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, candles, 1)
	assert.Equal(t, 3, calls)
}

func TestBinanceSource_GiveUp(t *testing.T) {
	calls := 0
	failure := errors.New("unavailable")
	source := NewBinanceSource(
		WithRetry(1, time.Millisecond, time.Millisecond),
		WithFetcher(func(context.Context, KlineRequest) ([]*binance.Kline, error) {
			calls++
			return nil, failure
		}),
	)

	_, err := source.CandlesByLimit(context.Background(), "BTCUSDT", "1m", 10)
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, 2, calls)
}

func TestBinanceSource_Errors(t *testing.T) {
	empty := NewBinanceSource(WithFetcher(func(context.Context, KlineRequest) ([]*binance.Kline, error) {
		return nil, nil
	}))

	_, err := empty.CandlesByLimit(context.Background(), "BTCUSDT", "1m", 10)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = empty.CandlesByLimit(context.Background(), "BTCUSDT", "7m", 10)
	assert.ErrorIs(t, err, ErrInvalidTimeframe)

	malformed := NewBinanceSource(WithFetcher(func(context.Context, KlineRequest) ([]*binance.Kline, error) {
		return []*binance.Kline{kline(time.Unix(0, 0), "x", "1", "1", "1", "1")}, nil
	}))
	_, err = malformed.CandlesByPeriod(context.Background(), "BTCUSDT", "1m", time.Time{}, time.Time{})
	assert.ErrorIs(t, err, ErrMalformedRow)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	failing := NewBinanceSource(
		WithRetry(5, time.Second, time.Second),
		WithFetcher(func(context.Context, KlineRequest) ([]*binance.Kline, error) {
			return nil, errors.New("down")
		}),
	)
	_, err = failing.CandlesByLimit(ctx, "BTCUSDT", "1m", 10)
	assert.ErrorIs(t, err, context.Canceled)
}
