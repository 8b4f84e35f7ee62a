package feed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/logger"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"
)

// DefaultRetries is how many times a failed kline request is retried.
const DefaultRetries = 3

// KlineRequest selects the klines of one symbol. Zero start and end mean the
// most recent klines.
type KlineRequest struct {
	Symbol   string
	Interval string
	Start    time.Time
	End      time.Time
	Limit    int
}

// KlineFetcher performs a single kline request.
type KlineFetcher func(ctx context.Context, req KlineRequest) ([]*binance.Kline, error)

// BinanceSource loads candles from the Binance kline endpoint, retrying
// failed requests with exponential backoff.
type BinanceSource struct {
	fetch   KlineFetcher
	backoff *backoff.Backoff
	retries int
	log     logger.Logger
}

// BinanceOption configures a BinanceSource.
type BinanceOption func(*BinanceSource)

// WithFetcher replaces the HTTP client, e.g. with a canned response.
func WithFetcher(fetch KlineFetcher) BinanceOption {
	return func(s *BinanceSource) {
		s.fetch = fetch
	}
}

// WithRetry sets the number of retries and the backoff between them.
func WithRetry(retries int, minWait, maxWait time.Duration) BinanceOption {
	return func(s *BinanceSource) {
		s.retries = retries
		s.backoff = &backoff.Backoff{Min: minWait, Max: maxWait, Factor: 2}
	}
}

// WithSourceLogger sets the logger used to report retries.
func WithSourceLogger(log logger.Logger) BinanceOption {
	return func(s *BinanceSource) {
		if log != nil {
			s.log = log
		}
	}
}

// NewBinanceSource creates a source over the public Binance API.
func NewBinanceSource(options ...BinanceOption) *BinanceSource {
	source := &BinanceSource{
		fetch:   clientFetcher(binance.NewClient("", "")),
		retries: DefaultRetries,
		backoff: &backoff.Backoff{
			Min:    100 * time.Millisecond,
			Max:    1 * time.Second,
			Factor: 2,
		},
		log: logger.Nop(),
	}

	for _, option := range options {
		option(source)
	}

	return source
}

func clientFetcher(client *binance.Client) KlineFetcher {
	return func(ctx context.Context, req KlineRequest) ([]*binance.Kline, error) {
		service := client.NewKlinesService().
			Symbol(req.Symbol).
			Interval(req.Interval)

		if req.Limit > 0 {
			service = service.Limit(req.Limit)
		}
		if !req.Start.IsZero() {
			service = service.StartTime(req.Start.UnixMilli())
		}
		if !req.End.IsZero() {
			service = service.EndTime(req.End.UnixMilli())
		}

		return service.Do(ctx)
	}
}

// CandlesByLimit returns the last limit closed candles of symbol. The
// candle still being formed is left out.
func (s *BinanceSource) CandlesByLimit(ctx context.Context, symbol, interval string, limit int) ([]core.Candle, error) {
	klines, err := s.request(ctx, KlineRequest{Symbol: symbol, Interval: interval, Limit: limit + 1})
	if err != nil {
		return nil, err
	}

	if len(klines) > 0 {
		klines = klines[:len(klines)-1]
	}
	return toCandles(klines)
}

// CandlesByPeriod returns the candles of symbol opened between start and end.
func (s *BinanceSource) CandlesByPeriod(ctx context.Context, symbol, interval string, start, end time.Time) ([]core.Candle, error) {
	klines, err := s.request(ctx, KlineRequest{Symbol: symbol, Interval: interval, Start: start, End: end})
	if err != nil {
		return nil, err
	}
	return toCandles(klines)
}

func (s *BinanceSource) request(ctx context.Context, req KlineRequest) ([]*binance.Kline, error) {
	if _, err := ParseTimeframe(req.Interval); err != nil {
		return nil, err
	}

	s.backoff.Reset()

	for attempt := 0; ; attempt++ {
		klines, err := s.fetch(ctx, req)
		if err == nil {
			if len(klines) == 0 {
				return nil, fmt.Errorf("%w: no klines for %s %s", ErrEmptyInput, req.Symbol, req.Interval)
			}
			return klines, nil
		}

		if attempt >= s.retries {
			return nil, fmt.Errorf("fetch klines %s %s: %w", req.Symbol, req.Interval, err)
		}

		wait := s.backoff.Duration()
		s.log.WithError(err).
			WithField("attempt", attempt+1).
			Warnf("kline request failed, retrying in %s", wait)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func toCandles(klines []*binance.Kline) ([]core.Candle, error) {
	candles := make([]core.Candle, 0, len(klines))
	for _, k := range klines {
		c, err := toCandle(k)
		if err != nil {
			return nil, err
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func toCandle(k *binance.Kline) (core.Candle, error) {
	candle := core.Candle{Time: time.UnixMilli(k.OpenTime).UTC()}

	for _, field := range []struct {
		raw string
		dst *float64
	}{
		{k.Open, &candle.Open},
		{k.High, &candle.High},
		{k.Low, &candle.Low},
		{k.Close, &candle.Close},
		{k.Volume, &candle.Volume},
	} {
		v, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return core.Candle{}, fmt.Errorf("%w: kline at %d: %v", ErrMalformedRow, k.OpenTime, err)
		}
		*field.dst = v
	}

	return candle, nil
}
