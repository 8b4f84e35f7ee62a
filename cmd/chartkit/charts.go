package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/raykavin/chartkit"
	"github.com/raykavin/chartkit/internal/config"
	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/feed"
	"github.com/raykavin/chartkit/pkg/indicator"
	"github.com/raykavin/chartkit/pkg/layout"
	"github.com/raykavin/chartkit/pkg/path"
	"github.com/raykavin/chartkit/pkg/render"

	"github.com/xhit/go-str2duration/v2"
)

// bollingerDeviation is the band width, in standard deviations, of --bollinger.
const bollingerDeviation = 2

var errNoCandleSource = errors.New("a CSV file or --symbol is required")

func newChart(cfg *config.Config) *render.Chart {
	return render.NewChart(cfg.Width, cfg.Height, render.WithTitle(cfg.Title))
}

func barChart(cfg *config.Config, series []core.DataSeries) (*render.Chart, layout.BarLayout) {
	chart := newChart(cfg)
	l := layout.ComputeBarLayout(series, chart.Plot(),
		layout.WithLogger(chartkit.DefaultLog),
		layout.WithOrientation(cfg.Orientation()),
		layout.WithStacked(cfg.Stacked),
		layout.WithGrouped(cfg.Grouped),
		layout.WithBandPadding(cfg.Padding),
	)
	chart.AddBars(l, cfg.Radius)
	return chart, l
}

func lineChart(cfg *config.Config, series []core.DataSeries) (*render.Chart, layout.LineLayout) {
	chart := newChart(cfg)
	l := layout.ComputeLineLayout(series, chart.Plot(),
		layout.WithLogger(chartkit.DefaultLog),
		layout.WithCurve(path.Curve(cfg.Curve)),
		layout.WithTension(cfg.Tension),
		layout.WithArea(cfg.Area),
	)
	chart.AddLines(l)
	return chart, l
}

func pieChart(cfg *config.Config, series []core.DataSeries) (*render.Chart, layout.PieLayout, error) {
	if len(series) == 0 {
		return nil, layout.PieLayout{}, feed.ErrEmptyInput
	}
	if len(series) > 1 {
		chartkit.DefaultLog.Warnf("pie chart uses the first of %d series", len(series))
	}

	chart := newChart(cfg)
	l := layout.ComputePieLayout(series[0], chart.Plot(),
		layout.WithLogger(chartkit.DefaultLog),
		layout.WithInnerRadius(cfg.InnerRadius),
		layout.WithPadAngle(cfg.PadAngle),
	)
	chart.AddPie(l)
	return chart, l, nil
}

func indicators(cfg *config.Config) []indicator.Indicator {
	var list []indicator.Indicator
	for _, period := range cfg.SMA {
		list = append(list, indicator.SMA(period, ""))
	}
	for _, period := range cfg.EMA {
		list = append(list, indicator.EMA(period, ""))
	}
	if cfg.Bollinger > 0 {
		list = append(list, indicator.BollingerBands(cfg.Bollinger, bollingerDeviation, ""))
	}
	return list
}

func candleChart(cfg *config.Config, candles []core.Candle) (*render.Chart, layout.CandlestickLayout) {
	chart := newChart(cfg)
	l := layout.ComputeCandlestickLayout(candles, chart.Plot(),
		layout.WithLogger(chartkit.DefaultLog),
		layout.WithBandPadding(cfg.Padding),
		layout.WithBodyRatio(cfg.BodyRatio),
		layout.WithHeikinAshi(cfg.HeikinAshi),
		layout.WithVolume(cfg.Volume),
		layout.WithIndicators(indicators(cfg)...),
	)
	chart.AddCandles(l)
	return chart, l
}

// loadCandles reads candles from a CSV file, or from Binance when a symbol is
// configured, then trims and resamples them.
func loadCandles(ctx context.Context, cfg *config.Config, input string) ([]core.Candle, error) {
	var (
		candles   []core.Candle
		timeframe = cfg.Timeframe
		err       error
	)

	switch {
	case input != stdio:
		candles, err = feed.ReadCandlesFile(input)
	case cfg.Symbol != "":
		source := feed.NewBinanceSource(feed.WithSourceLogger(chartkit.DefaultLog))
		candles, err = source.CandlesByLimit(ctx, cfg.Symbol, cfg.Interval, cfg.Limit)
		if timeframe == "" {
			timeframe = cfg.Interval
		}
	default:
		return nil, errNoCandleSource
	}
	if err != nil {
		return nil, err
	}

	if cfg.Last != "" {
		window, err := str2duration.ParseDuration(cfg.Last)
		if err != nil {
			return nil, fmt.Errorf("invalid --last %q: %w", cfg.Last, err)
		}
		candles = feed.Limit(candles, window)
	}

	if cfg.Resample != "" {
		if timeframe == "" {
			return nil, errors.New("--resample needs the --timeframe of the data")
		}
		candles, err = feed.Resample(candles, timeframe, cfg.Resample)
		if err != nil {
			return nil, err
		}
	}

	return candles, nil
}
