package main

import (
	"fmt"
	"io"

	"github.com/raykavin/chartkit/internal/config"
	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/report"

	"github.com/spf13/cobra"
)

// histogramWidth is the length in characters of the longest histogram bar.
const histogramWidth = 40

func buildBarCmd() *cobra.Command {
	barCmd := &cobra.Command{
		Use:   "bar [series.json]",
		Short: "Render a bar chart from JSON series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBar,
	}

	barCmd.Flags().Bool("stacked", false, "Stack series on top of each other")
	barCmd.Flags().Bool("grouped", false, "Place series side by side")
	barCmd.Flags().Bool("horizontal", false, "Grow bars to the right")
	barCmd.Flags().Float64("padding", 0.2, "Gap between bands as a fraction of a step")
	barCmd.Flags().Float64("radius", 0, "Corner radius of the bar ends")

	return barCmd
}

func runBar(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	input := inputArg(args)
	series, err := readSeries(cmd, input)
	if err != nil {
		return err
	}

	chart, l := barChart(cfg, series)
	output := outputPath(cfg, input)
	if err := saveChart(cmd, chart, cfg.Format, output); err != nil {
		return err
	}

	if cfg.Table {
		report.BarTable(reportWriter(cmd, output), l)
	}
	return nil
}

func buildLineCmd() *cobra.Command {
	lineCmd := &cobra.Command{
		Use:   "line [series.json]",
		Short: "Render a line chart from JSON series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLine,
	}

	lineCmd.Flags().String("curve", "linear", "Curve: linear, monotone, cardinal, step, stepBefore, stepAfter or basis")
	lineCmd.Flags().Float64("tension", 0.5, "Cardinal curve tension")
	lineCmd.Flags().Bool("area", false, "Fill the area under each line")
	lineCmd.Flags().Bool("histogram", false, "Print a histogram of the y values")

	return lineCmd
}

func runLine(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	input := inputArg(args)
	series, err := readSeries(cmd, input)
	if err != nil {
		return err
	}

	chart, _ := lineChart(cfg, series)
	output := outputPath(cfg, input)
	if err := saveChart(cmd, chart, cfg.Format, output); err != nil {
		return err
	}

	w := reportWriter(cmd, output)
	if cfg.Table {
		if err := printStats(w, series); err != nil {
			return err
		}
	}
	if cfg.Histogram {
		var values []float64
		for _, s := range series {
			values = append(values, s.YValues()...)
		}
		if err := report.Histogram(w, values, report.DefaultBins, histogramWidth); err != nil {
			return fmt.Errorf("histogram: %w", err)
		}
	}
	return nil
}

func printStats(w io.Writer, series []core.DataSeries) error {
	stats := make([]report.SeriesStats, 0, len(series))
	for _, s := range series {
		st, err := report.Stats(s)
		if err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		stats = append(stats, st)
	}
	report.StatsTable(w, stats)
	return nil
}

func buildCandleCmd() *cobra.Command {
	candleCmd := &cobra.Command{
		Use:   "candle [candles.csv]",
		Short: "Render a candlestick chart from a CSV file or Binance klines",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCandle,
	}

	flags := candleCmd.Flags()
	flags.StringP("symbol", "s", "", "Binance symbol to fetch instead of reading a file (e.g. BTCUSDT)")
	flags.StringP("interval", "i", "1h", "Binance kline interval")
	flags.IntP("limit", "l", 100, "Number of klines to fetch")
	flags.StringP("timeframe", "t", "", "Timeframe of the CSV candles (e.g. 1m)")
	flags.String("resample", "", "Merge candles into a longer timeframe (e.g. 1h)")
	flags.String("last", "", "Keep only the last period of data (e.g. 7d)")
	flags.Float64("padding", 0.2, "Gap between candles as a fraction of a step")
	flags.Float64("body-ratio", 0.7, "Body width as a fraction of the band")
	flags.Bool("heikin-ashi", false, "Draw Heikin-Ashi candles")
	flags.Float64("volume", 0, "Fraction of the height used by volume bars")
	flags.IntSlice("sma", nil, "Simple moving average periods")
	flags.IntSlice("ema", nil, "Exponential moving average periods")
	flags.Int("bollinger", 0, "Bollinger bands period")

	return candleCmd
}

func runCandle(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	input := inputArg(args)
	candles, err := loadCandles(cmd.Context(), cfg, input)
	if err != nil {
		return err
	}

	chart, _ := candleChart(cfg, candles)
	output := outputPath(cfg, input)
	if output == stdio && cfg.Symbol != "" && cfg.Output == "" {
		output = cfg.Symbol + "." + cfg.Format
	}
	if err := saveChart(cmd, chart, cfg.Format, output); err != nil {
		return err
	}

	if cfg.Table {
		report.CandleTable(reportWriter(cmd, output), candles)
	}
	return nil
}

func buildPieCmd() *cobra.Command {
	pieCmd := &cobra.Command{
		Use:   "pie [series.json]",
		Short: "Render a pie or donut chart from the first JSON series",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPie,
	}

	pieCmd.Flags().Float64("inner-radius", 0, "Inner radius as a fraction of the outer one (donut)")
	pieCmd.Flags().Float64("pad-angle", 0, "Gap between slices in radians")

	return pieCmd
}

func runPie(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	input := inputArg(args)
	series, err := readSeries(cmd, input)
	if err != nil {
		return err
	}

	chart, _, err := pieChart(cfg, series)
	if err != nil {
		return err
	}

	output := outputPath(cfg, input)
	if err := saveChart(cmd, chart, cfg.Format, output); err != nil {
		return err
	}

	if cfg.Table {
		return printStats(reportWriter(cmd, output), series[:1])
	}
	return nil
}
