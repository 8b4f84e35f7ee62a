package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/layout"

	"github.com/olekukonko/tablewriter"
)

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pixels(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// BarTable writes one row per bar with its value and rectangle.
func BarTable(w io.Writer, l layout.BarLayout) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Category", "Value", "X", "Y", "Width", "Height"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	var count int
	for _, s := range l.Series {
		for _, b := range s.Bars {
			table.Append([]string{
				s.Name,
				b.Category,
				number(b.Value),
				pixels(b.X),
				pixels(b.Y),
				pixels(b.Width),
				pixels(b.Height),
			})
			count++
		}
	}

	table.SetFooter([]string{
		"TOTAL",
		strconv.Itoa(len(l.Categories)),
		strconv.Itoa(count),
		"", "", "", "",
	})
	table.Render()
}

// CandleTable writes one row per candle.
func CandleTable(w io.Writer, candles []core.Candle) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Time", "Open", "High", "Low", "Close", "Volume", "Dir"})

	for _, c := range candles {
		dir := "down"
		if c.Bullish() {
			dir = "up"
		}
		table.Append([]string{
			c.Time.UTC().Format("2006-01-02 15:04"),
			number(c.Open),
			number(c.High),
			number(c.Low),
			number(c.Close),
			number(c.Volume),
			dir,
		})
	}

	table.Render()
}

// StatsTable writes one row per series summary.
func StatsTable(w io.Writer, stats []SeriesStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Count", "Min", "Max", "Mean", "Std Dev", "Median", "Mean 95%"})

	for _, s := range stats {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.2f", s.Min),
			fmt.Sprintf("%.2f", s.Max),
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.StdDev),
			fmt.Sprintf("%.2f", s.Median),
			fmt.Sprintf("%.2f ~ %.2f", s.MeanInterval.Lower, s.MeanInterval.Upper),
		})
	}

	table.Render()
}
