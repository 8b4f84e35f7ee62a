// Package report prints text summaries of chart data: tables of computed
// geometry, value histograms and descriptive statistics.
package report

import (
	"errors"
	"math"
	"sort"

	"github.com/raykavin/chartkit/pkg/core"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// ErrNoValues is returned when there is nothing to summarize.
var ErrNoValues = errors.New("no values")

// Interval is a bootstrap confidence interval.
type Interval struct {
	Lower  float64 // Lower bound of the confidence interval
	Upper  float64 // Upper bound of the confidence interval
	StdDev float64 // Standard deviation of the bootstrap samples
	Mean   float64 // Mean of the bootstrap samples
}

// Bootstrap estimates the confidence interval of measure over values by
// resampling them with replacement samples times.
func Bootstrap(values []float64, measure func([]float64) float64, samples int, confidence float64) Interval {
	if len(values) == 0 || samples < 1 {
		return Interval{}
	}

	data := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		resample := make([]float64, len(values))
		for j := range resample {
			resample[j] = lo.Sample(values)
		}
		data = append(data, measure(resample))
	}

	tail := 1 - confidence
	sort.Float64s(data)

	mean, stdDev := stat.MeanStdDev(data, nil)
	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
		StdDev: stdDev,
		Mean:   mean,
	}
}

// Mean is the arithmetic mean, a measure for Bootstrap.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// SeriesStats describes the y values of one series. MeanInterval is the 95%
// bootstrap interval of the mean.
type SeriesStats struct {
	Name         string
	Count        int
	Min          float64
	Max          float64
	Sum          float64
	Mean         float64
	StdDev       float64
	Median       float64
	MeanInterval Interval
}

// BootstrapSamples is the number of resamples used for MeanInterval.
const BootstrapSamples = 1000

// Stats summarizes the y values of a series. NaN values are ignored.
func Stats(s core.DataSeries) (SeriesStats, error) {
	values := lo.Filter([]float64(s.YValues()), func(v float64, _ int) bool {
		return !math.IsNaN(v)
	})
	if len(values) == 0 {
		return SeriesStats{Name: s.Name}, ErrNoValues
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean, stdDev := stat.MeanStdDev(values, nil)
	if len(values) < 2 {
		stdDev = 0
	}

	return SeriesStats{
		Name:         s.Name,
		Count:        len(values),
		Min:          sorted[0],
		Max:          sorted[len(sorted)-1],
		Sum:          lo.Sum(values),
		Mean:         mean,
		StdDev:       stdDev,
		Median:       stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		MeanInterval: Bootstrap(values, Mean, BootstrapSamples, 0.95),
	}, nil
}
