package report

import (
	"fmt"
	"io"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"
)

// DefaultBins is the bucket count of Histogram.
const DefaultBins = 15

// Histogram prints the distribution of values as horizontal bars of at most
// width characters. NaN values are ignored.
func Histogram(w io.Writer, values []float64, bins, width int) error {
	values = lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
	if len(values) == 0 {
		return ErrNoValues
	}
	if bins < 1 {
		bins = DefaultBins
	}

	hist := histogram.Hist(bins, values)
	if err := histogram.Fprint(w, hist, histogram.Linear(width)); err != nil {
		return fmt.Errorf("print histogram: %w", err)
	}
	return nil
}
