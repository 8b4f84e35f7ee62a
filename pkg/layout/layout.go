// Package layout assembles renderable chart geometry from series data.
//
// Each Compute function is a single pass over its input: it builds scales
// from the data extents, maps every point through them and returns fresh
// values. Nothing is cached between calls.
package layout

import (
	"github.com/raykavin/chartkit/pkg/core"

	"github.com/StudioSol/set"
)

// Size is the pixel size of the plot area.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// categories returns the union of category keys across series in the order
// they are first seen.
func categories(series []core.DataSeries) []string {
	seen := set.NewLinkedHashSetString()
	for _, s := range series {
		for _, p := range s.Data {
			seen.Add(p.X.String())
		}
	}

	keys := []string{}
	for key := range seen.Iter() {
		keys = append(keys, key)
	}
	return keys
}

// yValues flattens the y values of every series.
func yValues(series []core.DataSeries) []float64 {
	var values []float64
	for _, s := range series {
		values = append(values, s.YValues()...)
	}
	return values
}
