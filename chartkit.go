// Package chartkit computes chart geometry (scales, SVG path strings, bar
// rectangles, candlestick and pie shapes) from plain data series.
//
// The geometry lives in the pkg/ subpackages: scale, path, interpolate and
// layout are pure functions; axis, feed, render and report sit at the
// boundary and read input or write output.
package chartkit

import "github.com/raykavin/chartkit/pkg/logger"

// DefaultLog is the logger shared by the command line tools. It is set up
// from the environment when the package loads.
var DefaultLog logger.Logger
