package layout

import (
	"github.com/raykavin/chartkit/pkg/indicator"
	"github.com/raykavin/chartkit/pkg/logger"
	"github.com/raykavin/chartkit/pkg/path"
)

// Orientation is the direction bars grow in.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Default layout settings.
const (
	DefaultBandPadding  = 0.2
	DefaultGroupPadding = 0.1
	DefaultLinePadding  = 0.1
	DefaultBodyRatio    = 0.7
	DefaultInnerRadius  = 0
)

// Option configures a layout computation.
type Option func(*config)

type config struct {
	log logger.Logger

	// bar
	orientation  Orientation
	grouped      bool
	stacked      bool
	bandPadding  float64
	groupPadding float64

	// line
	curve    path.Curve
	tension  float64
	showArea bool

	// candlestick
	bodyRatio   float64
	heikinAshi  bool
	volumeRatio float64
	indicators  []indicator.Indicator

	// pie
	innerRadius float64
	padAngle    float64
	startAngle  float64
}

func newConfig(opts []Option) *config {
	cfg := &config{
		log:          logger.Nop(),
		orientation:  Vertical,
		bandPadding:  DefaultBandPadding,
		groupPadding: DefaultGroupPadding,
		curve:        path.CurveLinear,
		tension:      path.DefaultTension,
		bodyRatio:    DefaultBodyRatio,
		innerRadius:  DefaultInnerRadius,
		startAngle:   path.DefaultStartAngle,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used to report extents and skipped points.
// A nil logger disables logging.
func WithLogger(log logger.Logger) Option {
	return func(c *config) {
		if log == nil {
			log = logger.Nop()
		}
		c.log = log
	}
}

// WithOrientation sets the direction of bars, vertical by default.
func WithOrientation(o Orientation) Option {
	return func(c *config) {
		c.orientation = o
	}
}

// WithGrouped places the bars of each series side by side within a band.
func WithGrouped(grouped bool) Option {
	return func(c *config) {
		c.grouped = grouped
	}
}

// WithStacked stacks the bars of every series on top of each other.
func WithStacked(stacked bool) Option {
	return func(c *config) {
		c.stacked = stacked
	}
}

// WithBandPadding sets the gap between category bands as a fraction of a step.
func WithBandPadding(padding float64) Option {
	return func(c *config) {
		c.bandPadding = padding
	}
}

// WithGroupPadding sets the gap between grouped bars as a fraction of the bandwidth.
func WithGroupPadding(padding float64) Option {
	return func(c *config) {
		c.groupPadding = padding
	}
}

// WithCurve sets the curve joining line points.
func WithCurve(curve path.Curve) Option {
	return func(c *config) {
		c.curve = curve
	}
}

// WithTension sets the cardinal curve tension.
func WithTension(tension float64) Option {
	return func(c *config) {
		c.tension = tension
	}
}

// WithArea also produces an area path closed to the bottom of the plot.
func WithArea(show bool) Option {
	return func(c *config) {
		c.showArea = show
	}
}

// WithBodyRatio sets the candle body width as a fraction of the bandwidth.
func WithBodyRatio(ratio float64) Option {
	return func(c *config) {
		c.bodyRatio = ratio
	}
}

// WithHeikinAshi draws Heikin-Ashi candles instead of the raw ones.
func WithHeikinAshi(enabled bool) Option {
	return func(c *config) {
		c.heikinAshi = enabled
	}
}

// WithVolume reserves the bottom fraction of the plot for volume bars.
func WithVolume(ratio float64) Option {
	return func(c *config) {
		c.volumeRatio = ratio
	}
}

// WithIndicators adds overlays drawn in the price scale.
func WithIndicators(indicators ...indicator.Indicator) Option {
	return func(c *config) {
		c.indicators = append(c.indicators, indicators...)
	}
}

// WithInnerRadius turns a pie into a donut with the given ratio of the outer
// radius.
func WithInnerRadius(ratio float64) Option {
	return func(c *config) {
		c.innerRadius = ratio
	}
}

// WithPadAngle sets the angular gap between pie slices in radians.
func WithPadAngle(angle float64) Option {
	return func(c *config) {
		c.padAngle = angle
	}
}

// WithStartAngle sets where the first pie slice starts in radians.
func WithStartAngle(angle float64) Option {
	return func(c *config) {
		c.startAngle = angle
	}
}
