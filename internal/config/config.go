// Package config loads command line settings with Viper. Values come, in
// order of precedence, from flags, CHARTKIT_* environment variables, an
// optional YAML or JSON file and the defaults below.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raykavin/chartkit/pkg/layout"
	"github.com/raykavin/chartkit/pkg/path"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. CHARTKIT_WIDTH.
const EnvPrefix = "CHARTKIT"

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings shared by all chart commands. Keys match the
// flag names.
type Config struct {
	ConfigFile string  `mapstructure:"config"`
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
	Title      string  `mapstructure:"title"`
	Format     string  `mapstructure:"format"`
	Output     string  `mapstructure:"output"`
	Table      bool    `mapstructure:"table"`

	// bar
	Stacked    bool    `mapstructure:"stacked"`
	Grouped    bool    `mapstructure:"grouped"`
	Horizontal bool    `mapstructure:"horizontal"`
	Padding    float64 `mapstructure:"padding"`
	Radius     float64 `mapstructure:"radius"`

	// line
	Curve     string  `mapstructure:"curve"`
	Tension   float64 `mapstructure:"tension"`
	Area      bool    `mapstructure:"area"`
	Histogram bool    `mapstructure:"histogram"`

	// candle
	Symbol     string  `mapstructure:"symbol"`
	Interval   string  `mapstructure:"interval"`
	Limit      int     `mapstructure:"limit"`
	Timeframe  string  `mapstructure:"timeframe"`
	Resample   string  `mapstructure:"resample"`
	Last       string  `mapstructure:"last"`
	BodyRatio  float64 `mapstructure:"body-ratio"`
	HeikinAshi bool    `mapstructure:"heikin-ashi"`
	Volume     float64 `mapstructure:"volume"`
	SMA        []int   `mapstructure:"sma"`
	EMA        []int   `mapstructure:"ema"`
	Bollinger  int     `mapstructure:"bollinger"`

	// pie
	InnerRadius float64 `mapstructure:"inner-radius"`
	PadAngle    float64 `mapstructure:"pad-angle"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Width:     800,
		Height:    400,
		Format:    FormatSVG,
		Padding:   layout.DefaultBandPadding,
		Curve:     string(path.CurveLinear),
		Tension:   path.DefaultTension,
		Interval:  "1h",
		Limit:     100,
		BodyRatio: layout.DefaultBodyRatio,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("format", d.Format)
	v.SetDefault("padding", d.Padding)
	v.SetDefault("curve", d.Curve)
	v.SetDefault("tension", d.Tension)
	v.SetDefault("interval", d.Interval)
	v.SetDefault("limit", d.Limit)
	v.SetDefault("body-ratio", d.BodyRatio)
}

// Load reads the configuration. The file named by the "config" key, when
// set, is read before flags are applied on top of it.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings every command relies on.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g", ErrInvalid, c.Width, c.Height)
	}
	if c.Format != FormatSVG && c.Format != FormatPNG {
		return fmt.Errorf("%w: format %q, want svg or png", ErrInvalid, c.Format)
	}
	if !path.Curve(c.Curve).Valid() {
		return fmt.Errorf("%w: curve %q", ErrInvalid, c.Curve)
	}
	if c.Padding < 0 || c.Padding >= 1 {
		return fmt.Errorf("%w: padding %g, want [0, 1)", ErrInvalid, c.Padding)
	}
	if c.Stacked && c.Grouped {
		return fmt.Errorf("%w: stacked and grouped are exclusive", ErrInvalid)
	}
	return nil
}

// Orientation returns the bar orientation.
func (c Config) Orientation() layout.Orientation {
	if c.Horizontal {
		return layout.Horizontal
	}
	return layout.Vertical
}
