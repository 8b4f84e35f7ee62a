package chartkit

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/raykavin/chartkit/pkg/logger"
	"github.com/raykavin/chartkit/pkg/logger/zerolog"
)

const (
	envLogLevel      = "CHARTKIT_LOG_LEVEL"
	envLogTimeFormat = "CHARTKIT_LOG_TIME_FORMAT"
	envLogColor      = "CHARTKIT_LOG_COLOR"
	envLogJSON       = "CHARTKIT_LOG_JSON"

	// envNoColor follows the no-color.org convention and wins over envLogColor.
	envNoColor = "NO_COLOR"
)

// logSettings drive the construction of DefaultLog.
type logSettings struct {
	Level      string
	TimeFormat string
	Colored    bool
	JSON       bool
}

func init() {
	settings, err := logSettingsFromEnv(os.LookupEnv)
	if err != nil {
		panic(err)
	}

	DefaultLog, err = newLogger(settings)
	if err != nil {
		panic(err)
	}
}

// logSettingsFromEnv starts from info level, coloured console output and
// overrides each field whose variable is set and not empty.
func logSettingsFromEnv(lookup func(string) (string, bool)) (logSettings, error) {
	settings := logSettings{
		Level:      "info",
		TimeFormat: time.DateTime,
		Colored:    true,
	}

	get := func(key string) (string, bool) {
		value, ok := lookup(key)
		return value, ok && value != ""
	}

	if value, ok := get(envLogLevel); ok {
		settings.Level = value
	}
	if value, ok := get(envLogTimeFormat); ok {
		settings.TimeFormat = value
	}

	for key, target := range map[string]*bool{envLogColor: &settings.Colored, envLogJSON: &settings.JSON} {
		value, ok := get(key)
		if !ok {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return settings, fmt.Errorf("%s: %w", key, err)
		}
		*target = parsed
	}

	if _, ok := lookup(envNoColor); ok {
		settings.Colored = false
	}
	return settings, nil
}

func newLogger(settings logSettings) (logger.Logger, error) {
	log, err := zerolog.New(settings.Level, settings.TimeFormat, settings.Colored, settings.JSON)
	if err != nil {
		return nil, err
	}
	return zerolog.NewAdapter(log), nil
}
