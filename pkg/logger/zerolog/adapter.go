package zerolog

import (
	"fmt"

	"github.com/raykavin/chartkit/pkg/logger"

	"github.com/rs/zerolog"
)

// Adapter exposes a zerolog logger as a logger.Logger.
type Adapter struct {
	*zerolog.Logger
}

// NewAdapter wraps l.
func NewAdapter(l *zerolog.Logger) *Adapter {
	return &Adapter{l}
}

var _ logger.Logger = (*Adapter)(nil)

// GetLevel returns the logger's minimum level.
func (a *Adapter) GetLevel() logger.Level {
	return fromZerolog(a.Logger.GetLevel())
}

// SetLevel changes the minimum level of this logger.
func (a *Adapter) SetLevel(level logger.Level) {
	l := a.Logger.Level(toZerolog(level))
	a.Logger = &l
}

func (a *Adapter) WithError(err error) logger.Logger {
	l := a.With().Err(err).Logger()
	return &Adapter{&l}
}

func (a *Adapter) WithField(key string, value any) logger.Logger {
	l := a.With().Interface(key, value).Logger()
	return &Adapter{&l}
}

func (a *Adapter) WithFields(fields map[string]any) logger.Logger {
	l := a.With().Fields(fields).Logger()
	return &Adapter{&l}
}

func (a *Adapter) Print(args ...any) { a.Logger.Print(args...) }
func (a *Adapter) Trace(args ...any) { a.Logger.Trace().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Debug(args ...any) { a.Logger.Debug().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Info(args ...any) { a.Logger.Info().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Warn(args ...any) { a.Logger.Warn().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Error(args ...any) { a.Logger.Error().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Fatal(args ...any) { a.Logger.Fatal().Msg(fmt.Sprint(args...)) }
func (a *Adapter) Panic(args ...any) { a.Logger.Panic().Msg(fmt.Sprint(args...)) }

func (a *Adapter) Printf(format string, args ...any) { a.Logger.Printf(format, args...) }
func (a *Adapter) Tracef(format string, args ...any) { a.Logger.Trace().Msgf(format, args...) }
func (a *Adapter) Debugf(format string, args ...any) { a.Logger.Debug().Msgf(format, args...) }
func (a *Adapter) Infof(format string, args ...any) { a.Logger.Info().Msgf(format, args...) }
func (a *Adapter) Warnf(format string, args ...any) { a.Logger.Warn().Msgf(format, args...) }
func (a *Adapter) Errorf(format string, args ...any) { a.Logger.Error().Msgf(format, args...) }
func (a *Adapter) Fatalf(format string, args ...any) { a.Logger.Fatal().Msgf(format, args...) }
func (a *Adapter) Panicf(format string, args ...any) { a.Logger.Panic().Msgf(format, args...) }

var levels = []struct {
	ours   logger.Level
	theirs zerolog.Level
}{
	{logger.Disabled, zerolog.Disabled},
	{logger.TraceLevel, zerolog.TraceLevel},
	{logger.DebugLevel, zerolog.DebugLevel},
	{logger.InfoLevel, zerolog.InfoLevel},
	{logger.WarnLevel, zerolog.WarnLevel},
	{logger.ErrorLevel, zerolog.ErrorLevel},
	{logger.FatalLevel, zerolog.FatalLevel},
	{logger.PanicLevel, zerolog.PanicLevel},
	{logger.NoLevel, zerolog.NoLevel},
}

func fromZerolog(level zerolog.Level) logger.Level {
	for _, l := range levels {
		if l.theirs == level {
			return l.ours
		}
	}
	return logger.NoLevel
}

func toZerolog(level logger.Level) zerolog.Level {
	for _, l := range levels {
		if l.ours == level {
			return l.theirs
		}
	}
	return zerolog.NoLevel
}
