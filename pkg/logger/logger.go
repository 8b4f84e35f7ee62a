// Package logger defines the leveled logger used across chartkit.
package logger

// Level is a logging severity.
type Level int8

const (
	Disabled   Level = -1   // Disabled turns logging off.
	TraceLevel Level = iota // TraceLevel is for per-point detail.
	DebugLevel              // DebugLevel is for computed scales and extents.
	InfoLevel               // InfoLevel is for progress messages.
	WarnLevel               // WarnLevel is for skipped or clamped input.
	ErrorLevel              // ErrorLevel is for failed operations.
	FatalLevel              // FatalLevel logs and exits.
	PanicLevel              // PanicLevel logs and panics.
	NoLevel                 // NoLevel logs without a level.
)

// Logger is a structured, leveled logger.
type Logger interface {
	// Derived loggers carrying extra context.
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger

	Print(args ...any)
	Trace(args ...any)
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Fatal(args ...any)
	Panic(args ...any)

	Printf(format string, args ...any)
	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
	Panicf(format string, args ...any)

	SetLevel(level Level)
	GetLevel() Level
}
