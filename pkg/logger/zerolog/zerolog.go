// Package zerolog adapts github.com/rs/zerolog to logger.Logger.
package zerolog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/goterm/term"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds a zerolog logger writing to stderr, so charts written to
// stdout stay clean. With jsonFormat set records are plain JSON lines;
// otherwise a console writer prints coloured level tags.
func New(level, timeLayout string, colored, jsonFormat bool) (*zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, level, timeLayout, colored, jsonFormat)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(out io.Writer, level, timeLayout string, colored, jsonFormat bool) (*zerolog.Logger, error) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var w io.Writer = out
	if !jsonFormat {
		w = zerolog.ConsoleWriter{
			Out:           out,
			NoColor:       !colored,
			TimeFormat:    timeLayout,
			FormatLevel:   formatLevel(colored),
			FormatMessage: formatMessage,
			FormatCaller:  formatCaller,
			FormatTimestamp: func(i any) string {
				return formatTimestamp(i, timeLayout, colored)
			},
		}
	}

	logger := zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		CallerWithSkipFrameCount(3).
		Logger()

	return &logger, nil
}

var levelTags = map[string]struct {
	tag   string
	color func(string, ...any) string
}{
	zerolog.LevelTraceValue: {"[TRC]", term.Cyanf},
	zerolog.LevelDebugValue: {"[DBG]", term.Cyanf},
	zerolog.LevelInfoValue:  {"[INF]", term.Greenf},
	zerolog.LevelWarnValue:  {"[WAR]", term.Yellowf},
	zerolog.LevelErrorValue: {"[ERR]", term.Redf},
	zerolog.LevelFatalValue: {"[FTL]", term.Redf},
	zerolog.LevelPanicValue: {"[PAN]", term.Redf},
}

func formatLevel(colored bool) zerolog.Formatter {
	return func(i any) string {
		level, _ := i.(string)
		entry, ok := levelTags[level]
		if !ok {
			return "[UNK]"
		}
		if !colored {
			return entry.tag
		}
		return entry.color("%s", entry.tag)
	}
}

func formatMessage(i any) string {
	const width = 60

	msg, ok := i.(string)
	if !ok || msg == "" {
		return ">"
	}
	if len(msg) < width {
		msg += strings.Repeat(" ", width-len(msg))
	}

	return "> " + msg
}

// formatCaller prints file:line padded to a fixed width.
func formatCaller(i any) string {
	const fileWidth, lineWidth = 16, 4

	caller, ok := i.(string)
	if !ok || caller == "" {
		return ""
	}

	file, line, found := strings.Cut(filepath.Base(caller), ":")
	if !found {
		return caller
	}
	if len(file) > fileWidth {
		file = file[:fileWidth]
	}
	if len(line) > lineWidth {
		line = line[len(line)-lineWidth:]
	}

	return fmt.Sprintf("[%-*s:%*s]", fileWidth, file, lineWidth, line)
}

func formatTimestamp(i any, layout string, colored bool) string {
	s := fmt.Sprint(i)
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		s = ts.In(time.Local).Format(layout)
	}

	if !colored {
		return "[" + s + "]"
	}
	return term.Cyanf("[%s]", s)
}
