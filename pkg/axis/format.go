package axis

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormatter renders a tick value.
type NumberFormatter interface {
	Format(v float64) string
}

// DefaultNumberFormatter groups thousands the English way and keeps at most
// two decimals.
var DefaultNumberFormatter = NewNumberFormatter(language.English, 2)

type numberFormatter struct {
	printer  *message.Printer
	decimals int
}

// NewNumberFormatter formats numbers for the given language with at most
// decimals fraction digits.
func NewNumberFormatter(tag language.Tag, decimals int) NumberFormatter {
	return numberFormatter{printer: message.NewPrinter(tag), decimals: max(decimals, 0)}
}

func (f numberFormatter) Format(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(f.decimals)))
}

// Time label layouts by interval name.
var timeLayouts = map[string]string{
	"second": "15:04:05",
	"minute": "15:04",
	"hour":   "15:04",
	"day":    "Jan 2",
	"week":   "Jan 2",
	"month":  "Jan 2006",
	"year":   "2006",
}

// FormatTime labels t for a calendar interval. An unknown or empty interval
// picks a layout from the finest non-zero component of t.
func FormatTime(t time.Time, interval string) string {
	if layout, ok := timeLayouts[interval]; ok {
		return t.Format(layout)
	}
	return t.Format(timeLayouts[detectInterval(t)])
}

func detectInterval(t time.Time) string {
	switch {
	case t.Second() != 0 || t.Nanosecond() != 0:
		return "second"
	case t.Minute() != 0 || t.Hour() != 0:
		return "minute"
	case t.Day() != 1:
		return "day"
	case t.Month() != time.January:
		return "month"
	default:
		return "year"
	}
}
