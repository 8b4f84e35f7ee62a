package core

// Intent is a semantic colour role for a series.
type Intent string

const (
	IntentPrimary   Intent = "primary"
	IntentSecondary Intent = "secondary"
	IntentSuccess   Intent = "success"
	IntentWarning   Intent = "warning"
	IntentDanger    Intent = "danger"
	IntentInfo      Intent = "info"
)

var intentColors = map[Intent]string{
	IntentPrimary:   "#2563eb",
	IntentSecondary: "#64748b",
	IntentSuccess:   "#16a34a",
	IntentWarning:   "#ca8a04",
	IntentDanger:    "#dc2626",
	IntentInfo:      "#0891b2",
}

// Palette is the rotating colour list for series without colour or intent.
var Palette = []string{
	"#2563eb", // blue
	"#16a34a", // green
	"#dc2626", // red
	"#ca8a04", // yellow
	"#9333ea", // purple
	"#0891b2", // cyan
	"#ea580c", // orange
	"#db2777", // pink
}

// Color returns the colour of the intent, or "" if the intent is unknown.
func (i Intent) Color() string {
	return intentColors[i]
}

// SeriesColor resolves the colour of the series at index: an explicit colour
// wins, then a known intent, then the palette.
func SeriesColor(color string, intent Intent, index int) string {
	if color != "" {
		return color
	}
	if c := intent.Color(); c != "" {
		return c
	}
	if index < 0 {
		index = -index
	}
	return Palette[index%len(Palette)]
}
