package layout

import (
	"math"

	"github.com/raykavin/chartkit/pkg/core"
	"github.com/raykavin/chartkit/pkg/path"
)

// LeaderLength is how far a slice leader line reaches past the outer radius.
const LeaderLength = 12

// Slice is one positioned pie segment.
type Slice struct {
	Index    int            `json:"index"`
	Label    string         `json:"label"`
	Color    string         `json:"color"`
	Angle    path.ArcAngle  `json:"angle"`
	Path     path.Path      `json:"path"`
	Centroid path.Centroid  `json:"centroid"`
	Leader   path.Path      `json:"leader"`
	Point    core.DataPoint `json:"-"`
}

// PieLayout is the result of ComputePieLayout.
type PieLayout struct {
	Slices      []Slice    `json:"slices"`
	Center      core.Point `json:"center"`
	InnerRadius float64    `json:"innerRadius"`
	OuterRadius float64    `json:"outerRadius"`
	Total       float64    `json:"total"`
}

// ComputePieLayout turns the points of one series into slices around the
// centre of the plot. Slice sizes follow the absolute values; the outer
// radius fills the shorter side and WithInnerRadius makes a donut.
func ComputePieLayout(series core.DataSeries, size Size, opts ...Option) PieLayout {
	cfg := newConfig(opts)

	cx, cy := size.Width/2, size.Height/2
	outer := math.Max(0, math.Min(size.Width, size.Height)/2)
	inner := outer * math.Max(0, math.Min(cfg.innerRadius, 1))

	values := series.YValues()
	angles := path.ArcAngles(values, cfg.startAngle)

	out := PieLayout{
		Slices:      make([]Slice, len(angles)),
		Center:      core.Pt(cx, cy),
		InnerRadius: inner,
		OuterRadius: outer,
	}
	for _, v := range values {
		out.Total += math.Abs(v)
	}

	cfg.log.WithFields(map[string]any{
		"slices": len(angles),
		"total":  out.Total,
		"radius": outer,
	}).Debug("pie layout")

	for i, a := range angles {
		p := series.Data[i]
		arc := path.ArcConfig{
			StartAngle:  a.StartAngle,
			EndAngle:    a.EndAngle,
			InnerRadius: inner,
			OuterRadius: outer,
			PadAngle:    cfg.padAngle,
		}
		centroid := path.ArcCentroid(cx, cy, arc)

		label := p.Label
		if label == "" {
			label = p.X.String()
		}
		color := p.Color
		if color == "" {
			color = core.SeriesColor("", "", i)
		}

		out.Slices[i] = Slice{
			Index:    i,
			Label:    label,
			Color:    color,
			Angle:    a,
			Path:     path.Arc(cx, cy, arc),
			Centroid: centroid,
			Leader:   path.RadialLine(cx, cy, centroid.Angle, outer, outer+LeaderLength),
			Point:    p,
		}
	}

	return out
}
