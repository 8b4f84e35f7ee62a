// Package path turns point sequences and shape parameters into vector path
// commands and rectangles.
//
// Every function is pure. Numbers are rounded to three decimals when a path
// is serialized so the same input always yields the same string.
package path

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path command letter.
type Op byte

const (
	OpMove        Op = 'M'
	OpLine        Op = 'L'
	OpHorizontal  Op = 'H'
	OpVertical    Op = 'V'
	OpCubic       Op = 'C'
	OpSmoothCubic Op = 'S'
	OpQuad        Op = 'Q'
	OpSmoothQuad  Op = 'T'
	OpArc         Op = 'A'
	OpClose       Op = 'Z'
)

// arity is the number of arguments each command carries.
var arity = map[Op]int{
	OpMove:        2,
	OpLine:        2,
	OpHorizontal:  1,
	OpVertical:    1,
	OpCubic:       6,
	OpSmoothCubic: 4,
	OpQuad:        4,
	OpSmoothQuad:  2,
	OpArc:         7,
	OpClose:       0,
}

// Command is a single path command. Relative commands are written in lower
// case and their coordinates are offsets from the current point.
type Command struct {
	Op       Op
	Relative bool
	Args     []float64
}

// Letter returns the command letter as written in a path string.
func (c Command) Letter() byte {
	if c.Relative && c.Op != OpClose {
		return byte(c.Op) + ('a' - 'A')
	}
	return byte(c.Op)
}

// String writes the command with rounded arguments, e.g. "L 10 20.5".
func (c Command) String() string {
	var sb strings.Builder
	c.write(&sb)
	return sb.String()
}

func (c Command) write(sb *strings.Builder) {
	sb.WriteByte(c.Letter())
	for _, v := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(v))
	}
}

// Path is an ordered list of commands. A non-empty path always starts with a
// move.
type Path []Command

// String serializes the path with single spaces between tokens.
func (p Path) String() string {
	var sb strings.Builder
	for i, c := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.write(&sb)
	}
	return sb.String()
}

// MarshalText encodes the path as its string form.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a path string.
func (p *Path) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	return p.add(OpMove, false, x, y)
}

// LineTo draws a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	return p.add(OpLine, false, x, y)
}

// CubicTo draws a cubic Bézier curve to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	return p.add(OpCubic, false, c1x, c1y, c2x, c2y, x, y)
}

// QuadTo draws a quadratic Bézier curve to (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	return p.add(OpQuad, false, cx, cy, x, y)
}

// ArcTo draws an elliptical arc to (x, y).
func (p *Path) ArcTo(rx, ry, rotation float64, large, sweep bool, x, y float64) *Path {
	return p.add(OpArc, false, rx, ry, rotation, flag(large), flag(sweep), x, y)
}

// RelHorizontal draws a horizontal line dx units long.
func (p *Path) RelHorizontal(dx float64) *Path {
	return p.add(OpHorizontal, true, dx)
}

// RelVertical draws a vertical line dy units long.
func (p *Path) RelVertical(dy float64) *Path {
	return p.add(OpVertical, true, dy)
}

// RelArcTo draws an elliptical arc ending dx, dy away from the current point.
func (p *Path) RelArcTo(rx, ry, rotation float64, large, sweep bool, dx, dy float64) *Path {
	return p.add(OpArc, true, rx, ry, rotation, flag(large), flag(sweep), dx, dy)
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	return p.add(OpClose, false)
}

func (p *Path) add(op Op, relative bool, args ...float64) *Path {
	*p = append(*p, Command{Op: op, Relative: relative, Args: args})
	return p
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Round rounds half up to three decimals and never returns negative zero.
func Round(v float64) float64 {
	r := math.Floor(v*1000+0.5) / 1000
	if r == 0 {
		return 0
	}
	return r
}

// FormatNumber rounds v and writes it without trailing zeros or exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(Round(v), 'f', -1, 64)
}
