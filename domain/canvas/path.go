package canvas

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"portfolio/domain/core/valueobjects"
)

// Op is a path drawing command.
type Op byte

const (
	MoveTo Op = 'M'
	LineTo Op = 'L'
)

// Command is one step of a path.
type Command struct {
	Op    Op
	Point valueobjects.Position
}

// Path is a polyline through node positions in collection order. It is always
// derived from the current positions and never stored.
type Path struct {
	Commands []Command
}

// BuildPath moves to the first point and draws a line to every following
// point. No points gives an empty path; one point gives a bare move.
func BuildPath(points []valueobjects.Position) Path {
	if len(points) == 0 {
		return Path{}
	}
	cmds := make([]Command, 0, len(points))
	cmds = append(cmds, Command{Op: MoveTo, Point: points[0]})
	for _, p := range points[1:] {
		cmds = append(cmds, Command{Op: LineTo, Point: p})
	}
	return Path{Commands: cmds}
}

// IsEmpty reports whether the path has no commands.
func (p Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Segments returns the number of drawn line segments.
func (p Path) Segments() int {
	if len(p.Commands) < 2 {
		return 0
	}
	return len(p.Commands) - 1
}

// Segment returns the endpoints of line segment i, counting from zero.
func (p Path) Segment(i int) (from, to valueobjects.Position, ok bool) {
	if i < 0 || i >= p.Segments() {
		return from, to, false
	}
	return p.Commands[i].Point, p.Commands[i+1].Point, true
}

// String renders SVG path data, e.g. "M 140 160 L 420 57.6".
func (p Path) String() string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		b.WriteByte(' ')
		b.WriteString(formatCoord(c.Point.X()))
		b.WriteByte(' ')
		b.WriteString(formatCoord(c.Point.Y()))
	}
	return b.String()
}

// MarshalJSON encodes the path as its SVG path data string.
func (p Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
