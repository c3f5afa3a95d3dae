// Package render draws the timeline road as a standalone SVG document.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"portfolio/domain/canvas"
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

// Node geometry in content units.
const (
	CardWidth    = 200
	CircleRadius = 44
	ChildWidth   = 168
	RoadWidth    = 28
	labelMaxLen  = 28
)

const (
	colorBackdrop = "#0f172a"
	colorRoad     = "#334155"
	colorLane     = "#e2e8f0"
	colorText     = "#f8fafc"
	colorStroke   = "#1e293b"
)

// tailwindColors resolves the stops used by the palette to hex values.
var tailwindColors = map[string]string{
	"emerald-500": "#10b981",
	"emerald-600": "#059669",
	"teal-600":    "#0d9488",
	"cyan-500":    "#06b6d4",
	"blue-500":    "#3b82f6",
	"blue-600":    "#2563eb",
	"indigo-600":  "#4f46e5",
	"violet-500":  "#8b5cf6",
	"purple-600":  "#9333ea",
	"amber-500":   "#f59e0b",
	"orange-600":  "#ea580c",
	"rose-500":    "#f43f5e",
	"pink-600":    "#db2777",
	"green-500":   "#22c55e",
	"gray-500":    "#6b7280",
	"gray-600":    "#4b5563",
}

// Labels maps milestone ids (children included) to the text drawn on them.
func Labels(milestones []entities.Milestone) map[string]string {
	out := make(map[string]string)
	for _, m := range milestones {
		out[m.ID] = m.Role
		for _, c := range m.Children {
			out[c.ID] = c.Role
		}
	}
	return out
}

// Road writes an SVG of the layout: the road through every node in order,
// then the nodes themselves with their children stacked below cards.
func Road(w io.Writer, layout canvas.Layout, labels map[string]string) {
	width := int(math.Ceil(layout.Extent.Width))
	height := int(math.Ceil(layout.Extent.Height))

	s := svg.New(w)
	s.Start(width, height)
	s.Title("Career timeline")

	s.Def()
	for i, n := range layout.Nodes {
		gradientDef(s, nodeGradientID(i), n.Gradient)
		for j, c := range n.Children {
			gradientDef(s, childGradientID(i, j), c.Gradient)
		}
	}
	s.DefEnd()

	s.Rect(0, 0, width, height, "fill:"+colorBackdrop)

	if !layout.Path.IsEmpty() {
		d := layout.Path.String()
		s.Path(d, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linecap:round;stroke-linejoin:round", colorRoad, RoadWidth))
		s.Path(d, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2;stroke-dasharray:12,10", colorLane))
	}

	for i, n := range layout.Nodes {
		x, y := round(n.Position.X()), round(n.Position.Y())
		s.Gid("node-" + n.ID)
		if n.Shape == valueobjects.ShapeCircle {
			s.Circle(x, y, CircleRadius, nodeStyle(nodeGradientID(i)))
			label(s, x, y+CircleRadius+18, labels[n.ID])
		} else {
			h := int(canvas.NodeCardHeight)
			s.Roundrect(x-CardWidth/2, y-h/2, CardWidth, h, 12, 12, nodeStyle(nodeGradientID(i)))
			label(s, x, y+5, labels[n.ID])
			for j, c := range n.Children {
				cp := canvas.ChildPosition(n.Position, c)
				cx, cy := round(cp.X()), round(cp.Y())
				ch := int(canvas.ChildCardHeight)
				s.Roundrect(cx-ChildWidth/2, cy-ch/2, ChildWidth, ch, 10, 10, nodeStyle(childGradientID(i, j)))
				label(s, cx, cy+5, labels[c.ID])
			}
		}
		s.Gend()
	}

	s.End()
}

func gradientDef(s *svg.SVG, id string, g valueobjects.Gradient) {
	from, to := GradientStops(g)
	s.LinearGradient(id, 0, 0, 100, 100, []svg.Offcolor{
		{Offset: 0, Color: from, Opacity: 1},
		{Offset: 100, Color: to, Opacity: 1},
	})
}

// GradientStops converts a "from-<c> to-<c>" gradient into two hex colours.
// Unknown stops fall back to the gray preset.
func GradientStops(g valueobjects.Gradient) (from, to string) {
	from, to = tailwindColors["gray-500"], tailwindColors["gray-600"]
	for _, part := range strings.Fields(string(g)) {
		switch {
		case strings.HasPrefix(part, "from-"):
			if hex, ok := tailwindColors[strings.TrimPrefix(part, "from-")]; ok {
				from = hex
			}
		case strings.HasPrefix(part, "to-"):
			if hex, ok := tailwindColors[strings.TrimPrefix(part, "to-")]; ok {
				to = hex
			}
		}
	}
	return from, to
}

func label(s *svg.SVG, x, y int, text string) {
	if text == "" {
		return
	}
	runes := []rune(text)
	if len(runes) > labelMaxLen {
		text = string(runes[:labelMaxLen-1]) + "…"
	}
	s.Text(x, y, text, fmt.Sprintf("fill:%s;font-size:14px;font-family:sans-serif;text-anchor:middle", colorText))
}

func nodeStyle(gradientID string) string {
	return fmt.Sprintf("fill:url(#%s);stroke:%s;stroke-width:2", gradientID, colorStroke)
}

func nodeGradientID(i int) string { return fmt.Sprintf("g%d", i) }
func childGradientID(i, j int) string { return fmt.Sprintf("g%d-%d", i, j) }

func round(v float64) int { return int(math.Round(v)) }
