// Package canvas holds the interactive node canvas: default layouts for the
// timeline and strategy views, the connecting path, the viewport transform and
// the pointer gesture state machine. Nothing here knows about HTTP or storage.
package canvas

import (
	"math"

	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

// Timeline geometry, in content units.
const (
	SegmentWidth     = 280.0
	TimelineHeight   = 320.0
	MinTimelineWidth = 600.0
	ContentPadding   = 100.0

	topBand    = 0.18
	centerBand = 0.5
	bottomBand = 0.82
)

// Size is a width/height pair in content units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Band is the vertical lane a default-placed timeline node sits in.
type Band string

const (
	BandCenter Band = "center"
	BandTop    Band = "top"
	BandBottom Band = "bottom"
)

// TimelineFrame is the base canvas for count nodes: one segment per node,
// never narrower than MinTimelineWidth.
func TimelineFrame(count int) Size {
	return Size{
		Width:  math.Max(MinTimelineWidth, float64(count)*SegmentWidth),
		Height: TimelineHeight,
	}
}

// TimelineBand returns the lane of node index. The first node is centred,
// then nodes alternate top and bottom.
func TimelineBand(index int) Band {
	switch {
	case index == 0:
		return BandCenter
	case index%2 == 1:
		return BandTop
	default:
		return BandBottom
	}
}

// TimelineDefaultPosition places node index of count on a frame of the given
// size. It depends on nothing but its arguments. A lone node sits in the
// centre band of the first segment, where it stays when a second node is
// added. An index outside [0, count) lands in the centre of the frame.
func TimelineDefaultPosition(index, count int, frame Size) valueobjects.Position {
	if index < 0 || index >= count {
		return valueobjects.At(frame.Width/2, frame.Height/2)
	}

	x := (float64(index) + 0.5) * SegmentWidth
	switch TimelineBand(index) {
	case BandCenter:
		return valueobjects.At(x, frame.Height*centerBand)
	case BandTop:
		return valueobjects.At(x, frame.Height*topBand)
	default:
		return valueobjects.At(x, frame.Height*bottomBand)
	}
}

// ContentExtent is the scrollable area needed to show every point: the
// larger of the base frame and the furthest point, plus padding.
func ContentExtent(base Size, points []valueobjects.Position, padding float64) Size {
	w, h := base.Width, base.Height
	for _, p := range points {
		w = math.Max(w, p.X())
		h = math.Max(h, p.Y())
	}
	return Size{Width: w + padding, Height: h + padding}
}

// NodeLayout is the resolved placement and colour of one top-level node.
type NodeLayout struct {
	ID       string                `json:"id"`
	Position valueobjects.Position `json:"position"`
	Gradient valueobjects.Gradient `json:"gradient"`
	Shape    valueobjects.Shape    `json:"shape"`
	Manual   bool                  `json:"manual"`
	Children []ChildLayout         `json:"children,omitempty"`
}

// Layout is the derived projection of a node collection onto the canvas.
type Layout struct {
	Nodes  []NodeLayout `json:"nodes"`
	Frame  Size         `json:"frame"`
	Extent Size         `json:"extent"`
	Path   Path         `json:"path"`
}

// Points returns the node positions in collection order.
func (l Layout) Points() []valueobjects.Position {
	out := make([]valueobjects.Position, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = n.Position
	}
	return out
}

// Position looks up the resolved position of a node.
func (l Layout) Position(id string) (valueobjects.Position, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n.Position, true
		}
	}
	return valueobjects.Position{}, false
}

// ComputeTimelineLayout resolves every milestone's position (manual override
// first, default otherwise) and colour, then derives the extent and path.
func ComputeTimelineLayout(milestones []entities.Milestone) Layout {
	frame := TimelineFrame(len(milestones))
	nodes := make([]NodeLayout, len(milestones))
	for i, m := range milestones {
		pos := TimelineDefaultPosition(i, len(milestones), frame)
		if m.Position != nil {
			pos = *m.Position
		}
		nodes[i] = NodeLayout{
			ID:       m.ID,
			Position: pos,
			Gradient: m.Gradient(),
			Shape:    m.DisplayShape(),
			Manual:   m.Position != nil,
			Children: ChildLayouts(m),
		}
	}

	l := Layout{Nodes: nodes, Frame: frame}
	points := l.Points()
	l.Extent = ContentExtent(frame, points, ContentPadding)
	l.Path = BuildPath(points)
	return l
}
