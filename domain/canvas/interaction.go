package canvas

import (
	"portfolio/domain/core/valueobjects"
)

// DragThreshold is how far, in screen pixels, the pointer must travel from
// where it went down before a node press counts as a drag instead of a click.
const DragThreshold = 5.0

// Mode is the state of the pointer gesture machine.
type Mode int

const (
	Idle Mode = iota
	Panning
	DraggingNode
)

func (m Mode) String() string {
	switch m {
	case Panning:
		return "panning"
	case DraggingNode:
		return "dragging"
	default:
		return "idle"
	}
}

// TargetKind says what the pointer went down on.
type TargetKind int

const (
	TargetBackground TargetKind = iota
	TargetNode
	TargetChild
	TargetControl
)

// Target identifies the element under the pointer. For a child, NodeID is
// the parent that gets dragged and ChildID the card that gets toggled on click.
// Index addresses strategy cards, which have no ids.
type Target struct {
	Kind    TargetKind
	NodeID  string
	ChildID string
	Index   int
}

// OnBackground targets the empty canvas.
func OnBackground() Target { return Target{Kind: TargetBackground} }

// OnNode targets a top-level node.
func OnNode(id string) Target { return Target{Kind: TargetNode, NodeID: id} }

// OnChild targets a child card nested under parentID.
func OnChild(parentID, childID string) Target {
	return Target{Kind: TargetChild, NodeID: parentID, ChildID: childID}
}

// OnCard targets strategy card i.
func OnCard(i int) Target { return Target{Kind: TargetNode, Index: i} }

// OnControl targets a button or other control; presses on it never start a gesture.
func OnControl() Target { return Target{Kind: TargetControl} }

// ClickID is the id a click on this target toggles.
func (t Target) ClickID() string {
	if t.Kind == TargetChild {
		return t.ChildID
	}
	return t.NodeID
}

// Bounds limits where a dragged node may go. Max is only enforced when set.
type Bounds struct {
	Min    valueobjects.Position
	Max    valueobjects.Position
	HasMax bool
}

// LowerBound only keeps nodes at or above min.
func LowerBound(min valueobjects.Position) Bounds {
	return Bounds{Min: min}
}

// Bounded keeps nodes inside [min, max].
func Bounded(min, max valueobjects.Position) Bounds {
	return Bounds{Min: min, Max: max, HasMax: true}
}

// Clamp pulls p inside the bounds.
func (b Bounds) Clamp(p valueobjects.Position) valueobjects.Position {
	p = p.ClampMin(b.Min)
	if b.HasMax {
		p = p.ClampMax(b.Max)
	}
	return p
}

// Step is what a pointer move asks the owning canvas to apply. At most one
// of Pan and Node is set.
type Step struct {
	Pan  *valueobjects.Position
	Node *valueobjects.Position
}

// Release describes how a gesture ended.
type Release struct {
	Mode   Mode
	Target Target
	// Click is true when a node press ended without crossing the drag threshold.
	Click bool
}

// Gesture is the toolkit-independent pointer state machine shared by the
// canvases. Coordinates passed in are screen pixels.
type Gesture struct {
	mode      Mode
	target    Target
	origin    valueobjects.Position
	panStart  valueobjects.Position
	nodeStart valueobjects.Position
	dragged   bool
}

// Mode returns the current state.
func (g *Gesture) Mode() Mode { return g.mode }

// Target returns what the active gesture started on.
func (g *Gesture) Target() Target { return g.target }

// Dragged reports whether the active node press has crossed the threshold.
func (g *Gesture) Dragged() bool { return g.dragged }

// BeginPan starts panning from the background.
func (g *Gesture) BeginPan(screen, pan valueobjects.Position) {
	*g = Gesture{mode: Panning, target: OnBackground(), origin: screen, panStart: pan}
}

// BeginDrag starts a node press, remembering where the node was.
func (g *Gesture) BeginDrag(target Target, screen, nodeStart valueobjects.Position) {
	*g = Gesture{mode: DraggingNode, target: target, origin: screen, nodeStart: nodeStart}
}

// Move advances the gesture. Panning follows the raw screen delta. Dragging
// does nothing until the threshold is crossed, then places the node at its
// start plus the delta divided by scale, clamped to bounds.
func (g *Gesture) Move(screen valueobjects.Position, scale float64, bounds Bounds) Step {
	delta := screen.Sub(g.origin)
	switch g.mode {
	case Panning:
		pan := g.panStart.Translate(delta.X(), delta.Y())
		return Step{Pan: &pan}
	case DraggingNode:
		if !g.dragged && screen.DistanceTo(g.origin) <= DragThreshold {
			return Step{}
		}
		g.dragged = true
		content := delta.DivideBy(scale)
		next := bounds.Clamp(g.nodeStart.Translate(content.X(), content.Y()))
		return Step{Node: &next}
	default:
		return Step{}
	}
}

// Up ends the gesture on pointer release.
func (g *Gesture) Up() Release {
	r := Release{
		Mode:   g.mode,
		Target: g.target,
		Click:  g.mode == DraggingNode && !g.dragged,
	}
	*g = Gesture{}
	return r
}

// Leave abandons the gesture when the pointer leaves the tracking surface.
// It never produces a click.
func (g *Gesture) Leave() Release {
	r := Release{Mode: g.mode, Target: g.target}
	*g = Gesture{}
	return r
}
