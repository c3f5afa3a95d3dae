package canvas

import (
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

// MilestonesChanged receives the entire updated milestone collection after
// every node move. The slice is a copy the receiver may keep.
type MilestonesChanged func([]entities.Milestone)

// KeyEscape closes the detail overlay.
const KeyEscape = "Escape"

// TimelineCanvas is the interactive career timeline. It owns its viewport,
// gesture and expansion state; the milestones it holds are a private copy and
// changes leave only through the change callback.
type TimelineCanvas struct {
	milestones []entities.Milestone
	layout     Layout
	viewport   Viewport
	gesture    Gesture
	expansion  Expansion
	overlay    DetailOverlay
	onChange   MilestonesChanged
}

// NewTimelineCanvas builds a canvas over a copy of milestones. onChange may be nil.
func NewTimelineCanvas(milestones []entities.Milestone, visible Size, onChange MilestonesChanged) *TimelineCanvas {
	c := &TimelineCanvas{
		viewport: NewViewport(visible),
		onChange: onChange,
	}
	c.SetMilestones(milestones)
	return c
}

// SetMilestones replaces the collection, e.g. after the host reloads the
// document. Expansion and overlay survive when their node still exists.
func (c *TimelineCanvas) SetMilestones(milestones []entities.Milestone) {
	c.milestones = entities.CloneMilestones(milestones)
	c.relayout()
	if id, ok := c.expansion.Current(); ok {
		if _, found := entities.FindMilestone(c.milestones, id); !found {
			c.expansion = Expansion{}
		}
	}
	if _, ok := c.overlay.Resolve(c.milestones); !ok {
		c.overlay = c.overlay.Close()
	}
}

// Milestones returns a copy of the current collection.
func (c *TimelineCanvas) Milestones() []entities.Milestone {
	return entities.CloneMilestones(c.milestones)
}

// Layout returns the current resolved layout, path included.
func (c *TimelineCanvas) Layout() Layout { return c.layout }

// Viewport returns the current pan/zoom transform.
func (c *TimelineCanvas) Viewport() Viewport { return c.viewport }

// Mode returns the gesture state.
func (c *TimelineCanvas) Mode() Mode { return c.gesture.Mode() }

// Bounds is the drag constraint for timeline nodes: non-negative only.
func (c *TimelineCanvas) Bounds() Bounds {
	return LowerBound(valueobjects.At(0, 0))
}

// OnPointerDown starts panning on the background or a node press on a node
// or child. Presses on controls, or during another gesture, are ignored.
func (c *TimelineCanvas) OnPointerDown(target Target, screen valueobjects.Position) {
	if c.gesture.Mode() != Idle {
		return
	}
	switch target.Kind {
	case TargetBackground:
		c.gesture.BeginPan(screen, c.viewport.Pan)
	case TargetNode, TargetChild:
		start, ok := c.layout.Position(target.NodeID)
		if !ok {
			return
		}
		c.gesture.BeginDrag(target, screen, start)
	}
}

// OnPointerMove pans or drags depending on the gesture in progress.
func (c *TimelineCanvas) OnPointerMove(screen valueobjects.Position) {
	step := c.gesture.Move(screen, c.viewport.Scale, c.Bounds())
	switch {
	case step.Pan != nil:
		c.viewport = c.viewport.PannedTo(*step.Pan)
	case step.Node != nil:
		c.moveNode(c.gesture.Target().NodeID, *step.Node)
	}
}

// OnPointerUp ends the gesture. A node press that never became a drag
// toggles the pressed node, or the pressed child, open or closed.
func (c *TimelineCanvas) OnPointerUp() {
	r := c.gesture.Up()
	if r.Click {
		c.ToggleExpand(r.Target.ClickID())
	}
}

// OnPointerLeave abandons any gesture without a click.
func (c *TimelineCanvas) OnPointerLeave() {
	c.gesture.Leave()
}

// OnWheel zooms around the viewport centre.
func (c *TimelineCanvas) OnWheel(deltaY float64) {
	c.viewport = c.viewport.Wheel(deltaY)
}

// OnKey handles keyboard input; Escape closes the detail overlay.
func (c *TimelineCanvas) OnKey(key string) {
	if key == KeyEscape {
		c.CloseDetails()
	}
}

// Resize updates the visible area used as the zoom anchor.
func (c *TimelineCanvas) Resize(visible Size) {
	c.viewport = c.viewport.Resize(visible)
}

// ToggleExpand expands id, collapsing anything else, or collapses it.
func (c *TimelineCanvas) ToggleExpand(id string) {
	if _, ok := entities.FindMilestone(c.milestones, id); !ok {
		return
	}
	c.expansion = c.expansion.Toggle(id)
}

// Expanded returns the expanded node id, if any.
func (c *TimelineCanvas) Expanded() (string, bool) { return c.expansion.Current() }

// IsExpanded reports whether id is expanded.
func (c *TimelineCanvas) IsExpanded(id string) bool { return c.expansion.Is(id) }

// OpenDetails shows the detail overlay for id.
func (c *TimelineCanvas) OpenDetails(id string) {
	if _, ok := entities.FindMilestone(c.milestones, id); !ok {
		return
	}
	c.overlay = c.overlay.Open(id)
}

// CloseDetails hides the detail overlay.
func (c *TimelineCanvas) CloseDetails() {
	c.overlay = c.overlay.Close()
}

// DetailNode returns the live node behind the overlay.
func (c *TimelineCanvas) DetailNode() (entities.Milestone, bool) {
	return c.overlay.Resolve(c.milestones)
}

func (c *TimelineCanvas) moveNode(id string, pos valueobjects.Position) {
	for i := range c.milestones {
		if c.milestones[i].ID != id {
			continue
		}
		if cur := c.milestones[i].Position; cur != nil && cur.Equals(pos) {
			return
		}
		c.milestones[i].Position = &pos
		c.relayout()
		if c.onChange != nil {
			c.onChange(entities.CloneMilestones(c.milestones))
		}
		return
	}
}

func (c *TimelineCanvas) relayout() {
	c.layout = ComputeTimelineLayout(c.milestones)
}
