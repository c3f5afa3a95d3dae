package canvas

import "portfolio/domain/core/valueobjects"

// PositionsChanged receives every card position after a card moves.
type PositionsChanged func([]valueobjects.Position)

// StrategyCanvas is the sea of draggable strategy cards. It has no pan or
// zoom; cards move 1:1 with the pointer inside StrategyBounds.
type StrategyCanvas struct {
	points    []string
	positions []valueobjects.Position
	gesture   Gesture
	onChange  PositionsChanged
}

// NewStrategyCanvas lays out points using stored when it has one position per
// point. onChange may be nil.
func NewStrategyCanvas(points []string, stored []valueobjects.Position, onChange PositionsChanged) *StrategyCanvas {
	return &StrategyCanvas{
		points:    append([]string(nil), points...),
		positions: ResolveStrategyPositions(len(points), stored),
		onChange:  onChange,
	}
}

// Positions returns a copy of the current card positions.
func (c *StrategyCanvas) Positions() []valueobjects.Position {
	return append([]valueobjects.Position(nil), c.positions...)
}

// Layout returns the current projection of the cards.
func (c *StrategyCanvas) Layout() StrategyLayout {
	return ComputeStrategyLayout(c.points, c.positions)
}

// Mode returns the gesture state.
func (c *StrategyCanvas) Mode() Mode { return c.gesture.Mode() }

// Bounds is the drag constraint for strategy cards.
func (c *StrategyCanvas) Bounds() Bounds { return StrategyBounds() }

// OnPointerDown starts a press on card target.Index. The background and
// controls do nothing, as does a second press while one is held.
func (c *StrategyCanvas) OnPointerDown(target Target, screen valueobjects.Position) {
	if c.gesture.Mode() != Idle {
		return
	}
	if target.Kind != TargetNode || target.Index < 0 || target.Index >= len(c.positions) {
		return
	}
	c.gesture.BeginDrag(target, screen, c.positions[target.Index])
}

// OnPointerMove drags the pressed card once past the threshold.
func (c *StrategyCanvas) OnPointerMove(screen valueobjects.Position) {
	step := c.gesture.Move(screen, 1, c.Bounds())
	if step.Node == nil {
		return
	}
	i := c.gesture.Target().Index
	if c.positions[i].Equals(*step.Node) {
		return
	}
	c.positions[i] = *step.Node
	if c.onChange != nil {
		c.onChange(c.Positions())
	}
}

// OnPointerUp ends the gesture.
func (c *StrategyCanvas) OnPointerUp() { c.gesture.Up() }

// OnPointerLeave abandons the gesture.
func (c *StrategyCanvas) OnPointerLeave() { c.gesture.Leave() }
