package canvas

import (
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
)

// Card geometry used to stack children below their parent.
const (
	NodeCardHeight  = 96.0
	ChildCardHeight = 64.0
	ChildGap        = 8.0
)

// ChildLayout places a child card relative to its parent's centre.
type ChildLayout struct {
	ID       string                `json:"id"`
	Offset   valueobjects.Position `json:"offset"`
	Gradient valueobjects.Gradient `json:"gradient"`
}

// ChildLayouts stacks a card-shaped node's children vertically under it,
// each coloured by its own phase or override. Children never take part in
// canvas layout, and circle nodes show no children.
func ChildLayouts(parent entities.Milestone) []ChildLayout {
	if !parent.HasChildren() || parent.DisplayShape() == valueobjects.ShapeCircle {
		return nil
	}
	out := make([]ChildLayout, len(parent.Children))
	top := NodeCardHeight/2 + ChildGap + ChildCardHeight/2
	for i, child := range parent.Children {
		out[i] = ChildLayout{
			ID:       child.ID,
			Offset:   valueobjects.At(0, top+float64(i)*(ChildCardHeight+ChildGap)),
			Gradient: child.Gradient(),
		}
	}
	return out
}

// ChildPosition is the absolute centre of a child given its parent's centre.
func ChildPosition(parent valueobjects.Position, child ChildLayout) valueobjects.Position {
	return parent.Translate(child.Offset.X(), child.Offset.Y())
}
