package entities

import (
	"portfolio/domain/core/valueobjects"

	"github.com/google/uuid"
)

// Milestone is one node of the career timeline. A milestone may hold a flat
// list of child milestones; children never hold children of their own.
//
// Position, when set, is authoritative: layout code must use it instead of
// computing a default.
type Milestone struct {
	ID              string                  `json:"id"`
	Role            string                  `json:"role"`
	Company         string                  `json:"company"`
	DateRange       string                  `json:"dateRange"`
	Description     string                  `json:"description"`
	Project         string                  `json:"project,omitempty"`
	Course          string                  `json:"course,omitempty"`
	Phase           valueobjects.Phase      `json:"phase"`
	LogoURL         string                  `json:"logoUrl,omitempty"`
	ExpandedDetails string                  `json:"expandedDetails,omitempty"`
	PlaceLabel      valueobjects.PlaceLabel `json:"placeLabel,omitempty"`
	Children        []Milestone             `json:"children,omitempty"`
	Position        *valueobjects.Position  `json:"position,omitempty"`
	Shape           valueobjects.Shape      `json:"shape,omitempty"`
	Color           string                  `json:"color,omitempty"`
}

// NewMilestoneID returns a short random identifier for a new milestone.
func NewMilestoneID() string {
	return uuid.New().String()[:8]
}

// NewMilestone creates a placeholder milestone the way the editor does when
// the operator clicks "add".
func NewMilestone(shape valueobjects.Shape, color string) Milestone {
	return Milestone{
		ID:        NewMilestoneID(),
		Role:      "New Role",
		Company:   "Company",
		DateRange: "YYYY - YYYY",
		Phase:     valueobjects.PhaseEarly,
		Shape:     shape.OrDefault(),
		Color:     color,
	}
}

// Gradient resolves the colour the milestone is drawn with.
func (m Milestone) Gradient() valueobjects.Gradient {
	return valueobjects.ResolveGradient(m.Color, m.Phase)
}

// PlaceDisplay renders the company field with its place label.
func (m Milestone) PlaceDisplay() string {
	return m.PlaceLabel.Display(m.Company)
}

// DisplayShape returns the shape to draw, defaulting to a card.
func (m Milestone) DisplayShape() valueobjects.Shape {
	return m.Shape.OrDefault()
}

// HasChildren reports whether the milestone holds nested milestones.
func (m Milestone) HasChildren() bool {
	return len(m.Children) > 0
}

// HasPosition reports whether the milestone carries a manual position.
func (m Milestone) HasPosition() bool {
	return m.Position != nil
}

// WithPosition returns a copy of the milestone placed at p.
func (m Milestone) WithPosition(p valueobjects.Position) Milestone {
	c := m.Clone()
	c.Position = &p
	return c
}

// Clone returns a deep copy that shares no slices or pointers with m.
func (m Milestone) Clone() Milestone {
	c := m
	if m.Position != nil {
		p := *m.Position
		c.Position = &p
	}
	if m.Children != nil {
		c.Children = make([]Milestone, len(m.Children))
		for i, child := range m.Children {
			c.Children[i] = child.Clone()
		}
	}
	return c
}

// CloneMilestones deep-copies a milestone collection.
func CloneMilestones(ms []Milestone) []Milestone {
	if ms == nil {
		return nil
	}
	out := make([]Milestone, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}

// FindMilestone looks a milestone up by id among ms and their children.
func FindMilestone(ms []Milestone, id string) (Milestone, bool) {
	for _, m := range ms {
		if m.ID == id {
			return m, true
		}
		for _, child := range m.Children {
			if child.ID == id {
				return child, true
			}
		}
	}
	return Milestone{}, false
}
