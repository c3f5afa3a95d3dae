package canvas

import "portfolio/domain/core/entities"

// Expansion tracks the single expanded node, top-level or child.
type Expansion struct {
	id string
}

// Toggle collapses id if it is expanded, otherwise expands it in place of
// whatever was expanded before.
func (e Expansion) Toggle(id string) Expansion {
	if e.id == id {
		return Expansion{}
	}
	return Expansion{id: id}
}

// Current returns the expanded id, if any.
func (e Expansion) Current() (string, bool) {
	return e.id, e.id != ""
}

// Is reports whether id is the expanded node.
func (e Expansion) Is(id string) bool {
	return id != "" && e.id == id
}

// DetailOverlay holds the id of the node shown enlarged. It keeps no copy of
// the node; Resolve looks it up in the collection it is given.
type DetailOverlay struct {
	id string
}

// Open shows id.
func (d DetailOverlay) Open(id string) DetailOverlay {
	return DetailOverlay{id: id}
}

// Close hides the overlay.
func (d DetailOverlay) Close() DetailOverlay {
	return DetailOverlay{}
}

// ID returns the id the overlay points at, if open.
func (d DetailOverlay) ID() (string, bool) {
	return d.id, d.id != ""
}

// Resolve returns the live node, including children. An overlay whose node
// no longer exists reads as closed.
func (d DetailOverlay) Resolve(milestones []entities.Milestone) (entities.Milestone, bool) {
	if d.id == "" {
		return entities.Milestone{}, false
	}
	return entities.FindMilestone(milestones, d.id)
}
