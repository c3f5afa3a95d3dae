package commands

import (
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
	pkgerrors "portfolio/pkg/errors"
	"portfolio/pkg/utils"
)

// SaveContentCommand overwrites the whole document. No schema is enforced;
// the editor is trusted to send a complete document.
type SaveContentCommand struct {
	Document entities.Document
}

// Validate implements bus.Command
func (c SaveContentCommand) Validate() error {
	return nil
}

// UpdateTimelinePositionsCommand carries the milestone collection emitted by
// the timeline canvas after a drag. Only the positions are persisted; every
// other field is taken from the stored document.
type UpdateTimelinePositionsCommand struct {
	Milestones []entities.Milestone
}

// Validate implements bus.Command
func (c UpdateTimelinePositionsCommand) Validate() error {
	if len(c.Milestones) == 0 {
		return pkgerrors.NewValidationError("milestones are required")
	}
	for _, m := range c.Milestones {
		if m.ID == "" {
			return pkgerrors.NewValidationError("every milestone needs an id")
		}
	}
	return nil
}

// Positions returns the explicit positions keyed by milestone id.
func (c UpdateTimelinePositionsCommand) Positions() map[string]valueobjects.Position {
	positions := make(map[string]valueobjects.Position, len(c.Milestones))
	for _, m := range c.Milestones {
		if m.Position != nil {
			positions[m.ID] = *m.Position
		}
	}
	return positions
}

// UpdateStrategyPositionsCommand stores one position per strategy point.
type UpdateStrategyPositionsCommand struct {
	Positions []valueobjects.Position
}

// Validate implements bus.Command
func (c UpdateStrategyPositionsCommand) Validate() error {
	if len(c.Positions) == 0 {
		return pkgerrors.NewValidationError("positions are required")
	}
	return nil
}

// AttachMilestoneLogoCommand points a milestone at an uploaded image.
type AttachMilestoneLogoCommand struct {
	MilestoneID string `validate:"required,max=64"`
	URL         string `validate:"required"`
}

// Validate implements bus.Command
func (c AttachMilestoneLogoCommand) Validate() error {
	return utils.ValidateStruct(c)
}
