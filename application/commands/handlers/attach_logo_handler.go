package handlers

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	"portfolio/domain/core/entities"
	"portfolio/domain/events"
)

// AttachMilestoneLogoHandler stores an uploaded image URL on a milestone
type AttachMilestoneLogoHandler struct {
	writer     *DocumentWriter
	contentKey string
	logger     *zap.Logger
}

// NewAttachMilestoneLogoHandler creates a new handler
func NewAttachMilestoneLogoHandler(writer *DocumentWriter, contentKey string, logger *zap.Logger) *AttachMilestoneLogoHandler {
	return &AttachMilestoneLogoHandler{
		writer:     writer,
		contentKey: contentKey,
		logger:     logger,
	}
}

// Handle implements bus.CommandHandler
func (h *AttachMilestoneLogoHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.AttachMilestoneLogoCommand)
	if !ok {
		return fmt.Errorf("unexpected command %T", c)
	}

	_, err := h.writer.Mutate(ctx, func(doc entities.Document, now time.Time) (entities.Document, events.DomainEvent, error) {
		next, err := doc.SetMilestoneLogo(cmd.MilestoneID, cmd.URL)
		if err != nil {
			return entities.Document{}, nil, err
		}
		return next, events.NewContentSaved(h.contentKey, len(next.Timeline), len(next.Strategy.Points), now), nil
	})
	if err != nil {
		return err
	}

	h.logger.Info("Milestone logo attached",
		zap.String("milestone_id", cmd.MilestoneID),
		zap.String("url", cmd.URL))
	return nil
}
