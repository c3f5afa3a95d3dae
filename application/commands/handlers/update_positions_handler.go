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
	"portfolio/pkg/observability"
)

// UpdateTimelinePositionsHandler persists positions dragged on the timeline canvas
type UpdateTimelinePositionsHandler struct {
	writer     *DocumentWriter
	contentKey string
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewUpdateTimelinePositionsHandler creates a new handler
func NewUpdateTimelinePositionsHandler(
	writer *DocumentWriter,
	contentKey string,
	metrics *observability.Collector,
	logger *zap.Logger,
) *UpdateTimelinePositionsHandler {
	return &UpdateTimelinePositionsHandler{
		writer:     writer,
		contentKey: contentKey,
		metrics:    metrics,
		logger:     logger,
	}
}

// Handle implements bus.CommandHandler
func (h *UpdateTimelinePositionsHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.UpdateTimelinePositionsCommand)
	if !ok {
		return fmt.Errorf("unexpected command %T", c)
	}

	positions := cmd.Positions()
	_, err := h.writer.Mutate(ctx, func(doc entities.Document, now time.Time) (entities.Document, events.DomainEvent, error) {
		return doc.ApplyTimelinePositions(positions), events.NewTimelineRearranged(h.contentKey, positions, now), nil
	})
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.PositionUpdates.WithLabelValues("timeline").Inc()
	}
	h.logger.Debug("Timeline positions saved", zap.Int("positioned", len(positions)))
	return nil
}

// UpdateStrategyPositionsHandler persists strategy card positions
type UpdateStrategyPositionsHandler struct {
	writer     *DocumentWriter
	contentKey string
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewUpdateStrategyPositionsHandler creates a new handler
func NewUpdateStrategyPositionsHandler(
	writer *DocumentWriter,
	contentKey string,
	metrics *observability.Collector,
	logger *zap.Logger,
) *UpdateStrategyPositionsHandler {
	return &UpdateStrategyPositionsHandler{
		writer:     writer,
		contentKey: contentKey,
		metrics:    metrics,
		logger:     logger,
	}
}

// Handle implements bus.CommandHandler
func (h *UpdateStrategyPositionsHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.UpdateStrategyPositionsCommand)
	if !ok {
		return fmt.Errorf("unexpected command %T", c)
	}

	_, err := h.writer.Mutate(ctx, func(doc entities.Document, now time.Time) (entities.Document, events.DomainEvent, error) {
		next, err := doc.WithStrategyPositions(cmd.Positions)
		if err != nil {
			return entities.Document{}, nil, err
		}
		return next, events.NewStrategyRearranged(h.contentKey, cmd.Positions, now), nil
	})
	if err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.PositionUpdates.WithLabelValues("strategy").Inc()
	}
	return nil
}
