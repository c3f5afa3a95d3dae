package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	"portfolio/domain/events"
	"portfolio/pkg/observability"
)

// SaveContentHandler overwrites the stored document
type SaveContentHandler struct {
	writer     *DocumentWriter
	contentKey string
	metrics    *observability.Collector
	logger     *zap.Logger
}

// NewSaveContentHandler creates a new save content handler
func NewSaveContentHandler(
	writer *DocumentWriter,
	contentKey string,
	metrics *observability.Collector,
	logger *zap.Logger,
) *SaveContentHandler {
	return &SaveContentHandler{
		writer:     writer,
		contentKey: contentKey,
		metrics:    metrics,
		logger:     logger,
	}
}

// Handle implements bus.CommandHandler
func (h *SaveContentHandler) Handle(ctx context.Context, c bus.Command) error {
	cmd, ok := c.(commands.SaveContentCommand)
	if !ok {
		return fmt.Errorf("unexpected command %T", c)
	}

	doc := cmd.Document
	event := events.NewContentSaved(h.contentKey, len(doc.Timeline), len(doc.Strategy.Points), h.writer.Now())
	if err := h.writer.Replace(ctx, doc, event); err != nil {
		return err
	}

	if h.metrics != nil {
		h.metrics.ContentSaves.Inc()
	}
	h.logger.Info("Content saved",
		zap.Int("milestones", len(doc.Timeline)),
		zap.Int("strategy_points", len(doc.Strategy.Points)))
	return nil
}
