package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"portfolio/application/ports"
	"portfolio/application/queries/bus"
	"portfolio/domain/canvas"
	"portfolio/pkg/observability"
)

// GetContentHandler returns the stored document
type GetContentHandler struct {
	repo   ports.ContentRepository
	logger *zap.Logger
}

// NewGetContentHandler creates a new content query handler
func NewGetContentHandler(repo ports.ContentRepository, logger *zap.Logger) *GetContentHandler {
	return &GetContentHandler{repo: repo, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetContentHandler) Handle(ctx context.Context, _ bus.Query) (interface{}, error) {
	doc, err := h.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return doc, nil
}

// GetTimelineLayoutHandler lays out the stored timeline
type GetTimelineLayoutHandler struct {
	repo    ports.ContentRepository
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewGetTimelineLayoutHandler creates a new timeline layout handler
func NewGetTimelineLayoutHandler(repo ports.ContentRepository, metrics *observability.Collector, logger *zap.Logger) *GetTimelineLayoutHandler {
	return &GetTimelineLayoutHandler{repo: repo, metrics: metrics, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetTimelineLayoutHandler) Handle(ctx context.Context, _ bus.Query) (interface{}, error) {
	doc, err := h.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	layout := canvas.ComputeTimelineLayout(doc.Timeline)
	if h.metrics != nil {
		h.metrics.TimelineNodeCount.Set(float64(len(layout.Nodes)))
	}
	return layout, nil
}

// GetStrategyLayoutHandler lays out the stored strategy points
type GetStrategyLayoutHandler struct {
	repo   ports.ContentRepository
	logger *zap.Logger
}

// NewGetStrategyLayoutHandler creates a new strategy layout handler
func NewGetStrategyLayoutHandler(repo ports.ContentRepository, logger *zap.Logger) *GetStrategyLayoutHandler {
	return &GetStrategyLayoutHandler{repo: repo, logger: logger}
}

// Handle implements bus.QueryHandler
func (h *GetStrategyLayoutHandler) Handle(ctx context.Context, _ bus.Query) (interface{}, error) {
	doc, err := h.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	if len(doc.Strategy.PointPositions) > 0 && !doc.Strategy.HasPointPositions() {
		h.logger.Debug("Ignoring misaligned strategy positions",
			zap.Int("points", len(doc.Strategy.Points)),
			zap.Int("positions", len(doc.Strategy.PointPositions)))
	}
	return canvas.ComputeStrategyLayout(doc.Strategy.Points, doc.Strategy.PointPositions), nil
}
