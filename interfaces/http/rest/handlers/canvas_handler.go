package handlers

import (
	"bytes"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	"portfolio/application/queries"
	querybus "portfolio/application/queries/bus"
	"portfolio/domain/canvas"
	"portfolio/domain/core/entities"
	"portfolio/domain/core/valueobjects"
	"portfolio/infrastructure/render"
	"portfolio/pkg/common"
	pkgerrors "portfolio/pkg/errors"
)

// CanvasHandler serves the timeline and strategy layouts and persists the
// positions the editor canvases emit after a drag.
type CanvasHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errors       *pkgerrors.ErrorHandler
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewCanvasHandler creates a new canvas handler
func NewCanvasHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errors *pkgerrors.ErrorHandler,
	maxBodyBytes int64,
	logger *zap.Logger,
) *CanvasHandler {
	return &CanvasHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errors:       errors,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// TimelineLayout handles GET /api/timeline/layout
func (h *CanvasHandler) TimelineLayout(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetTimelineLayoutQuery{})
	if err != nil {
		respondFailure(h.errors, w, r, err, "Failed to load content")
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// TimelineRoad handles GET /api/timeline/road.svg. Positions and labels
// come from the same document read.
func (h *CanvasHandler) TimelineRoad(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetContentQuery{})
	if err != nil {
		respondFailure(h.errors, w, r, err, "Failed to load content")
		return
	}
	timeline := result.(entities.Document).Timeline

	var buf bytes.Buffer
	render.Road(&buf, canvas.ComputeTimelineLayout(timeline), render.Labels(timeline))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Debug("Failed to write road SVG", zap.Error(err))
	}
}

// UpdateTimelinePositions handles PUT /api/timeline/positions. The body is
// the milestone array the canvas emitted; only ids and positions are used.
func (h *CanvasHandler) UpdateTimelinePositions(w http.ResponseWriter, r *http.Request) {
	var milestones []entities.Milestone
	if err := common.ParseJSONBody(w, r, &milestones, h.maxBodyBytes); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	cmd := commands.UpdateTimelinePositionsCommand{Milestones: milestones}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		respondFailure(h.errors, w, r, err, "Failed to save content")
		return
	}
	common.RespondSuccess(w)
}

// StrategyLayout handles GET /api/strategy/layout
func (h *CanvasHandler) StrategyLayout(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetStrategyLayoutQuery{})
	if err != nil {
		respondFailure(h.errors, w, r, err, "Failed to load content")
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateStrategyPositions handles PUT /api/strategy/positions. The body holds
// one position per strategy point, in point order.
func (h *CanvasHandler) UpdateStrategyPositions(w http.ResponseWriter, r *http.Request) {
	var positions []valueobjects.Position
	if err := common.ParseJSONBody(w, r, &positions, h.maxBodyBytes); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.UpdateStrategyPositionsCommand{Positions: positions}); err != nil {
		respondFailure(h.errors, w, r, err, "Failed to save content")
		return
	}
	common.RespondSuccess(w)
}
