package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	"portfolio/application/queries"
	querybus "portfolio/application/queries/bus"
	"portfolio/domain/core/entities"
	"portfolio/pkg/common"
	pkgerrors "portfolio/pkg/errors"
)

// ContentHandler serves and replaces the whole content document
type ContentHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	errors       *pkgerrors.ErrorHandler
	maxBodyBytes int64
	logger       *zap.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errors *pkgerrors.ErrorHandler,
	maxBodyBytes int64,
	logger *zap.Logger,
) *ContentHandler {
	return &ContentHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errors:       errors,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

// GetContent handles GET /api/content
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetContentQuery{})
	if err != nil {
		respondFailure(h.errors, w, r, err, "Failed to load content")
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// SaveContent handles PUT /api/content. The body replaces the stored
// document as-is.
func (h *ContentHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	var doc entities.Document
	if err := common.ParseJSONBody(w, r, &doc, h.maxBodyBytes); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	if err := h.commandBus.Send(r.Context(), commands.SaveContentCommand{Document: doc}); err != nil {
		respondFailure(h.errors, w, r, err, "Failed to save content")
		return
	}

	h.logger.Info("Content saved",
		zap.Int("milestones", len(doc.Timeline)),
		zap.Int("strategyPoints", len(doc.Strategy.Points)),
	)
	common.RespondSuccess(w)
}
