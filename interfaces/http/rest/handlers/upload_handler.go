package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	"portfolio/application/services"
	"portfolio/pkg/common"
	pkgerrors "portfolio/pkg/errors"
)

// Multipart framing around the file part
const (
	multipartOverhead = 64 << 10
	multipartMemory   = 1 << 20
)

// UploadHandler accepts image uploads from the editor
type UploadHandler struct {
	uploads        *services.UploadService
	commandBus     *bus.CommandBus
	errors         *pkgerrors.ErrorHandler
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(
	uploads *services.UploadService,
	commandBus *bus.CommandBus,
	errs *pkgerrors.ErrorHandler,
	maxUploadBytes int64,
	logger *zap.Logger,
) *UploadHandler {
	return &UploadHandler{
		uploads:        uploads,
		commandBus:     commandBus,
		errors:         errs,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload handles POST /api/upload. The multipart field "file" carries the
// image; an optional "milestoneId" field attaches it as that milestone's logo.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.errors.Handle(w, r, pkgerrors.NewTooLargeError(h.maxUploadBytes))
			return
		}
		h.errors.Handle(w, r, pkgerrors.NewValidationError("No file provided").WithCause(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("No file provided").WithCause(err))
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadBytes {
		h.errors.Handle(w, r, pkgerrors.NewTooLargeError(h.maxUploadBytes))
		return
	}

	result, err := h.uploads.Upload(r.Context(), header.Filename, file)
	if err != nil {
		respondFailure(h.errors, w, r, err, "Upload failed")
		return
	}

	if milestoneID := r.FormValue("milestoneId"); milestoneID != "" {
		cmd := commands.AttachMilestoneLogoCommand{MilestoneID: milestoneID, URL: result.URL}
		if err := h.commandBus.Send(r.Context(), cmd); err != nil {
			h.logger.Warn("Uploaded image not attached",
				zap.String("milestoneId", milestoneID),
				zap.String("url", result.URL),
				zap.Error(err),
			)
			respondFailure(h.errors, w, r, err, "Failed to save content")
			return
		}
	}

	common.RespondJSON(w, http.StatusOK, result)
}
