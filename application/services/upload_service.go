package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"portfolio/application/ports"
	"portfolio/domain/events"
	pkgerrors "portfolio/pkg/errors"
	"portfolio/pkg/observability"
)

// DefaultImageExt is used when an uploaded file name has no extension.
const DefaultImageExt = ".png"

var whitespaceRun = regexp.MustCompile(`\s+`)

// UploadResult is what the editor receives after an upload
type UploadResult struct {
	URL  string `json:"url"`
	Size int64  `json:"-"`
}

// UploadService stores images for the admin editor. It never inspects the
// bytes; any file is accepted and served back from its URL.
type UploadService struct {
	store     ports.ImageStore
	publisher ports.EventPublisher
	metrics   *observability.Collector
	logger    *zap.Logger
	now       func() time.Time
}

// NewUploadService creates a new upload service
func NewUploadService(
	store ports.ImageStore,
	publisher ports.EventPublisher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *UploadService {
	return &UploadService{
		store:     store,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload stores data under a collision-resistant name derived from the
// client's file name.
func (s *UploadService) Upload(ctx context.Context, originalName string, data io.Reader) (UploadResult, error) {
	name := UploadFileName(originalName, s.now())

	url, size, err := s.store.Put(ctx, name, data)
	if err != nil {
		return UploadResult{}, pkgerrors.NewStorageError("Upload failed", fmt.Errorf("store %s: %w", name, err))
	}

	if s.metrics != nil {
		s.metrics.ImagesUploaded.Inc()
		s.metrics.UploadBytes.Observe(float64(size))
	}
	if err := s.publisher.Publish(ctx, events.NewImageUploaded(url, size, s.now())); err != nil {
		s.logger.Warn("Failed to publish upload event", zap.String("url", url), zap.Error(err))
	}

	s.logger.Info("Image uploaded",
		zap.String("original_name", originalName),
		zap.String("url", url),
		zap.Int64("size", size))
	return UploadResult{URL: url, Size: size}, nil
}

// UploadFileName builds "<base>-<unix millis><ext>". Whitespace runs in the
// base become a single dash and a missing extension becomes ".png". Any
// directory part of the client name is dropped.
func UploadFileName(originalName string, at time.Time) string {
	base := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	if base == "." || base == "/" {
		base = ""
	}

	ext := filepath.Ext(base)
	if ext == base {
		// dotfiles such as ".env" have no extension
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	if ext == "" {
		ext = DefaultImageExt
	}

	stem = whitespaceRun.ReplaceAllString(stem, "-")
	return fmt.Sprintf("%s-%d%s", stem, at.UnixMilli(), ext)
}
