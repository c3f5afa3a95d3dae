package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"portfolio/application/ports"
	"portfolio/domain/core/entities"
	"portfolio/domain/events"
)

// Mutation turns the stored document into its successor and names the event
// describing the change.
type Mutation func(doc entities.Document, now time.Time) (entities.Document, events.DomainEvent, error)

// DocumentWriter serialises every write to the content document. All command
// handlers share one writer so read-modify-write cycles never interleave.
type DocumentWriter struct {
	mu        sync.Mutex
	repo      ports.ContentRepository
	cache     ports.Cache
	publisher ports.EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewDocumentWriter creates a writer over the given repository
func NewDocumentWriter(
	repo ports.ContentRepository,
	cache ports.Cache,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *DocumentWriter {
	return &DocumentWriter{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Mutate loads the document, applies fn and saves the result. The cache is
// cleared and the event published only after a successful save.
func (w *DocumentWriter) Mutate(ctx context.Context, fn Mutation) (entities.Document, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	current, err := w.repo.Load(ctx)
	if err != nil {
		return entities.Document{}, fmt.Errorf("failed to load content: %w", err)
	}

	next, event, err := fn(current, w.now())
	if err != nil {
		return entities.Document{}, err
	}

	return next, w.commit(ctx, next, event)
}

// Replace saves doc without reading the stored one first.
func (w *DocumentWriter) Replace(ctx context.Context, doc entities.Document, event events.DomainEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.commit(ctx, doc, event)
}

// Now returns the writer's clock reading.
func (w *DocumentWriter) Now() time.Time {
	return w.now()
}

func (w *DocumentWriter) commit(ctx context.Context, doc entities.Document, event events.DomainEvent) error {
	if err := w.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save content: %w", err)
	}

	if err := w.cache.Clear(ctx); err != nil {
		w.logger.Warn("Failed to clear content cache", zap.Error(err))
	}

	if event != nil {
		// The document is already persisted; a lost event is logged, not returned.
		if err := w.publisher.Publish(ctx, event); err != nil {
			w.logger.Warn("Failed to publish event",
				zap.String("event_type", event.GetEventType()),
				zap.Error(err))
		}
	}
	return nil
}
