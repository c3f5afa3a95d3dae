package persistence

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"portfolio/application/ports"
	"portfolio/domain/core/entities"
	"portfolio/pkg/observability"
)

// InstrumentedRepository records a span and store metrics around every call.
type InstrumentedRepository struct {
	next    ports.ContentRepository
	backend string
	tracer  *observability.Tracer
	metrics *observability.Collector
}

// NewInstrumentedRepository wraps next. metrics may be nil.
func NewInstrumentedRepository(next ports.ContentRepository, backend string, tracer *observability.Tracer, metrics *observability.Collector) *InstrumentedRepository {
	return &InstrumentedRepository{
		next:    next,
		backend: backend,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Load implements ports.ContentRepository
func (r *InstrumentedRepository) Load(ctx context.Context) (entities.Document, error) {
	ctx, span := r.tracer.Start(ctx, "content.load", attribute.String("store.backend", r.backend))
	defer span.End()

	start := time.Now()
	doc, err := r.next.Load(ctx)
	r.observe("load", start, err)
	if err != nil {
		observability.RecordError(span, err)
		return doc, err
	}
	span.SetAttributes(attribute.Int("content.milestones", len(doc.Timeline)))
	return doc, nil
}

// Save implements ports.ContentRepository
func (r *InstrumentedRepository) Save(ctx context.Context, doc entities.Document) error {
	ctx, span := r.tracer.Start(ctx, "content.save",
		attribute.String("store.backend", r.backend),
		attribute.Int("content.milestones", len(doc.Timeline)))
	defer span.End()

	start := time.Now()
	err := r.next.Save(ctx, doc)
	r.observe("save", start, err)
	if err != nil {
		observability.RecordError(span, err)
	}
	return err
}

func (r *InstrumentedRepository) observe(operation string, start time.Time, err error) {
	if r.metrics != nil {
		r.metrics.ObserveStore(operation, r.backend, start, err)
	}
}
