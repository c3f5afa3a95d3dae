package ports

import (
	"context"
	"io"

	"portfolio/domain/core/entities"
	"portfolio/domain/events"
)

// ContentRepository persists the single presentation document.
// This is a port in hexagonal architecture - the domain doesn't know about the implementation
type ContentRepository interface {
	// Load returns the whole document; there is no partial fetch
	Load(ctx context.Context) (entities.Document, error)

	// Save overwrites the whole document; there is no merge
	Save(ctx context.Context, doc entities.Document) error
}

// ImageStore keeps uploaded image bytes and hands back a public URL
type ImageStore interface {
	// Put stores data under name and returns the URL it is served from
	// together with the number of bytes written
	Put(ctx context.Context, name string, data io.Reader) (url string, size int64, err error)
}

// EventPublisher publishes domain events to external systems
type EventPublisher interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}

// Cache provides caching capabilities
type Cache interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value in cache with TTL in seconds
	Set(ctx context.Context, key string, value interface{}, ttl int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// Clear removes all values from cache
	Clear(ctx context.Context) error

	// Generation changes every time the cache is cleared
	Generation() uint64
}
