// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"portfolio/domain/core/entities"
	"portfolio/domain/events"
)

// MockContentRepository mocks ports.ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Load(ctx context.Context) (entities.Document, error) {
	args := m.Called(ctx)
	return args.Get(0).(entities.Document), args.Error(1)
}

func (m *MockContentRepository) Save(ctx context.Context, doc entities.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// MockImageStore mocks ports.ImageStore. The reader is drained so callers
// observe a complete write.
type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Put(ctx context.Context, name string, data io.Reader) (string, int64, error) {
	_, _ = io.Copy(io.Discard, data)
	args := m.Called(ctx, name)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

// MockEventPublisher mocks ports.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(ctx context.Context, evts []events.DomainEvent) error {
	args := m.Called(ctx, evts)
	return args.Error(0)
}

// MockCache mocks ports.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (interface{}, bool) {
	args := m.Called(ctx, key)
	return args.Get(0), args.Bool(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl int) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Generation is not recorded; the mock is never read through the query bus.
func (m *MockCache) Generation() uint64 {
	return 0
}
