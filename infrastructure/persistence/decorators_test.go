package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/domain/core/entities"
	pkgerrors "portfolio/pkg/errors"
	"portfolio/pkg/observability"
	"portfolio/tests/mocks"
)

func TestBreakerRepository_OpensAfterFailures(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockContentRepository)
	repo.On("Load", ctx).Return(entities.Document{}, errors.New("timeout"))

	cfg := DefaultCircuitBreakerConfig("content")
	cfg.MinRequests = 3
	cfg.Timeout = time.Hour
	breaker := NewBreakerRepository(repo, cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := breaker.Load(ctx)
		assert.ErrorContains(t, err, "timeout")
	}
	assert.Equal(t, gobreaker.StateOpen, breaker.State())

	_, err := breaker.Load(ctx)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeUnavailable))
	repo.AssertNumberOfCalls(t, "Load", 3)
}

func TestBreakerRepository_PassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockContentRepository)
	doc := entities.Document{Hero: entities.Hero{Name: "Ada"}}
	repo.On("Load", ctx).Return(doc, nil)
	repo.On("Save", ctx, doc).Return(nil)

	breaker := NewBreakerRepository(repo, DefaultCircuitBreakerConfig("content"), zap.NewNop())

	got, err := breaker.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Hero.Name)
	assert.NoError(t, breaker.Save(ctx, doc))
	assert.Equal(t, gobreaker.StateClosed, breaker.State())
}

func TestInstrumentedRepository(t *testing.T) {
	ctx := context.Background()
	observability.ResetForTesting()
	metrics := observability.NewCollector("persistence_test")
	defer observability.ResetForTesting()

	repo := new(mocks.MockContentRepository)
	repo.On("Load", mock.Anything).Return(entities.Document{}, nil)
	repo.On("Save", mock.Anything, entities.Document{}).Return(errors.New("disk full"))

	instrumented := NewInstrumentedRepository(repo, "file", observability.NewNoopTracer(), metrics)

	_, err := instrumented.Load(ctx)
	require.NoError(t, err)
	assert.Error(t, instrumented.Save(ctx, entities.Document{}))

	families, err := metrics.GetRegistry().Gather()
	require.NoError(t, err)
	statuses := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "persistence_test_store_operations_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			statuses[labels["operation"]+"/"+labels["status"]] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{"load/success": 1, "save/error": 1}, statuses)
}
