package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"portfolio/application/ports"
	"portfolio/domain/core/entities"
	pkgerrors "portfolio/pkg/errors"
)

// CircuitBreakerConfig holds configuration for circuit breaker
type CircuitBreakerConfig struct {
	Name        string
	MaxRequests uint32
	Interval    time.Duration
	Timeout     time.Duration
	// ReadyToTrip function determines when to trip the circuit breaker
	FailureThreshold float64
	MinRequests      uint32
}

// DefaultCircuitBreakerConfig returns a default configuration for circuit breaker
func DefaultCircuitBreakerConfig(name string) CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Name:             name,
		MaxRequests:      1,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.8,
		MinRequests:      5,
	}
}

// BreakerRepository stops calling a failing store for a while so a slow
// backend cannot pile up requests. While open every call fails fast with an
// UNAVAILABLE error.
type BreakerRepository struct {
	next ports.ContentRepository
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerRepository wraps next with a circuit breaker
func NewBreakerRepository(next ports.ContentRepository, config CircuitBreakerConfig, logger *zap.Logger) *BreakerRepository {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Only trip if we have enough requests to make a decision
			if counts.Requests < config.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= config.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			// A cancelled request says nothing about the store's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerRepository{next: next, cb: cb}
}

// Load implements ports.ContentRepository
func (r *BreakerRepository) Load(ctx context.Context) (entities.Document, error) {
	result, err := r.cb.Execute(func() (interface{}, error) {
		return r.next.Load(ctx)
	})
	if err != nil {
		return entities.Document{}, r.translate(err)
	}
	return result.(entities.Document), nil
}

// Save implements ports.ContentRepository
func (r *BreakerRepository) Save(ctx context.Context, doc entities.Document) error {
	_, err := r.cb.Execute(func() (interface{}, error) {
		return nil, r.next.Save(ctx, doc)
	})
	return r.translate(err)
}

// State reports the breaker state, for readiness checks.
func (r *BreakerRepository) State() gobreaker.State {
	return r.cb.State()
}

func (r *BreakerRepository) translate(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return pkgerrors.NewUnavailableError("content store").WithCause(err)
	}
	return err
}
