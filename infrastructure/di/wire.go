//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	commandhandlers "portfolio/application/commands/handlers"
	"portfolio/application/ports"
	"portfolio/application/services"
	"portfolio/infrastructure/config"
	"portfolio/infrastructure/persistence"
	"portfolio/infrastructure/storage"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideTracer,
	ProvideAWSConfig,
	ProvideContentRepository,
	wire.Bind(new(ports.ContentRepository), new(*persistence.BreakerRepository)),
	ProvideInMemoryCache,
	wire.Bind(new(ports.Cache), new(*InMemoryCache)),
	ProvideContentWatcher,
	ProvideEventPublisher,
	ProvideImageStore,
	wire.Bind(new(ports.ImageStore), new(*storage.LocalImageStore)),
	ProvideRateLimiter,
	ProvideSessionService,
	services.NewUploadService,
	commandhandlers.NewDocumentWriter,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container. The returned cleanup
// stops background work and flushes telemetry.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
