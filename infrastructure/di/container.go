package di

import (
	"go.uber.org/zap"

	"portfolio/application/commands/bus"
	"portfolio/application/ports"
	querybus "portfolio/application/queries/bus"
	"portfolio/application/services"
	"portfolio/infrastructure/config"
	"portfolio/infrastructure/persistence"
	"portfolio/infrastructure/persistence/file"
	"portfolio/infrastructure/storage"
	"portfolio/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *zap.Logger
	Metrics    *observability.Collector
	Tracer     *observability.Tracer
	Store      *persistence.BreakerRepository
	Cache      *InMemoryCache
	Watcher    *file.Watcher
	Publisher  ports.EventPublisher
	Images     *storage.LocalImageStore
	Sessions   *services.SessionService
	Uploads    *services.UploadService
	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus
}
