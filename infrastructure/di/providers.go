package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"portfolio/application/commands"
	"portfolio/application/commands/bus"
	commandhandlers "portfolio/application/commands/handlers"
	"portfolio/application/ports"
	"portfolio/application/queries"
	querybus "portfolio/application/queries/bus"
	queryhandlers "portfolio/application/queries/handlers"
	"portfolio/application/services"
	"portfolio/infrastructure/config"
	"portfolio/infrastructure/messaging/eventbridge"
	"portfolio/infrastructure/persistence"
	"portfolio/infrastructure/persistence/dynamodb"
	"portfolio/infrastructure/persistence/file"
	"portfolio/infrastructure/storage"
	"portfolio/pkg/auth"
	"portfolio/pkg/observability"
)

const cacheSweepInterval = time.Minute

// ProvideLogger creates a new logger instance. LOG_LEVEL overrides the
// environment's default level.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		zapCfg.Level = level
	}

	return zapCfg.Build()
}

// ProvideMetrics creates the Prometheus collector
func ProvideMetrics() *observability.Collector {
	return observability.NewCollector("portfolio")
}

// ProvideTracer exports spans over OTLP when tracing is enabled and records
// nothing otherwise.
func ProvideTracer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*observability.Tracer, func(), error) {
	if !cfg.EnableTracing {
		return observability.NewNoopTracer(), func() {}, nil
	}

	tracer, err := observability.NewTracer(ctx, observability.TracingConfig{
		ServiceName: "portfolio",
		Environment: cfg.Environment,
		Endpoint:    cfg.OTELEndpoint,
		SampleRate:  cfg.TraceSampleRate,
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Failed to flush traces", zap.Error(err))
		}
	}
	return tracer, cleanup, nil
}

// ProvideAWSConfig creates AWS configuration. Credentials are resolved
// lazily, so this succeeds on machines that only use the file backend.
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideContentRepository builds the configured backend and wraps it with
// tracing, metrics and a circuit breaker.
func ProvideContentRepository(
	cfg *config.Config,
	awsCfg aws.Config,
	tracer *observability.Tracer,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*persistence.BreakerRepository, error) {
	var base ports.ContentRepository
	switch cfg.StoreBackend {
	case config.BackendFile:
		base = file.NewRepository(cfg.ContentFile, logger)
	case config.BackendDynamoDB:
		base = dynamodb.NewContentRepository(
			awsdynamodb.NewFromConfig(awsCfg),
			cfg.DynamoDBTable,
			cfg.ContentKey,
			logger,
		)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	instrumented := persistence.NewInstrumentedRepository(base, cfg.StoreBackend, tracer, metrics)

	breakerCfg := persistence.DefaultCircuitBreakerConfig("content-store")
	if cfg.BreakerMaxFailures > 0 {
		breakerCfg.MinRequests = uint32(cfg.BreakerMaxFailures)
	}
	if cfg.BreakerOpenTimeout > 0 {
		breakerCfg.Timeout = cfg.BreakerOpenTimeout
	}

	return persistence.NewBreakerRepository(instrumented, breakerCfg, logger), nil
}

// ProvideInMemoryCache creates the query cache
func ProvideInMemoryCache(metrics *observability.Collector) (*InMemoryCache, func()) {
	cache := NewInMemoryCache(cacheSweepInterval, metrics.CacheHits, metrics.CacheMisses)
	return cache, cache.Stop
}

// ProvideContentWatcher invalidates the cache whenever the content file
// changes on disk. It returns nil unless the file backend is watched.
func ProvideContentWatcher(
	cfg *config.Config,
	cache ports.Cache,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*file.Watcher, func(), error) {
	if !cfg.WatchContent || cfg.StoreBackend != config.BackendFile || cfg.IsLambda {
		return nil, func() {}, nil
	}

	watcher, err := file.NewWatcher(cfg.ContentFile, file.DefaultDebounce, logger)
	if err != nil {
		return nil, nil, err
	}

	watcher.OnChange(func() {
		if err := cache.Clear(context.Background()); err != nil {
			logger.Warn("Failed to clear cache after content change", zap.Error(err))
			return
		}
		metrics.ExternalReloads.Inc()
		logger.Info("Content file changed, cache cleared", zap.String("path", cfg.ContentFile))
	})

	return watcher, watcher.Stop, nil
}

// ProvideEventPublisher publishes to EventBridge when a bus is configured
// and only logs events otherwise.
func ProvideEventPublisher(cfg *config.Config, awsCfg aws.Config, logger *zap.Logger) ports.EventPublisher {
	if cfg.EventBusName == "" {
		return eventbridge.NewLoggingPublisher(logger)
	}
	return eventbridge.NewPublisher(
		awseventbridge.NewFromConfig(awsCfg),
		cfg.EventBusName,
		cfg.EventSource,
		logger,
	)
}

// ProvideImageStore creates the local upload directory store
func ProvideImageStore(cfg *config.Config, logger *zap.Logger) *storage.LocalImageStore {
	return storage.NewLocalImageStore(cfg.UploadDir, cfg.UploadURLPrefix, logger)
}

// ProvideRateLimiter bounds login attempts per client address
func ProvideRateLimiter(cfg *config.Config) auth.RateLimiter {
	return auth.NewIPRateLimiter(cfg.LoginsPerMinute)
}

// ProvideSessionService creates the admin session service
func ProvideSessionService(
	cfg *config.Config,
	limiter auth.RateLimiter,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.SessionService {
	return services.NewSessionService(services.SessionConfig{
		Password:        cfg.AdminPassword,
		Secret:          cfg.AdminSecret,
		MaxAge:          cfg.SessionMaxAge,
		Secure:          cfg.IsProduction(),
		LoginsPerMinute: cfg.LoginsPerMinute,
	}, limiter, metrics, logger)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	writer *commandhandlers.DocumentWriter,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus(bus.LoggingMiddleware(logger.Sugar()))

	registrations := []struct {
		cmd     bus.Command
		handler bus.CommandHandler
	}{
		{commands.SaveContentCommand{}, commandhandlers.NewSaveContentHandler(writer, cfg.ContentKey, metrics, logger)},
		{commands.UpdateTimelinePositionsCommand{}, commandhandlers.NewUpdateTimelinePositionsHandler(writer, cfg.ContentKey, metrics, logger)},
		{commands.UpdateStrategyPositionsCommand{}, commandhandlers.NewUpdateStrategyPositionsHandler(writer, cfg.ContentKey, metrics, logger)},
		{commands.AttachMilestoneLogoCommand{}, commandhandlers.NewAttachMilestoneLogoHandler(writer, cfg.ContentKey, logger)},
	}

	for _, r := range registrations {
		if err := commandBus.Register(r.cmd, r.handler); err != nil {
			return nil, err
		}
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers. Every query
// is timed and cached until the next write clears the cache.
func ProvideQueryBus(
	repo ports.ContentRepository,
	cache ports.Cache,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	caching := querybus.NewCachingMiddleware(cache, cfg.CacheTTLSeconds)
	timing := querybus.NewMetricsMiddleware(metrics)

	registrations := []struct {
		query   querybus.Query
		handler querybus.QueryHandler
	}{
		{queries.GetContentQuery{}, queryhandlers.NewGetContentHandler(repo, logger)},
		{queries.GetTimelineLayoutQuery{}, queryhandlers.NewGetTimelineLayoutHandler(repo, metrics, logger)},
		{queries.GetStrategyLayoutQuery{}, queryhandlers.NewGetStrategyLayoutHandler(repo, logger)},
	}

	for _, r := range registrations {
		if err := queryBus.Register(r.query, caching.Wrap(timing.Wrap(r.handler))); err != nil {
			return nil, err
		}
	}

	return queryBus, nil
}
