package di

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio/application/commands"
	commandhandlers "portfolio/application/commands/handlers"
	"portfolio/application/queries"
	"portfolio/domain/core/entities"
	"portfolio/infrastructure/config"
	"portfolio/infrastructure/messaging/eventbridge"
	"portfolio/pkg/observability"
)

func TestInMemoryCache(t *testing.T) {
	hits := prometheus.NewCounter(prometheus.CounterOpts{Name: "hits"})
	misses := prometheus.NewCounter(prometheus.CounterOpts{Name: "misses"})
	cache := NewInMemoryCache(time.Hour, hits, misses)
	defer cache.Stop()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", 1, 60))
	require.NoError(t, cache.Set(ctx, "skip", 2, 0))

	v, ok := cache.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = cache.Get(ctx, "skip")
	assert.False(t, ok, "zero ttl is not cached")

	now = now.Add(61 * time.Second)
	_, ok = cache.Get(ctx, "a")
	assert.False(t, ok, "expired")
	assert.Equal(t, 1, cache.Len())
	cache.sweep()
	assert.Equal(t, 0, cache.Len())

	require.NoError(t, cache.Set(ctx, "b", 3, 60))
	generation := cache.Generation()
	require.NoError(t, cache.Clear(ctx))
	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, generation+1, cache.Generation())

	assert.Equal(t, 1.0, counterValue(hits))
	assert.Equal(t, 2.0, counterValue(misses))

	cache.Stop()
	cache.Stop()
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	_ = c.Write(&m)
	return m.GetCounter().GetValue()
}

// gatedRepository holds the first Load after it has read the document until
// release is closed.
type gatedRepository struct {
	mu      sync.Mutex
	doc     entities.Document
	loading chan struct{}
	release chan struct{}
	gated   bool
}

func (r *gatedRepository) Load(ctx context.Context) (entities.Document, error) {
	r.mu.Lock()
	doc := r.doc
	gate := !r.gated
	r.gated = true
	r.mu.Unlock()

	if gate {
		close(r.loading)
		<-r.release
	}
	return doc, nil
}

func (r *gatedRepository) Save(ctx context.Context, doc entities.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
	return nil
}

func TestQueryCache_ReadOverlappingSaveIsNotCached(t *testing.T) {
	observability.ResetForTesting()
	metrics := observability.NewCollector("test")
	cfg := config.Defaults()

	repo := &gatedRepository{
		doc:     entities.Document{Hero: entities.Hero{Name: "Old"}},
		loading: make(chan struct{}),
		release: make(chan struct{}),
	}
	cache := NewInMemoryCache(time.Hour, nil, nil)
	defer cache.Stop()

	queryBus, err := ProvideQueryBus(repo, cache, cfg, metrics, zap.NewNop())
	require.NoError(t, err)
	writer := commandhandlers.NewDocumentWriter(repo, cache, eventbridge.NewLoggingPublisher(zap.NewNop()), zap.NewNop())
	save := commandhandlers.NewSaveContentHandler(writer, cfg.ContentKey, metrics, zap.NewNop())

	ctx := context.Background()
	stale := make(chan entities.Document, 1)
	go func() {
		result, err := queryBus.Ask(ctx, queries.GetContentQuery{})
		if err != nil {
			stale <- entities.Document{}
			return
		}
		stale <- result.(entities.Document)
	}()

	<-repo.loading
	require.NoError(t, save.Handle(ctx, commands.SaveContentCommand{
		Document: entities.Document{Hero: entities.Hero{Name: "New"}},
	}))
	close(repo.release)

	assert.Equal(t, "Old", (<-stale).Hero.Name, "the overlapping read still answers its caller")
	assert.Equal(t, 0, cache.Len(), "a result loaded across a clear is not stored")

	result, err := queryBus.Ask(ctx, queries.GetContentQuery{})
	require.NoError(t, err)
	assert.Equal(t, "New", result.(entities.Document).Hero.Name)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	content := filepath.Join(dir, "content.json")
	require.NoError(t, os.WriteFile(content, []byte(`{"hero":{"name":"Ada"},"strategy":{"points":["a"]},"timeline":[{"id":"m1","role":"Dev","phase":"early"}]}`), 0o644))

	cfg := config.Defaults()
	cfg.LogLevel = "error"
	cfg.ContentFile = content
	cfg.UploadDir = filepath.Join(dir, "uploads")
	cfg.AdminPassword = "pw"
	return cfg
}

func TestInitializeContainer_FileBackend(t *testing.T) {
	observability.ResetForTesting()
	cfg := testConfig(t)

	c, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	assert.Nil(t, c.Watcher)
	assert.IsType(t, &eventbridge.LoggingPublisher{}, c.Publisher)

	ctx := context.Background()
	result, err := c.QueryBus.Ask(ctx, queries.GetContentQuery{})
	require.NoError(t, err)
	doc := result.(entities.Document)
	assert.Equal(t, "Ada", doc.Hero.Name)
	assert.Equal(t, 1, c.Cache.Len(), "content query is cached")

	doc.Hero.Name = "Grace"
	require.NoError(t, c.CommandBus.Send(ctx, commands.SaveContentCommand{Document: doc}))
	assert.Equal(t, 0, c.Cache.Len(), "save clears the cache")

	result, err = c.QueryBus.Ask(ctx, queries.GetContentQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Grace", result.(entities.Document).Hero.Name)
}

func TestInitializeContainer_WatchesContentFile(t *testing.T) {
	observability.ResetForTesting()
	cfg := testConfig(t)
	cfg.WatchContent = true

	c, cleanup, err := InitializeContainer(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	require.NotNil(t, c.Watcher)

	_, err = c.QueryBus.Ask(context.Background(), queries.GetContentQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, c.Cache.Len())

	require.NoError(t, os.WriteFile(cfg.ContentFile, []byte(`{"hero":{"name":"Edited"}}`), 0o644))

	assert.Eventually(t, func() bool { return c.Cache.Len() == 0 }, 3*time.Second, 50*time.Millisecond)
}

func TestInitializeContainer_BadLogLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogLevel = "loud"

	_, _, err := InitializeContainer(context.Background(), cfg)
	assert.ErrorContains(t, err, "invalid log level")
}
