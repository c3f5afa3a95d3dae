package eventbridge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"portfolio/domain/events"
)

type fakeClient struct {
	calls  []*eventbridge.PutEventsInput
	failed int32
	err    error
}

func (f *fakeClient) PutEvents(ctx context.Context, in *eventbridge.PutEventsInput, _ ...func(*eventbridge.Options)) (*eventbridge.PutEventsOutput, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	out := &eventbridge.PutEventsOutput{FailedEntryCount: f.failed}
	for i := range in.Entries {
		entry := types.PutEventsResultEntry{}
		if int32(i) < f.failed {
			entry.ErrorCode = aws.String("InternalFailure")
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

var at = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestPublisher_Publish(t *testing.T) {
	client := &fakeClient{}
	p := NewPublisher(client, "portfolio-bus", "portfolio.content", zap.NewNop())

	require.NoError(t, p.Publish(context.Background(), events.NewImageUploaded("/uploads/a.png", 42, at)))

	require.Len(t, client.calls, 1)
	entry := client.calls[0].Entries[0]
	assert.Equal(t, "portfolio-bus", aws.ToString(entry.EventBusName))
	assert.Equal(t, "portfolio.content", aws.ToString(entry.Source))
	assert.Equal(t, events.TypeImageUploaded, aws.ToString(entry.DetailType))
	assert.Equal(t, at, aws.ToTime(entry.Time))

	var detail map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(entry.Detail)), &detail))
	assert.Equal(t, "/uploads/a.png", detail["url"])
	assert.Equal(t, float64(42), detail["size"])
}

func TestPublisher_PublishBatchChunks(t *testing.T) {
	client := &fakeClient{}
	p := NewPublisher(client, "bus", "src", zap.NewNop())

	batch := make([]events.DomainEvent, 23)
	for i := range batch {
		batch[i] = events.NewContentSaved("default", i, 0, at)
	}
	require.NoError(t, p.PublishBatch(context.Background(), batch))

	require.Len(t, client.calls, 3)
	assert.Len(t, client.calls[0].Entries, 10)
	assert.Len(t, client.calls[2].Entries, 3)

	require.NoError(t, p.PublishBatch(context.Background(), nil))
	assert.Len(t, client.calls, 3)
}

func TestPublisher_Failures(t *testing.T) {
	event := events.NewContentSaved("default", 1, 1, at)

	client := &fakeClient{err: errors.New("throttled")}
	err := NewPublisher(client, "bus", "src", zap.NewNop()).Publish(context.Background(), event)
	assert.ErrorContains(t, err, "throttled")

	core, logs := observer.New(zapcore.ErrorLevel)
	client = &fakeClient{failed: 1}
	err = NewPublisher(client, "bus", "src", zap.New(core)).Publish(context.Background(), event)
	assert.EqualError(t, err, "1 events failed to publish")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "InternalFailure", logs.All()[0].ContextMap()["errorCode"])
}

func TestLoggingPublisher(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewLoggingPublisher(zap.New(core))

	require.NoError(t, p.PublishBatch(context.Background(), []events.DomainEvent{
		events.NewContentSaved("default", 2, 3, at),
		events.NewStrategyRearranged("default", nil, at),
	}))

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, events.TypeStrategyRearranged, logs.All()[1].ContextMap()["eventType"])
}
