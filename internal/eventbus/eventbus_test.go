package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	received := make([]*Envelope, 0)
	_, err := bus.Subscribe(ctx, Filter{}, func(ctx context.Context, ev *Envelope) {
		received = append(received, ev)
	})
	require.NoError(t, err)

	ev := &Envelope{
		ID:        "test-1",
		Timestamp: time.Now().UTC(),
		Source:    "world",
		EventType: "BlockPlaced",
	}
	require.NoError(t, bus.Publish(ctx, ev))

	require.Len(t, received, 1)
	assert.Equal(t, "test-1", received[0].ID)

	stats := bus.Metrics()
	assert.Equal(t, uint64(1), stats.Published)
	assert.Equal(t, uint64(1), stats.Consumed)
}

func TestMemoryBus_Filter(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	placed := 0
	_, err := bus.Subscribe(ctx, Filter{Types: []string{"BlockPlaced"}}, func(ctx context.Context, ev *Envelope) {
		placed++
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, &Envelope{EventType: "BlockPlaced", Source: "world"}))
	require.NoError(t, bus.Publish(ctx, &Envelope{EventType: "BlockRemoved", Source: "world"}))

	assert.Equal(t, 1, placed, "Фильтр должен пропускать только события BlockPlaced")
}

func TestMemoryBus_Unsubscribe(t *testing.T) {
	bus := NewMemoryBus()
	ctx := context.Background()

	count := 0
	sub, err := bus.Subscribe(ctx, Filter{}, func(ctx context.Context, ev *Envelope) {
		count++
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(ctx, &Envelope{EventType: "BlockPlaced"}))
	sub.Unsubscribe()
	require.NoError(t, bus.Publish(ctx, &Envelope{EventType: "BlockPlaced"}))

	assert.Equal(t, 1, count, "После отписки события не должны доставляться")
}

func TestMemoryBus_DroppedOnCancelledContext(t *testing.T) {
	bus := NewMemoryBus()

	delivered := 0
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		delivered++
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = bus.Publish(ctx, &Envelope{EventType: "BlockPlaced", Source: "world"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, delivered, "Событие с отменённым контекстом не доставляется")

	stats := bus.Metrics()
	assert.Equal(t, uint64(0), stats.Published)
	assert.Equal(t, uint64(1), stats.Dropped, "Потерянное событие должно учитываться в Dropped")
}

func TestGlobalBus_NilSafe(t *testing.T) {
	// Неинициализированная глобальная шина не должна паниковать
	Init(nil)
	assert.NoError(t, Publish(context.Background(), &Envelope{EventType: "BlockPlaced"}))
}
