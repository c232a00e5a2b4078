package eventbus

import (
	"context"
	"testing"
	"time"

	"bondify-be/internal/pkg/logger"
	"bondify-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelBus_DeliversMatchingEvents(t *testing.T) {
	bus := NewChannelBus(logger.NewNopLogger())
	defer bus.Close()

	got := make(chan events.Event, 4)
	require.NoError(t, bus.Subscribe("events.PACK_CREATED", "test", func(_ context.Context, e events.Event) error {
		got <- e
		return nil
	}))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, events.New(UserCreated, map[string]interface{}{"id": 1})))
	require.NoError(t, bus.Publish(ctx, events.New(PackCreated, map[string]interface{}{"title": "Shared Dreams"})))

	select {
	case e := <-got:
		assert.Equal(t, PackCreated, e.EventType())
		assert.Equal(t, "Shared Dreams", e.Payload()["title"])
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}

	select {
	case e := <-got:
		t.Fatalf("unexpected event %s", e.EventType())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConnect_FallsBackWithoutNats(t *testing.T) {
	bus := Connect("", logger.NewNopLogger())
	defer bus.Close()

	_, ok := bus.(*ChannelBus)
	assert.True(t, ok)
}
