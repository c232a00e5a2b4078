package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"bondify-be/internal/eventbus"
	"bondify-be/internal/pkg/logger"
	"bondify-be/internal/websocket"
	"bondify-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []websocket.Message
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, msg websocket.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, msg)
}

func (b *recordingBroadcaster) snapshot() []websocket.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]websocket.Message(nil), b.messages...)
}

func TestPackAnnouncer_ForwardsPackEvents(t *testing.T) {
	bus := eventbus.NewChannelBus(logger.NewNopLogger())
	defer bus.Close()

	rec := &recordingBroadcaster{}
	require.NoError(t, NewPackAnnouncer(bus, rec).Start())

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, events.New(eventbus.UserCreated, map[string]interface{}{"username": "sam"})))
	require.NoError(t, bus.Publish(ctx, events.New(eventbus.PackCreated, map[string]interface{}{"title": "Shared Dreams"})))
	require.NoError(t, bus.Publish(ctx, events.New(eventbus.PackQuestionsAdded, map[string]interface{}{"count": 2})))

	require.Eventually(t, func() bool { return len(rec.snapshot()) == 2 }, 2*time.Second, 10*time.Millisecond)

	types := map[string]bool{}
	for _, m := range rec.snapshot() {
		types[m.Type] = true
	}
	assert.True(t, types[eventbus.PackCreated])
	assert.True(t, types[eventbus.PackQuestionsAdded])
	assert.False(t, types[eventbus.UserCreated])
}
