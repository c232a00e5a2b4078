package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bondify-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastToLocalClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	a := &Client{ID: "a", Hub: hub, Send: make(chan []byte, 1)}
	b := &Client{ID: "b", Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- a
	hub.register <- b
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(ctx, Message{Type: "PACK_CREATED", Data: map[string]string{"title": "Building Trust"}})

	for _, c := range []*Client{a, b} {
		var got Message
		require.NoError(t, json.Unmarshal(<-c.Send, &got))
		assert.Equal(t, "PACK_CREATED", got.Type)
	}
}

func TestHub_DropsSlowClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	slow := &Client{ID: "slow", Hub: hub, Send: make(chan []byte)}
	hub.register <- slow
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(ctx, Message{Type: "PACK_CREATED"})

	assert.Equal(t, 0, hub.ClientCount())
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_ConsumeClusterStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil, logger.NewNopLogger())
	go hub.Run(ctx)

	c := &Client{ID: "c", Hub: hub, Send: make(chan []byte, 2)}
	hub.register <- c
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	peer, err := json.Marshal(clusterEnvelope{Origin: "other-instance", Message: json.RawMessage(`{"type":"PACK_CREATED"}`)})
	require.NoError(t, err)
	own, err := json.Marshal(clusterEnvelope{Origin: hub.id, Message: json.RawMessage(`{"type":"ECHO"}`)})
	require.NoError(t, err)

	ch := make(chan *redis.Message, 2)
	ch <- &redis.Message{Payload: string(own)}
	ch <- &redis.Message{Payload: string(peer)}

	consumeCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		hub.consumeCluster(consumeCtx, ch)
		close(done)
	}()

	var got Message
	require.NoError(t, json.Unmarshal(<-c.Send, &got))
	assert.Equal(t, "PACK_CREATED", got.Type, "own relays are skipped")

	// The channel stays open; only the context ends the loop.
	stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer kept running after its context ended")
	}
}
