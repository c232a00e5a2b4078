package service

import (
	"context"
	"strings"

	"bondify-be/internal/eventbus"
	"bondify-be/internal/websocket"
	"bondify-be/pkg/events"
)

const packAnnouncerDurable = "pack-announcer"

type Broadcaster interface {
	Broadcast(ctx context.Context, msg websocket.Message)
}

// PackAnnouncer forwards pack events from the bus to websocket clients.
type PackAnnouncer struct {
	subscriber  eventbus.Subscriber
	broadcaster Broadcaster
}

func NewPackAnnouncer(subscriber eventbus.Subscriber, broadcaster Broadcaster) *PackAnnouncer {
	return &PackAnnouncer{subscriber: subscriber, broadcaster: broadcaster}
}

func (a *PackAnnouncer) Start() error {
	return a.subscriber.Subscribe("events.>", packAnnouncerDurable, a.handle)
}

func (a *PackAnnouncer) handle(ctx context.Context, event events.Event) error {
	if !strings.HasPrefix(event.EventType(), "PACK_") {
		return nil
	}
	a.broadcaster.Broadcast(ctx, websocket.Message{
		Type: event.EventType(),
		Data: event.Payload(),
	})
	return nil
}
