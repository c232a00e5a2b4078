// Package eventbus is the seam between services and the message transport.
// NATS JetStream carries events across instances; a Watermill in-process
// channel stands in when no NATS server is configured.
package eventbus

import (
	"context"

	"bondify-be/pkg/events"
	pktNats "bondify-be/pkg/nats"
)

const (
	UserCreated        = "USER_CREATED"
	PackCreated        = "PACK_CREATED"
	PackQuestionsAdded = "PACK_QUESTIONS_ADDED"
)

type Handler = pktNats.EventHandler

type Publisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type Subscriber interface {
	Subscribe(subject, durableName string, handler Handler) error
}

type Bus interface {
	Publisher
	Subscriber
	Close() error
}

var _ Bus = (*pktNats.Bus)(nil)
