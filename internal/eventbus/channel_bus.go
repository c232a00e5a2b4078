package eventbus

import (
	"context"
	"sync"

	"bondify-be/internal/pkg/logger"
	"bondify-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// All events share one Watermill topic; subscribers filter by subject.
const channelTopic = "events"

// ChannelBus is an in-process Bus. Durable names are ignored: every
// subscriber sees every matching event published after it subscribed.
type ChannelBus struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewChannelBus(log logger.ILogger) *ChannelBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChannelBus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NopLogger{}),
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (b *ChannelBus) Publish(_ context.Context, event events.Event) error {
	data, err := events.Encode(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("subject", events.Subject(event))
	return b.pubSub.Publish(channelTopic, msg)
}

func (b *ChannelBus) Subscribe(subject, durableName string, handler Handler) error {
	messages, err := b.pubSub.Subscribe(b.ctx, channelTopic)
	if err != nil {
		return err
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for msg := range messages {
			b.dispatch(subject, durableName, handler, msg)
		}
	}()
	return nil
}

func (b *ChannelBus) dispatch(subject, durableName string, handler Handler, msg *message.Message) {
	if !events.Matches(subject, msg.Metadata.Get("subject")) {
		msg.Ack()
		return
	}

	event, err := events.Decode(msg.Payload)
	if err != nil {
		b.logger.Error("EventBus", "Dropping undecodable event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := handler(b.ctx, event); err != nil {
		b.logger.Warn("EventBus", "Event handler failed", map[string]interface{}{
			"consumer": durableName,
			"type":     event.EventType(),
			"error":    err.Error(),
		})
	}
	msg.Ack()
}

// Close stops delivery and waits for in-flight handlers.
func (b *ChannelBus) Close() error {
	b.cancel()
	err := b.pubSub.Close()
	b.wg.Wait()
	return err
}
