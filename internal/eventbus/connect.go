package eventbus

import (
	"bondify-be/internal/pkg/logger"
	pktNats "bondify-be/pkg/nats"
)

// Connect prefers NATS and falls back to the in-process bus when natsURL is
// empty or unreachable.
func Connect(natsURL string, log logger.ILogger) Bus {
	if natsURL != "" {
		bus, err := pktNats.Connect(natsURL)
		if err == nil {
			log.Info("EventBus", "Using NATS JetStream", map[string]interface{}{"url": natsURL})
			return bus
		}
		log.Warn("EventBus", "NATS unavailable, using in-process bus", map[string]interface{}{"error": err.Error()})
	}
	return NewChannelBus(log)
}
