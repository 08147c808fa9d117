package runtime

import (
	"chat-vault/contract"
	"chat-vault/domain/event"
	"chat-vault/observability"
	"context"
	"log/slog"
)

// Broadcaster publishes conversation events on the transport chosen at startup.
// Delivery is best-effort: failures are logged and counted, never returned.
type Broadcaster struct {
	transport contract.Transport
	log       *slog.Logger
	metrics   *observability.Metrics
}

func NewBroadcaster(transport contract.Transport, log *slog.Logger, metrics *observability.Metrics) *Broadcaster {
	return &Broadcaster{transport: transport, log: log, metrics: metrics}
}

func (b *Broadcaster) Publish(ctx context.Context, topic string, kind event.Type, payload any) {
	if err := b.transport.Publish(ctx, topic, kind, payload); err != nil {
		b.log.Warn("Broadcast failed", "topic", topic, "event", kind, "error", err)
		b.metrics.IncrBroadcastFailure(string(kind))
	}
}
