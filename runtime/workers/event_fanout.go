package workers

import (
	"chat-vault/contract"
	"chat-vault/domain/event"
	"context"
	"log/slog"
	"time"
)

// EventFanout delivers published events to the connections of their topic.
//
// Delivery is best-effort and at-most-once, without retries. Events are
// taken from a single queue and handed to each sink in turn, which keeps
// the order of a topic on every connection. A sink gets sinkTimeout to
// accept an event before it is skipped.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      <-chan event.Event
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, registry contract.IRegistry,
	events <-chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{log: log, registry: registry, events: events, sinkTimeout: sinkTimeout}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fan-out")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event queue closed")
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout hands evt to every sink subscribed to its topic.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	for _, sink := range w.registry.GetSinksForTopic(evt.Topic) {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Debug("Event dropped for one connection", "topic", evt.Topic, "event", evt.Type, "error", err)
		}
		cancel()
	}
}
