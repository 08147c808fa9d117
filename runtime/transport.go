package runtime

import (
	"chat-vault/domain/event"
	"chat-vault/errors"
	"context"
)

// RegistryTransport hands events to the in-process fan-out.
// Publish never blocks: a full queue refuses the event.
type RegistryTransport struct {
	events chan<- event.Event
}

func NewRegistryTransport(events chan<- event.Event) *RegistryTransport {
	return &RegistryTransport{events: events}
}

func (t *RegistryTransport) Publish(ctx context.Context, topic string, kind event.Type, payload any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	select {
	case t.events <- event.New(topic, kind, payload):
		return nil
	default:
		return errors.ErrTransportBackpressure
	}
}
