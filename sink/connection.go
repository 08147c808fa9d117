package sink

import (
	"chat-vault/domain/event"
	"chat-vault/errors"
	"context"
)

// ConnectionSink buffers the events of one streaming connection.
// The HTTP handler owning the connection drains Events.
type ConnectionSink struct {
	events chan event.Event
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{events: make(chan event.Event, bufferSize)}
}

// Consume is called by the fan-out.
// A full buffer drops the event: delivery is at-most-once.
func (s *ConnectionSink) Consume(ctx context.Context, e event.Event) error {
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrTransportBackpressure
	}
}

func (s *ConnectionSink) Events() <-chan event.Event {
	return s.events
}
