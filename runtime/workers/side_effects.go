package workers

import (
	"chat-vault/contract"
	"chat-vault/domain/event"
	"context"
	"fmt"
	"log/slog"
)

// SideEffects runs the follow-ups of a send that must never slow it down:
// the monetization hook and media processing.
type SideEffects struct {
	log          *slog.Logger
	events       <-chan event.Event
	monetization contract.MonetizationHook
	media        contract.MediaProcessor
}

func NewSideEffects(log *slog.Logger, events <-chan event.Event,
	monetization contract.MonetizationHook, media contract.MediaProcessor) *SideEffects {
	return &SideEffects{log: log, events: events, monetization: monetization, media: media}
}

func (w *SideEffects) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping side effects")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Side effect queue closed")
				return nil
			}
			if err := w.Handle(ctx, evt); err != nil {
				w.log.Warn("Side effect failed", "event", evt.Type, "error", err)
			}
		}
	}
}

func (w *SideEffects) Handle(ctx context.Context, evt event.Event) error {
	switch payload := evt.Payload.(type) {
	case event.LockedMessageSent:
		return w.monetization.LockedMessageSent(ctx, payload)
	case event.MediaAttached:
		return w.media.Process(ctx, payload)
	default:
		return fmt.Errorf("unexpected side effect %q", evt.Type)
	}
}
