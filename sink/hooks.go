package sink

import (
	"chat-vault/domain/event"
	"context"
	"log/slog"
)

// MonetizationLog records locked sends for the payment side.
// It never captures money.
type MonetizationLog struct {
	log *slog.Logger
}

func NewMonetizationLog(log *slog.Logger) *MonetizationLog {
	return &MonetizationLog{log: log}
}

func (m *MonetizationLog) LockedMessageSent(_ context.Context, evt event.LockedMessageSent) error {
	m.log.Info("Locked message sent",
		"message_id", evt.MessageID,
		"conversation_id", evt.ConversationID,
		"sender_id", evt.SenderID,
		"amount", evt.Price.Amount,
		"currency", evt.Price.Currency)
	return nil
}

// MediaLog stands in for the transcoding pipeline, which lives outside
// this process and only knows media references.
type MediaLog struct {
	log *slog.Logger
}

func NewMediaLog(log *slog.Logger) *MediaLog {
	return &MediaLog{log: log}
}

func (m *MediaLog) Process(_ context.Context, evt event.MediaAttached) error {
	m.log.Info("Media attached", "message_id", evt.MessageID, "type", evt.Type, "media_count", len(evt.MediaIDs))
	return nil
}
