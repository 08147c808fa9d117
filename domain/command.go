package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

type CreateConversationCommand struct {
	ParticipantIDs []string         `json:"participantIds" validate:"required,dive,required"`
	InitiatorID    string           `json:"-" validate:"required"`
	Kind           ConversationKind `json:"kind" validate:"required,oneof=direct group"`
	OwnerID        *string          `json:"ownerId,omitempty"`
	Settings       *Settings        `json:"settings,omitempty"`
}

// SendMessageCommand mirrors the send wire contract.
type SendMessageCommand struct {
	ConversationID uuid.UUID   `json:"conversationId" validate:"required"`
	SenderID       string      `json:"senderId" validate:"required"`
	Type           MessageType `json:"type" validate:"required,oneof=text image video audio system"`
	Content        *string     `json:"content,omitempty" validate:"omitempty,max=10000"`
	MediaIDs       []string    `json:"mediaIds,omitempty" validate:"omitempty,max=20,dive,required"`
	IsLocked       bool        `json:"isLocked"`
	Price          *int64      `json:"price,omitempty"`
	Currency       *string     `json:"currency,omitempty" validate:"omitempty,len=3"`
	ReplyToID      *uuid.UUID  `json:"replyToId,omitempty"`
}

type GetMessagesQuery struct {
	ConversationID uuid.UUID
	Limit          int
	Before         *time.Time
	After          *time.Time
}

// PageSize applies the default and reports whether the requested size is allowed.
func (q GetMessagesQuery) PageSize() (int, bool) {
	if q.Limit == 0 {
		return DefaultPageSize, true
	}
	return q.Limit, q.Limit >= 1 && q.Limit <= MaxPageSize
}

type EditMessageCommand struct {
	MessageID uuid.UUID `json:"-" validate:"required"`
	EditorID  string    `json:"-" validate:"required"`
	Content   string    `json:"content" validate:"required,max=10000"`
}

type UpdateSettingsCommand struct {
	ConversationID uuid.UUID `json:"-" validate:"required"`
	ActorID        string    `json:"-" validate:"required"`
	Settings       Settings  `json:"settings"`
}
