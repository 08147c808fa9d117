package event

import (
	"chat-vault/domain"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	ConversationCreatedType Type = "conversation.created"
	ConversationUpdatedType Type = "conversation.updated"
	MessageSentType         Type = "message.sent"
	MessageReadType         Type = "message.read"
	MessageEditedType       Type = "message.edited"
	MessageDeletedType      Type = "message.deleted"
	TypingType              Type = "typing"

	LockedMessageSentType Type = "LOCKED_MESSAGE_SENT"
	MediaAttachedType     Type = "MEDIA_ATTACHED"
)

// Event is the envelope handed to a transport or to an in-process sink.
type Event struct {
	Topic   string    `json:"topic"`
	Type    Type      `json:"type"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

func New(topic string, t Type, payload any) Event {
	return Event{Topic: topic, Type: t, Payload: payload, At: time.Now().UTC()}
}

// ConversationTopic is the real-time channel of a conversation.
func ConversationTopic(conversationID uuid.UUID) string {
	return "conversation:" + conversationID.String()
}

// UserTopic is the personal channel of a user, used for conversation changes.
func UserTopic(userID string) string {
	return "user:" + userID
}

type TypingSignal struct {
	ConversationID uuid.UUID `json:"conversationId"`
	UserID         string    `json:"userId"`
	Username       string    `json:"username"`
	IsTyping       bool      `json:"isTyping"`
	Timestamp      time.Time `json:"timestamp"`
}

type MessageRead struct {
	MessageID      uuid.UUID `json:"messageId"`
	ConversationID uuid.UUID `json:"conversationId"`
	UserID         string    `json:"userId"`
	ReadAt         time.Time `json:"readAt"`
}

type MessageDeleted struct {
	MessageID      uuid.UUID `json:"messageId"`
	ConversationID uuid.UUID `json:"conversationId"`
	DeletedAt      time.Time `json:"deletedAt"`
}

// LockedMessageSent is informational: payment capture happens elsewhere.
type LockedMessageSent struct {
	MessageID      uuid.UUID
	ConversationID uuid.UUID
	SenderID       string
	Price          domain.Price
}

type MediaAttached struct {
	MessageID uuid.UUID
	Type      domain.MessageType
	MediaIDs  []string
}
