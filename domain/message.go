// Package domain contains core concepts of the chat system.
// This file defines Messages, their bodies and the status machine.
package domain

import (
	"chat-vault/errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type MessageType string

const (
	TypeText   MessageType = "text"
	TypeImage  MessageType = "image"
	TypeVideo  MessageType = "video"
	TypeAudio  MessageType = "audio"
	TypeSystem MessageType = "system"
)

func (t MessageType) IsMedia() bool {
	return t == TypeImage || t == TypeVideo || t == TypeAudio
}

// Body is the kind-specific part of a message.
// Only the constructors of this package can build one, so an existing Body
// is always structurally valid.
type Body interface {
	Type() MessageType
	Text() *string
	MediaIDs() []string
	body()
}

type TextMessage struct {
	content string
}

func NewTextMessage(content string) (TextMessage, error) {
	if strings.TrimSpace(content) == "" {
		return TextMessage{}, errors.ErrEmptyContent
	}
	return TextMessage{content: content}, nil
}

func (TextMessage) Type() MessageType  { return TypeText }
func (m TextMessage) Text() *string    { return lo.ToPtr(m.content) }
func (TextMessage) MediaIDs() []string { return nil }
func (TextMessage) body()              {}
func (m TextMessage) Content() string  { return m.content }

// Rewrite returns a copy with its content transformed, keeping it non-empty.
func (m TextMessage) Rewrite(f func(string) string) TextMessage {
	rewritten := f(m.content)
	if strings.TrimSpace(rewritten) == "" {
		return m
	}
	return TextMessage{content: rewritten}
}

type MediaMessage struct {
	kind     MessageType
	mediaIDs []string
	caption  *string
}

func NewMediaMessage(kind MessageType, mediaIDs []string, caption *string) (MediaMessage, error) {
	if !kind.IsMedia() {
		return MediaMessage{}, errors.ErrUnknownMessageType
	}
	refs := lo.Uniq(lo.Filter(mediaIDs, func(id string, _ int) bool { return strings.TrimSpace(id) != "" }))
	if len(refs) == 0 {
		return MediaMessage{}, errors.ErrMissingMedia
	}
	if caption != nil && strings.TrimSpace(*caption) == "" {
		caption = nil
	}
	return MediaMessage{kind: kind, mediaIDs: refs, caption: caption}, nil
}

func (m MediaMessage) Type() MessageType  { return m.kind }
func (m MediaMessage) Text() *string      { return m.caption }
func (m MediaMessage) MediaIDs() []string { return append([]string(nil), m.mediaIDs...) }
func (MediaMessage) body()                {}

type SystemMessage struct {
	content string
}

func NewSystemMessage(content string) (SystemMessage, error) {
	if strings.TrimSpace(content) == "" {
		return SystemMessage{}, errors.ErrEmptyContent
	}
	return SystemMessage{content: content}, nil
}

func (SystemMessage) Type() MessageType  { return TypeSystem }
func (m SystemMessage) Text() *string    { return lo.ToPtr(m.content) }
func (SystemMessage) MediaIDs() []string { return nil }
func (SystemMessage) body()              {}

// NewBody builds the body matching a wire-level message type.
func NewBody(t MessageType, content *string, mediaIDs []string) (Body, error) {
	switch {
	case t == TypeText:
		return NewTextMessage(lo.FromPtr(content))
	case t == TypeSystem:
		return NewSystemMessage(lo.FromPtr(content))
	case t.IsMedia():
		return NewMediaMessage(t, mediaIDs, content)
	default:
		return nil, errors.ErrUnknownMessageType
	}
}

type Price struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func NewPrice(amount int64, currency string) (Price, error) {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return Price{}, errors.ErrPriceWithoutCurrency
	}
	if amount <= 0 {
		return Price{}, errors.ErrLockedWithoutPrice
	}
	return Price{Amount: amount, Currency: currency}, nil
}

type Status string

const (
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusFailed    Status = "failed"
)

var statusRank = map[Status]int{StatusSent: 0, StatusDelivered: 1, StatusRead: 2}

// CanTransitionTo enforces monotonic progress. Failed is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s == StatusFailed {
		return false
	}
	if next == StatusFailed {
		return true
	}
	current, ok := statusRank[s]
	target, known := statusRank[next]
	return ok && known && target >= current
}

type ReadReceipt struct {
	UserID string    `json:"userId"`
	ReadAt time.Time `json:"readAt"`
}

// MessageMeta holds everything about a message except its body.
// It is safe to expose whatever the viewer's entitlement is.
type MessageMeta struct {
	ID             uuid.UUID     `json:"id"`
	ConversationID uuid.UUID     `json:"conversationId"`
	SenderID       string        `json:"senderId"`
	Type           MessageType   `json:"type"`
	Locked         bool          `json:"isLocked"`
	Price          *Price        `json:"price,omitempty"`
	Status         Status        `json:"status"`
	ReadBy         []ReadReceipt `json:"readBy"`
	SentAt         time.Time     `json:"sentAt"`
	ReplyToID      *uuid.UUID    `json:"replyToId,omitempty"`
	EditedAt       *time.Time    `json:"editedAt,omitempty"`
	DeletedAt      *time.Time    `json:"deletedAt,omitempty"`
	Language       string        `json:"language,omitempty"`
}

type Message struct {
	MessageMeta
	Body Body
}

// NewMessage assembles a message about to be sent.
func NewMessage(conversationID uuid.UUID, senderID string, body Body, price *Price,
	replyToID *uuid.UUID, sentAt time.Time) (Message, error) {
	locked := price != nil
	if locked && price.Amount <= 0 {
		return Message{}, errors.ErrLockedWithoutPrice
	}
	return Message{
		MessageMeta: MessageMeta{
			ID:             uuid.New(),
			ConversationID: conversationID,
			SenderID:       senderID,
			Type:           body.Type(),
			Locked:         locked,
			Price:          price,
			Status:         StatusSent,
			ReadBy:         []ReadReceipt{},
			SentAt:         sentAt,
			ReplyToID:      replyToID,
		},
		Body: body,
	}, nil
}

func (m MessageMeta) IsDeleted() bool {
	return m.DeletedAt != nil
}

func (m MessageMeta) HasReadReceipt(userID string) bool {
	return lo.ContainsBy(m.ReadBy, func(r ReadReceipt) bool { return r.UserID == userID })
}

// AggregateStatus derives the status shown to clients.
// Receipts are the source of truth. A two-party conversation is read as
// soon as the counterpart has a receipt. A group message never goes past
// delivered, reached with the first receipt from someone else.
func (m MessageMeta) AggregateStatus(c Conversation) Status {
	if m.Status == StatusFailed {
		return m.Status
	}
	if c.Kind == KindDirect {
		counterpart, ok := c.Counterpart(m.SenderID)
		if ok && m.HasReadReceipt(counterpart) {
			return StatusRead
		}
		return m.Status
	}
	readByOther := lo.ContainsBy(m.ReadBy, func(r ReadReceipt) bool { return r.UserID != m.SenderID })
	if readByOther && m.Status.CanTransitionTo(StatusDelivered) {
		return StatusDelivered
	}
	return m.Status
}
