package domain

import (
	"github.com/samber/lo"
)

// MessageView is what a given viewer is allowed to see of a message.
type MessageView struct {
	MessageMeta
	Content       *string  `json:"content"`
	MediaIDs      []string `json:"mediaIds,omitempty"`
	ContentLocked bool     `json:"contentLocked"`
	// ContentUnavailable marks a body the server holds but cannot decode.
	ContentUnavailable bool      `json:"contentUnavailable,omitempty"`
	Entitlement        *Decision `json:"entitlement,omitempty"`
}

func RevealedView(m Message, c Conversation, decision *Decision) MessageView {
	meta := m.MessageMeta
	meta.Status = meta.AggregateStatus(c)
	return MessageView{
		MessageMeta: meta,
		Content:     m.Body.Text(),
		MediaIDs:    m.Body.MediaIDs(),
		Entitlement: decision,
	}
}

// LockedPlaceholder carries the metadata and the price, never the body.
func LockedPlaceholder(meta MessageMeta, c Conversation, decision Decision) MessageView {
	meta.Status = meta.AggregateStatus(c)
	return MessageView{
		MessageMeta:   meta,
		ContentLocked: true,
		Entitlement:   &decision,
	}
}

func TombstoneView(meta MessageMeta, c Conversation) MessageView {
	meta.Status = meta.AggregateStatus(c)
	return MessageView{MessageMeta: meta}
}

// UnavailableView stands in for a message whose stored content cannot be decoded.
func UnavailableView(meta MessageMeta, c Conversation, decision *Decision) MessageView {
	meta.Status = meta.AggregateStatus(c)
	return MessageView{
		MessageMeta:        meta,
		ContentUnavailable: true,
		Entitlement:        decision,
	}
}

// PaymentRequired is the decision shown to viewers who have not bought a locked message.
func PaymentRequired(meta MessageMeta) Decision {
	d := Decision{HasAccess: false, Reason: ReasonPaymentRequired}
	if meta.Price != nil {
		d.Price = lo.ToPtr(meta.Price.Amount)
		d.Currency = lo.ToPtr(meta.Price.Currency)
	}
	return d
}

// BroadcastView is the representation fanned out to every participant.
// Locked messages go out as placeholders; entitled viewers fetch the body.
func BroadcastView(m Message, c Conversation) MessageView {
	if m.Locked {
		return LockedPlaceholder(m.MessageMeta, c, PaymentRequired(m.MessageMeta))
	}
	return RevealedView(m, c, nil)
}
