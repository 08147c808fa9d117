// Package domain contains core concepts of the chat system.
// This file defines Conversations and their participant invariants.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"chat-vault/errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type ConversationKind string

const (
	KindDirect ConversationKind = "direct"
	KindGroup  ConversationKind = "group"
)

const MaxParticipants = 10

func (k ConversationKind) Valid() bool {
	return k == KindDirect || k == KindGroup
}

// Settings are per-conversation switches for monetization and moderation.
type Settings struct {
	PPVEnabled        bool   `json:"ppvEnabled"`
	DefaultPrice      *Price `json:"defaultPrice,omitempty"`
	AllowMedia        bool   `json:"allowMedia"`
	ModerationEnabled bool   `json:"moderationEnabled"`
}

func DefaultSettings() Settings {
	return Settings{PPVEnabled: true, AllowMedia: true}
}

type Conversation struct {
	ID            uuid.UUID        `json:"id"`
	Kind          ConversationKind `json:"kind"`
	Participants  []string         `json:"participants"`
	OwnerID       *string          `json:"ownerId,omitempty"`
	CounterpartID *string          `json:"counterpartId,omitempty"`
	Settings      Settings         `json:"settings"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastMessageAt *time.Time       `json:"lastMessageAt,omitempty"`
	IsActive      bool             `json:"isActive"`
}

// CanonicalParticipants trims, deduplicates and sorts participant ids
// so that the same set always produces the same slice.
func CanonicalParticipants(ids []string) []string {
	cleaned := lo.FilterMap(ids, func(id string, _ int) (string, bool) {
		id = strings.TrimSpace(id)
		return id, id != ""
	})
	unique := lo.Uniq(cleaned)
	sort.Strings(unique)
	return unique
}

// ValidateParticipants checks the canonical set against the creation rules.
func ValidateParticipants(canonical []string, initiatorID string, kind ConversationKind) error {
	if !kind.Valid() {
		return errors.ErrInvalidKind
	}
	if len(canonical) == 0 || len(canonical) > MaxParticipants {
		return errors.ErrInvalidParticipants
	}
	if !lo.Contains(canonical, initiatorID) {
		return errors.ErrInvalidParticipants
	}
	if kind == KindDirect && len(canonical) > 2 {
		return errors.ErrInvalidParticipants
	}
	return nil
}

// PairKey identifies a direct conversation by its unordered participant pair.
func PairKey(canonical []string) (string, bool) {
	if len(canonical) != 2 {
		return "", false
	}
	return canonical[0] + ":" + canonical[1], true
}

func (c Conversation) HasParticipant(userID string) bool {
	return lo.Contains(c.Participants, userID)
}

func (c Conversation) IsOwner(userID string) bool {
	return c.OwnerID != nil && *c.OwnerID == userID
}

// Counterpart returns the other member of a two-party conversation.
func (c Conversation) Counterpart(userID string) (string, bool) {
	if c.Kind != KindDirect || len(c.Participants) != 2 {
		return "", false
	}
	return lo.Find(c.Participants, func(p string) bool { return p != userID })
}

// CanMonetize tells whether userID may send locked content here.
// Conversations without an owner let any participant lock content.
func (c Conversation) CanMonetize(userID string) bool {
	return c.OwnerID == nil || c.IsOwner(userID)
}
