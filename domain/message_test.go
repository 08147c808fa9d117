package domain

import (
	"chat-vault/errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestNewBody(t *testing.T) {
	t.Run("should build a text body", func(t *testing.T) {
		req := require.New(t)
		body, err := NewBody(TypeText, lo.ToPtr("hello"), nil)
		req.NoError(err)
		req.Equal(TypeText, body.Type())
		req.Equal("hello", lo.FromPtr(body.Text()))
		req.Empty(body.MediaIDs())
	})

	t.Run("should deduplicate media references and drop a blank caption", func(t *testing.T) {
		req := require.New(t)
		body, err := NewBody(TypeImage, lo.ToPtr("  "), []string{"m1", "", "m1", "m2"})
		req.NoError(err)
		req.Equal([]string{"m1", "m2"}, body.MediaIDs())
		req.Nil(body.Text())
	})

	tests := []struct {
		name     string
		kind     MessageType
		content  *string
		mediaIDs []string
		wantErr  error
	}{
		{"should reject empty text", TypeText, lo.ToPtr("   "), nil, errors.ErrEmptyContent},
		{"should reject missing text", TypeText, nil, nil, errors.ErrEmptyContent},
		{"should reject media without references", TypeVideo, nil, []string{""}, errors.ErrMissingMedia},
		{"should reject an empty system message", TypeSystem, nil, nil, errors.ErrEmptyContent},
		{"should reject an unknown type", "sticker", lo.ToPtr("x"), nil, errors.ErrUnknownMessageType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBody(tt.kind, tt.content, tt.mediaIDs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTextMessage_Rewrite(t *testing.T) {
	req := require.New(t)
	msg, err := NewTextMessage("hello world")
	req.NoError(err)

	req.Equal("HELLO WORLD", msg.Rewrite(strings.ToUpper).Content())
	req.Equal("hello world", msg.Rewrite(func(string) string { return " " }).Content())
}

func TestNewPrice(t *testing.T) {
	t.Run("should normalize the currency", func(t *testing.T) {
		req := require.New(t)
		price, err := NewPrice(500, " usd ")
		req.NoError(err)
		req.Equal(Price{Amount: 500, Currency: "USD"}, price)
	})

	t.Run("should reject a non positive amount", func(t *testing.T) {
		_, err := NewPrice(0, "USD")
		require.ErrorIs(t, err, errors.ErrLockedWithoutPrice)
	})

	t.Run("should reject a missing currency", func(t *testing.T) {
		_, err := NewPrice(500, "")
		require.ErrorIs(t, err, errors.ErrPriceWithoutCurrency)
	})
}

func TestNewMessage(t *testing.T) {
	req := require.New(t)
	body, err := NewTextMessage("secret")
	req.NoError(err)
	sentAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	msg, err := NewMessage(uuid.New(), "creator", body, &Price{Amount: 500, Currency: "USD"}, nil, sentAt)
	req.NoError(err)
	req.True(msg.Locked)
	req.Equal(StatusSent, msg.Status)
	req.Empty(msg.ReadBy)
	req.Equal(sentAt, msg.SentAt)

	_, err = NewMessage(uuid.New(), "creator", body, &Price{Amount: 0, Currency: "USD"}, nil, sentAt)
	req.ErrorIs(err, errors.ErrLockedWithoutPrice)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusSent, StatusDelivered, true},
		{StatusSent, StatusRead, true},
		{StatusDelivered, StatusRead, true},
		{StatusRead, StatusRead, true},
		{StatusRead, StatusDelivered, false},
		{StatusDelivered, StatusSent, false},
		{StatusSent, StatusFailed, true},
		{StatusFailed, StatusSent, false},
		{StatusFailed, StatusFailed, false},
	}
	for _, tt := range tests {
		t.Run("should decide "+string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMessageMeta_AggregateStatus(t *testing.T) {
	direct := Conversation{Kind: KindDirect, Participants: []string{"alice", "bob"}}
	group := Conversation{Kind: KindGroup, Participants: []string{"alice", "bob", "carol"}}
	readBy := func(ids ...string) []ReadReceipt {
		return lo.Map(ids, func(id string, _ int) ReadReceipt { return ReadReceipt{UserID: id, ReadAt: time.Now()} })
	}

	tests := []struct {
		name   string
		meta   MessageMeta
		conv   Conversation
		expect Status
	}{
		{"should stay sent without receipts", MessageMeta{SenderID: "alice", Status: StatusSent, ReadBy: readBy()}, direct, StatusSent},
		{"should be read once the counterpart read it", MessageMeta{SenderID: "alice", Status: StatusSent, ReadBy: readBy("bob")}, direct, StatusRead},
		{"should ignore the sender receipt", MessageMeta{SenderID: "alice", Status: StatusSent, ReadBy: readBy("alice")}, direct, StatusSent},
		{"should cap a group message at delivered", MessageMeta{SenderID: "alice", Status: StatusSent, ReadBy: readBy("bob", "carol")}, group, StatusDelivered},
		{"should keep a failed message failed", MessageMeta{SenderID: "alice", Status: StatusFailed, ReadBy: readBy("bob")}, direct, StatusFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expect, tt.meta.AggregateStatus(tt.conv))
		})
	}
}
