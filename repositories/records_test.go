package repositories

import (
	"chat-vault/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestRecords(t *testing.T) {
	t.Run("should keep optional message fields absent", func(t *testing.T) {
		req := require.New(t)
		// Given a plain message with no reply, price or edit
		message := DiskMessage{ID: uuid.New(), ConversationID: uuid.New(), SenderID: "alice",
			Type: domain.TypeText, Codec: "none", Status: domain.StatusSent, SentAt: time.Now().UTC()}

		// When it goes through the stored format
		data, err := marshalMessage(message)
		req.NoError(err)
		decoded, err := unmarshalMessage(data)
		req.NoError(err)

		// Then the optional fields stay nil
		req.Nil(decoded.ReplyToID)
		req.Nil(decoded.Price)
		req.Nil(decoded.EditedAt)
		req.Nil(decoded.DeletedAt)
		req.True(message.SentAt.Equal(decoded.SentAt))
	})

	t.Run("should keep the codec and reply of a locked message", func(t *testing.T) {
		req := require.New(t)
		replyTo := uuid.New()
		message := DiskMessage{ID: uuid.New(), ConversationID: uuid.New(), SenderID: "creator",
			Type: domain.TypeImage, Content: []byte{1, 2, 3}, Codec: "chacha20poly1305",
			MediaIDs: []string{"m1"}, Locked: true, Price: &domain.Price{Amount: 500, Currency: "USD"},
			Status: domain.StatusSent, SentAt: time.Now().UTC(), ReplyToID: &replyTo}

		data, err := marshalMessage(message)
		req.NoError(err)
		decoded, err := unmarshalMessage(data)
		req.NoError(err)

		req.Equal("chacha20poly1305", decoded.Codec)
		req.Equal(replyTo, lo.FromPtr(decoded.ReplyToID))
		req.Equal(message.Price, decoded.Price)
		req.Equal([]byte{1, 2, 3}, decoded.Content)
	})

	t.Run("should map an empty owner to nil", func(t *testing.T) {
		req := require.New(t)
		conversation := domain.Conversation{ID: uuid.New(), Kind: domain.KindGroup,
			Participants: []string{"a", "b", "c"}, CreatedAt: time.Now().UTC(), IsActive: true}

		data, err := marshalConversation(conversation)
		req.NoError(err)
		decoded, err := unmarshalConversation(data)
		req.NoError(err)

		req.Nil(decoded.OwnerID)
		req.Nil(decoded.LastMessageAt)
		req.Equal(conversation.Participants, decoded.Participants)
	})
}
