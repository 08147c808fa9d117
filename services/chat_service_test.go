package services

import (
	"bytes"
	"chat-vault/domain"
	"chat-vault/domain/event"
	"chat-vault/errors"
	"chat-vault/moderation"
	"chat-vault/repositories"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatService_CreateOrGetConversation(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the same direct conversation whatever the participant order", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		// Given a direct conversation created by alice
		first, created, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{"alice", "bob"},
			InitiatorID:    "alice",
			Kind:           domain.KindDirect,
		})
		req.NoError(err)
		req.True(created)

		// When bob asks for it with a reversed order
		second, created, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{" bob", "alice", "alice"},
			InitiatorID:    "bob",
			Kind:           domain.KindDirect,
		})

		// Then the first one comes back and was announced once per participant
		req.NoError(err)
		req.False(created)
		req.Equal(first.ID, second.ID)
		req.Equal([]string{"alice", "bob"}, second.Participants)
		topics := lo.Map(f.drain(), func(e event.Event, _ int) string { return e.Topic })
		req.ElementsMatch([]string{event.UserTopic("alice"), event.UserTopic("bob")}, topics)
	})

	t.Run("should set the counterpart when an owner is given", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		c := f.direct(t, "creator", "fan")

		req.Equal("creator", lo.FromPtr(c.OwnerID))
		req.Equal("fan", lo.FromPtr(c.CounterpartID))
		req.True(c.IsActive)
	})

	testCases := []struct {
		name        string
		cmd         domain.CreateConversationCommand
		expectedErr error
	}{
		{
			name:        "should reject an initiator outside the participants",
			cmd:         domain.CreateConversationCommand{ParticipantIDs: []string{"bob", "carol"}, InitiatorID: "alice", Kind: domain.KindGroup},
			expectedErr: errors.ErrInvalidParticipants,
		},
		{
			name:        "should reject a direct conversation with three participants",
			cmd:         domain.CreateConversationCommand{ParticipantIDs: []string{"alice", "bob", "carol"}, InitiatorID: "alice", Kind: domain.KindDirect},
			expectedErr: errors.ErrInvalidParticipants,
		},
		{
			name:        "should reject an owner outside the participants",
			cmd:         domain.CreateConversationCommand{ParticipantIDs: []string{"alice", "bob"}, InitiatorID: "alice", Kind: domain.KindGroup, OwnerID: lo.ToPtr("mallory")},
			expectedErr: errors.ErrInvalidParticipants,
		},
		{
			name:        "should reject an unknown kind",
			cmd:         domain.CreateConversationCommand{ParticipantIDs: []string{"alice", "bob"}, InitiatorID: "alice", Kind: "channel"},
			expectedErr: errors.ErrInvalidKind,
		},
		{
			name: "should reject a default price without currency",
			cmd: domain.CreateConversationCommand{ParticipantIDs: []string{"alice", "bob"}, InitiatorID: "alice", Kind: domain.KindDirect,
				Settings: &domain.Settings{PPVEnabled: true, DefaultPrice: &domain.Price{Amount: 100}}},
			expectedErr: errors.ErrPriceWithoutCurrency,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)

			_, _, err := f.svc.CreateOrGetConversation(ctx, tc.cmd)

			req.ErrorIs(err, tc.expectedErr)
			req.ErrorIs(err, errors.ErrValidation)
			req.Empty(f.drain())
		})
	}
}

func TestChatService_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist before broadcasting a text message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		// When
		view := f.sendText(t, c, "fan", "hello there")

		// Then
		req.Equal("hello there", lo.FromPtr(view.Content))
		req.Equal(domain.StatusSent, view.Status)
		stored, err := f.messages.Get(view.ID)
		req.NoError(err)
		req.Equal("fan", stored.SenderID)

		events := f.drain()
		req.Len(events, 1)
		req.Equal(event.MessageSentType, events[0].Type)
		req.Equal(event.ConversationTopic(c.ID), events[0].Topic)
		broadcast := events[0].Payload.(domain.MessageView)
		req.Equal("hello there", lo.FromPtr(broadcast.Content))

		updated, err := f.conversations.Get(c.ID)
		req.NoError(err)
		req.NotNil(updated.LastMessageAt)
		req.True(updated.LastMessageAt.Equal(view.SentAt))
	})

	t.Run("should never store plaintext", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		view := f.sendText(t, c, "fan", "a rather secret sentence")

		stored, err := f.messages.Get(view.ID)
		req.NoError(err)
		req.Equal("chacha20poly1305", stored.Codec)
		req.False(bytes.Contains(stored.Content, []byte("secret")))
	})

	t.Run("should broadcast a locked message as a placeholder and enqueue the monetization event", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		// When the owner sends a locked message
		view, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID,
			SenderID:       "creator",
			Type:           domain.TypeText,
			Content:        lo.ToPtr("exclusive"),
			IsLocked:       true,
			Price:          lo.ToPtr(int64(500)),
			Currency:       lo.ToPtr("usd"),
		})

		// Then the sender sees the content, the wire never does
		req.NoError(err)
		req.True(view.Locked)
		req.Equal("exclusive", lo.FromPtr(view.Content))
		req.Equal(domain.Price{Amount: 500, Currency: "USD"}, *view.Price)

		events := f.drain()
		req.Len(events, 1)
		broadcast := events[0].Payload.(domain.MessageView)
		req.Nil(broadcast.Content)
		req.True(broadcast.ContentLocked)
		req.Equal(int64(500), lo.FromPtr(broadcast.Entitlement.Price))

		req.Len(f.sideEffects, 1)
		sideEffect := <-f.sideEffects
		req.Equal(event.LockedMessageSentType, sideEffect.Type)
		req.Equal(view.ID, sideEffect.Payload.(event.LockedMessageSent).MessageID)
	})

	t.Run("should apply the default price of the conversation", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		settings := domain.Settings{PPVEnabled: true, DefaultPrice: &domain.Price{Amount: 300, Currency: "EUR"}}
		c, _, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{"creator", "fan"}, InitiatorID: "creator", Kind: domain.KindDirect,
			OwnerID: lo.ToPtr("creator"), Settings: &settings,
		})
		req.NoError(err)

		view, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
			Content: lo.ToPtr("teaser"), IsLocked: true,
		})

		req.NoError(err)
		req.Equal(domain.Price{Amount: 300, Currency: "EUR"}, *view.Price)
	})

	t.Run("should enqueue media processing for media messages", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		view, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "fan", Type: domain.TypeImage,
			MediaIDs: []string{"media-1", "media-1", "media-2"},
		})

		req.NoError(err)
		req.Equal([]string{"media-1", "media-2"}, view.MediaIDs)
		sideEffect := <-f.sideEffects
		req.Equal(event.MediaAttachedType, sideEffect.Type)
		req.Equal([]string{"media-1", "media-2"}, sideEffect.Payload.(event.MediaAttached).MediaIDs)
	})

	t.Run("should censor text when moderation is enabled", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		moderator, err := moderation.NewModerator([]string{"darn"}, '*', logs.GetLoggerFromLevel(slog.LevelDebug))
		req.NoError(err)
		f.svc.moderator = moderator
		settings := domain.Settings{ModerationEnabled: true}
		c, _, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{"alice", "bob"}, InitiatorID: "alice", Kind: domain.KindDirect, Settings: &settings,
		})
		req.NoError(err)

		view := f.sendText(t, c, "alice", "well darn it")

		req.Equal("well **** it", lo.FromPtr(view.Content))
	})

	testCases := []struct {
		name        string
		cmd         func(c domain.Conversation) domain.SendMessageCommand
		expectedErr error
	}{
		{
			name: "should reject a locked message with a zero price",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
					Content: lo.ToPtr("x"), IsLocked: true, Price: lo.ToPtr(int64(0)), Currency: lo.ToPtr("USD")}
			},
			expectedErr: errors.ErrLockedWithoutPrice,
		},
		{
			name: "should reject a locked message without any price",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
					Content: lo.ToPtr("x"), IsLocked: true}
			},
			expectedErr: errors.ErrLockedWithoutPrice,
		},
		{
			name: "should reject a price without currency",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
					Content: lo.ToPtr("x"), IsLocked: true, Price: lo.ToPtr(int64(500))}
			},
			expectedErr: errors.ErrPriceWithoutCurrency,
		},
		{
			name: "should reject a price on an unlocked message",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
					Content: lo.ToPtr("x"), Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD")}
			},
			expectedErr: errors.ErrPriceWithoutLock,
		},
		{
			name: "should reject an empty text message",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeText, Content: lo.ToPtr("   ")}
			},
			expectedErr: errors.ErrEmptyContent,
		},
		{
			name: "should reject a media message without media",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeVideo}
			},
			expectedErr: errors.ErrMissingMedia,
		},
		{
			name: "should reject a locked message from someone else than the owner",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeText,
					Content: lo.ToPtr("x"), IsLocked: true, Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD")}
			},
			expectedErr: errors.ErrNotOwner,
		},
		{
			name: "should reject a sender outside the conversation",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "mallory", Type: domain.TypeText, Content: lo.ToPtr("x")}
			},
			expectedErr: errors.ErrNotParticipant,
		},
		{
			name: "should reject an unknown conversation",
			cmd: func(domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: uuid.New(), SenderID: "fan", Type: domain.TypeText, Content: lo.ToPtr("x")}
			},
			expectedErr: errors.ErrConversationNotFound,
		},
		{
			name: "should reject a reply to an unknown message",
			cmd: func(c domain.Conversation) domain.SendMessageCommand {
				return domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeText,
					Content: lo.ToPtr("x"), ReplyToID: lo.ToPtr(uuid.New())}
			},
			expectedErr: errors.ErrInvalidReply,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			c := f.direct(t, "creator", "fan")

			_, err := f.svc.SendMessage(ctx, tc.cmd(c))

			req.ErrorIs(err, tc.expectedErr)
			req.Empty(f.drain(), "nothing is broadcast for a rejected message")
			page, err := f.messages.List(c.ID, repositories.Page{Limit: 10})
			req.NoError(err)
			req.Empty(page)
		})
	}

	t.Run("should refuse locked and media messages when the settings forbid them", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		settings := domain.Settings{}
		c, _, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{"alice", "bob"}, InitiatorID: "alice", Kind: domain.KindDirect, Settings: &settings,
		})
		req.NoError(err)

		_, err = f.svc.SendMessage(ctx, domain.SendMessageCommand{ConversationID: c.ID, SenderID: "alice", Type: domain.TypeText,
			Content: lo.ToPtr("x"), IsLocked: true, Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD")})
		req.ErrorIs(err, errors.ErrPPVDisabled)

		_, err = f.svc.SendMessage(ctx, domain.SendMessageCommand{ConversationID: c.ID, SenderID: "alice", Type: domain.TypeAudio,
			MediaIDs: []string{"clip"}})
		req.ErrorIs(err, errors.ErrMediaNotAllowed)
	})

	t.Run("should reject a reply to a message of another conversation", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		other := f.direct(t, "creator", "someone")
		elsewhere := f.sendText(t, other, "someone", "hi")

		_, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeText,
			Content: lo.ToPtr("re"), ReplyToID: lo.ToPtr(elsewhere.ID)})

		req.ErrorIs(err, errors.ErrInvalidReply)
	})

	t.Run("should refuse messages once the conversation is deactivated", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		f.sendText(t, c, "fan", "before")

		_, err := f.svc.DeactivateConversation(ctx, c.ID, "creator")
		req.NoError(err)
		_, err = f.svc.SendMessage(ctx, domain.SendMessageCommand{ConversationID: c.ID, SenderID: "fan", Type: domain.TypeText, Content: lo.ToPtr("after")})

		req.ErrorIs(err, errors.ErrConversationInactive)
		history, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan"}, domain.GetMessagesQuery{ConversationID: c.ID})
		req.NoError(err)
		req.Len(history, 1)
	})
}

func TestChatService_GetMessages(t *testing.T) {
	ctx := context.Background()

	sendLocked := func(t *testing.T, f *fixture, c domain.Conversation) domain.MessageView {
		t.Helper()
		view, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText,
			Content: lo.ToPtr("the good stuff"), IsLocked: true,
			Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD"),
		})
		require.NoError(t, err)
		return view
	}

	t.Run("should return messages in ascending order", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		for i := range 5 {
			f.sendText(t, c, "fan", fmt.Sprintf("message %d", i))
		}

		views, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan"}, domain.GetMessagesQuery{ConversationID: c.ID, Limit: 3})

		req.NoError(err)
		req.Len(views, 3)
		contents := lo.Map(views, func(v domain.MessageView, _ int) string { return lo.FromPtr(v.Content) })
		req.Equal([]string{"message 2", "message 3", "message 4"}, contents)
		for i := 1; i < len(views); i++ {
			req.True(views[i-1].SentAt.Before(views[i].SentAt))
		}
	})

	t.Run("should reveal a locked message to a buyer", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		locked := sendLocked(t, f, c)
		f.purchases.EXPECT().HasPurchased(gomock.Any(), "fan", locked.ID.String()).Return(true, nil)

		views, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan", Role: domain.RoleUser}, domain.GetMessagesQuery{ConversationID: c.ID})

		req.NoError(err)
		req.Len(views, 1)
		req.Equal("the good stuff", lo.FromPtr(views[0].Content))
		req.False(views[0].ContentLocked)
		req.Equal(domain.ReasonPurchased, views[0].Entitlement.Reason)
	})

	t.Run("should hide a locked message from a viewer who did not pay", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		locked := sendLocked(t, f, c)
		f.purchases.EXPECT().HasPurchased(gomock.Any(), "fan", locked.ID.String()).Return(false, nil)

		views, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan", Role: domain.RoleUser}, domain.GetMessagesQuery{ConversationID: c.ID})

		req.NoError(err)
		req.Len(views, 1)
		req.Nil(views[0].Content)
		req.True(views[0].ContentLocked)
		req.False(views[0].Entitlement.HasAccess)
		req.Equal(domain.ReasonPaymentRequired, views[0].Entitlement.Reason)
		req.Equal(int64(500), lo.FromPtr(views[0].Entitlement.Price))
		req.Equal("USD", lo.FromPtr(views[0].Entitlement.Currency))
	})

	t.Run("should always reveal locked messages to their sender", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sendLocked(t, f, c)

		views, err := f.svc.GetMessages(ctx, domain.Actor{ID: "creator", Role: domain.RoleCreator}, domain.GetMessagesQuery{ConversationID: c.ID})

		req.NoError(err)
		req.Equal("the good stuff", lo.FromPtr(views[0].Content))
	})

	t.Run("should fail closed on the affected message only when the ledger is down", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		f.sendText(t, c, "creator", "free")
		locked := sendLocked(t, f, c)
		f.purchases.EXPECT().HasPurchased(gomock.Any(), "fan", locked.ID.String()).Return(false, fmt.Errorf("connection refused"))

		views, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan"}, domain.GetMessagesQuery{ConversationID: c.ID})

		req.NoError(err)
		req.Len(views, 2)
		req.Equal("free", lo.FromPtr(views[0].Content))
		req.Nil(views[1].Content)
		req.Equal(domain.ReasonLookupFailed, views[1].Entitlement.Reason)
	})

	t.Run("should reject page sizes out of range", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		for _, limit := range []int{-1, 101} {
			_, err := f.svc.GetMessages(ctx, domain.Actor{ID: "fan"}, domain.GetMessagesQuery{ConversationID: c.ID, Limit: limit})
			req.ErrorIs(err, errors.ErrInvalidPageSize)
		}
	})

	t.Run("should refuse history to non participants", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		_, err := f.svc.GetMessages(ctx, domain.Actor{ID: "mallory", Role: domain.RoleAdmin}, domain.GetMessagesQuery{ConversationID: c.ID})

		req.ErrorIs(err, errors.ErrNotParticipant)
	})
}

func TestChatService_GetMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should surface a ledger outage as a dependency error", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		locked, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText, Content: lo.ToPtr("x"),
			IsLocked: true, Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD"),
		})
		req.NoError(err)
		f.purchases.EXPECT().HasPurchased(gomock.Any(), "fan", locked.ID.String()).Return(false, fmt.Errorf("timeout"))

		_, err = f.svc.GetMessage(ctx, domain.Actor{ID: "fan"}, locked.ID)

		req.ErrorIs(err, errors.ErrLedgerUnavailable)
		req.ErrorIs(err, errors.ErrDependency)
	})

	t.Run("should return not found for an unknown message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)

		_, err := f.svc.GetMessage(ctx, domain.Actor{ID: "fan"}, uuid.New())

		req.ErrorIs(err, errors.ErrMessageNotFound)
	})
}

func TestChatService_MarkMessageRead(t *testing.T) {
	ctx := context.Background()

	t.Run("should be idempotent and announce the first read only", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "creator", "did you see this?")
		f.drain()

		first, err := f.svc.MarkMessageRead(ctx, sent.ID, "fan")
		req.NoError(err)
		second, err := f.svc.MarkMessageRead(ctx, sent.ID, "fan")
		req.NoError(err)

		req.True(first.ReadAt.Equal(second.ReadAt))
		req.Equal([]event.Type{event.MessageReadType}, eventTypes(f.drain()))

		view, err := f.svc.GetMessage(ctx, domain.Actor{ID: "creator"}, sent.ID)
		req.NoError(err)
		req.Len(view.ReadBy, 1)
		req.Equal(domain.StatusRead, view.Status)
	})

	t.Run("should stop at delivered in a group", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c, _, err := f.svc.CreateOrGetConversation(ctx, domain.CreateConversationCommand{
			ParticipantIDs: []string{"alice", "bob", "carol"}, InitiatorID: "alice", Kind: domain.KindGroup,
		})
		req.NoError(err)
		sent := f.sendText(t, c, "alice", "hello group")

		_, err = f.svc.MarkMessageRead(ctx, sent.ID, "bob")
		req.NoError(err)

		view, err := f.svc.GetMessage(ctx, domain.Actor{ID: "alice"}, sent.ID)
		req.NoError(err)
		req.Equal(domain.StatusDelivered, view.Status)
	})

	t.Run("should refuse a reader outside the conversation", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "creator", "hi")

		_, err := f.svc.MarkMessageRead(ctx, sent.ID, "mallory")

		req.ErrorIs(err, errors.ErrNotParticipant)
	})
}

func TestChatService_EditMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should edit a text message of its sender", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "fan", "helo")
		f.drain()

		view, err := f.svc.EditMessage(ctx, domain.EditMessageCommand{MessageID: sent.ID, EditorID: "fan", Content: "hello"})

		req.NoError(err)
		req.Equal("hello", lo.FromPtr(view.Content))
		req.NotNil(view.EditedAt)
		req.Equal([]event.Type{event.MessageEditedType}, eventTypes(f.drain()))
	})

	t.Run("should refuse edits from another participant", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "fan", "mine")

		_, err := f.svc.EditMessage(ctx, domain.EditMessageCommand{MessageID: sent.ID, EditorID: "creator", Content: "yours"})

		req.ErrorIs(err, errors.ErrNotSender)
	})

	t.Run("should keep locked messages immutable", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		locked, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText, Content: lo.ToPtr("paid"),
			IsLocked: true, Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD"),
		})
		req.NoError(err)

		_, err = f.svc.EditMessage(ctx, domain.EditMessageCommand{MessageID: locked.ID, EditorID: "creator", Content: "changed"})

		req.ErrorIs(err, errors.ErrImmutableMessage)
	})
}

func TestChatService_DeleteMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("should tombstone and wipe an unlocked message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "fan", "oops")
		f.drain()

		view, err := f.svc.DeleteMessage(ctx, sent.ID, "fan")
		req.NoError(err)
		again, err := f.svc.DeleteMessage(ctx, sent.ID, "fan")
		req.NoError(err)

		req.NotNil(view.DeletedAt)
		req.Nil(view.Content)
		req.True(view.DeletedAt.Equal(*again.DeletedAt))
		req.Equal([]event.Type{event.MessageDeletedType}, eventTypes(f.drain()))
		stored, err := f.messages.Get(sent.ID)
		req.NoError(err)
		req.Nil(stored.Content)
	})

	t.Run("should retain the content of a purchased locked message", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		locked, err := f.svc.SendMessage(ctx, domain.SendMessageCommand{
			ConversationID: c.ID, SenderID: "creator", Type: domain.TypeText, Content: lo.ToPtr("paid"),
			IsLocked: true, Price: lo.ToPtr(int64(500)), Currency: lo.ToPtr("USD"),
		})
		req.NoError(err)
		f.purchases.EXPECT().HasAnyPurchase(gomock.Any(), locked.ID.String()).Return(true, nil)

		view, err := f.svc.DeleteMessage(ctx, locked.ID, "creator")

		req.NoError(err)
		req.Nil(view.Content)
		stored, err := f.messages.Get(locked.ID)
		req.NoError(err)
		req.NotEmpty(stored.Content)
	})

	t.Run("should refuse deletion by another participant", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")
		sent := f.sendText(t, c, "fan", "mine")

		_, err := f.svc.DeleteMessage(ctx, sent.ID, "creator")

		req.ErrorIs(err, errors.ErrNotSender)
	})
}

func TestChatService_MarkFailed(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	c := f.direct(t, "creator", "fan")
	sent := f.sendText(t, c, "creator", "charged")

	req.NoError(f.svc.MarkFailed(context.Background(), sent.ID))
	err := f.svc.MarkFailed(context.Background(), sent.ID)

	req.ErrorIs(err, errors.ErrInvalidStatusChange)
	stored, err := f.messages.Get(sent.ID)
	req.NoError(err)
	req.Equal(domain.StatusFailed, stored.Status)
}

func TestChatService_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("should let the owner change the settings", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		updated, err := f.svc.UpdateSettings(ctx, domain.UpdateSettingsCommand{
			ConversationID: c.ID, ActorID: "creator", Settings: domain.Settings{AllowMedia: false},
		})

		req.NoError(err)
		req.False(updated.Settings.AllowMedia)
		req.Equal([]event.Type{event.ConversationUpdatedType}, eventTypes(f.drain()))
	})

	t.Run("should refuse changes from a non owner", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		c := f.direct(t, "creator", "fan")

		_, err := f.svc.UpdateSettings(ctx, domain.UpdateSettingsCommand{ConversationID: c.ID, ActorID: "fan"})
		req.ErrorIs(err, errors.ErrNotOwner)

		_, err = f.svc.DeactivateConversation(ctx, c.ID, "fan")
		req.ErrorIs(err, errors.ErrNotOwner)
	})
}

func TestChatService_ListConversations(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	older := f.direct(t, "creator", "fan")
	newer := f.direct(t, "creator", "other")
	f.sendText(t, older, "fan", "bump")

	conversations, err := f.svc.ListConversations(context.Background(), "creator")

	req.NoError(err)
	req.Equal([]uuid.UUID{older.ID, newer.ID}, lo.Map(conversations, func(c domain.Conversation, _ int) uuid.UUID { return c.ID }))
}
