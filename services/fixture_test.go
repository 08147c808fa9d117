package services

import (
	"chat-vault/codec"
	"chat-vault/contract"
	"chat-vault/domain"
	"chat-vault/domain/event"
	"chat-vault/entitlement"
	"chat-vault/mocks"
	"chat-vault/repositories"
	"chat-vault/runtime"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

type fixture struct {
	log           *slog.Logger
	svc           *ChatService
	messages      *repositories.MessageRepository
	conversations *repositories.ConversationRepository
	subscriptions *mocks.MockSubscriptionLedger
	purchases     *mocks.MockPurchaseLedger
	broadcaster   *runtime.Broadcaster
	events        chan event.Event
	sideEffects   chan event.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	codecs, err := codec.NewRegistry(codec.NameChaCha20Poly1305, testKeyHex)
	require.NoError(t, err)

	f := &fixture{
		messages:      repositories.NewMessageRepository(db, log, 0),
		conversations: repositories.NewConversationRepository(db, log, 0),
		subscriptions: mocks.NewMockSubscriptionLedger(ctrl),
		purchases:     mocks.NewMockPurchaseLedger(ctrl),
		events:        make(chan event.Event, 64),
		sideEffects:   make(chan event.Event, 8),
	}
	f.broadcaster = runtime.NewBroadcaster(runtime.NewRegistryTransport(f.events), log, nil)
	f.log = log
	f.svc = f.serviceWith(codecs)
	f.svc.now = tickingClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	return f
}

// serviceWith builds a second service over the same store, as a restart
// with another codec setting would.
func (f *fixture) serviceWith(codecs contract.CodecSet) *ChatService {
	svc := NewChatService(ChatDeps{
		Log:           f.log,
		Conversations: f.conversations,
		Messages:      f.messages,
		Resolver:      entitlement.NewResolver(f.log, f.subscriptions, f.purchases, nil, 4),
		Purchases:     f.purchases,
		Publisher:     f.broadcaster,
		Codecs:        codecs,
		SideEffects:   f.sideEffects,
	})
	if f.svc != nil {
		svc.now = f.svc.now
	}
	return svc
}

// tickingClock moves one second forward on every call.
func tickingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func (f *fixture) direct(t *testing.T, owner, other string) domain.Conversation {
	t.Helper()
	settings := domain.DefaultSettings()
	c, _, err := f.svc.CreateOrGetConversation(context.Background(), domain.CreateConversationCommand{
		ParticipantIDs: []string{owner, other},
		InitiatorID:    owner,
		Kind:           domain.KindDirect,
		OwnerID:        lo.ToPtr(owner),
		Settings:       &settings,
	})
	require.NoError(t, err)
	f.drain()
	return c
}

func (f *fixture) sendText(t *testing.T, c domain.Conversation, senderID, content string) domain.MessageView {
	t.Helper()
	view, err := f.svc.SendMessage(context.Background(), domain.SendMessageCommand{
		ConversationID: c.ID,
		SenderID:       senderID,
		Type:           domain.TypeText,
		Content:        lo.ToPtr(content),
	})
	require.NoError(t, err)
	return view
}

func (f *fixture) drain() []event.Event {
	var drained []event.Event
	for {
		select {
		case evt := <-f.events:
			drained = append(drained, evt)
		default:
			return drained
		}
	}
}

func eventTypes(events []event.Event) []event.Type {
	return lo.Map(events, func(e event.Event, _ int) event.Type { return e.Type })
}
