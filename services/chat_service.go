package services

import (
	"chat-vault/contract"
	"chat-vault/domain"
	"chat-vault/domain/event"
	"chat-vault/errors"
	"chat-vault/moderation"
	"chat-vault/observability"
	"chat-vault/repositories"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, kind event.Type, payload any)
}

type EntitlementResolver interface {
	Resolve(ctx context.Context, actor *domain.Actor, target domain.Target) (domain.Decision, error)
	BulkCheckAccess(ctx context.Context, actor *domain.Actor, targets []domain.Target) map[string]domain.Decision
}

type IChatService interface {
	CreateOrGetConversation(ctx context.Context, cmd domain.CreateConversationCommand) (domain.Conversation, bool, error)
	ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error)
	UpdateSettings(ctx context.Context, cmd domain.UpdateSettingsCommand) (domain.Conversation, error)
	DeactivateConversation(ctx context.Context, conversationID uuid.UUID, actorID string) (domain.Conversation, error)
	AuthorizeParticipant(ctx context.Context, conversationID uuid.UUID, userID string) (domain.Conversation, error)
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.MessageView, error)
	GetMessages(ctx context.Context, actor domain.Actor, query domain.GetMessagesQuery) ([]domain.MessageView, error)
	GetMessage(ctx context.Context, actor domain.Actor, messageID uuid.UUID) (domain.MessageView, error)
	MarkMessageRead(ctx context.Context, messageID uuid.UUID, userID string) (domain.ReadReceipt, error)
	EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.MessageView, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID, actorID string) (domain.MessageView, error)
	MarkFailed(ctx context.Context, messageID uuid.UUID) error
}

// ChatDeps gathers the collaborators of ChatService.
// Moderator and SideEffects are optional.
type ChatDeps struct {
	Log           *slog.Logger
	Conversations repositories.IConversationRepository
	Messages      repositories.IMessageRepository
	Resolver      EntitlementResolver
	Purchases     contract.PurchaseLedger
	Publisher     Publisher
	Codecs        contract.CodecSet
	Moderator     *moderation.Moderator
	SideEffects   chan<- event.Event
	Metrics       *observability.Metrics
}

type ChatService struct {
	log           *slog.Logger
	conversations repositories.IConversationRepository
	messages      repositories.IMessageRepository
	resolver      EntitlementResolver
	purchases     contract.PurchaseLedger
	publisher     Publisher
	codecs        contract.CodecSet
	moderator     *moderation.Moderator
	sideEffects   chan<- event.Event
	metrics       *observability.Metrics
	now           func() time.Time
}

func NewChatService(deps ChatDeps) *ChatService {
	return &ChatService{
		log:           deps.Log,
		conversations: deps.Conversations,
		messages:      deps.Messages,
		resolver:      deps.Resolver,
		purchases:     deps.Purchases,
		publisher:     deps.Publisher,
		codecs:        deps.Codecs,
		moderator:     deps.Moderator,
		sideEffects:   deps.SideEffects,
		metrics:       deps.Metrics,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// CreateOrGetConversation returns the existing direct conversation of a
// participant pair, or creates a new conversation.
func (s *ChatService) CreateOrGetConversation(ctx context.Context, cmd domain.CreateConversationCommand) (domain.Conversation, bool, error) {
	participants := domain.CanonicalParticipants(cmd.ParticipantIDs)
	if err := domain.ValidateParticipants(participants, cmd.InitiatorID, cmd.Kind); err != nil {
		return domain.Conversation{}, false, err
	}
	if err := validateStruct(cmd); err != nil {
		return domain.Conversation{}, false, err
	}

	settings := domain.DefaultSettings()
	if cmd.Settings != nil {
		if err := validateSettings(*cmd.Settings); err != nil {
			return domain.Conversation{}, false, err
		}
		settings = *cmd.Settings
	}

	candidate := domain.Conversation{
		ID:           uuid.New(),
		Kind:         cmd.Kind,
		Participants: participants,
		Settings:     settings,
		CreatedAt:    s.now(),
		IsActive:     true,
	}
	if cmd.OwnerID != nil {
		if !lo.Contains(participants, *cmd.OwnerID) {
			return domain.Conversation{}, false, errors.ErrInvalidParticipants
		}
		candidate.OwnerID = cmd.OwnerID
		if counterpart, ok := candidate.Counterpart(*cmd.OwnerID); ok {
			candidate.CounterpartID = &counterpart
		}
	}

	c, created, err := s.conversations.CreateOrGet(candidate)
	if err != nil {
		return domain.Conversation{}, false, err
	}
	if created {
		s.log.Debug("Conversation created", "conversation_id", c.ID, "kind", c.Kind)
		for _, participant := range c.Participants {
			s.publisher.Publish(ctx, event.UserTopic(participant), event.ConversationCreatedType, c)
		}
	}
	return c, created, nil
}

func (s *ChatService) ListConversations(_ context.Context, userID string) ([]domain.Conversation, error) {
	return s.conversations.ListForUser(userID)
}

// UpdateSettings replaces the settings. When the conversation has an owner,
// only the owner may change them.
func (s *ChatService) UpdateSettings(ctx context.Context, cmd domain.UpdateSettingsCommand) (domain.Conversation, error) {
	if err := validateStruct(cmd); err != nil {
		return domain.Conversation{}, err
	}
	if err := validateSettings(cmd.Settings); err != nil {
		return domain.Conversation{}, err
	}
	c, err := s.conversations.Update(cmd.ConversationID, func(c *domain.Conversation) error {
		if err := canManage(*c, cmd.ActorID); err != nil {
			return err
		}
		c.Settings = cmd.Settings
		return nil
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.ConversationUpdatedType, c)
	return c, nil
}

// DeactivateConversation soft-deletes a conversation: history stays
// readable, new messages are refused.
func (s *ChatService) DeactivateConversation(ctx context.Context, conversationID uuid.UUID, actorID string) (domain.Conversation, error) {
	c, err := s.conversations.Update(conversationID, func(c *domain.Conversation) error {
		if err := canManage(*c, actorID); err != nil {
			return err
		}
		c.IsActive = false
		return nil
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.ConversationUpdatedType, c)
	return c, nil
}

// AuthorizeParticipant loads the conversation if userID belongs to it.
func (s *ChatService) AuthorizeParticipant(_ context.Context, conversationID uuid.UUID, userID string) (domain.Conversation, error) {
	c, err := s.conversations.Get(conversationID)
	if err != nil {
		return domain.Conversation{}, err
	}
	if !c.HasParticipant(userID) {
		return domain.Conversation{}, errors.ErrNotParticipant
	}
	return c, nil
}

// SendMessage validates, persists, then announces a message.
// The broadcast happens only once the message is durable, and its failure
// never fails the send.
func (s *ChatService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.MessageView, error) {
	c, err := s.AuthorizeParticipant(ctx, cmd.ConversationID, cmd.SenderID)
	if err != nil {
		return domain.MessageView{}, err
	}
	if err = validateStruct(cmd); err != nil {
		return domain.MessageView{}, err
	}
	if !c.IsActive {
		return domain.MessageView{}, errors.ErrConversationInactive
	}

	body, err := domain.NewBody(cmd.Type, cmd.Content, cmd.MediaIDs)
	if err != nil {
		return domain.MessageView{}, err
	}
	if body.Type().IsMedia() && !c.Settings.AllowMedia {
		return domain.MessageView{}, errors.ErrMediaNotAllowed
	}
	price, err := resolvePrice(c, cmd)
	if err != nil {
		return domain.MessageView{}, err
	}
	if cmd.ReplyToID != nil {
		if err = s.checkReply(c.ID, *cmd.ReplyToID); err != nil {
			return domain.MessageView{}, err
		}
	}

	body, language := s.moderate(c, body)
	m, err := domain.NewMessage(c.ID, cmd.SenderID, body, price, cmd.ReplyToID, s.now())
	if err != nil {
		return domain.MessageView{}, err
	}
	m.Language = language

	record, err := s.toRecord(m)
	if err != nil {
		return domain.MessageView{}, err
	}
	if err = s.messages.Store(record); err != nil {
		return domain.MessageView{}, err
	}
	s.metrics.IncrMessageSent(m.Type, m.Locked)
	s.log.Debug("Message stored", "conversation_id", c.ID, "message_id", m.ID, "type", m.Type)

	s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.MessageSentType, domain.BroadcastView(m, c))
	if m.Locked {
		s.enqueueSideEffect(event.New("", event.LockedMessageSentType, event.LockedMessageSent{
			MessageID:      m.ID,
			ConversationID: c.ID,
			SenderID:       m.SenderID,
			Price:          *m.Price,
		}))
	}
	if m.Type.IsMedia() {
		s.enqueueSideEffect(event.New("", event.MediaAttachedType, event.MediaAttached{
			MessageID: m.ID,
			Type:      m.Type,
			MediaIDs:  m.Body.MediaIDs(),
		}))
	}
	return domain.RevealedView(m, c, nil), nil
}

// GetMessages returns a page in ascending sentAt order. Locked messages the
// actor is not entitled to come back as placeholders without any content.
func (s *ChatService) GetMessages(ctx context.Context, actor domain.Actor, query domain.GetMessagesQuery) ([]domain.MessageView, error) {
	size, ok := query.PageSize()
	if !ok {
		return nil, errors.ErrInvalidPageSize
	}
	c, err := s.AuthorizeParticipant(ctx, query.ConversationID, actor.ID)
	if err != nil {
		return nil, err
	}
	records, err := s.messages.List(c.ID, repositories.Page{Limit: size, Before: query.Before, After: query.After})
	if err != nil {
		return nil, err
	}

	targets := lo.FilterMap(records, func(r repositories.DiskMessage, _ int) (domain.Target, bool) {
		return domain.MessageTarget(r.Meta()), r.Locked && r.DeletedAt == nil
	})
	decisions := map[string]domain.Decision{}
	if len(targets) > 0 {
		decisions = s.resolver.BulkCheckAccess(ctx, &actor, targets)
	}

	views := make([]domain.MessageView, 0, len(records))
	for _, record := range records {
		var decision *domain.Decision
		if record.Locked {
			d, found := decisions[record.ID.String()]
			if !found {
				d = domain.Decision{HasAccess: false, Reason: domain.ReasonLookupFailed}
			}
			decision = &d
		}
		view, err := s.toView(c, record, decision)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetMessage returns one message as seen by actor.
// A ledger outage surfaces as a dependency error.
func (s *ChatService) GetMessage(ctx context.Context, actor domain.Actor, messageID uuid.UUID) (domain.MessageView, error) {
	record, err := s.messages.Get(messageID)
	if err != nil {
		return domain.MessageView{}, err
	}
	c, err := s.AuthorizeParticipant(ctx, record.ConversationID, actor.ID)
	if err != nil {
		return domain.MessageView{}, err
	}
	var decision *domain.Decision
	if record.Locked && record.DeletedAt == nil {
		d, err := s.resolver.Resolve(ctx, &actor, domain.MessageTarget(record.Meta()))
		if err != nil {
			return domain.MessageView{}, err
		}
		decision = &d
	}
	return s.toView(c, record, decision)
}

// MarkMessageRead records a read receipt. Reading twice is not an error.
func (s *ChatService) MarkMessageRead(ctx context.Context, messageID uuid.UUID, userID string) (domain.ReadReceipt, error) {
	record, err := s.messages.Get(messageID)
	if err != nil {
		return domain.ReadReceipt{}, err
	}
	c, err := s.AuthorizeParticipant(ctx, record.ConversationID, userID)
	if err != nil {
		return domain.ReadReceipt{}, err
	}
	receipt, added, err := s.messages.AddReadReceipt(messageID, userID, s.now())
	if err != nil {
		return domain.ReadReceipt{}, err
	}
	if added {
		s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.MessageReadType, event.MessageRead{
			MessageID:      messageID,
			ConversationID: c.ID,
			UserID:         userID,
			ReadAt:         receipt.ReadAt,
		})
	}
	return receipt, nil
}

// EditMessage rewrites the content of a text message. Locked, deleted and
// failed messages are immutable.
func (s *ChatService) EditMessage(ctx context.Context, cmd domain.EditMessageCommand) (domain.MessageView, error) {
	if err := validateStruct(cmd); err != nil {
		return domain.MessageView{}, err
	}
	record, err := s.messages.Get(cmd.MessageID)
	if err != nil {
		return domain.MessageView{}, err
	}
	c, err := s.AuthorizeParticipant(ctx, record.ConversationID, cmd.EditorID)
	if err != nil {
		return domain.MessageView{}, err
	}
	text, err := domain.NewTextMessage(cmd.Content)
	if err != nil {
		return domain.MessageView{}, err
	}
	body, language := s.moderate(c, text)
	content, err := s.codecs.Current().Encode([]byte(lo.FromPtr(body.Text())))
	if err != nil {
		return domain.MessageView{}, err
	}

	editedAt := s.now()
	updated, err := s.messages.Update(cmd.MessageID, func(m *repositories.DiskMessage) error {
		if m.SenderID != cmd.EditorID {
			return errors.ErrNotSender
		}
		if m.Locked || m.DeletedAt != nil || m.Type != domain.TypeText || m.Status == domain.StatusFailed {
			return errors.ErrImmutableMessage
		}
		m.Content = content
		m.Codec = s.codecs.Current().Name()
		m.EditedAt = &editedAt
		if language != "" {
			m.Language = language
		}
		return nil
	})
	if err != nil {
		return domain.MessageView{}, err
	}
	view, err := s.toView(c, updated, nil)
	if err != nil {
		return domain.MessageView{}, err
	}
	s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.MessageEditedType, view)
	return view, nil
}

// DeleteMessage turns a message into a tombstone. The content of a locked
// message somebody paid for is retained.
func (s *ChatService) DeleteMessage(ctx context.Context, messageID uuid.UUID, actorID string) (domain.MessageView, error) {
	record, err := s.messages.Get(messageID)
	if err != nil {
		return domain.MessageView{}, err
	}
	c, err := s.AuthorizeParticipant(ctx, record.ConversationID, actorID)
	if err != nil {
		return domain.MessageView{}, err
	}
	if record.SenderID != actorID {
		return domain.MessageView{}, errors.ErrNotSender
	}
	if record.DeletedAt != nil {
		return domain.TombstoneView(record.Meta(), c), nil
	}

	keepContent := false
	if record.Locked {
		purchased, err := s.purchases.HasAnyPurchase(ctx, messageID.String())
		if err != nil {
			// Unknown purchase state: never wipe what may have been paid for
			s.log.Warn("Purchase lookup failed, retaining content", "message_id", messageID, "error", err)
			purchased = true
		}
		keepContent = purchased
	}

	deletedAt := s.now()
	updated, err := s.messages.Update(messageID, func(m *repositories.DiskMessage) error {
		if m.DeletedAt != nil {
			return nil
		}
		m.DeletedAt = &deletedAt
		if !keepContent {
			m.Content = nil
			m.MediaIDs = nil
		}
		return nil
	})
	if err != nil {
		return domain.MessageView{}, err
	}
	s.publisher.Publish(ctx, event.ConversationTopic(c.ID), event.MessageDeletedType, event.MessageDeleted{
		MessageID:      messageID,
		ConversationID: c.ID,
		DeletedAt:      *updated.DeletedAt,
	})
	return domain.TombstoneView(updated.Meta(), c), nil
}

// MarkFailed is called by the payment side when a capture required by the
// message did not go through. Failed is terminal.
func (s *ChatService) MarkFailed(_ context.Context, messageID uuid.UUID) error {
	_, err := s.messages.Update(messageID, func(m *repositories.DiskMessage) error {
		if !m.Status.CanTransitionTo(domain.StatusFailed) {
			return errors.ErrInvalidStatusChange
		}
		m.Status = domain.StatusFailed
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Warn("Message marked as failed", "message_id", messageID)
	return nil
}

func (s *ChatService) checkReply(conversationID, replyToID uuid.UUID) error {
	target, err := s.messages.Get(replyToID)
	if stderrors.Is(err, errors.ErrMessageNotFound) {
		return errors.ErrInvalidReply
	}
	if err != nil {
		return err
	}
	if target.ConversationID != conversationID {
		return errors.ErrInvalidReply
	}
	return nil
}

// moderate censors text bodies of conversations with moderation enabled and
// returns the detected language.
func (s *ChatService) moderate(c domain.Conversation, body domain.Body) (domain.Body, string) {
	text, isText := body.(domain.TextMessage)
	if !isText || !c.Settings.ModerationEnabled || s.moderator == nil {
		return body, ""
	}
	var language string
	rewritten := text.Rewrite(func(content string) string {
		review := s.moderator.Review(content)
		language = review.Language
		return review.Content
	})
	return rewritten, language
}

func (s *ChatService) enqueueSideEffect(evt event.Event) {
	if s.sideEffects == nil {
		return
	}
	select {
	case s.sideEffects <- evt:
	default:
		s.log.Warn("Side effect queue full, event dropped", "event", evt.Type)
		s.metrics.IncrSideEffectDropped()
	}
}

func (s *ChatService) toRecord(m domain.Message) (repositories.DiskMessage, error) {
	var content []byte
	if text := m.Body.Text(); text != nil {
		encoded, err := s.codecs.Current().Encode([]byte(*text))
		if err != nil {
			return repositories.DiskMessage{}, fmt.Errorf("encode content: %w", err)
		}
		content = encoded
	}
	return repositories.DiskMessage{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Type:           m.Type,
		Content:        content,
		Codec:          s.codecs.Current().Name(),
		MediaIDs:       m.Body.MediaIDs(),
		Locked:         m.Locked,
		Price:          m.Price,
		Status:         m.Status,
		SentAt:         m.SentAt,
		ReplyToID:      m.ReplyToID,
		Language:       m.Language,
	}, nil
}

// toView decodes the stored content only when the viewer may see it.
func (s *ChatService) toView(c domain.Conversation, record repositories.DiskMessage, decision *domain.Decision) (domain.MessageView, error) {
	meta := record.Meta()
	if record.DeletedAt != nil {
		return domain.TombstoneView(meta, c), nil
	}
	if record.Locked && (decision == nil || !decision.HasAccess) {
		d := domain.PaymentRequired(meta)
		if decision != nil {
			d = *decision
		}
		return domain.LockedPlaceholder(meta, c, d), nil
	}

	var text *string
	if record.Content != nil {
		plaintext, err := s.decode(record)
		if err != nil {
			s.log.Error("Stored content cannot be decoded", "message_id", record.ID, "codec", record.Codec, "error", err)
			return domain.UnavailableView(meta, c, decision), nil
		}
		text = lo.ToPtr(string(plaintext))
	}
	body, err := domain.NewBody(record.Type, text, record.MediaIDs)
	if err != nil {
		return domain.MessageView{}, err
	}
	return domain.RevealedView(domain.Message{MessageMeta: meta, Body: body}, c, decision), nil
}

// decode uses the codec the record was written with, whatever the current setting.
func (s *ChatService) decode(record repositories.DiskMessage) ([]byte, error) {
	c, err := s.codecs.Lookup(record.Codec)
	if err != nil {
		return nil, err
	}
	return c.Decode(record.Content)
}

// resolvePrice applies the pay-per-view rules of the conversation.
func resolvePrice(c domain.Conversation, cmd domain.SendMessageCommand) (*domain.Price, error) {
	if !cmd.IsLocked {
		if cmd.Price != nil || cmd.Currency != nil {
			return nil, errors.ErrPriceWithoutLock
		}
		return nil, nil
	}
	if !c.Settings.PPVEnabled {
		return nil, errors.ErrPPVDisabled
	}
	if !c.CanMonetize(cmd.SenderID) {
		return nil, errors.ErrNotOwner
	}
	switch {
	case cmd.Price == nil && cmd.Currency == nil:
		if c.Settings.DefaultPrice == nil {
			return nil, errors.ErrLockedWithoutPrice
		}
		return lo.ToPtr(*c.Settings.DefaultPrice), nil
	case cmd.Price == nil:
		return nil, errors.ErrPriceWithoutCurrency
	case cmd.Currency == nil:
		if *cmd.Price <= 0 {
			return nil, errors.ErrLockedWithoutPrice
		}
		return nil, errors.ErrPriceWithoutCurrency
	}
	price, err := domain.NewPrice(*cmd.Price, *cmd.Currency)
	if err != nil {
		return nil, err
	}
	return &price, nil
}

func validateSettings(settings domain.Settings) error {
	if settings.DefaultPrice == nil {
		return nil
	}
	_, err := domain.NewPrice(settings.DefaultPrice.Amount, settings.DefaultPrice.Currency)
	return err
}

func canManage(c domain.Conversation, actorID string) error {
	if !c.HasParticipant(actorID) {
		return errors.ErrNotParticipant
	}
	if c.OwnerID != nil && !c.IsOwner(actorID) {
		return errors.ErrNotOwner
	}
	return nil
}
