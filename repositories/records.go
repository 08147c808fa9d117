package repositories

import (
	"chat-vault/domain"
	pb "chat-vault/proto/storage"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func marshalConversation(c domain.Conversation) ([]byte, error) {
	return proto.Marshal(fromConversation(c))
}

func unmarshalConversation(data []byte) (domain.Conversation, error) {
	var conversationPb pb.Conversation
	if err := proto.Unmarshal(data, &conversationPb); err != nil {
		return domain.Conversation{}, err
	}
	return toConversation(&conversationPb)
}

func marshalMessage(m DiskMessage) ([]byte, error) {
	return proto.Marshal(fromDiskMessage(m))
}

func unmarshalMessage(data []byte) (DiskMessage, error) {
	var messagePb pb.Message
	if err := proto.Unmarshal(data, &messagePb); err != nil {
		return DiskMessage{}, err
	}
	return toDiskMessage(&messagePb)
}

func fromConversation(c domain.Conversation) *pb.Conversation {
	return &pb.Conversation{
		Id:            c.ID.String(),
		Kind:          string(c.Kind),
		Participants:  c.Participants,
		OwnerId:       lo.FromPtr(c.OwnerID),
		CounterpartId: lo.FromPtr(c.CounterpartID),
		Settings: &pb.Settings{
			PpvEnabled:        c.Settings.PPVEnabled,
			DefaultPrice:      fromPrice(c.Settings.DefaultPrice),
			AllowMedia:        c.Settings.AllowMedia,
			ModerationEnabled: c.Settings.ModerationEnabled,
		},
		CreatedAt:     timestamppb.New(c.CreatedAt),
		LastMessageAt: fromTime(c.LastMessageAt),
		IsActive:      c.IsActive,
	}
}

func toConversation(conversationPb *pb.Conversation) (domain.Conversation, error) {
	id, err := uuid.Parse(conversationPb.GetId())
	if err != nil {
		return domain.Conversation{}, fmt.Errorf("conversation id: %w", err)
	}
	settings := conversationPb.GetSettings()
	return domain.Conversation{
		ID:            id,
		Kind:          domain.ConversationKind(conversationPb.GetKind()),
		Participants:  conversationPb.GetParticipants(),
		OwnerID:       lo.EmptyableToPtr(conversationPb.GetOwnerId()),
		CounterpartID: lo.EmptyableToPtr(conversationPb.GetCounterpartId()),
		Settings: domain.Settings{
			PPVEnabled:        settings.GetPpvEnabled(),
			DefaultPrice:      toPrice(settings.GetDefaultPrice()),
			AllowMedia:        settings.GetAllowMedia(),
			ModerationEnabled: settings.GetModerationEnabled(),
		},
		CreatedAt:     conversationPb.GetCreatedAt().AsTime(),
		LastMessageAt: toTime(conversationPb.GetLastMessageAt()),
		IsActive:      conversationPb.GetIsActive(),
	}, nil
}

func fromDiskMessage(m DiskMessage) *pb.Message {
	messagePb := &pb.Message{
		Id:             m.ID.String(),
		ConversationId: m.ConversationID.String(),
		SenderId:       m.SenderID,
		Type:           string(m.Type),
		Content:        m.Content,
		Codec:          m.Codec,
		MediaIds:       m.MediaIDs,
		Locked:         m.Locked,
		Price:          fromPrice(m.Price),
		Status:         string(m.Status),
		SentAt:         timestamppb.New(m.SentAt),
		EditedAt:       fromTime(m.EditedAt),
		DeletedAt:      fromTime(m.DeletedAt),
		Language:       m.Language,
	}
	if m.ReplyToID != nil {
		messagePb.ReplyToId = m.ReplyToID.String()
	}
	return messagePb
}

func toDiskMessage(messagePb *pb.Message) (DiskMessage, error) {
	id, err := uuid.Parse(messagePb.GetId())
	if err != nil {
		return DiskMessage{}, fmt.Errorf("message id: %w", err)
	}
	conversationID, err := uuid.Parse(messagePb.GetConversationId())
	if err != nil {
		return DiskMessage{}, fmt.Errorf("conversation id: %w", err)
	}
	var replyToID *uuid.UUID
	if raw := messagePb.GetReplyToId(); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return DiskMessage{}, fmt.Errorf("reply id: %w", err)
		}
		replyToID = &parsed
	}
	return DiskMessage{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       messagePb.GetSenderId(),
		Type:           domain.MessageType(messagePb.GetType()),
		Content:        messagePb.GetContent(),
		Codec:          messagePb.GetCodec(),
		MediaIDs:       messagePb.GetMediaIds(),
		Locked:         messagePb.GetLocked(),
		Price:          toPrice(messagePb.GetPrice()),
		Status:         domain.Status(messagePb.GetStatus()),
		SentAt:         messagePb.GetSentAt().AsTime(),
		ReplyToID:      replyToID,
		EditedAt:       toTime(messagePb.GetEditedAt()),
		DeletedAt:      toTime(messagePb.GetDeletedAt()),
		Language:       messagePb.GetLanguage(),
	}, nil
}

func fromUser(user User) *pb.User {
	return &pb.User{
		Id:          user.ID,
		DisplayName: user.DisplayName,
		UpdatedAt:   timestamppb.New(user.UpdatedAt),
	}
}

func toUser(userPb *pb.User) User {
	return User{
		ID:          userPb.GetId(),
		DisplayName: userPb.GetDisplayName(),
		UpdatedAt:   userPb.GetUpdatedAt().AsTime(),
	}
}

func marshalReadAt(at time.Time) ([]byte, error) {
	return proto.Marshal(&pb.ReadReceipt{ReadAt: timestamppb.New(at)})
}

func unmarshalReadAt(data []byte) (time.Time, error) {
	var receiptPb pb.ReadReceipt
	if err := proto.Unmarshal(data, &receiptPb); err != nil {
		return time.Time{}, err
	}
	return receiptPb.GetReadAt().AsTime(), nil
}

func fromPrice(price *domain.Price) *pb.Price {
	if price == nil {
		return nil
	}
	return &pb.Price{Amount: price.Amount, Currency: price.Currency}
}

func toPrice(pricePb *pb.Price) *domain.Price {
	if pricePb == nil {
		return nil
	}
	return &domain.Price{Amount: pricePb.GetAmount(), Currency: pricePb.GetCurrency()}
}

func fromTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func toTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	return lo.ToPtr(ts.AsTime())
}
