package server

import (
	"chat-vault/auth"
	"chat-vault/domain"
	"chat-vault/errors"
	pb "chat-vault/proto/chat"
	"chat-vault/services"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ChatServer exposes the read side of the message history to backend callers.
// Writes go through the HTTP API, where the realtime fan-out lives.
type ChatServer struct {
	pb.UnimplementedChatServiceServer
	chatService services.IChatService
	log         *slog.Logger
}

func NewChatServer(log *slog.Logger, chatService services.IChatService) *ChatServer {
	return &ChatServer{chatService: chatService, log: log}
}

func (s *ChatServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		return nil, errors.ErrAuthRequired
	}
	conversationID, err := uuid.Parse(req.GetConversationId())
	if err != nil {
		return nil, errors.ErrInvalidPayload
	}
	views, err := s.chatService.GetMessages(ctx, actor, domain.GetMessagesQuery{
		ConversationID: conversationID,
		Limit:          int(req.GetLimit()),
		Before:         toTime(req.GetBefore()),
		After:          toTime(req.GetAfter()),
	})
	if err != nil {
		return nil, err
	}
	return &pb.GetMessagesResponse{
		Messages: lo.Map(views, func(view domain.MessageView, _ int) *pb.MessageView {
			return toMessageView(view)
		}),
	}, nil
}

func (s *ChatServer) GetMessage(ctx context.Context, req *pb.GetMessageRequest) (*pb.MessageView, error) {
	actor, ok := auth.ActorFromContext(ctx)
	if !ok {
		return nil, errors.ErrAuthRequired
	}
	messageID, err := uuid.Parse(req.GetMessageId())
	if err != nil {
		return nil, errors.ErrInvalidPayload
	}
	view, err := s.chatService.GetMessage(ctx, actor, messageID)
	if err != nil {
		return nil, err
	}
	return toMessageView(view), nil
}

func toMessageView(view domain.MessageView) *pb.MessageView {
	message := &pb.MessageView{
		Id:                 view.ID.String(),
		ConversationId:     view.ConversationID.String(),
		SenderId:           view.SenderID,
		Type:               string(view.Type),
		Content:            lo.FromPtr(view.Content),
		MediaIds:           view.MediaIDs,
		IsLocked:           view.Locked,
		ContentLocked:      view.ContentLocked,
		ContentUnavailable: view.ContentUnavailable,
		Status:             string(view.Status),
		SentAt:             timestamppb.New(view.SentAt),
		EditedAt:           fromTime(view.EditedAt),
		DeletedAt:          fromTime(view.DeletedAt),
	}
	if view.Price != nil {
		message.Price = view.Price.Amount
		message.Currency = view.Price.Currency
	}
	if view.ReplyToID != nil {
		message.ReplyToId = view.ReplyToID.String()
	}
	if d := view.Entitlement; d != nil {
		message.Entitlement = &pb.Entitlement{
			HasAccess:            d.HasAccess,
			Reason:               d.Reason,
			Price:                lo.FromPtr(d.Price),
			Currency:             lo.FromPtr(d.Currency),
			SubscriptionRequired: d.SubscriptionRequired,
			UpgradeRequired:      d.UpgradeRequired,
		}
	}
	return message
}

func toTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	return lo.ToPtr(ts.AsTime())
}

func fromTime(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
