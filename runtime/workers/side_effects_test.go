package workers

import (
	"chat-vault/domain"
	"chat-vault/domain/event"
	"chat-vault/mocks"
	"context"
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSideEffects_Handle(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("should call the monetization hook for locked messages", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		hook := mocks.NewMockMonetizationHook(ctrl)
		media := mocks.NewMockMediaProcessor(ctrl)
		worker := NewSideEffects(log, nil, hook, media)
		payload := event.LockedMessageSent{MessageID: uuid.New(), SenderID: "creator", Price: domain.Price{Amount: 500, Currency: "USD"}}

		hook.EXPECT().LockedMessageSent(gomock.Any(), payload).Return(nil).Times(1)

		req.NoError(worker.Handle(context.Background(), event.New("", event.LockedMessageSentType, payload)))
	})

	t.Run("should hand media to the processor", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		hook := mocks.NewMockMonetizationHook(ctrl)
		media := mocks.NewMockMediaProcessor(ctrl)
		worker := NewSideEffects(log, nil, hook, media)
		payload := event.MediaAttached{MessageID: uuid.New(), Type: domain.TypeImage, MediaIDs: []string{"m1"}}

		media.EXPECT().Process(gomock.Any(), payload).Return(nil).Times(1)

		req.NoError(worker.Handle(context.Background(), event.New("", event.MediaAttachedType, payload)))
	})

	t.Run("should refuse unknown payloads", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		worker := NewSideEffects(log, nil, mocks.NewMockMonetizationHook(ctrl), mocks.NewMockMediaProcessor(ctrl))

		req.Error(worker.Handle(context.Background(), event.New("", event.TypingType, "nope")))
	})
}

func TestSideEffects_Run_KeepsGoingAfterFailure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	hook := mocks.NewMockMonetizationHook(ctrl)
	media := mocks.NewMockMediaProcessor(ctrl)
	events := make(chan event.Event, 2)
	worker := NewSideEffects(log, events, hook, media)

	processed := make(chan struct{})
	media.EXPECT().Process(gomock.Any(), gomock.Any()).Return(stderrors.New("transcoder down")).Times(1)
	hook.EXPECT().LockedMessageSent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.LockedMessageSent) error {
			close(processed)
			return nil
		}).Times(1)

	// Given a failing media event followed by a locked message
	events <- event.New("", event.MediaAttachedType, event.MediaAttached{})
	events <- event.New("", event.LockedMessageSentType, event.LockedMessageSent{})
	close(events)

	// When the worker drains the queue
	// Then the failure does not stop it
	req.NoError(worker.Run(context.Background()))
	select {
	case <-processed:
	case <-time.After(time.Second):
		req.Fail("Locked message was not processed")
	}
}
