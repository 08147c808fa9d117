package workers

import (
	"chat-vault/mocks"
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSupervisor_RestartOnPanic(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	var calls atomic.Int32
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls.Add(1)
			panic("boom")
		}).
		AnyTimes()

	sup := NewSupervisor(log, 50*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(ctx)
		close(done)
	}()

	// Then the worker has been restarted after each panic
	// And the supervisor returns once the context is over
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("Supervisor did not stop with its context")
	}
	req.GreaterOrEqual(calls.Load(), int32(2))
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(slog.Default(), 0, nil)

	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then the supervisor saw a clean exit and stopped
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_Stop(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	workerMock := mocks.NewMockWorker(ctrl)

	started := make(chan struct{})
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return nil
		}).
		Times(1)

	sup := NewSupervisor(slog.Default(), 0, nil)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()
	<-started

	// When the supervisor is stopped
	sup.Stop()

	// Then every worker returns
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped")
	}
}

func TestSupervisor_StopRacingRun(t *testing.T) {
	t.Run("should stop when Stop is called concurrently with Run", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		workerMock := mocks.NewMockWorker(ctrl)
		workerMock.EXPECT().
			Run(gomock.Any()).
			DoAndReturn(func(ctx context.Context) error {
				<-ctx.Done()
				return nil
			}).
			AnyTimes()

		sup := NewSupervisor(slog.Default(), 0, nil)
		sup.Add(workerMock)

		// When Run and Stop start at the same time
		done := make(chan struct{})
		go func() {
			sup.Run(context.Background())
			close(done)
		}()
		go sup.Stop()

		// Then Run returns
		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			req.Fail("Supervisor should have stopped")
		}
	})

	t.Run("should return at once when stopped before Run", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		workerMock := mocks.NewMockWorker(ctrl)
		workerMock.EXPECT().Run(gomock.Any()).Return(nil).AnyTimes()

		sup := NewSupervisor(slog.Default(), 0, nil)
		sup.Stop()

		done := make(chan struct{})
		go func() {
			sup.Add(workerMock).Run(context.Background())
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(500 * time.Millisecond):
			req.Fail("Supervisor should not have started its workers")
		}
	})
}
