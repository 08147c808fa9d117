package server

import (
	"chat-vault/auth"
	"chat-vault/errors"
	"context"
	"fmt"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestErrorInterceptor(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode codes.Code
	}{
		{name: "should map validation errors", err: errors.ErrInvalidPageSize, expectedCode: codes.InvalidArgument},
		{name: "should map wrapped not found errors", err: fmt.Errorf("load: %w", errors.ErrMessageNotFound), expectedCode: codes.NotFound},
		{name: "should map missing authentication", err: errors.ErrAuthRequired, expectedCode: codes.Unauthenticated},
		{name: "should map dependency errors", err: errors.ErrLedgerUnavailable, expectedCode: codes.Unavailable},
		{name: "should hide unknown errors", err: fmt.Errorf("disk on fire"), expectedCode: codes.Internal},
		{name: "should keep existing statuses", err: status.Error(codes.ResourceExhausted, "slow down"), expectedCode: codes.ResourceExhausted},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			handler := func(context.Context, any) (any, error) { return nil, tc.err }

			_, err := ErrorInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)

			st, ok := status.FromError(err)
			req.True(ok)
			req.Equal(tc.expectedCode, st.Code())
			req.NotContains(st.Message(), "disk on fire")
		})
	}
}

func TestServer_Health(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	issuer, err := auth.NewIssuer("a-test-secret-that-is-long-enough-1234", time.Hour)
	req.NoError(err)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	s := NewServer(log, issuer, healthServer, &fakeChatService{})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)
	go func() { _ = s.Serve(listener) }()
	defer s.Stop()

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer conn.Close()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: ServiceName})

	req.NoError(err)
	req.Equal(grpc_health_v1.HealthCheckResponse_SERVING, resp.Status)
}
