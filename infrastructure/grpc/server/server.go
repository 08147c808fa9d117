// Package server hosts the gRPC endpoints: the read-only chat service and health checks.
package server

import (
	"chat-vault/auth"
	"chat-vault/errors"
	pb "chat-vault/proto/chat"
	"chat-vault/services"
	"context"
	"fmt"
	"log/slog"
	"net"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the name reported to health checks.
const ServiceName = "chatvault.chat.ChatService"

// NewServer builds the gRPC server with logging, authentication and error
// mapping interceptors, and registers the chat and health services.
func NewServer(log *slog.Logger, issuer *auth.Issuer, healthServer *health.Server, chatService services.IChatService) *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(log),
			auth.UnaryInterceptor(issuer),
			ErrorInterceptor,
		))
	pb.RegisterChatServiceServer(s, NewChatServer(log, chatService))
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	return s
}

// ErrorInterceptor turns domain errors into gRPC statuses.
// Errors already carrying a status pass through.
func ErrorInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}
	if _, ok := status.FromError(err); ok {
		return resp, err
	}
	return resp, errors.MapToGRPCError(err)
}

// Serve listens on port until ctx ends, then stops gracefully.
func Serve(ctx context.Context, log *slog.Logger, s *grpc.Server, port int) error {
	address := fmt.Sprintf("0.0.0.0:%d", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "address", address)
		for serviceName := range s.GetServiceInfo() {
			log.Debug("gRPC exposed services", "name", serviceName)
		}
		errChan <- s.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.GracefulStop()
		return nil
	case err := <-errChan:
		if err != nil && err != grpc.ErrServerStopped {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	}
}
