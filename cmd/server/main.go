package main

import (
	"chat-vault/auth"
	"chat-vault/codec"
	"chat-vault/contract"
	"chat-vault/domain/event"
	"chat-vault/entitlement"
	"chat-vault/infrastructure/grpc/server"
	httpserver "chat-vault/infrastructure/http"
	"chat-vault/infrastructure/websocket"
	"chat-vault/internal"
	"chat-vault/ledger"
	"chat-vault/moderation"
	"chat-vault/observability"
	"chat-vault/repositories"
	"chat-vault/runtime"
	"chat-vault/runtime/workers"
	"chat-vault/services"
	"chat-vault/sink"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"gorm.io/gorm/logger"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every deferred cleanup run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}
	codecs, err := codec.NewRegistry(config.Codec, config.CodecKeyHex)
	if err != nil {
		return exitConfig, fmt.Errorf("codec error: %w", err)
	}
	issuer, err := auth.NewIssuer(config.JWTSecret, config.AuthTokenDuration)
	if err != nil {
		return exitConfig, err
	}

	log := logs.GetLoggerFromString(config.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage (BadgerDB) and ledgers
	db, err := badger.Open(buildBadgerOpts(ctx, config, log))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	if log.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		log.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, repositories.InspectMapper)
	}

	ledgerDB, err := ledger.Open(config.LedgerDriver, config.LedgerDSN, gormLogLevel(ctx, log))
	if err != nil {
		return exitRuntime, fmt.Errorf("ledger opening failed: %w", err)
	}
	if sqlDB, err := ledgerDB.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	// 3. Moderation
	dictionary, err := moderation.LoadEmbedded()
	if err != nil {
		return exitRuntime, fmt.Errorf("censored words loading failed: %w", err)
	}
	moderator, err := moderation.NewModerator(dictionary.Words, charReplacement, log)
	if err != nil {
		return exitRuntime, fmt.Errorf("moderator init failed: %w", err)
	}

	// 4. Metrics
	registerer := prometheus.NewRegistry()
	registerer.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registerer)

	// 5. Transport, selected once for the whole process
	sup := workers.NewSupervisor(log, config.RestartInterval, metrics)
	var (
		transport contract.Transport
		streamer  httpserver.Streamer
	)
	switch config.Transport {
	case internal.TransportWebsocket:
		hub := websocket.NewHub(log, config.ConnectionBufferSize)
		sup.Add(hub)
		transport, streamer = hub, hub
	default:
		events := make(chan event.Event, config.BufferSize)
		registry := runtime.NewRegistry()
		sup.Add(workers.NewEventFanout(log, registry, events, config.SinkTimeout))
		transport = runtime.NewRegistryTransport(events)
		streamer = httpserver.NewSSEStreamer(registry, config.ConnectionBufferSize, log)
	}
	log.Info("Real-time transport selected", "transport", config.Transport)
	broadcaster := runtime.NewBroadcaster(transport, log, metrics)

	sideEffects := make(chan event.Event, config.BufferSize)
	sup.Add(workers.NewSideEffects(log, sideEffects, sink.NewMonetizationLog(log), sink.NewMediaLog(log)))

	// 6. Services
	purchases := ledger.NewPurchaseLedger(ledgerDB)
	users := repositories.NewUserRepository(db)
	chat := services.NewChatService(services.ChatDeps{
		Log:           log,
		Conversations: repositories.NewConversationRepository(db, log, config.ConflictRetries),
		Messages:      repositories.NewMessageRepository(db, log, config.ConflictRetries),
		Resolver:      entitlement.NewResolver(log, ledger.NewSubscriptionLedger(ledgerDB), purchases, metrics, config.BulkConcurrency),
		Purchases:     purchases,
		Publisher:     broadcaster,
		Codecs:        codecs,
		Moderator:     moderator,
		SideEffects:   sideEffects,
		Metrics:       metrics,
	})
	typing := services.NewTypingCoordinator(log, chat, users, broadcaster, metrics, config.TypingRate, config.TypingBurst)

	// 7. Servers
	supervisorDone := make(chan struct{})
	go func() {
		defer close(supervisorDone)
		log.Info("Starting supervisor...")
		sup.Run(ctx)
	}()

	healthServer := health.NewServer()
	healthServer.SetServingStatus(server.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	grpcServer := server.NewServer(log, issuer, healthServer, chat)

	// Both servers stop on the signal or on the first failure of either one
	servers, serveCtx := errgroup.WithContext(ctx)
	servers.Go(func() error {
		return server.Serve(serveCtx, log, grpcServer, config.GRPCPort)
	})

	httpServer := httpserver.NewServer(httpserver.Config{
		Host: config.HTTPHost,
		Port: config.HTTPPort,
		Mode: config.GinMode,
	}, httpserver.Dependencies{
		Chat:     chat,
		Typing:   typing,
		Profiles: services.NewProfileService(users),
		Issuer:   issuer,
		Streamer: streamer,
		Metrics:  promhttp.HandlerFor(registerer, promhttp.HandlerOpts{}),
	}, log)
	servers.Go(func() error {
		return httpServer.Run(serveCtx, config.ShutdownTimeout)
	})

	// 8. Wait for Stop or Error
	<-serveCtx.Done()
	if ctx.Err() != nil {
		log.Info("Shutdown signal received")
	}
	log.Info("Shutting down gracefully...")
	healthServer.Shutdown()

	// The store closes on return, so every server and worker must be done first
	serveErr := servers.Wait()
	sup.Stop()
	<-supervisorDone
	if serveErr != nil {
		return exitRuntime, serveErr
	}
	log.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(ctx context.Context, config internal.Config, log *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if log.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

func gormLogLevel(ctx context.Context, log *slog.Logger) logger.LogLevel {
	if log.Enabled(ctx, slog.LevelDebug) {
		return logger.Info
	}
	return logger.Warn
}
