// Package http exposes the chat use cases over HTTP with gin.
package http

import (
	"chat-vault/auth"
	"chat-vault/services"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Config struct {
	Host string
	Port int
	Mode string
}

// Typer is the typing side of the API.
type Typer interface {
	SetTyping(ctx context.Context, conversationID uuid.UUID, userID string, isTyping bool) error
}

// Streamer attaches a long-lived connection to real-time topics.
// Exactly one implementation is wired at startup.
type Streamer interface {
	Stream(w http.ResponseWriter, r *http.Request, userID string, topics []string)
}

type Dependencies struct {
	Chat     services.IChatService
	Typing   Typer
	Profiles services.IProfileService
	Issuer   *auth.Issuer
	Streamer Streamer
	Metrics  http.Handler
}

type Server struct {
	server *http.Server
	log    *slog.Logger
}

func NewServer(cfg Config, deps Dependencies, log *slog.Logger) *Server {
	if cfg.Mode == gin.DebugMode {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           NewRouter(deps, log),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then shuts down within timeout.
func (s *Server) Run(ctx context.Context, timeout time.Duration) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("Stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route.
func NewRouter(deps Dependencies, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	h := NewChatHandler(deps, log)
	v1 := router.Group("/api/v1", auth.Middleware(deps.Issuer, true))
	{
		v1.POST("/conversations", h.CreateConversation)
		v1.GET("/conversations", h.ListConversations)
		v1.PATCH("/conversations/:id/settings", h.UpdateSettings)
		v1.POST("/conversations/:id/deactivate", h.DeactivateConversation)
		v1.POST("/conversations/:id/messages", h.SendMessage)
		v1.GET("/conversations/:id/messages", h.GetMessages)
		v1.POST("/conversations/:id/typing", h.SetTyping)
		v1.GET("/conversations/:id/stream", h.StreamConversation)

		v1.GET("/messages/:id", h.GetMessage)
		v1.PATCH("/messages/:id", h.EditMessage)
		v1.DELETE("/messages/:id", h.DeleteMessage)
		v1.POST("/messages/:id/read", h.MarkRead)

		v1.GET("/me/profile", h.GetProfile)
		v1.PUT("/me/profile", h.SaveProfile)
		v1.GET("/me/stream", h.StreamUser)
	}
	return router
}

func ginLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		)
	}
}
