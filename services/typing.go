package services

import (
	"chat-vault/contract"
	"chat-vault/domain/event"
	"chat-vault/observability"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// minTypingIdle bounds how often idle limiters are swept.
const minTypingIdle = time.Minute

type typingKey struct {
	conversationID uuid.UUID
	userID         string
}

type typingLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TypingCoordinator relays ephemeral typing signals. Nothing is persisted
// and clients expire stale state on their own.
type TypingCoordinator struct {
	log       *slog.Logger
	chat      IChatService
	directory contract.Directory
	publisher Publisher
	metrics   *observability.Metrics
	limit     rate.Limit
	burst     int
	mu        sync.Mutex
	limiters  map[typingKey]*typingLimiter
	idleAfter time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewTypingCoordinator(log *slog.Logger, chat IChatService, directory contract.Directory,
	publisher Publisher, metrics *observability.Metrics, perSecond float64, burst int) *TypingCoordinator {
	if burst <= 0 {
		burst = 1
	}
	// A limiter idle for longer than a full refill behaves like a new one,
	// so dropping it changes no decision.
	idleAfter := minTypingIdle
	if perSecond > 0 {
		idleAfter = max(idleAfter, time.Duration(float64(burst)/perSecond*float64(time.Second)))
	}
	return &TypingCoordinator{
		log:       log,
		chat:      chat,
		directory: directory,
		publisher: publisher,
		metrics:   metrics,
		limit:     rate.Limit(perSecond),
		burst:     burst,
		limiters:  make(map[typingKey]*typingLimiter),
		idleAfter: idleAfter,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SetTyping publishes a typing signal for a participant.
// Start signals above the rate are dropped without error, stop signals
// always go through so that no indicator stays stuck.
func (t *TypingCoordinator) SetTyping(ctx context.Context, conversationID uuid.UUID, userID string, isTyping bool) error {
	if _, err := t.chat.AuthorizeParticipant(ctx, conversationID, userID); err != nil {
		return err
	}
	if isTyping && !t.allow(typingKey{conversationID: conversationID, userID: userID}) {
		t.metrics.IncrTypingDropped()
		return nil
	}

	username, err := t.directory.DisplayName(ctx, userID)
	if err != nil || username == "" {
		t.log.Debug("Display name unavailable, using user id", "user_id", userID, "error", err)
		username = userID
	}

	t.publisher.Publish(ctx, event.ConversationTopic(conversationID), event.TypingType, event.TypingSignal{
		ConversationID: conversationID,
		UserID:         userID,
		Username:       username,
		IsTyping:       isTyping,
		Timestamp:      t.now(),
	})
	return nil
}

func (t *TypingCoordinator) allow(key typingKey) bool {
	now := t.now()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sweep(now)
	entry, ok := t.limiters[key]
	if !ok {
		entry = &typingLimiter{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.limiters[key] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// sweep drops the limiters of participants who stopped typing long ago.
// It runs at most once per idle period.
func (t *TypingCoordinator) sweep(now time.Time) {
	if now.Sub(t.lastSweep) < t.idleAfter {
		return
	}
	t.lastSweep = now
	for key, entry := range t.limiters {
		if now.Sub(entry.lastSeen) >= t.idleAfter {
			delete(t.limiters, key)
		}
	}
}
