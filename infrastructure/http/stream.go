package http

import (
	"chat-vault/contract"
	"chat-vault/sink"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const heartbeatInterval = 15 * time.Second

// SSEStreamer serves real-time topics as Server-Sent Events.
// Events reach it through the registry fan-out.
type SSEStreamer struct {
	registry   contract.IRegistry
	bufferSize int
	log        *slog.Logger
}

func NewSSEStreamer(registry contract.IRegistry, bufferSize int, log *slog.Logger) *SSEStreamer {
	return &SSEStreamer{registry: registry, bufferSize: bufferSize, log: log}
}

func (s *SSEStreamer) Stream(w http.ResponseWriter, r *http.Request, userID string, topics []string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	subscriberID := userID + ":" + uuid.NewString()
	connection := sink.NewConnectionSink(s.bufferSize)
	for _, topic := range topics {
		s.registry.Subscribe(subscriberID, topic, connection)
	}
	defer func() {
		for _, topic := range topics {
			s.registry.Unsubscribe(subscriberID, topic)
		}
		s.log.Debug("Stream closed", "subscriber_id", subscriberID)
	}()
	s.log.Debug("Stream opened", "subscriber_id", subscriberID, "topics", topics)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case evt := <-connection.Events():
			data, err := json.Marshal(evt)
			if err != nil {
				s.log.Warn("Event cannot be encoded", "event", evt.Type, "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
