package runtime

import (
	"chat-vault/contract"
	"sync"
)

type Set map[string]struct{}

// Registry maps real-time topics to the connections listening on them.
// A subscriber is one connection: a user with two open tabs has two.
type Registry struct {
	mu           sync.RWMutex
	Sessions     map[string]contract.EventSink // subscriber -> sink
	TopicMembers map[string]Set                // topic -> subscribers
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:     make(map[string]contract.EventSink),
		TopicMembers: make(map[string]Set),
	}
}

// GetSinksForTopic resolves the subscribers of topic into their sinks.
// Returns nil when nobody listens.
func (r *Registry) GetSinksForTopic(topic string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.TopicMembers[topic]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for subscriberID := range members {
		if sink, exists := r.Sessions[subscriberID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers the connection sink and adds it to topic.
func (r *Registry) Subscribe(subscriberID, topic string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[subscriberID] = sink
	if _, ok := r.TopicMembers[topic]; !ok {
		r.TopicMembers[topic] = make(Set)
	}
	r.TopicMembers[topic][subscriberID] = struct{}{}
}

// Unsubscribe removes the subscriber from topic and drops its session once
// it listens to nothing else. Empty topics are removed.
func (r *Registry) Unsubscribe(subscriberID, topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.TopicMembers[topic]; ok {
		delete(members, subscriberID)
		if len(members) == 0 {
			delete(r.TopicMembers, topic)
		}
	}
	for _, members := range r.TopicMembers {
		if _, listening := members[subscriberID]; listening {
			return
		}
	}
	delete(r.Sessions, subscriberID)
}
