package observability

import (
	"chat-vault/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics gathers the counters exposed on /metrics.
// Every method is safe on a nil receiver so components can run without it.
type Metrics struct {
	messagesSent         *prometheus.CounterVec
	broadcastFailures    *prometheus.CounterVec
	entitlementDecisions *prometheus.CounterVec
	typingDropped        prometheus.Counter
	sideEffectsDropped   prometheus.Counter
	workerRestarts       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messagesSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "messages_sent_total",
			Help:      "Messages persisted, by message type and lock state.",
		}, []string{"type", "locked"}),
		broadcastFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "broadcast_failures_total",
			Help:      "Events the transport refused, by event type.",
		}, []string{"event"}),
		entitlementDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "entitlement_decisions_total",
			Help:      "Entitlement decisions, by outcome and reason.",
		}, []string{"access", "reason"}),
		typingDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "typing_dropped_total",
			Help:      "Typing signals dropped by the rate limiter.",
		}),
		sideEffectsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "side_effects_dropped_total",
			Help:      "Side effect events dropped because the queue was full.",
		}),
		workerRestarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chatvault",
			Name:      "worker_restarts_total",
			Help:      "Supervised worker restarts, by worker name.",
		}, []string{"worker"}),
	}
	reg.MustRegister(m.messagesSent, m.broadcastFailures, m.entitlementDecisions,
		m.typingDropped, m.sideEffectsDropped, m.workerRestarts)
	return m
}

func (m *Metrics) IncrMessageSent(t domain.MessageType, locked bool) {
	if m == nil {
		return
	}
	lockState := "false"
	if locked {
		lockState = "true"
	}
	m.messagesSent.WithLabelValues(string(t), lockState).Inc()
}

func (m *Metrics) IncrBroadcastFailure(eventType string) {
	if m == nil {
		return
	}
	m.broadcastFailures.WithLabelValues(eventType).Inc()
}

func (m *Metrics) ObserveDecision(d domain.Decision) {
	if m == nil {
		return
	}
	access := "denied"
	if d.HasAccess {
		access = "granted"
	}
	m.entitlementDecisions.WithLabelValues(access, d.Reason).Inc()
}

func (m *Metrics) IncrTypingDropped() {
	if m == nil {
		return
	}
	m.typingDropped.Inc()
}

func (m *Metrics) IncrSideEffectDropped() {
	if m == nil {
		return
	}
	m.sideEffectsDropped.Inc()
}

func (m *Metrics) IncrWorkerRestart(name string) {
	if m == nil {
		return
	}
	m.workerRestarts.WithLabelValues(name).Inc()
}
