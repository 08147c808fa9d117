package observability

import (
	"chat-vault/domain"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics(prometheus.NewRegistry())

	// When a few outcomes are recorded
	metrics.IncrMessageSent(domain.TypeText, false)
	metrics.IncrMessageSent(domain.TypeText, false)
	metrics.IncrMessageSent(domain.TypeImage, true)
	metrics.ObserveDecision(domain.Decision{HasAccess: false, Reason: domain.ReasonPaymentRequired})
	metrics.IncrTypingDropped()

	// Then every counter carries its own labels
	req.Equal(float64(2), testutil.ToFloat64(metrics.messagesSent.WithLabelValues("text", "false")))
	req.Equal(float64(1), testutil.ToFloat64(metrics.messagesSent.WithLabelValues("image", "true")))
	req.Equal(float64(1), testutil.ToFloat64(metrics.entitlementDecisions.WithLabelValues("denied", domain.ReasonPaymentRequired)))
	req.Equal(float64(1), testutil.ToFloat64(metrics.typingDropped))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var metrics *Metrics
	require.NotPanics(t, func() {
		metrics.IncrMessageSent(domain.TypeText, false)
		metrics.IncrBroadcastFailure("typing")
		metrics.ObserveDecision(domain.Decision{})
		metrics.IncrWorkerRestart("EventFanout")
	})
}
