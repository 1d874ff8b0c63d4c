package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the conversation pipeline.
type ChatMetrics struct {
	chatTotal      *prometheus.CounterVec
	crisisTotal    prometheus.Counter
	replyTierTotal *prometheus.CounterVec
	ttsTotal       *prometheus.CounterVec
	chatLatency    prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		chatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodmate",
			Subsystem: "chat",
			Name:      "requests_total",
			Help:      "Total chat requests by outcome",
		}, []string{"status"}),
		crisisTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "moodmate",
			Subsystem: "chat",
			Name:      "crisis_detected_total",
			Help:      "Total messages short-circuited by the crisis detector",
		}),
		replyTierTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodmate",
			Subsystem: "chat",
			Name:      "reply_tier_total",
			Help:      "Total replies by generation tier",
		}, []string{"tier"}),
		ttsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moodmate",
			Subsystem: "speech",
			Name:      "synthesis_total",
			Help:      "Total speech synthesis attempts by provider and status",
		}, []string{"provider", "status"}),
		chatLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moodmate",
			Subsystem: "chat",
			Name:      "request_latency_seconds",
			Help:      "Latency of chat request handling",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.chatTotal, m.crisisTotal, m.replyTierTotal, m.ttsTotal, m.chatLatency)
	return m
}

func (m *ChatMetrics) ObserveChat(status string) {
	if m == nil {
		return
	}
	m.chatTotal.WithLabelValues(status).Inc()
}

func (m *ChatMetrics) ObserveCrisis() {
	if m == nil {
		return
	}
	m.crisisTotal.Inc()
}

func (m *ChatMetrics) ObserveReplyTier(tier string) {
	if m == nil {
		return
	}
	m.replyTierTotal.WithLabelValues(tier).Inc()
}

func (m *ChatMetrics) ObserveSynthesis(provider, status string) {
	if m == nil {
		return
	}
	m.ttsTotal.WithLabelValues(provider, status).Inc()
}

func (m *ChatMetrics) ObserveChatLatency(seconds float64) {
	if m == nil {
		return
	}
	m.chatLatency.Observe(seconds)
}
