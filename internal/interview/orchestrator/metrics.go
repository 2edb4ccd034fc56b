package orchestrator

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce          sync.Once
	questionLatencyHist  *prometheus.HistogramVec
	sessionsEndedCounter *prometheus.CounterVec
)

func ensureMetrics() {
	metricsOnce.Do(func() {
		questionLatencyHist = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "interview",
			Subsystem: "orchestrator",
			Name:      "question_latency_seconds",
			Help:      "Latency of next-question generation, by source",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"source"})

		sessionsEndedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "interview",
			Subsystem: "orchestrator",
			Name:      "sessions_ended_total",
			Help:      "Sessions moved to a terminal state, by final status",
		}, []string{"status"})
	})
}

func observeQuestionLatency(source string, d time.Duration) {
	ensureMetrics()
	questionLatencyHist.WithLabelValues(source).Observe(d.Seconds())
}

func countSessionEnded(status string) {
	ensureMetrics()
	sessionsEndedCounter.WithLabelValues(status).Inc()
}
