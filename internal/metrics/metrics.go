package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cybersolutions"

// Metrics holds the application counters. A nil *Metrics is a no-op.
type Metrics struct {
	quizSubmissions   prometheus.Counter
	feedbackFallbacks prometheus.Counter
	phishingAnalyses  *prometheus.CounterVec
}

// NewRegistry returns a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		quizSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "submissions_graded_total",
			Help:      "Quiz submissions graded and persisted.",
		}),
		feedbackFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quiz",
			Name:      "feedback_fallbacks_total",
			Help:      "Gradings that used the fixed fallback feedback after an AI failure.",
		}),
		phishingAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "phishing",
			Name:      "analyses_total",
			Help:      "Phishing analyses stored, by verdict.",
		}, []string{"is_phishing"}),
	}
	reg.MustRegister(m.quizSubmissions, m.feedbackFallbacks, m.phishingAnalyses)
	return m
}

// Handler exposes reg in the Prometheus text format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (m *Metrics) QuizGraded() {
	if m == nil {
		return
	}
	m.quizSubmissions.Inc()
}

func (m *Metrics) FeedbackFallback() {
	if m == nil {
		return
	}
	m.feedbackFallbacks.Inc()
}

func (m *Metrics) PhishingAnalyzed(isPhishing bool) {
	if m == nil {
		return
	}
	m.phishingAnalyses.WithLabelValues(strconv.FormatBool(isPhishing)).Inc()
}
