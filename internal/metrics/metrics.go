package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Moderation Metrics
var (
	WebhookMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWebhookMessages,
			Help: HelpTextWebhookMessages,
		},
		[]string{LabelOutcome},
	)

	DeleteAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDeleteAttempts,
			Help: HelpTextDeleteAttempts,
		},
		[]string{LabelResult},
	)

	BannedWordHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBannedWordHits,
			Help: HelpTextBannedWordHits,
		},
		[]string{LabelWord},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelResult},
	)
)

// Result maps an error to the result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
