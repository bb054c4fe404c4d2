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

	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
		[]string{LabelReason},
	)

	WebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameWebSocketConnections,
			Help: HelpTextWebSocketConnections,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Analysis Metrics
var (
	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntentsClassified,
			Help: HelpTextIntentsClassified,
		},
		[]string{LabelIntent, LabelComplete},
	)

	MissingParameters = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissingParameters,
			Help: HelpTextMissingParameters,
		},
		[]string{LabelIntent, LabelParameter},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameAnalysisDuration,
			Help:    HelpTextAnalysisDuration,
			Buckets: AnalysisLatencyBuckets,
		},
	)

	ChatRecordFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChatRecordFailures,
			Help: HelpTextChatRecordFailures,
		},
	)
)
