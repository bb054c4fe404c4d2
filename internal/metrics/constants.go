package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameRateLimitedTotal     = "http_rate_limited_total"
	MetricNameWebSocketConnections = "websocket_connections"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Analysis metric names
const (
	MetricNameIntentsClassified  = "intents_classified_total"
	MetricNameMissingParameters  = "missing_parameters_total"
	MetricNameAnalysisDuration   = "analysis_duration_seconds"
	MetricNameChatRecordFailures = "chat_record_failures_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextRateLimitedTotal     = "Total number of requests rejected by the rate limiter"
	HelpTextWebSocketConnections = "Current number of open WebSocket connections"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Analysis metric help text
const (
	HelpTextIntentsClassified  = "Total number of analysed messages by intent"
	HelpTextMissingParameters  = "Total number of required parameters missing from analysed messages"
	HelpTextAnalysisDuration   = "Time spent classifying a message and extracting its parameters"
	HelpTextChatRecordFailures = "Total number of chat activity writes that failed"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelReason    = "reason"
	LabelIntent    = "intent"
	LabelComplete  = "complete"
	LabelParameter = "parameter"
)

// Rate limit reasons
const (
	ReasonRequests   = "requests"
	ReasonFailedAuth = "failed_auth"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// AnalysisLatencyBuckets range from 10µs to 10ms; analysis is pure CPU work
var AnalysisLatencyBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01}

// Debug log messages
const (
	LogMsgEventPayloadDecode = "Event payload could not be decoded"
	LogMsgMetricsRecorded    = "Metrics recorded for event"
)
