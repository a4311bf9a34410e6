package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "antisell_http_requests_total"
	MetricNameHTTPRequestDuration  = "antisell_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "antisell_http_requests_in_flight"
)

// Moderation metric names
const (
	MetricNameWebhookMessages   = "antisell_webhook_messages_total"
	MetricNameDeleteAttempts    = "antisell_delete_attempts_total"
	MetricNameBannedWordHits    = "antisell_banned_word_hits_total"
	MetricNameNotificationsSent = "antisell_notifications_total"
)

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextWebhookMessages      = "Webhook messages handled, by outcome"
	HelpTextDeleteAttempts       = "Message deletion calls to GroupMe, by result"
	HelpTextBannedWordHits       = "Messages matched, by first banned word"
	HelpTextNotificationsSent    = "Warning posts sent after deletions, by result"
)

// Labels
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelWord    = "word"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// HTTPLatencyBuckets covers a webhook round trip including one outbound call.
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
