package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgInternalError   = "Internal Server Error"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgAuthDisabled     = "API_KEY not set, authentication disabled"
	LogMsgPanicRecovered   = "Recovered from panic"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"

	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"

	HeaderValueAllowHeaders = "Content-Type, X-API-Key"
	HeaderValueAllowMethods = "GET, POST, OPTIONS"
)

// Rate limiting defaults
const (
	DefaultRateLimit       = 1000
	DefaultRateLimitWindow = 5 * time.Minute
	// Distinct client IPs tracked at once; the least recently seen are evicted
	DefaultRateLimitClients = 10000

	// Failed-auth count at which an alert is logged
	FailedAuthAlertThreshold = 5
	// Failed-auth count above which the client is refused outright
	FailedAuthBlockThreshold = 20

	// Only every Nth blocked request is logged
	rateLimitLogEvery = 100
)

// DefaultMaxRequestBytes caps request bodies when no limit is configured
const DefaultMaxRequestBytes = 1 << 20

// Server timeouts
const (
	ReadHeaderTimeout = 5 * time.Second
	IdleTimeout       = 120 * time.Second
)

// Public path prefixes that bypass authentication
var PublicPaths = []string{
	"/swagger/",
	"/health",
	"/readyz",
	"/metrics",
	"/version",
}

// Paths the request logger skips
var quietPaths = []string{
	"/health",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
