package handler

// Client-facing error messages. Internal error details never reach the body.
const (
	// Request body
	ErrMsgNoData                = "No data provided"
	ErrMsgNoMessage             = "No message provided"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Analysis
	ErrMsgAnalyzeFailed = "Failed to analyze message"

	// Chats
	ErrMsgChatIDRequired       = "Chat id is required"
	ErrMsgChatTrackingDisabled = "Chat tracking is disabled"

	// WebSocket
	ErrMsgTextFramesOnly = "Only text frames are supported"
)

// Status values reported by the health endpoints
const (
	StatusHealthy     = "healthy"
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusDisabled    = "disabled"

	MsgDatabaseUnavailable = "database connection failed"
)

// Readiness check names
const (
	CheckDatabase = "database"
	CheckAgent    = "agent"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgAnalyzeFailed     = "Failed to analyze message"
	LogMsgMessageAnalyzed   = "Message analyzed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgWSUpgradeFailed   = "WebSocket upgrade failed"
	LogMsgWSConnected       = "WebSocket client connected"
	LogMsgWSDisconnected    = "WebSocket client disconnected"
	LogMsgWSUnexpectedClose = "WebSocket closed unexpectedly"
	LogMsgWSWriteFailed     = "WebSocket write failed"
)
