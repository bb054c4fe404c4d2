package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "message.analyzed")
const (
	// EventTypeMessageAnalyzed is published after a chat message has been classified
	EventTypeMessageAnalyzed = "message.analyzed"
)
