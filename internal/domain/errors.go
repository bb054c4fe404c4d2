package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Message errors
	ErrMsgEmptyMessage = "no message provided"

	// Chat errors
	ErrMsgChatNotFound  = "chat not found"
	ErrMsgInvalidChatID = "chat id must be a string or number"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Agent errors
	ErrMsgAgentUnconfigured = "agent is not configured"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Message errors
	ErrEmptyMessage = errors.New(ErrMsgEmptyMessage)

	// Chat errors
	ErrChatNotFound  = errors.New(ErrMsgChatNotFound)
	ErrInvalidChatID = errors.New(ErrMsgInvalidChatID)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Agent errors
	ErrAgentUnconfigured = errors.New(ErrMsgAgentUnconfigured)
)
