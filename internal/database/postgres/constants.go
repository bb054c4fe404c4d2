package postgres

// Error message fragments
const (
	ErrMsgRecordChatFailed = "failed to record chat message"
	ErrMsgGetChatFailed    = "failed to get chat"
)
