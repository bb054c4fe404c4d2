package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ChatID identifies the conversation a message came from. Chat platforms send it
// either as a JSON string or as a number; both decode to the same value.
type ChatID string

// UnmarshalJSON accepts a string, a number, or null
func (c *ChatID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidChatID, err)
		}
		*c = ChatID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidChatID, err)
	}
	*c = ChatID(n.String())
	return nil
}

// String implements fmt.Stringer
func (c ChatID) String() string {
	return string(c)
}

// Chat is the activity record kept for a conversation. Only caller metadata is
// tracked here; intents and parameters are never persisted.
type Chat struct {
	ChatID       string    `json:"chat_id"`
	FirstSeenAt  time.Time `json:"first_seen_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
	MessageCount int64     `json:"message_count"`
}
