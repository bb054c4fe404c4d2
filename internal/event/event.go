package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	MessageAnalyzed Type = Type(domain.EventTypeMessageAnalyzed)
)

// MessageAnalyzedPayloadV1 describes one analysed message. Parameter values
// are deliberately absent; only which required ones were missing.
type MessageAnalyzedPayloadV1 struct {
	ChatID    string   `json:"chat_id,omitempty"`
	Intent    string   `json:"intent"`
	Missing   []string `json:"missing,omitempty"`
	Complete  bool     `json:"complete"`
	Timestamp int64    `json:"timestamp"`
}

// NewMessageAnalyzedEvent builds a message.analyzed event from an analysis result
func NewMessageAnalyzedEvent(a *domain.Analysis, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MessageAnalyzed,
		Payload: MessageAnalyzedPayloadV1{
			ChatID:    a.ChatID.String(),
			Intent:    a.Intent.String(),
			Missing:   a.Missing,
			Complete:  a.Complete(),
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: source,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
