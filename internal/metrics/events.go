package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/ChainBot_Go/internal/domain"
	"github.com/osse101/ChainBot_Go/internal/event"
	"github.com/osse101/ChainBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events and zero-initialises the intent series
// so every intent shows up on /metrics before its first message
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, intent := range domain.AllIntents {
		for _, complete := range []bool{true, false} {
			IntentsClassified.WithLabelValues(intent.String(), strconv.FormatBool(complete))
		}
	}

	bus.Subscribe(event.MessageAnalyzed, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.MessageAnalyzed:
		payload, err := event.DecodePayload[event.MessageAnalyzedPayloadV1](evt.Payload)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}

		IntentsClassified.WithLabelValues(payload.Intent, strconv.FormatBool(payload.Complete)).Inc()
		for _, param := range payload.Missing {
			MissingParameters.WithLabelValues(payload.Intent, param).Inc()
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
