package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/ChainBot_Go/internal/event"
	"github.com/osse101/ChainBot_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the event consumers to the bus
func RegisterEventHandlers(bus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
