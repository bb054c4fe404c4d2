// Package analysis turns a chat message into an intent, its parameters, and
// a reply. It is the only caller of the intent package.
package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/osse101/ChainBot_Go/internal/domain"
	"github.com/osse101/ChainBot_Go/internal/event"
	"github.com/osse101/ChainBot_Go/internal/intent"
	"github.com/osse101/ChainBot_Go/internal/logger"
	"github.com/osse101/ChainBot_Go/internal/metrics"
)

// Service analyses chat messages
type Service interface {
	Analyze(ctx context.Context, message string, chatID domain.ChatID) (*domain.Analysis, error)
}

type service struct {
	bus event.Bus
}

// NewService creates an analysis service. bus may be nil, in which case no
// events are published.
func NewService(bus event.Bus) Service {
	return &service{bus: bus}
}

type sourceKey struct{}

// WithSource tags ctx with the transport a message arrived on
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey{}, source)
}

func sourceFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(sourceKey{}).(string); ok {
		return s
	}
	return event.SourceHTTP
}

// Analyze classifies message, extracts its parameters, and composes a reply.
// A blank message is rejected with domain.ErrEmptyMessage.
func (s *service) Analyze(ctx context.Context, message string, chatID domain.ChatID) (*domain.Analysis, error) {
	if strings.TrimSpace(message) == "" {
		return nil, domain.ErrEmptyMessage
	}

	start := time.Now()
	detected := intent.Classify(message)
	params := intent.Extract(message)
	missing := MissingParameters(detected, params)

	result := &domain.Analysis{
		Response:   ComposeResponse(message, detected, params, missing),
		Intent:     detected,
		Parameters: params,
		Missing:    missing,
		ChatID:     chatID,
	}
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	log := logger.FromContext(ctx)
	log.Debug("Message analyzed",
		"intent", detected,
		logger.AttrKeyChatID, chatID,
		"missing", missing)

	if s.bus != nil {
		evt := event.NewMessageAnalyzedEvent(result, sourceFromContext(ctx))
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish analysis event", "error", err)
		}
	}

	return result, nil
}
