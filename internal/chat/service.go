// Package chat tracks which conversations talk to the service and how often.
// Only caller metadata is kept; message contents, intents, and parameters
// never reach storage.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/osse101/ChainBot_Go/internal/domain"
	"github.com/osse101/ChainBot_Go/internal/logger"
	"github.com/osse101/ChainBot_Go/internal/metrics"
)

const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = time.Minute
)

// Repository is the storage behind the chat service
type Repository interface {
	RecordMessage(ctx context.Context, chatID string, at time.Time) (*domain.Chat, error)
	GetChat(ctx context.Context, chatID string) (*domain.Chat, error)
}

// Service records and reports chat activity
type Service interface {
	RecordMessage(ctx context.Context, chatID domain.ChatID) error
	GetChat(ctx context.Context, chatID string) (*domain.Chat, error)
}

type service struct {
	repo  Repository
	cache *chatCache
	now   func() time.Time
}

// NewService creates a chat service backed by repo
func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		cache: newChatCache(DefaultCacheSize, DefaultCacheTTL),
		now:   time.Now,
	}
}

// RecordMessage counts one message for chatID. Blank ids are ignored. A
// storage failure is logged and returned; callers treat it as non-fatal.
func (s *service) RecordMessage(ctx context.Context, chatID domain.ChatID) error {
	id := strings.TrimSpace(chatID.String())
	if id == "" {
		return nil
	}

	chat, err := s.repo.RecordMessage(ctx, id, s.now().UTC())
	if err != nil {
		s.cache.Invalidate(id)
		metrics.ChatRecordFailures.Inc()
		logger.FromContext(ctx).Warn("Failed to record chat activity",
			logger.AttrKeyChatID, id,
			"error", err)
		return err
	}

	s.cache.Set(chat)
	return nil
}

// GetChat returns the activity record for chatID or domain.ErrChatNotFound
func (s *service) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	id := strings.TrimSpace(chatID)
	if id == "" {
		return nil, domain.ErrChatNotFound
	}

	if chat, ok := s.cache.Get(id); ok {
		return chat, nil
	}

	chat, err := s.repo.GetChat(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(chat)
	return chat, nil
}
