package chat

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// chatCache keeps recently read or written chat records so repeated lookups
// skip the database. Entries expire after the TTL.
type chatCache struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, domain.Chat]
}

func newChatCache(size int, ttl time.Duration) *chatCache {
	return &chatCache{
		lru: expirable.NewLRU[string, domain.Chat](size, nil, ttl),
	}
}

// Get returns a copy so callers can't mutate the cached record
func (c *chatCache) Get(chatID string) (*domain.Chat, bool) {
	chat, ok := c.lru.Get(chatID)
	if !ok {
		return nil, false
	}
	return &chat, true
}

// Set stores chat unless a record with a higher message count is already
// cached. Concurrent writers finish in any order; the counter only moves up.
func (c *chatCache) Set(chat *domain.Chat) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.lru.Peek(chat.ChatID); ok && cached.MessageCount > chat.MessageCount {
		return
	}
	c.lru.Add(chat.ChatID, *chat)
}

func (c *chatCache) Invalidate(chatID string) {
	c.lru.Remove(chatID)
}
