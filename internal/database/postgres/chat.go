package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChainBot_Go/internal/database/generated"
	"github.com/osse101/ChainBot_Go/internal/domain"
)

// ChatRepository stores chat activity metadata in PostgreSQL
type ChatRepository struct {
	q *generated.Queries
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{q: generated.New(db)}
}

// RecordMessage creates the chat on first sight and bumps its counters on
// every later message
func (r *ChatRepository) RecordMessage(ctx context.Context, chatID string, at time.Time) (*domain.Chat, error) {
	row, err := r.q.RecordChatMessage(ctx, generated.RecordChatMessageParams{
		ChatID: chatID,
		SeenAt: pgtype.Timestamptz{Time: at, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgRecordChatFailed, err)
	}

	return mapChat(row), nil
}

// GetChat returns the activity record for chatID or domain.ErrChatNotFound
func (r *ChatRepository) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	row, err := r.q.GetChat(ctx, chatID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatabaseError, ErrMsgGetChatFailed, err)
	}

	return mapChat(row), nil
}

func mapChat(row generated.Chat) *domain.Chat {
	return &domain.Chat{
		ChatID:       row.ChatID,
		FirstSeenAt:  row.FirstSeenAt.Time,
		LastSeenAt:   row.LastSeenAt.Time,
		MessageCount: row.MessageCount,
	}
}
