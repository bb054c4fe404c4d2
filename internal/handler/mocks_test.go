package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// MockAnalysisService mocks analysis.Service
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) Analyze(ctx context.Context, message string, chatID domain.ChatID) (*domain.Analysis, error) {
	args := m.Called(ctx, message, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

// MockChatService mocks chat.Service
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) RecordMessage(ctx context.Context, chatID domain.ChatID) error {
	args := m.Called(ctx, chatID)
	return args.Error(0)
}

func (m *MockChatService) GetChat(ctx context.Context, chatID string) (*domain.Chat, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
