package testutil

import (
	"context"

	"vibesync/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of chat.Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockChatStore is a mock implementation of chat.Store
type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) AppendMessages(ctx context.Context, userID string, msgs []models.ChatMessage) error {
	args := m.Called(ctx, userID, msgs)
	return args.Error(0)
}

func (m *MockChatStore) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatStore) Clear(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
