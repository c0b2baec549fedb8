package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"

	"profilecoach/clients"
)

// MockLLMClient is a mock implementation of clients.LLMClient
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(
	ctx context.Context,
	systemPrompt string,
	messages []clients.ChatMessage,
) (string, error) {
	args := m.Called(ctx, systemPrompt, messages)
	return args.String(0), args.Error(1)
}
