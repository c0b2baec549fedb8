package apify

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"profilecoach/models"
)

// MockProfileScraperClient is a mock implementation of clients.ProfileScraperClient
type MockProfileScraperClient struct {
	mock.Mock
}

func (m *MockProfileScraperClient) FetchProfile(
	ctx context.Context,
	profileURL string,
) (mo.Option[*models.ProfileRecord], error) {
	args := m.Called(ctx, profileURL)
	return args.Get(0).(mo.Option[*models.ProfileRecord]), args.Error(1)
}
