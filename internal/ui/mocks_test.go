package ui

import (
	"context"

	"github.com/stretchr/testify/mock"

	"simplesocial/internal/models"
	"simplesocial/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockAuthService) Logout() {
	m.Called()
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Feed(ctx context.Context) ([]service.FeedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.FeedItem), args.Error(1)
}

func (m *MockPostService) Upload(ctx context.Context, path, caption string) error {
	args := m.Called(ctx, path, caption)
	return args.Error(0)
}

func (m *MockPostService) Delete(ctx context.Context, postID models.PostID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
