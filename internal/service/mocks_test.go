package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"simplesocial/internal/models"
	"simplesocial/internal/storage"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) Register(ctx context.Context, email, password string) error {
	args := m.Called(ctx, email, password)
	return args.Error(0)
}

func (m *MockUserRepository) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Feed(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Upload(ctx context.Context, media *storage.Media, caption string) error {
	args := m.Called(ctx, media, caption)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID models.PostID) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
