package repository

import (
	"context"

	"simplesocial/internal/models"
	"simplesocial/internal/storage"
)

type UserRepository interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) error
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type PostRepository interface {
	Feed(ctx context.Context) ([]models.Post, error)
	Upload(ctx context.Context, media *storage.Media, caption string) error
	Delete(ctx context.Context, postID models.PostID) error
}

type Repository struct {
	User UserRepository
	Post PostRepository
}

func NewRepository(client *Client) *Repository {
	return &Repository{
		User: NewUserRepository(client),
		Post: NewPostRepository(client),
	}
}
