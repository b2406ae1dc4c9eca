package service

import (
	"go.uber.org/zap"

	"simplesocial/internal/config"
	"simplesocial/internal/repository"
	"simplesocial/internal/session"
)

type Service struct {
	Auth AuthService
	Post PostService
}

func NewService(rep *repository.Repository, store *session.Store, cfg *config.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		Auth: NewAuthService(rep.User, store, logger),
		Post: NewPostService(rep.Post, cfg, logger),
	}
}
