package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"simplesocial/internal/models"
	"simplesocial/internal/repository"
	"simplesocial/internal/session"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrProfileUnavailable = errors.New("failed to get user info")
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password string) error
	Logout()
}

type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type authService struct {
	userRepo repository.UserRepository
	session  *session.Store
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, store *session.Store, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		session:  store,
		validate: validator.New(),
		logger:   logger,
	}
}

// Login authenticates and loads the profile. The session is signed in only
// when both steps succeed; a profile failure discards the token.
func (s *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := s.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return nil, ErrMissingCredentials
	}

	token, err := s.userRepo.Login(ctx, email, password)
	if err != nil {
		s.logger.Info("login failed", zap.String("email", email), zap.Error(err))
		return nil, errors.Join(ErrInvalidCredentials, err)
	}

	user, err := s.userRepo.CurrentUser(ctx, token)
	if err != nil {
		s.logger.Warn("profile fetch failed after login", zap.String("email", email), zap.Error(err))
		return nil, errors.Join(ErrProfileUnavailable, err)
	}

	if err := s.session.SignIn(token, *user); err != nil {
		return nil, errors.Join(ErrProfileUnavailable, err)
	}

	s.logger.Info("signed in", zap.String("email", user.Email))
	return user, nil
}

func (s *authService) Register(ctx context.Context, email, password string) error {
	if err := s.validate.Struct(credentials{Email: email, Password: password}); err != nil {
		return ErrMissingCredentials
	}

	if err := s.userRepo.Register(ctx, email, password); err != nil {
		s.logger.Info("registration failed", zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("account created", zap.String("email", email))
	return nil
}

func (s *authService) Logout() {
	if user, ok := s.session.User(); ok {
		s.logger.Info("signed out", zap.String("email", user.Email))
	}
	s.session.SignOut()
}
