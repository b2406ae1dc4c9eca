// Package session holds the auth token and profile of the signed-in user for
// the lifetime of the process. Nothing is persisted.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"simplesocial/internal/models"
)

var ErrIncompleteSession = errors.New("session requires both a token and a user")

type Store struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewStore() *Store {
	return &Store{}
}

// SignIn moves the store to the authenticated state. Token and user are set
// together or not at all.
func (s *Store) SignIn(token string, user models.User) error {
	if token == "" || user.Email == "" {
		return ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user
	return nil
}

func (s *Store) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token != "" && s.user != nil
}

// Token returns the bearer token or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// ExpiresAt reads the exp claim of the current token. The signature is not
// checked here; the backend does that on every request.
func (s *Store) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
