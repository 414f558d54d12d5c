package services

import (
	"errors"
	"sync"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/pkg/logger"
)

// ErrAuthenticationFailed is deliberately generic: it never reveals which
// of the two fields was wrong.
var ErrAuthenticationFailed = errors.New("identifiants invalides")

type SessionRepository interface {
	Save(user *model.User) error
	Load() (*model.User, error)
	Clear() error
}

// AuthService is the session gate. It checks submitted credentials against
// one statically configured pair and keeps the signed-in identity both in
// memory and in the session store, so it survives a restart. This is a
// development-grade gate, not a security boundary.
type AuthService struct {
	mu       sync.RWMutex
	sessions SessionRepository
	username string
	password string
	current  *model.User
}

// NewAuthService builds the gate and restores any persisted session.
func NewAuthService(sessions SessionRepository, username, password string) *AuthService {
	s := &AuthService{
		sessions: sessions,
		username: username,
		password: password,
	}

	user, err := sessions.Load()
	if err != nil {
		logger.Warn("failed to restore session state", "error", err)
		return s
	}
	if user != nil {
		s.current = user
		logger.Info("restored session", "username", user.Username)
	}
	return s
}

// Login succeeds iff the pair exactly equals the configured credentials.
func (s *AuthService) Login(username, password string) (*model.User, error) {
	if username != s.username || password != s.password {
		return nil, ErrAuthenticationFailed
	}

	user := &model.User{Username: username}
	if err := s.sessions.Save(user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = user
	s.mu.Unlock()
	return user, nil
}

// Logout clears the identity unconditionally, signed in or not.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.sessions.Clear()
}

func (s *AuthService) Current() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *AuthService) IsAuthenticated() bool {
	return s.Current() != nil
}
