package services

import (
	"errors"
	"testing"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySessionRepository is an in-process stand-in for the redis-backed
// store. A nil user means nobody is signed in.
type memorySessionRepository struct {
	user    *model.User
	loadErr error
}

func (m *memorySessionRepository) Save(user *model.User) error {
	m.user = user
	return nil
}

func (m *memorySessionRepository) Load() (*model.User, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.user, nil
}

func (m *memorySessionRepository) Clear() error {
	m.user = nil
	return nil
}

func TestAuthService_LoginLogout(t *testing.T) {
	sessions := &memorySessionRepository{}
	svc := NewAuthService(sessions, "admin", "admin123")

	assert.False(t, svc.IsAuthenticated())

	user, err := svc.Login("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, svc.IsAuthenticated())
	require.NotNil(t, sessions.user)

	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.Current())
	assert.Nil(t, sessions.user)
}

func TestAuthService_WrongCredentials(t *testing.T) {
	svc := NewAuthService(&memorySessionRepository{}, "admin", "admin123")

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "admin123"},
		{"both empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user, err := svc.Login(tc.username, tc.password)
			assert.Nil(t, user)
			// same error either way, the caller learns nothing about which field failed
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
			assert.False(t, svc.IsAuthenticated())
		})
	}
}

func TestAuthService_RestoresPersistedSession(t *testing.T) {
	sessions := &memorySessionRepository{user: &model.User{Username: "admin"}}

	svc := NewAuthService(sessions, "admin", "admin123")

	assert.True(t, svc.IsAuthenticated())
	require.NotNil(t, svc.Current())
	assert.Equal(t, "admin", svc.Current().Username)
}

func TestAuthService_RestoreFailureStartsSignedOut(t *testing.T) {
	sessions := &memorySessionRepository{loadErr: errors.New("redis down")}

	svc := NewAuthService(sessions, "admin", "admin123")

	assert.False(t, svc.IsAuthenticated())
}

func TestAuthService_LogoutWhenSignedOut(t *testing.T) {
	svc := NewAuthService(&memorySessionRepository{}, "admin", "admin123")

	require.NoError(t, svc.Logout())
	assert.False(t, svc.IsAuthenticated())
}
