package repository

import (
	"encoding/json"
	"errors"

	"github.com/Bigsouley03/cat-payment-app/internal/model"
	"github.com/Bigsouley03/cat-payment-app/pkg/redis"
)

// SessionRepository persists the authenticated-identity marker under one
// fixed key, so a signed-in session survives a client restart. One key,
// one session: this gate has no multi-user registry.
type SessionRepository struct {
	adapter redis.RedisAdapter
	key     string
}

func NewSessionRepository(adapter redis.RedisAdapter, key string) *SessionRepository {
	return &SessionRepository{
		adapter: adapter,
		key:     key,
	}
}

// Save writes the identity marker. No TTL: the session lasts until logout.
func (r *SessionRepository) Save(user *model.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.adapter.Set(r.key, b, 0)
}

// Load reads the persisted identity. A missing key is not an error, it
// just means nobody is signed in.
func (r *SessionRepository) Load() (*model.User, error) {
	b, err := r.adapter.Get(r.key)
	if err != nil {
		if errors.Is(err, redis.NilError) {
			return nil, nil
		}
		return nil, err
	}
	var user model.User
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *SessionRepository) Clear() error {
	return r.adapter.Del(r.key)
}
