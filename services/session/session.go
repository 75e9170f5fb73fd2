// File: services/session/session.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"wednest/models"
	"wednest/utils"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "session:"

// RedisStore keeps sessions in Redis keyed by a SHA-256 hash of the auth
// token, so keys are not usable as credentials. TTL slides forward on each
// read.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisStore builds a session store with the given TTL.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func sessionKey(token string) string {
	return sessionPrefix + utils.HashToken(token)
}

// Create saves a fresh session. The session must carry the auth token the
// backend issued at login.
func (s *RedisStore) Create(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.AuthToken == "" {
		return fmt.Errorf("session requires an auth token")
	}
	now := time.Now()
	sess.CreatedAt = now
	sess.LastSeenAt = now

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(sess.AuthToken), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get loads the session for a token and refreshes its TTL.
func (s *RedisStore) Get(ctx context.Context, token string) (*models.Session, error) {
	key := sessionKey(token)
	data, err := s.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	sess.LastSeenAt = time.Now()
	_ = s.Client.Expire(ctx, key, s.TTL).Err()
	return &sess, nil
}

// Delete removes the session wholesale (logout clears everything at once).
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, sessionKey(token)).Err()
}
