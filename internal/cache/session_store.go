package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// SessionStore keeps session id -> user id bindings in Redis.
type SessionStore struct {
	client *redisv9.Client
	ttl    time.Duration
}

// NewSessionStore returns a store whose keys expire after ttl; zero keeps them until deleted.
func NewSessionStore(client *redisv9.Client, ttl time.Duration) *SessionStore {
	if ttl < 0 {
		ttl = 0
	}
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *SessionStore) Save(ctx context.Context, sessionID string, userID uint) error {
	key := s.sessionKey(sessionID)
	if err := s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session failed: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context, sessionID string) (uint, bool, error) {
	key := s.sessionKey(sessionID)
	raw, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redisv9.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("redis get session failed: %w", err)
	}

	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse cached session failed: %w", err)
	}
	return uint(userID), true, nil
}

// Delete reports whether a session existed.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) (bool, error) {
	key := s.sessionKey(sessionID)
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis delete session failed: %w", err)
	}
	return n > 0, nil
}

func (s *SessionStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("recipebox:session:%s", sessionID)
}
