package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	goRedis "github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *goRedis.Client
	prefix string
}

// NewRedisStore adapts a Redis client to the session store contract so
// sessions survive restarts and are shared across replicas.
func NewRedisStore(client *goRedis.Client, prefix string) scs.Store {
	return &redisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *redisStore) key(token string) string {
	return s.prefix + ":" + token
}

// Find implements scs.Store.
func (s *redisStore) Find(token string) ([]byte, bool, error) {
	data, err := s.client.Get(context.Background(), s.key(token)).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to find session: %w", err)
	}

	return data, true, nil
}

// Commit implements scs.Store.
func (s *redisStore) Commit(token string, b []byte, expiry time.Time) error {
	err := s.client.Set(context.Background(), s.key(token), b, time.Until(expiry)).Err()
	if err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}

	return nil
}

// Delete implements scs.Store.
func (s *redisStore) Delete(token string) error {
	err := s.client.Del(context.Background(), s.key(token)).Err()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
