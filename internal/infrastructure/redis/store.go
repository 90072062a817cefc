package redis

import (
	"context"
	"errors"

	goRedis "github.com/redis/go-redis/v9"

	"github.com/fastygo/schedule/repository"
)

// Store keeps schedule blobs as plain Redis strings without expiry.
type Store struct {
	client *goRedis.Client
	prefix string
}

func NewStore(client *goRedis.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, goRedis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

var _ repository.KeyValueStore = (*Store)(nil)
