package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

// KVStore is the durable key-value persistence behind the zone store and the
// event log. Values are JSON payloads written through on every mutation.
type KVStore struct {
	client *goredis.Client
}

func NewKVStore(r *Redis) *KVStore {
	return &KVStore{client: r.Client}
}

// Get returns (nil, nil) when the key does not exist.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *KVStore) Del(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
