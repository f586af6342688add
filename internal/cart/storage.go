package cart

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps a cart snapshot in Redis under one key per cart id,
// standing in for the browser's local storage when the storefront runs
// server-rendered.
type RedisStorage struct {
	Client *redis.Client
	Key    string
}

func NewRedisStorage(client *redis.Client, cartID string) RedisStorage {
	return RedisStorage{Client: client, Key: "cart:" + cartID}
}

func (s RedisStorage) Load() ([]byte, error) {
	data, err := s.Client.Get(context.Background(), s.Key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (s RedisStorage) Save(data []byte) error {
	return s.Client.Set(context.Background(), s.Key, data, 0).Err()
}

func (s RedisStorage) Clear() error {
	return s.Client.Del(context.Background(), s.Key).Err()
}

// MemoryStorage is the in-process adapter used by tests.
type MemoryStorage struct {
	data []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() ([]byte, error) {
	return s.data, nil
}

func (s *MemoryStorage) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.data = nil
	return nil
}
