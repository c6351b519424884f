package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/dashboard/internal/application/adapter"
	domainerror "github.com/finance-tracker/dashboard/internal/domain/error"
)

// RedisStore is a key/value store backed by redis strings.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a key/value store on a redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

// Get retrieves the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

// Begin opens a MULTI/EXEC pipeline used as the write session.
func (s *RedisStore) Begin(ctx context.Context) (adapter.KeyValueSession, error) {
	return &redisSession{ctx: ctx, pipe: s.client.TxPipeline()}, nil
}

// Ping checks the redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
	}
	return nil
}

// Close closes the redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

type redisSession struct {
	ctx    context.Context
	pipe   redis.Pipeliner
	closed bool
}

func (rs *redisSession) Put(key string, value []byte) error {
	if rs.closed {
		return domainerror.ErrSessionClosed
	}
	rs.pipe.Set(rs.ctx, key, value, 0)
	return nil
}

func (rs *redisSession) Commit() error {
	if rs.closed {
		return domainerror.ErrSessionClosed
	}
	rs.closed = true

	if _, err := rs.pipe.Exec(rs.ctx); err != nil {
		return fmt.Errorf("failed to execute redis transaction: %w", err)
	}
	return nil
}

// Release discards the queued commands unless they were executed.
func (rs *redisSession) Release() error {
	if rs.closed {
		return nil
	}
	rs.closed = true
	rs.pipe.Discard()
	return nil
}
