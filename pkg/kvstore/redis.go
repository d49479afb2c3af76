package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis stores each key as a plain Redis string with no expiry; the cart
// and order history persist until explicitly cleared or consumed.
type Redis struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(addr, password string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("kvstore/redis: ping: %w", err)
	}

	return &Redis{rdb: rdb, ctx: ctx}, nil
}

func redisKey(key string) string { return "stylestore:" + key }

func (r *Redis) Get(key string, dest interface{}) (bool, error) {
	val, err := r.rdb.Get(r.ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("kvstore/redis: get %q: %w", key, err)
	}
	if err := decode(key, []byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Redis) Put(key string, value interface{}) error {
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(r.ctx, redisKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("kvstore/redis: put %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(key string) error {
	if err := r.rdb.Del(r.ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("kvstore/redis: delete %q: %w", key, err)
	}
	return nil
}
