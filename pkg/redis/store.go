package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/settingsexpr/pkg/emitter"
	"github.com/dmitrymomot/settingsexpr/pkg/export"
)

// orderSuffix names the list keeping the key order of a settings hash.
const orderSuffix = ":order"

// Client is the part of redis.UniversalClient a Store uses.
type Client interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	HMGet(ctx context.Context, key string, fields ...string) *redis.SliceCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store publishes serialized settings into a Redis hash so a remote settings
// loader can pick them up. The hash holds the collapsed pairs; a companion
// list "<key>:order" keeps their order.
type Store struct {
	client  Client
	key     string
	channel string
}

// NewStore returns a store writing to the hash named key. A non-empty channel
// is notified with key after each publish.
func NewStore(client Client, key, channel string) (*Store, error) {
	if key == "" {
		return nil, ErrEmptySettingsKey
	}
	return &Store{client: client, key: key, channel: channel}, nil
}

// NewStoreFromConfig returns a store using cfg.Key and cfg.Channel.
func NewStoreFromConfig(client Client, cfg Config) (*Store, error) {
	return NewStore(client, cfg.Key, cfg.Channel)
}

// Key returns the hash key settings are written to.
func (s *Store) Key() string {
	return s.key
}

// Publish atomically replaces the stored settings with pairs. Repeated keys
// collapse to their last value.
func (s *Store) Publish(ctx context.Context, pairs []emitter.KeyValuePair) error {
	collapsed := export.Collapse(pairs)

	fields := make([]any, 0, len(collapsed)*2)
	order := make([]any, 0, len(collapsed))
	for _, p := range collapsed {
		fields = append(fields, p.Key, p.Value)
		order = append(order, p.Key)
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key, s.key+orderSuffix)
		if len(collapsed) > 0 {
			pipe.HSet(ctx, s.key, fields...)
			pipe.RPush(ctx, s.key+orderSuffix, order...)
		}
		if s.channel != "" {
			pipe.Publish(ctx, s.channel, s.key)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrPublishFailed, err)
	}
	return nil
}

// Fetch returns the stored settings in publish order.
func (s *Store) Fetch(ctx context.Context) ([]emitter.KeyValuePair, error) {
	keys, err := s.client.LRange(ctx, s.key+orderSuffix, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.HMGet(ctx, s.key, keys...).Result()
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	pairs := make([]emitter.KeyValuePair, 0, len(keys))
	for i, key := range keys {
		v, ok := values[i].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q missing from %s", ErrFetchFailed, key, s.key)
		}
		pairs = append(pairs, emitter.KeyValuePair{Key: key, Value: v})
	}
	return pairs, nil
}

// Clear removes the stored settings.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key, s.key+orderSuffix).Err(); err != nil {
		return errors.Join(ErrPublishFailed, err)
	}
	return nil
}
