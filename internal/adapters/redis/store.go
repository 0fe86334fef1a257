// Package redisad backs the app's key-value persistence with Redis. Values
// are whole JSON records; every write replaces the previous value. A pub/sub
// channel carries the "this key changed" signal that lets one process observe
// another's writes, the way browser tabs share a storage event.
package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Erkin33/hotel-new-rent/internal/adapters/observability"
)

// changeChannel carries the key name of every mutated entry.
const changeChannel = "hotelrent:changed"

type Store struct{ c *redis.Client }

func New(addr, pass string, db int) *Store {
	return &Store{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("redis", "hit")
	if err := json.Unmarshal(v, dst); err != nil {
		// A value that fails to decode reads as absent, never as an error.
		log.Warn().Str("key", key).Err(err).Msg("discarding undecodable store value")
		return false, nil
	}
	return true, nil
}

func (r *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveStore("redis", "set")
	if err := r.c.Set(ctx, key, b, 0).Err(); err != nil {
		return err
	}
	r.signal(ctx, key)
	return nil
}

func (r *Store) Del(ctx context.Context, key string) error {
	observability.ObserveStore("redis", "del")
	if err := r.c.Del(ctx, key).Err(); err != nil {
		return err
	}
	r.signal(ctx, key)
	return nil
}

func (r *Store) signal(ctx context.Context, key string) {
	observability.ObserveStore("redis", "signal")
	if err := r.c.Publish(ctx, changeChannel, key).Err(); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("change signal publish failed")
	}
}

// Watch subscribes to mutations of key. The returned channel gets a token per
// change (coalesced while the consumer is busy); the func tears the
// subscription down. The writer's own mutations are delivered too.
func (r *Store) Watch(ctx context.Context, key string) (<-chan struct{}, func()) {
	ps := r.c.Subscribe(ctx, changeChannel)
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for msg := range ps.Channel() {
			if msg.Payload != key {
				continue
			}
			select {
			case out <- struct{}{}:
			default: // consumer will re-read anyway
			}
		}
	}()
	return out, func() { _ = ps.Close() }
}
