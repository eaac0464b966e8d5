//This project is the dining API for Hoagie Meal. Access to campus dining locations, events and menus as well as helper endpoints to integrate with our apps.
//API Copyright (C) 2025 Hoagie Club
//This program is free software: you can redistribute it and/or modify
//it under the terms of the GNU General Public License as published by
//the Free Software Foundation, either version 3 of the License, or
//(at your option) any later version.
//
//This program is distributed in the hope that it will be useful,
//but WITHOUT ANY WARRANTY; without even the implied warranty of
//MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//GNU General Public License for more details.
//
//You should have received a copy of the GNU General Public License
//along with this program.  If not, see <https://www.gnu.org/licenses/>.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheKeyPrefix = "hoagiemeal:upstream:"

// ErrCacheMiss is returned by a Store when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Store is the key/value backend used for caching upstream responses.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisStore keeps cached responses in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// CachingClient serves repeated upstream reads from a Store. Each path has
// its own TTL; paths without one are not cached. Only non-empty successful
// responses are stored. Store failures are logged and the request falls
// through to the wrapped client.
type CachingClient struct {
	next  Client
	store Store
	ttls  map[string]time.Duration
}

func NewCachingClient(next Client, store Store, ttls map[string]time.Duration) *CachingClient {
	return &CachingClient{next: next, store: store, ttls: ttls}
}

func (c *CachingClient) Get(ctx context.Context, path string, args map[string]string) (*Response, error) {
	ttl, ok := c.ttls[path]
	if !ok || ttl <= 0 {
		return c.next.Get(ctx, path, args)
	}

	key := cacheKey(path, args)
	if cached, err := c.store.Get(ctx, key); err == nil {
		res, err := decodeCached(cached)
		if err == nil {
			return res, nil
		}
		log.Printf("Discarding unreadable cache entry %s: %v", key, err)
	} else if !errors.Is(err, ErrCacheMiss) {
		log.Printf("Cache read failed for %s: %v", key, err)
	}

	res, err := c.next.Get(ctx, path, args)
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return res, nil
	}

	encoded, err := json.Marshal(res)
	if err != nil {
		log.Printf("Cache encode failed for %s: %v", key, err)
		return res, nil
	}
	if err := c.store.Set(ctx, key, string(encoded), ttl); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}
	return res, nil
}

func cacheKey(path string, args map[string]string) string {
	query := url.Values{}
	for k, v := range args {
		query.Set(k, v)
	}
	return cacheKeyPrefix + path + "?" + query.Encode()
}

func decodeCached(raw string) (*Response, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var res Response
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("decode cached response: %w", err)
	}
	return &res, nil
}
