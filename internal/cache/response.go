// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached API responses.
	responseKeyPrefix = "api:"

	// DefaultResponseTTL is how long an encoded response stays cached.
	DefaultResponseTTL = 5 * time.Minute
)

// Cache scopes. A key is "<scope>" or "<scope>:<id>"; invalidating a scope
// removes both forms.
const (
	ScopePages     = "pages"
	ScopeMenus     = "menus"
	ScopeSettings  = "settings"
	ScopeDashboard = "dashboard"
)

// ResponseCache stores encoded JSON responses of read endpoints in Valkey.
// Every failure is logged and treated as a miss so the cache never breaks a
// request. A nil *ResponseCache is valid and caches nothing.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a cache backed by the given Valkey client.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Key joins a scope and an optional id into a cache key.
func Key(scope string, parts ...string) string {
	if len(parts) == 0 {
		return scope
	}
	return scope + ":" + strings.Join(parts, ":")
}

// Get returns the cached body for key.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	return val, true
}

// Set stores body under key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes every key of the given scopes.
func (rc *ResponseCache) Invalidate(ctx context.Context, scopes ...string) {
	if rc == nil {
		return
	}
	for _, scope := range scopes {
		if err := rc.client.Del(ctx, responseKeyPrefix+scope).Err(); err != nil {
			slog.Warn("response cache invalidate error", "scope", scope, "error", err)
		}
		rc.deleteMatching(ctx, responseKeyPrefix+scope+":*")
	}
}

// InvalidateAll removes every cached response.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	if rc == nil {
		return
	}
	if n := rc.deleteMatching(ctx, responseKeyPrefix+"*"); n > 0 {
		slog.Info("response cache fully cleared", "deleted", n)
	}
}

func (rc *ResponseCache) deleteMatching(ctx context.Context, pattern string) int {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "pattern", pattern, "error", err)
			return deleted
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			return deleted
		}
	}
}
