// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// testValkey starts an in-process Valkey stand-in and returns a client for it.
func testValkey(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return s, client
}

func TestConnectValkey(t *testing.T) {
	s := miniredis.RunT(t)
	host, port := s.Host(), s.Port()

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Fatalf("ConnectValkey: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestConnectValkeyUnreachable(t *testing.T) {
	s := miniredis.RunT(t)
	host, port := s.Host(), s.Port()
	s.Close()

	if _, err := ConnectValkey(host, port, ""); err == nil {
		t.Error("expected error for closed server")
	}
}

func TestResponseCacheSetAndGet(t *testing.T) {
	s, client := testValkey(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	if _, ok := rc.Get(ctx, Key(ScopePages)); ok {
		t.Fatal("expected miss on empty cache")
	}

	rc.Set(ctx, Key(ScopePages), []byte(`[]`))
	got, ok := rc.Get(ctx, Key(ScopePages))
	if !ok || string(got) != `[]` {
		t.Fatalf("Get = %q %v", got, ok)
	}

	if ttl := s.TTL("api:pages"); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}

	s.FastForward(2 * time.Minute)
	if _, ok := rc.Get(ctx, Key(ScopePages)); ok {
		t.Error("expected miss after ttl")
	}
}

func TestResponseCacheDefaultTTL(t *testing.T) {
	s, client := testValkey(t)
	rc := NewResponseCache(client, 0)
	rc.Set(context.Background(), "x", []byte("1"))
	if ttl := s.TTL("api:x"); ttl != DefaultResponseTTL {
		t.Errorf("ttl = %v, want %v", ttl, DefaultResponseTTL)
	}
}

func TestResponseCacheInvalidateScope(t *testing.T) {
	s, client := testValkey(t)
	rc := NewResponseCache(client, time.Minute)
	ctx := context.Background()

	rc.Set(ctx, Key(ScopePages), []byte("list"))
	rc.Set(ctx, Key(ScopePages, "a"), []byte("a"))
	rc.Set(ctx, Key(ScopePages, "b"), []byte("b"))
	rc.Set(ctx, Key(ScopeMenus), []byte("menus"))

	rc.Invalidate(ctx, ScopePages)

	for _, k := range []string{"api:pages", "api:pages:a", "api:pages:b"} {
		if s.Exists(k) {
			t.Errorf("%s survived invalidation", k)
		}
	}
	if !s.Exists("api:menus") {
		t.Error("menus scope was invalidated too")
	}

	rc.InvalidateAll(ctx)
	if keys := s.Keys(); len(keys) != 0 {
		t.Errorf("keys left after InvalidateAll: %v", keys)
	}
}

func TestResponseCacheNilIsNoop(t *testing.T) {
	var rc *ResponseCache
	ctx := context.Background()
	rc.Set(ctx, "k", []byte("v"))
	if _, ok := rc.Get(ctx, "k"); ok {
		t.Error("nil cache returned a hit")
	}
	rc.Invalidate(ctx, ScopePages)
	rc.InvalidateAll(ctx)
}

func TestResponseCacheServerDownIsMiss(t *testing.T) {
	s, client := testValkey(t)
	rc := NewResponseCache(client, time.Minute)
	s.Close()

	rc.Set(context.Background(), "k", []byte("v"))
	if _, ok := rc.Get(context.Background(), "k"); ok {
		t.Error("expected miss when server is down")
	}
}

func TestKey(t *testing.T) {
	if got := Key(ScopeSettings); got != "settings" {
		t.Errorf("Key = %q", got)
	}
	if got := Key(ScopePages, "42"); got != "pages:42" {
		t.Errorf("Key = %q", got)
	}
}
