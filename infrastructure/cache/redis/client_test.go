package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"feedreader/pkg/config"
)

// These are integration tests against a live Redis.
// Set REDIS_TEST=1 (and optionally REDIS_ADDRESS) to run them.

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	if os.Getenv("REDIS_TEST") != "1" {
		t.Skip("Skipping Redis integration tests - set REDIS_TEST=1 to run")
	}

	addr := os.Getenv("REDIS_ADDRESS")
	if addr == "" {
		addr = "localhost:6379"
	}

	cache, err := NewRedisCache(config.RedisConfig{Address: addr}, time.Minute)
	if err != nil {
		t.Fatalf("NewRedisCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestNewRedisCache_InvalidAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{}, time.Minute)

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestRedisCache_Get_NonExistentKey(t *testing.T) {
	cache := newTestCache(t)

	_, err := cache.Get(context.Background(), "non-existent-key-"+time.Now().String())
	if !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "test:set-get-delete"

	if err := cache.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("Get = %q, want payload", got)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}
	if _, err := cache.Get(ctx, key); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Get after Delete = %v, want ErrCacheMiss", err)
	}
}

func TestRedisCache_Set_ZeroTTLUsesDefault(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()
	key := "test:default-ttl"
	defer cache.Delete(ctx, key)

	if err := cache.Set(ctx, key, []byte("v"), 0); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	ttl, err := cache.TTL(ctx, key)
	if err != nil {
		t.Fatalf("TTL returned error: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, want within (0, 1m]", ttl)
	}
}

func TestRedisCache_Delete_NonExistentKey(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete should return nil for missing key, got: %v", err)
	}
}
