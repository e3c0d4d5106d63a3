package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"

	"apotek-backend/internal/config"
)

var client *redis.Client

// Init initializes the Redis connection. Redis is optional: on failure the
// client stays nil and every cache call degrades to a no-op.
func Init(cfg *config.Config) error {
	addr := cfg.Redis.Addr
	if addr == "" {
		addr = "localhost:6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client
func GetClient() *redis.Client {
	return client
}

// hashCredentials creates a hash of username+password for cache key
func hashCredentials(username, password string) string {
	h := sha256.New()
	h.Write([]byte(username + ":" + password))
	return "auth:" + hex.EncodeToString(h.Sum(nil))[:32]
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, username, password string) (int, bool) {
	if client == nil {
		return 0, false
	}
	key := hashCredentials(username, password)
	userID, err := client.Get(ctx, key).Int()
	if err != nil {
		return 0, false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, username, password string, userID int) {
	if client == nil {
		return
	}
	key := hashCredentials(username, password)
	client.Set(ctx, key, userID, 15*time.Minute)
}

// InvalidateAuth removes cached auth for a user (on password change)
func InvalidateAuth(ctx context.Context, username, password string) {
	if client == nil {
		return
	}
	key := hashCredentials(username, password)
	client.Del(ctx, key)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateBarangCaches clears cached item lists.
// Called when: CreateBarang, UpdateBarang, DeleteBarang
func InvalidateBarangCaches(ctx context.Context) {
	InvalidatePattern(ctx, "barang:*")
}

// InvalidateSupplierCaches clears cached supplier lists.
// Called when: CreateSupplier, UpdateSupplier, DeleteSupplier
func InvalidateSupplierCaches(ctx context.Context) {
	InvalidatePattern(ctx, "supplier:*")
}

// InvalidateKaryawanCaches clears cached employee lists.
// Called when: CreateKaryawan, UpdateKaryawan, DeactivateKaryawan
func InvalidateKaryawanCaches(ctx context.Context) {
	InvalidatePattern(ctx, "karyawan:*")
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
