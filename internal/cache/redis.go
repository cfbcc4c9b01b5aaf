package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys
const (
	BrandingKey     = "branding:profile"
	BillKeyFmt      = "bill:%d"
	BillListKey     = "bill:list"
	InventoryKeyFmt = "inventory:%d"
	QuotationKeyFmt = "quotation:%d"
)

var client *redis.Client

// Init initializes the Redis connection
func Init() error {
	// K8s sets REDIS_SERVICE_HOST and REDIS_SERVICE_PORT for services
	host := os.Getenv("REDIS_SERVICE_HOST")
	if host == "" {
		host = "redis" // fallback to service name
	}
	port := os.Getenv("REDIS_SERVICE_PORT")
	if port == "" {
		port = "6379"
	}

	client = redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
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

// IsHealthy reports whether the cache is connected
func IsHealthy(ctx context.Context) bool {
	if client == nil {
		return false
	}
	return client.Ping(ctx).Err() == nil
}

// GetCached returns the cached bytes for a key if available
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

// SetCached stores bytes under a key with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern deletes all keys matching the glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateBill clears cache entries for one bill and the bill list
func InvalidateBill(ctx context.Context, billID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(BillKeyFmt, billID), BillListKey)
}

// InvalidateInventory clears cache entries for one inventory item
func InvalidateInventory(ctx context.Context, itemID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(InventoryKeyFmt, itemID))
	InvalidatePattern(ctx, "inventory:list*")
}

// InvalidateQuotation clears cache entries for one quotation
func InvalidateQuotation(ctx context.Context, quotationID int) {
	if client == nil {
		return
	}
	client.Del(ctx, fmt.Sprintf(QuotationKeyFmt, quotationID))
}

// InvalidateBranding clears the cached branding profile
func InvalidateBranding(ctx context.Context) {
	if client == nil {
		return
	}
	client.Del(ctx, BrandingKey)
}
