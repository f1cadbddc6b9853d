// Package cache provides a Redis-backed cache used for hot profile reads.
// Every helper degrades to a no-op when Redis is unavailable.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects the package-level client. On failure the client stays
// nil and the application runs without a cache.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

func GetClient() *redis.Client {
	return Client
}

// Close releases the Redis connection if one was established.
func Close() {
	if Client != nil {
		_ = Client.Close()
		Client = nil
	}
}
