package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient builds the client backing the rate limiter. Callers treat
// connection failures as non-fatal; the limiter fails open.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
