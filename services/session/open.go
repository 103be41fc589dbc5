package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vaxbook/config"

	"github.com/go-redis/redis/v8"
)

// Open builds the Store selected by TOKEN_STORE.
func Open(cfg *config.Config) (Store, error) {
	switch strings.ToLower(cfg.TokenStore) {
	case "", "file":
		return NewFileStore(cfg.TokenStorePath), nil
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisSessionDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to Redis (session): %w", err)
		}
		return NewRedisStore(client, cfg.SessionProfile), nil
	}
	return nil, fmt.Errorf("unknown token store %q", cfg.TokenStore)
}
