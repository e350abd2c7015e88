// File: utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevokeToken marks a bearer token as logged out until it would have expired.
func RevokeToken(ctx context.Context, client *redis.Client, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := client.Set(ctx, RevokedTokenPrefix+HashToken(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsTokenRevoked reports whether the token was logged out.
func IsTokenRevoked(ctx context.Context, client *redis.Client, token string) (bool, error) {
	n, err := client.Exists(ctx, RevokedTokenPrefix+HashToken(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// SaveCachedJSON stores v under key with a TTL.
func SaveCachedJSON(ctx context.Context, client *redis.Client, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cache entry: %w", err)
	}
	return nil
}

// LoadCachedJSON decodes the value under key into dst. found is false on a miss.
func LoadCachedJSON(ctx context.Context, client *redis.Client, key string, dst interface{}) (found bool, err error) {
	data, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}
	return true, nil
}

// DeleteCached removes a cache entry.
func DeleteCached(ctx context.Context, client *redis.Client, key string) error {
	return client.Del(ctx, key).Err()
}
