package admin

import (
	"context"
	"time"

	"agencysite/models"
	"agencysite/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore tracks logged-out tokens and caches admin lookups.
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	CachedAdmin(ctx context.Context, id string) (*models.Admin, error)
	CacheAdmin(ctx context.Context, admin models.Admin) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore keeps sessions in the auth cache database.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return utils.RevokeToken(ctx, s.client, token, ttl)
}

func (s *redisSessionStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	return utils.IsTokenRevoked(ctx, s.client, token)
}

// CachedAdmin returns nil, nil on a miss.
func (s *redisSessionStore) CachedAdmin(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	found, err := utils.LoadCachedJSON(ctx, s.client, utils.AuthCachePrefix+id, &a)
	if err != nil || !found {
		return nil, err
	}
	return &a, nil
}

func (s *redisSessionStore) CacheAdmin(ctx context.Context, admin models.Admin) error {
	return utils.SaveCachedJSON(ctx, s.client, utils.AuthCachePrefix+admin.ID, admin, utils.AuthCacheTTL)
}
