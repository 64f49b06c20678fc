package cache

import (
	"context"
	"fmt"
	"time"

	"Gin_postgres_redis_library_api/models"

	"github.com/redis/go-redis/v9"
)

// RoleCache 角色只写一次，缓存永远不会脏
type RoleCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRoleCache(rdb *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{rdb: rdb, ttl: ttl}
}

func key(userID int64) string { return fmt.Sprintf("library:role:%d", userID) }

// Get returns the cached role. Any redis error counts as a miss; the store
// stays the source of truth.
func (c *RoleCache) Get(ctx context.Context, userID int64) (models.Role, bool) {
	v, err := c.rdb.Get(ctx, key(userID)).Result()
	if err != nil {
		return "", false
	}
	return models.Role(v), true
}

func (c *RoleCache) Set(ctx context.Context, userID int64, role models.Role) {
	_ = c.rdb.Set(ctx, key(userID), string(role), c.ttl).Err()
}
