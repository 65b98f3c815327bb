package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"devicedesk/internal/application/ticket/usecases"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/logger"
)

const (
	listKeyPrefix  = "tickets:list:"
	defaultListTTL = 60 * time.Second
)

// RedisTicketListCache caches the plain first-page listing per tenant and
// kind. Failures are logged and treated as cache misses.
type RedisTicketListCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisTicketListCache(client *redis.Client, ttl time.Duration, log logger.Interface) *RedisTicketListCache {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	return &RedisTicketListCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func (c *RedisTicketListCache) key(tenantID uint, kind workflow.Kind) string {
	return fmt.Sprintf("%s%d:%s", listKeyPrefix, tenantID, kind)
}

func (c *RedisTicketListCache) Get(ctx context.Context, tenantID uint, kind workflow.Kind) (*usecases.ListTicketsResult, bool) {
	raw, err := c.client.Get(ctx, c.key(tenantID, kind)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("ticket list cache read failed", "tenant_id", tenantID, "kind", kind, "error", err)
		}
		return nil, false
	}

	var result usecases.ListTicketsResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.logger.Warnw("ticket list cache entry corrupt, dropping", "tenant_id", tenantID, "kind", kind, "error", err)
		c.client.Del(ctx, c.key(tenantID, kind))
		return nil, false
	}

	return &result, true
}

func (c *RedisTicketListCache) Set(ctx context.Context, tenantID uint, kind workflow.Kind, result *usecases.ListTicketsResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		c.logger.Warnw("failed to encode ticket list for cache", "tenant_id", tenantID, "kind", kind, "error", err)
		return
	}

	if err := c.client.Set(ctx, c.key(tenantID, kind), raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("ticket list cache write failed", "tenant_id", tenantID, "kind", kind, "error", err)
	}
}

func (c *RedisTicketListCache) Invalidate(ctx context.Context, tenantID uint, kind workflow.Kind) {
	if err := c.client.Del(ctx, c.key(tenantID, kind)).Err(); err != nil {
		c.logger.Warnw("ticket list cache invalidation failed", "tenant_id", tenantID, "kind", kind, "error", err)
	}
}
