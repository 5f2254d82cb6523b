package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/consultancy_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/consultancy_admin/internal/core/ports/repositories"
	"github.com/SscSPs/consultancy_admin/internal/middleware"
	"github.com/go-redis/redis/v8"
)

const tenantDomainKeyPrefix = "tenant:domain:"

// NewClient creates a Redis client for the given address.
func NewClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Ping checks the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}

// TenantCache is a pass-through cache in front of the tenant repository.
// Only domain lookups are cached; Redis failures fall back to the wrapped repository.
type TenantCache struct {
	portsrepo.TenantRepositoryFacade
	client *redis.Client
	ttl    time.Duration
}

// NewTenantCache wraps next with a Redis cache whose entries live for ttl.
func NewTenantCache(next portsrepo.TenantRepositoryFacade, client *redis.Client, ttl time.Duration) *TenantCache {
	return &TenantCache{
		TenantRepositoryFacade: next,
		client:                 client,
		ttl:                    ttl,
	}
}

var (
	_ portsrepo.TenantRepositoryFacade = (*TenantCache)(nil)
	_ portsrepo.TenantCacheInvalidator = (*TenantCache)(nil)
)

func tenantDomainKey(host string) string {
	return tenantDomainKeyPrefix + host
}

// FindTenantByDomain serves from Redis when possible and populates it on a miss.
func (c *TenantCache) FindTenantByDomain(ctx context.Context, host string) (*domain.Tenant, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	key := tenantDomainKey(host)

	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var tenant domain.Tenant
		if jsonErr := json.Unmarshal(val, &tenant); jsonErr == nil {
			return &tenant, nil
		} else {
			logger.Warn("Discarding unreadable tenant cache entry", slog.String("key", key), slog.String("error", jsonErr.Error()))
		}
	case errors.Is(err, redis.Nil):
	default:
		logger.Warn("Tenant cache read failed, falling back to database", slog.String("key", key), slog.String("error", err.Error()))
	}

	tenant, err := c.TenantRepositoryFacade.FindTenantByDomain(ctx, host)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(tenant)
	if err != nil {
		logger.Warn("Failed to encode tenant for cache", slog.String("tenant_id", tenant.TenantID), slog.String("error", err.Error()))
		return tenant, nil
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logger.Warn("Tenant cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return tenant, nil
}

// Invalidate drops the cached lookups for domains.
func (c *TenantCache) Invalidate(ctx context.Context, domains ...string) error {
	if len(domains) == 0 {
		return nil
	}
	keys := make([]string, len(domains))
	for i, d := range domains {
		keys[i] = tenantDomainKey(d)
	}
	return c.client.Del(ctx, keys...).Err()
}
