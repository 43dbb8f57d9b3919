package controllers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Arnab1999india/bazaar/services"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	listCachePrefix = "catalog:list:v:"
	viewCachePrefix = "catalog:view:v:"
	cacheVersionKey = "catalog:version"
)

// CacheManager caches rendered listing responses in Redis. Invalidation is
// version based: every write bumps the version, orphaning old entries until
// their TTL expires.
type CacheManager struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCacheManager(client *redis.Client) *CacheManager {
	return &CacheManager{
		redis: client,
		ttl:   DefaultCacheTTL,
	}
}

// GetList returns the cached response body for a listing query, if present.
func (cm *CacheManager) GetList(ctx context.Context, q services.ProductQuery) ([]byte, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}

	version, err := cm.version(ctx)
	if err != nil {
		return nil, false
	}

	body, err := cm.redis.Get(ctx, cm.listKey(version, q)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// SetListAsync stores a rendered listing response without blocking the
// request.
func (cm *CacheManager) SetListAsync(q services.ProductQuery, body []byte) {
	if cm == nil || cm.redis == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.version(ctx)
		if err != nil {
			return
		}

		if err := cm.redis.Set(ctx, cm.listKey(version, q), body, cm.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product listing", zap.Error(err))
		}
	}()
}

// GetView returns a cached rendered catalog view (category tree, bestseller
// list) by name.
func (cm *CacheManager) GetView(ctx context.Context, name string) ([]byte, bool) {
	if cm == nil || cm.redis == nil {
		return nil, false
	}

	version, err := cm.version(ctx)
	if err != nil {
		return nil, false
	}

	body, err := cm.redis.Get(ctx, cm.viewKey(version, name)).Bytes()
	if err != nil {
		return nil, false
	}
	return body, true
}

// SetViewAsync stores a rendered catalog view without blocking the request.
func (cm *CacheManager) SetViewAsync(name string, body []byte) {
	if cm == nil || cm.redis == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		version, err := cm.version(ctx)
		if err != nil {
			return
		}

		if err := cm.redis.Set(ctx, cm.viewKey(version, name), body, cm.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache catalog view", zap.String("view", name), zap.Error(err))
		}
	}()
}

// Invalidate orphans every cached listing by bumping the version key.
func (cm *CacheManager) Invalidate(ctx context.Context) {
	if cm == nil || cm.redis == nil {
		return
	}

	if err := cm.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		zap.L().Error("failed to invalidate listing cache", zap.Error(err))
	}
}

func (cm *CacheManager) version(ctx context.Context) (int64, error) {
	ver, err := cm.redis.Get(ctx, cacheVersionKey).Int64()
	if err == redis.Nil {
		if err := cm.redis.Set(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return ver, nil
}

// listKey derives a deterministic cache key from the query. Attribute facets
// arrive name-sorted from parsing, so equal queries always share a key.
func (cm *CacheManager) listKey(version int64, q services.ProductQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%d:q:%s:c:%s:b:%s", listCachePrefix, version, q.Search, q.Category, q.Brand)
	fmt.Fprintf(&b, ":min:%s:max:%s:r:%s", floatKey(q.MinPrice), floatKey(q.MaxPrice), floatKey(q.RatingGte))
	if q.InStock != nil {
		fmt.Fprintf(&b, ":is:%t", *q.InStock)
	}
	if q.StockStatus != "" {
		fmt.Fprintf(&b, ":ss:%s", q.StockStatus)
	}
	for _, attr := range q.Attributes {
		fmt.Fprintf(&b, ":a:%s=%s", attr.Name, strings.Join(attr.Values, ","))
	}
	fmt.Fprintf(&b, ":s:%s:%s:p:%d:l:%d", q.SortBy, q.SortOrder, q.Page, q.Limit)
	return b.String()
}

func (cm *CacheManager) viewKey(version int64, name string) string {
	return fmt.Sprintf("%s%d:%s", viewCachePrefix, version, name)
}

func floatKey(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
