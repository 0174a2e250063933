package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/enterprise-data-api/internal/models"
	appErrors "github.com/noah-isme/enterprise-data-api/pkg/errors"
)

const cacheNamespace = "enterprise-data"

// CacheRepository abstracts persistence for cached payloads.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CacheKey identifies one cached result set.
type CacheKey struct {
	Version      string
	Resource     string
	EnterpriseID string
	Fingerprint  string
}

func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", cacheNamespace, k.Version, k.Resource,
		models.NormalizeEnterpriseID(k.EnterpriseID), k.Fingerprint)
}

// EnterpriseCachePattern matches every cached entry of one enterprise.
func EnterpriseCachePattern(enterpriseID string) string {
	return fmt.Sprintf("%s:*:*:%s:*", cacheNamespace, models.NormalizeEnterpriseID(enterpriseID))
}

// CacheService wraps the cache repository with metrics, logging and a
// default TTL. Failures never reach callers as errors from Remember.
type CacheService struct {
	repo       CacheRepository
	metrics    *MetricsService
	defaultTTL time.Duration
	logger     *zap.Logger
	enabled    bool
}

// NewCacheService constructs a cache service.
func NewCacheService(repo CacheRepository, metrics *MetricsService, defaultTTL time.Duration, logger *zap.Logger, enabled bool) *CacheService {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CacheService{repo: repo, metrics: metrics, defaultTTL: defaultTTL, logger: logger, enabled: enabled}
}

// Enabled indicates whether caching is active.
func (s *CacheService) Enabled() bool {
	return s != nil && s.enabled && s.repo != nil
}

// Get loads key into dest. It reports a hit only when dest was filled.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !s.Enabled() {
		return false, nil
	}
	start := time.Now()
	err := s.repo.Get(ctx, key, dest)
	s.metrics.RecordCacheOperation(err == nil, time.Since(start))
	if err != nil {
		if errors.Is(err, appErrors.ErrCacheMiss) {
			return false, nil
		}
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return true, nil
}

// Set stores value under key; a non-positive ttl uses the default.
func (s *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	start := time.Now()
	err := s.repo.Set(ctx, key, value, ttl)
	s.metrics.ObserveCacheWrite(time.Since(start))
	if err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
	return err
}

// Invalidate removes cached values matching pattern.
func (s *CacheService) Invalidate(ctx context.Context, pattern string) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.repo.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("cache invalidate failed", zap.String("pattern", pattern), zap.Error(err))
		return err
	}
	return nil
}

// Remember returns the cached value for key, or computes, stores and returns
// it. Cache failures degrade to a miss. hit reports whether compute was
// skipped.
func Remember[T any](ctx context.Context, cache *CacheService, key CacheKey, ttl time.Duration, compute func(context.Context) (T, error)) (value T, hit bool, err error) {
	rendered := key.String()
	var cached T
	if ok, _ := cache.Get(ctx, rendered, &cached); ok {
		return cached, true, nil
	}

	value, err = compute(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}
	_ = cache.Set(ctx, rendered, value, ttl)
	return value, false, nil
}
