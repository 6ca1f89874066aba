package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/newsdesk/internal/domain/contract"
	"github.com/mikiasgoitom/newsdesk/internal/domain/entity"
	"github.com/mikiasgoitom/newsdesk/internal/infrastructure/metrics"
)

const (
	keyPrefix       = "analytics:"
	generationKey   = keyPrefix + "gen"
	defaultCacheTTL = 60 * time.Second
)

// AnalyticsCacheStore keeps computed chart payloads in redis as JSON blobs. Payload keys
// carry the generation they were computed in; invalidation bumps the generation and the
// orphaned keys age out with their TTL.
type AnalyticsCacheStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCacheStore(rdb *redis.Client, ttl time.Duration) *AnalyticsCacheStore {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &AnalyticsCacheStore{rdb: rdb, ttl: ttl}
}

var _ contract.IAnalyticsCache = (*AnalyticsCacheStore)(nil)

func payloadKey(gen int64, payload string) string {
	return fmt.Sprintf("%s%d:%s", keyPrefix, gen, payload)
}

// Generation reads the counter; an unset counter is generation zero.
func (c *AnalyticsCacheStore) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *AnalyticsCacheStore) GetDashboard(ctx context.Context, gen int64) (*entity.DashboardCharts, bool, error) {
	var charts entity.DashboardCharts
	ok, err := c.get(ctx, gen, "dashboard", &charts)
	if !ok {
		return nil, false, err
	}
	return &charts, true, nil
}

func (c *AnalyticsCacheStore) SetDashboard(ctx context.Context, gen int64, charts *entity.DashboardCharts) error {
	return c.set(ctx, gen, "dashboard", charts)
}

func (c *AnalyticsCacheStore) GetReports(ctx context.Context, gen int64) (*entity.ReportCharts, bool, error) {
	var charts entity.ReportCharts
	ok, err := c.get(ctx, gen, "reports", &charts)
	if !ok {
		return nil, false, err
	}
	return &charts, true, nil
}

func (c *AnalyticsCacheStore) SetReports(ctx context.Context, gen int64, charts *entity.ReportCharts) error {
	return c.set(ctx, gen, "reports", charts)
}

func (c *AnalyticsCacheStore) GetStatusBreakdown(ctx context.Context, gen int64) (*entity.StatusBreakdown, bool, error) {
	var breakdown entity.StatusBreakdown
	ok, err := c.get(ctx, gen, "status", &breakdown)
	if !ok {
		return nil, false, err
	}
	return &breakdown, true, nil
}

func (c *AnalyticsCacheStore) SetStatusBreakdown(ctx context.Context, gen int64, breakdown *entity.StatusBreakdown) error {
	return c.set(ctx, gen, "status", breakdown)
}

// Invalidate moves readers to a new generation.
func (c *AnalyticsCacheStore) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, generationKey).Err()
}

// get reports a miss for absent keys and for payloads that no longer decode.
func (c *AnalyticsCacheStore) get(ctx context.Context, gen int64, payload string, dst interface{}) (bool, error) {
	b, err := c.rdb.Get(ctx, payloadKey(gen, payload)).Bytes()
	if err != nil {
		metrics.CacheMiss(payload)
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, dst); err != nil {
		metrics.CacheMiss(payload)
		return false, nil
	}
	metrics.CacheHit(payload)
	return true, nil
}

func (c *AnalyticsCacheStore) set(ctx context.Context, gen int64, payload string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, payloadKey(gen, payload), data, c.ttl).Err()
}
