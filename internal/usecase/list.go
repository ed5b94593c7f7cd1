package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Abdurahmanit/GroupProject/admin-service/internal/adapter/cache/redis"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/domain"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/filter"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/admin-service/internal/platform/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ListResult is a filtered view plus the statistics of the whole collection.
type ListResult[T any, S any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
	Stats S   `json:"stats"`
}

// Lister memoizes list results in a QueryCache. A failing cache never fails
// the query.
type Lister struct {
	cache   domain.QueryCache
	ttl     time.Duration
	metrics *metrics.MetricsManager
	logger  *logger.Logger
}

func NewLister(cache domain.QueryCache, ttl time.Duration, m *metrics.MetricsManager, log *logger.Logger) *Lister {
	if cache == nil {
		cache = redis.NopCache{}
	}
	return &Lister{
		cache:   cache,
		ttl:     ttl,
		metrics: m,
		logger:  log.Named("Lister"),
	}
}

func list[T any, S any](ctx context.Context, l *Lister, entity string, schema *filter.Schema[T], records []T, c filter.Criteria, summarize func([]T) S) (*ListResult[T, S], error) {
	ctx, span := tracer.Start(ctx, "list."+entity)
	defer span.End()

	pred, err := schema.Compile(c)
	if err != nil {
		return nil, err
	}

	key := redis.QueryKey("admin:list:"+entity, c.Params())
	if raw, err := l.cache.Get(ctx, key); err == nil {
		var cached ListResult[T, S]
		if err := json.Unmarshal(raw, &cached); err == nil {
			l.metrics.ObserveCache(true)
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, nil
		}
		l.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		l.logger.Warn("Query cache read failed, computing result", zap.String("key", key), zap.Error(err))
	}
	l.metrics.ObserveCache(false)

	items := filter.Apply(records, pred)
	res := &ListResult[T, S]{Items: items, Count: len(items), Stats: summarize(records)}
	l.metrics.ObserveFilter(entity, len(items))
	span.SetAttributes(attribute.Int("result.count", len(items)))

	if raw, err := json.Marshal(res); err == nil {
		if err := l.cache.Set(ctx, key, raw, l.ttl); err != nil {
			l.logger.Warn("Query cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return res, nil
}
