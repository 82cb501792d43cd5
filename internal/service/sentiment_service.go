package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"market-mood/internal/domain"
	"market-mood/internal/provider"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// DefaultSnapshotTTL is how long a fetched snapshot stays fresh.
const DefaultSnapshotTTL = 300 * time.Second

const snapshotCacheKey = "feargreed:snapshot"

type GraphDataProvider interface {
	FetchGraphData(ctx context.Context) (*provider.GraphData, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SentimentService serves dashboard snapshots, memoizing the upstream fetch.
// The in-process slot is the primary cache; when a Redis client is supplied,
// snapshots are mirrored there so multiple instances share one fetch per TTL.
type SentimentService struct {
	tracer   trace.Tracer
	provider GraphDataProvider
	redis    RedisClient
	ttl      time.Duration
	nowFunc  func() time.Time

	mu        sync.Mutex
	snapshot  *domain.Snapshot
	fetchedAt time.Time
}

func NewSentimentService(
	tracer trace.Tracer,
	graphProvider GraphDataProvider,
	redisClient RedisClient,
	ttl time.Duration,
) *SentimentService {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SentimentService{
		tracer:   tracer,
		provider: graphProvider,
		redis:    redisClient,
		ttl:      ttl,
		nowFunc:  time.Now,
	}
}

// GetSnapshot returns the cached snapshot while it is fresh, otherwise fetches
// a replacement. The lock spans the whole read-check-populate sequence, so
// concurrent callers trigger at most one upstream fetch per TTL window. An
// expired slot is dropped before refetching: a failed refresh surfaces as an
// error, never as stale data.
func (s *SentimentService) GetSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.get-snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFunc()
	if s.snapshot != nil && now.Sub(s.fetchedAt) < s.ttl {
		return s.snapshot, nil
	}
	s.snapshot = nil

	if s.redis != nil {
		cached, err := s.getRedisSnapshot(ctx)
		if err != nil {
			log.Printf("redis snapshot read error: %v", err)
		}
		if cached != nil {
			s.snapshot, s.fetchedAt = cached, now
			return cached, nil
		}
	}

	raw, err := s.provider.FetchGraphData(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch fear & greed data: %w", err)
	}

	snap := BuildSnapshot(raw)
	s.snapshot, s.fetchedAt = snap, now

	if s.redis != nil {
		if err := s.setRedisSnapshot(ctx, snap); err != nil {
			log.Printf("redis snapshot write error: %v", err)
		}
	}

	return snap, nil
}

func (s *SentimentService) setRedisSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, snapshotCacheKey, data, s.ttl).Err()
}

func (s *SentimentService) getRedisSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	data, err := s.redis.Get(ctx, snapshotCacheKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
