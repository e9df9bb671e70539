package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// SnapshotCache keeps search snapshots in redis so a search stays readable
// after its session is gone.
type SnapshotCache struct {
	redis RedisClient
}

func NewSnapshotCache(redis RedisClient) *SnapshotCache {
	return &SnapshotCache{
		redis: redis,
	}
}

func (c *SnapshotCache) GetCacheKey(searchID string) string {
	return fmt.Sprintf("trip:search:%s", searchID)
}

func (c *SnapshotCache) SetSnapshot(ctx context.Context,
	snapshot dto.SearchSnapshot,
	expiration time.Duration,
) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	err = c.redis.Set(ctx, c.GetCacheKey(snapshot.ID), data, expiration).Err()
	if err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (c *SnapshotCache) GetSnapshot(ctx context.Context, searchID string) (dto.SearchSnapshot, error) {
	data, err := c.redis.Get(ctx, c.GetCacheKey(searchID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.SearchSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return dto.SearchSnapshot{}, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot dto.SearchSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return dto.SearchSnapshot{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return snapshot, nil
}
