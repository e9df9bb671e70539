package trip

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSnapshotCache_GetCacheKey(t *testing.T) {
	c := &SnapshotCache{}
	assert.Equal(t, "trip:search:abc", c.GetCacheKey("abc"))
}

func TestSnapshotCache_SetSnapshot_Closure(t *testing.T) {
	setSnapshotRequest := func(snapshot dto.SearchSnapshot, exp time.Duration, mockSetup func(m *MockRedisClient), wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewSnapshotCache(m)

			err := c.SetSnapshot(context.Background(), snapshot, exp)
			if (err != nil) != wantErr {
				t.Fatalf("SetSnapshot error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	snapshot := dto.SearchSnapshot{ID: "abc", State: string(StateComplete)}

	t.Run("success", setSnapshotRequest(snapshot, 10*time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "trip:search:abc", mock.MatchedBy(func(data []byte) bool {
			var got dto.SearchSnapshot
			return json.Unmarshal(data, &got) == nil && got.State == string(StateComplete)
		}), 10*time.Minute).Return(redis.NewStatusResult("OK", nil))
	}, false))

	t.Run("redis_down", setSnapshotRequest(snapshot, time.Minute, func(m *MockRedisClient) {
		m.On("Set", mock.Anything, "trip:search:abc", mock.Anything, time.Minute).
			Return(redis.NewStatusResult("", errors.New("connection refused")))
	}, true))
}

func TestSnapshotCache_GetSnapshot_Closure(t *testing.T) {
	getSnapshotRequest := func(id string, mockSetup func(m *MockRedisClient), want dto.SearchSnapshot, wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockRedisClient(t)
			mockSetup(m)
			c := NewSnapshotCache(m)

			got, err := c.GetSnapshot(context.Background(), id)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			if err != nil {
				t.Fatalf("GetSnapshot returned error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("GetSnapshot mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("success", getSnapshotRequest("abc", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "trip:search:abc").
			Return(redis.NewStringResult(`{"id":"abc","state":"complete","progress":{"total":4,"remaining":0,"percent":100,"phase":"Complete!"}}`, nil))
	}, dto.SearchSnapshot{
		ID:       "abc",
		State:    "complete",
		Progress: dto.Progress{Total: 4, Remaining: 0, Percent: 100, Phase: PhaseComplete},
	}, nil))

	t.Run("cache_miss", getSnapshotRequest("abc", func(m *MockRedisClient) {
		m.On("Get", mock.Anything, "trip:search:abc").Return(redis.NewStringResult("", redis.Nil))
	}, dto.SearchSnapshot{}, ErrSnapshotNotFound))
}
