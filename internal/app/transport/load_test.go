//go:build load

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/trip"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The load tests run against a live service and redis:
//
//	APP_HOST=http://localhost:8080 REDIS_ADDR=localhost:6379 go test -tags load ./internal/app/transport/...

type loadStats struct {
	Started   int
	Rejected  int
	Completed int
	Failed    int
	Cancelled int
}

func (s *loadStats) Add(other loadStats) {
	s.Started += other.Started
	s.Rejected += other.Rejected
	s.Completed += other.Completed
	s.Failed += other.Failed
	s.Cancelled += other.Cancelled
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func startSearch(ctx context.Context, baseURL string, req dto.SearchRequest) (dto.SearchSnapshot, int, error) {
	payload, _ := json.Marshal(req)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/searches/", bytes.NewBuffer(payload))
	if err != nil {
		return dto.SearchSnapshot{}, 0, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return doSnapshot(httpReq, http.StatusAccepted)
}

func getSearch(ctx context.Context, baseURL, id string) (dto.SearchSnapshot, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/searches/"+id, nil)
	if err != nil {
		return dto.SearchSnapshot{}, err
	}

	snapshot, _, err := doSnapshot(httpReq, http.StatusOK)
	return snapshot, err
}

func doSnapshot(req *http.Request, wantStatus int) (dto.SearchSnapshot, int, error) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return dto.SearchSnapshot{}, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		return dto.SearchSnapshot{}, resp.StatusCode, fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body))
	}

	var snapshot dto.SearchSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return dto.SearchSnapshot{}, resp.StatusCode, err
	}

	return snapshot, resp.StatusCode, nil
}

// runSearch starts one search and polls it until it settles.
func runSearch(ctx context.Context, baseURL string, req dto.SearchRequest) (loadStats, string, error) {
	snapshot, status, err := startSearch(ctx, baseURL, req)
	if status == http.StatusBadRequest {
		return loadStats{Rejected: 1}, "", nil
	}
	if err != nil {
		return loadStats{}, "", err
	}

	for {
		switch trip.State(snapshot.State) {
		case trip.StateComplete:
			return loadStats{Started: 1, Completed: 1}, snapshot.ID, nil
		case trip.StateFailed:
			return loadStats{Started: 1, Failed: 1}, snapshot.ID, nil
		case trip.StateCancelled:
			return loadStats{Started: 1, Cancelled: 1}, snapshot.ID, nil
		}

		select {
		case <-ctx.Done():
			return loadStats{}, snapshot.ID, ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}

		snapshot, err = getSearch(ctx, baseURL, snapshot.ID)
		if err != nil {
			return loadStats{}, "", err
		}
	}
}

func runScenario(t *testing.T, ctx context.Context, baseURL string, req dto.SearchRequest, vus int) (loadStats, []string) {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		stats loadStats
		ids   []string
	)

	for i := 0; i < vus; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			got, searchID, err := runSearch(ctx, baseURL, req)
			if err != nil {
				t.Errorf("VU %d failed: %v", id, err)
				return
			}

			mu.Lock()
			stats.Add(got)
			if searchID != "" {
				ids = append(ids, searchID)
			}
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	return stats, ids
}

func TestSearchLoad(t *testing.T) {
	baseURL := getEnv("APP_HOST", "http://localhost:8080") + "/api/v1"
	redisAddr := getEnv("REDIS_ADDR", "localhost:6379")
	redisPass := getEnv("REDIS_PASSWORD", "")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	defer rdb.Close()

	search := dto.SearchRequest{
		Trip: dto.TripRequest{
			ZipCode:                 "30303",
			Budget:                  "800",
			Passengers:              "1",
			EarliestDepartureHour:   "06",
			EarliestDepartureMinute: "00",
			LatestDepartureHour:     "22",
			LatestDepartureMinute:   "00",
		},
		Events: []string{"Evolution Championship Series"},
	}

	t.Run("Concurrent Searches Settle", func(t *testing.T) {
		vus := 5
		stats, ids := runScenario(t, ctx, baseURL, search, vus)

		assert.Equal(t, vus, stats.Started)
		assert.Equal(t, vus, stats.Completed+stats.Failed+stats.Cancelled)

		cache := trip.NewSnapshotCache(rdb)
		for _, id := range ids {
			snapshot, err := cache.GetSnapshot(ctx, id)
			require.NoError(t, err, "final snapshot should be cached")
			if snapshot.State == string(trip.StateComplete) {
				assert.Equal(t, 0, snapshot.Progress.Remaining)
			}
		}
	})

	t.Run("Invalid Searches Rejected", func(t *testing.T) {
		invalid := search
		invalid.Trip.ZipCode = "ABCDE"

		vus := 10
		stats, _ := runScenario(t, ctx, baseURL, invalid, vus)

		assert.Equal(t, vus, stats.Rejected)
		assert.Equal(t, 0, stats.Started)
	})
}
