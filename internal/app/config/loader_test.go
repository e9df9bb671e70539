package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustInitConfig_Defaults(t *testing.T) {
	cfg := MustInitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel.Level())
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, []string{"http://localhost:8444"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.Remote.Flight.Timeout)
	assert.Equal(t, time.Hour, cfg.Search.SnapshotExpiration)
	assert.Equal(t, 14, cfg.Search.MaxEvents)
}

func TestMustInitConfig_Environment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HOTEL_API_KEY", "expedia-key")
	t.Setenv("HOTEL_API_TIMEOUT", "2s")
	t.Setenv("SEARCH_MAX_EVENTS", "3")

	cfg := MustInitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel.Level())
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "expedia-key", cfg.Remote.Hotel.Key)
	assert.Equal(t, 2*time.Second, cfg.Remote.Hotel.Timeout)
	assert.Equal(t, 3, cfg.Search.MaxEvents)
}

func TestMustInitConfig_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("GEOCODING_API_KEY=geo-key\nREDIS_ADDR=redis:6379\n"), 0o600))

	cfg := MustInitConfig(file)

	assert.Equal(t, "geo-key", cfg.Remote.Geocoding.Key)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLogLeveler_Level(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogLeveler("warn").Level())
	assert.Equal(t, slog.LevelInfo, LogLeveler("nonsense").Level())
}
