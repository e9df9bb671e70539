package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTraceHandler_Handle(t *testing.T) {
	logRecord := func(ctx context.Context, level slog.Level, wantKeys []string, missingKeys []string) func(t *testing.T) {
		return func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(&StackTraceHandler{Handler: slog.NewJSONHandler(&buf, nil)})

			log.Log(ctx, level, "hello")

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

			for _, key := range wantKeys {
				assert.Contains(t, got, key)
			}
			for _, key := range missingKeys {
				assert.NotContains(t, got, key)
			}
		}
	}

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = WithSessionID(ctx, "session-1")

	t.Run("ids_from_context", logRecord(ctx, slog.LevelInfo,
		[]string{"request_id", "session_id"}, []string{"stack_trace"}))
	t.Run("no_ids", logRecord(context.Background(), slog.LevelInfo,
		nil, []string{"request_id", "session_id"}))
	t.Run("error_has_stack_trace", logRecord(context.Background(), slog.LevelError,
		[]string{"stack_trace"}, nil))
}

func TestStackTraceHandler_WithAttrsKeepsWrapper(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(&StackTraceHandler{Handler: slog.NewJSONHandler(&buf, nil)}).
		With(slog.String("component", "trip"))

	log.InfoContext(WithSessionID(context.Background(), "abc"), "hello")

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "trip", got["component"])
	assert.Equal(t, "abc", got["session_id"])
}
