package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", time.UTC)

	log.Debug("hidden")
	log.Info("db_migration_step", "migration_step", "create_table_movies")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "db_migration_step", entry["msg"])
	assert.Equal(t, "create_table_movies", entry["migration_step"])

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_RequestID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", time.UTC).With("component", "poster")

	ctx := WithRequestID(context.Background(), "req-42")
	log.WarnContext(ctx, "failed to presign poster")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "poster", entry["component"])

	buf.Reset()
	log.Info("no request")
	assert.NotContains(t, buf.String(), "request_id")
	assert.Empty(t, RequestID(context.Background()))
}
