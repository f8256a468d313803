package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestJSONLogging(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	cfg := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: EnvironmentTest,
	}
	InitLoggerWithWriter(cfg, &buf)

	Info("test message", "key", "value", "number", 42)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "test-service", entry["service"])
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, float64(42), entry["number"])
}

func TestLevelFiltering(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Info("hidden")
	slog.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestFromContext(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "test-req-123")
	ctx = WithUserID(ctx, "user-1")
	assert.Equal(t, "test-req-123", GetRequestID(ctx))

	FromContext(ctx).Info("tagged")
	out := buf.String()
	assert.True(t, strings.Contains(out, `"request_id":"test-req-123"`))
	assert.True(t, strings.Contains(out, `"user_id":"user-1"`))

	assert.Equal(t, "", GetRequestID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestForUser(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	ForUser(WithUserID(context.Background(), "user-1"), "user-1").Info("tagged")
	assert.Equal(t, 1, strings.Count(buf.String(), `"user_id"`), "ctx user is not repeated")

	buf.Reset()
	ForUser(context.Background(), "user-2").Info("untagged")
	assert.Contains(t, buf.String(), `"user_id":"user-2"`)

	buf.Reset()
	ForUser(context.Background(), "").Info("anonymous")
	assert.NotContains(t, buf.String(), `"user_id"`)
}

func TestConfigLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, Config{Level: in}.LogLevel(), in)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.False(t, cfg.IsJSON())

	cfg = NewConfig("debug", "JSON", "1.2.3", EnvironmentProduction, true)
	assert.True(t, cfg.IsJSON())
	assert.Equal(t, "1.2.3", cfg.Version)
}
