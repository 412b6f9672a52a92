package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validkit/pkg/logger"
)

type ctxKey string

func valueExtractor(name string, key ctxKey) logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok {
			return slog.String(name, v), true
		}
		return slog.Attr{}, false
	}
}

func TestWithContextExtractors(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithJSONFormatter(),
		logger.WithContextExtractors(valueExtractor("lang", "lang"), nil),
	)

	ctx := context.WithValue(context.Background(), ctxKey("lang"), "es")
	log.InfoContext(ctx, "msg")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "es", entry["lang"])

	buf.Reset()
	log.Info("no locale")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "lang")
}

func TestLogHandlerDecorator(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	handler := logger.NewLogHandlerDecorator(base, valueExtractor("field", "field"))

	ctx := context.WithValue(context.Background(), ctxKey("field"), "Address.PostalCode")
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn))

	log := slog.New(handler).With(logger.Component("validator")).WithGroup("rule")
	log.WarnContext(ctx, "misconfigured", slog.String("kind", "range"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "validator", entry["component"])
	group, ok := entry["rule"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "range", group["kind"])
	assert.Equal(t, "Address.PostalCode", group["field"], "extracted attributes follow the open group")
}
