package logging

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	core, logs := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))

	logger.Debug("dropped")
	logger.WarnContext(context.Background(), "source fetch failed", "key", "points", "error", errors.New("timeout"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "source fetch failed", entries[0].Message)
	assert.Equal(t, "points", fields["key"])
	assert.Equal(t, "timeout", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLogger_WithAddsFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("component", "seed")

	logger.Info("seed completed", "picks", 4)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "seed", fields["component"])
	assert.EqualValues(t, 4, fields["picks"])
}

func TestSetMirror_ReceivesEnabledRecords(t *testing.T) {
	var (
		mu       sync.Mutex
		messages []string
	)
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		mu.Lock()
		defer mu.Unlock()
		messages = append(messages, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	core, _ := observer.New(LevelInfo)
	logger := FromZap(zap.New(core))
	logger.Debug("below level")
	logger.Info("plain")
	logger.ErrorContext(context.Background(), "with context")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"info:plain", "error:with context"}, messages)
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var logger *Logger
	assert.NotPanics(t, func() {
		logger.Info("ignored")
		_ = logger.Sync()
	})
}

func TestSetMirror_IncludesBoundFields(t *testing.T) {
	var got []any
	SetMirror(func(_ context.Context, _ Level, _ string, args ...any) {
		got = append(got, args...)
	})
	t.Cleanup(func() { SetMirror(nil) })

	core, _ := observer.New(LevelInfo)
	FromZap(zap.New(core)).With("component", "seed").Info("seed completed", "picks", 4)

	assert.Equal(t, []any{"component", "seed", "picks", 4}, got)
}

func TestNewJSONWriter_ReportsCallerSite(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("source fetched", "key", "draft")

	line := buf.String()
	assert.Contains(t, line, `"msg":"source fetched"`)
	assert.Contains(t, line, `"key":"draft"`)
	assert.Contains(t, line, "logger_test.go")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "", want: LevelInfo},
		{raw: "DEBUG", want: LevelDebug},
		{raw: " warning ", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
