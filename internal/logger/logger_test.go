package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return newLoggerWithCore(core), logs
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		log, err := New()
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("with options", func(t *testing.T) {
		log, err := New(WithLevel("debug"), WithFormat("json"))
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(WithLevel("verbose"))
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := New(WithFormat("xml"))
		assert.Error(t, err)
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, logs := newObservedLogger(zapcore.InfoLevel)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "info message", entries[0].Message)
	assert.Equal(t, "warn message", entries[1].Message)
	assert.Equal(t, "error message", entries[2].Message)
}

func TestLogger_SanitizesSensitiveArgs(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	log.Info("login", "server", "example", "token", "secret-value")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "example", fields["server"])
	assert.Equal(t, "***MASKED***", fields["token"])
}

func TestLogger_WithFields(t *testing.T) {
	log, logs := newObservedLogger(zapcore.DebugLevel)

	child := log.WithFields("project", "ABC", "api_token", "secret")
	child.Info("prefetch started")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "ABC", fields["project"])
	assert.Equal(t, "***MASKED***", fields["api_token"])
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b", "key", "value")
		log.Warn("c")
		log.Error("d")
		log.WithFields("k", "v").Info("e")
	})
}
