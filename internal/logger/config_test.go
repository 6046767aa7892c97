package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		t.Setenv("TSUGI_LOG_LEVEL", "")
		t.Setenv("TSUGI_LOG_FORMAT", "")

		config := ConfigFromEnv()
		assert.Equal(t, "info", config.Level)
		assert.Equal(t, "text", config.Format)
	})

	t.Run("debug flag", func(t *testing.T) {
		t.Setenv("DEBUG", "true")
		t.Setenv("TSUGI_LOG_LEVEL", "")

		config := ConfigFromEnv()
		assert.Equal(t, "debug", config.Level)
	})

	t.Run("explicit level overrides debug flag", func(t *testing.T) {
		t.Setenv("DEBUG", "true")
		t.Setenv("TSUGI_LOG_LEVEL", "WARN")

		config := ConfigFromEnv()
		assert.Equal(t, "warn", config.Level)
	})

	t.Run("format", func(t *testing.T) {
		t.Setenv("TSUGI_LOG_FORMAT", "JSON")

		config := ConfigFromEnv()
		assert.Equal(t, "json", config.Format)
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("TSUGI_LOG_LEVEL", "debug")
	t.Setenv("TSUGI_LOG_FORMAT", "json")

	log, err := NewFromEnv()
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestIsTrue(t *testing.T) {
	assert.True(t, isTrue("true"))
	assert.True(t, isTrue("TRUE"))
	assert.True(t, isTrue("1"))
	assert.True(t, isTrue("yes"))
	assert.True(t, isTrue("on"))
	assert.False(t, isTrue("false"))
	assert.False(t, isTrue("0"))
	assert.False(t, isTrue(""))
}
