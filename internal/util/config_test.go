package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without config file", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "0.0.0.0:3000", config.HTTPServerAddress)
		assert.Equal(t, "https://fcm.googleapis.com", config.FCMBaseURL)
		assert.Equal(t, DateTimeModeComputed, config.DateTimeMode)
		assert.False(t, config.IncludeAPNSBlock)
		assert.Equal(t, TokenCacheNone, config.TokenCache)
		assert.Equal(t, time.Duration(0), config.HTTPClientTimeout)
		assert.Equal(t, time.Minute, config.TokenCacheExpirySkew)
	})
	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.env")
		require.NoError(t, os.WriteFile(path, []byte(
			"HTTP_SERVER_ADDRESS=127.0.0.1:4000\n"+
				"DATE_TIME_MODE=fixed\n"+
				"INCLUDE_APNS_BLOCK=true\n"+
				"HTTP_CLIENT_TIMEOUT=10s\n",
		), 0o600))

		config, err := LoadConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:4000", config.HTTPServerAddress)
		assert.Equal(t, DateTimeModeFixed, config.DateTimeMode)
		assert.True(t, config.IncludeAPNSBlock)
		assert.Equal(t, 10*time.Second, config.HTTPClientTimeout)
	})
	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("TOKEN_CACHE", TokenCacheMemory)
		t.Setenv("FCM_BASE_URL", "http://127.0.0.1:9090")

		config, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, TokenCacheMemory, config.TokenCache)
		assert.Equal(t, "http://127.0.0.1:9090", config.FCMBaseURL)
	})
	t.Run("redis cache requires address", func(t *testing.T) {
		t.Setenv("TOKEN_CACHE", TokenCacheRedis)

		_, err := LoadConfig("")
		require.Error(t, err)
	})
	t.Run("unknown key in config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.env")
		require.NoError(t, os.WriteFile(path, []byte("UNKNOWN_SETTING=1\n"), 0o600))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})
	t.Run("invalid date time mode", func(t *testing.T) {
		t.Setenv("DATE_TIME_MODE", "yesterday")

		_, err := LoadConfig("")
		require.Error(t, err)
	})
}

func TestFormatTransaction(t *testing.T) {
	ts := time.Date(2024, 12, 31, 18, 5, 9, 0, time.UTC)

	assert.Equal(t, "01-01-2025", FormatTransactionDate(ts))
	assert.Equal(t, "01:05:09", FormatTransactionTime(ts))
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "abcdef...uvwxyz", MaskSecret("abcdefghijklmnopqrstuvwxyz", 6))
	assert.Equal(t, "*****", MaskSecret("short", 6))
	assert.Equal(t, "", MaskSecret("", 6))
}
