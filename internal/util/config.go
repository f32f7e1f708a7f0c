package util

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	DateTimeModeComputed = "computed"
	DateTimeModeFixed    = "fixed"

	TokenCacheNone   = "none"
	TokenCacheMemory = "memory"
	TokenCacheRedis  = "redis"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	HTTPServerAddress         string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	AllowedOrigins            []string      `mapstructure:"ALLOWED_ORIGINS"`
	LogLevel                  string        `mapstructure:"LOG_LEVEL"`
	FCMBaseURL                string        `mapstructure:"FCM_BASE_URL"`
	GoogleTokenURL            string        `mapstructure:"GOOGLE_TOKEN_URL"`
	DateTimeMode              string        `mapstructure:"DATE_TIME_MODE"`
	IncludeAPNSBlock          bool          `mapstructure:"INCLUDE_APNS_BLOCK"`
	HTTPClientTimeout         time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`
	TokenCache                string        `mapstructure:"TOKEN_CACHE"`
	TokenCacheExpirySkew      time.Duration `mapstructure:"TOKEN_CACHE_EXPIRY_SKEW"`
	TokenCacheCleanupInterval time.Duration `mapstructure:"TOKEN_CACHE_CLEANUP_INTERVAL"`
	RedisServerAddress        string        `mapstructure:"REDIS_SERVER_ADDRESS"`
}

// LoadConfig reads configuration from file or environment variables.
// The config file is optional: every key has a default and can be overridden from the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FCM_BASE_URL", "https://fcm.googleapis.com")
	v.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	v.SetDefault("DATE_TIME_MODE", DateTimeModeComputed)
	v.SetDefault("INCLUDE_APNS_BLOCK", false)
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "0s")
	v.SetDefault("TOKEN_CACHE", TokenCacheNone)
	v.SetDefault("TOKEN_CACHE_EXPIRY_SKEW", "1m")
	v.SetDefault("TOKEN_CACHE_CLEANUP_INTERVAL", "5m")
	v.SetDefault("REDIS_SERVER_ADDRESS", "")

	// Prefer environment variables over config file
	v.AutomaticEnv()

	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err = v.ReadInConfig(); err != nil {
				return config, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return config, fmt.Errorf("failed to stat config file: %w", statErr)
		}
	}

	if err = v.UnmarshalExact(&config); err != nil {
		return config, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.HTTPServerAddress == "" {
		return fmt.Errorf("HTTP_SERVER_ADDRESS is required")
	}
	if config.FCMBaseURL == "" {
		return fmt.Errorf("FCM_BASE_URL is required")
	}
	if config.GoogleTokenURL == "" {
		return fmt.Errorf("GOOGLE_TOKEN_URL is required")
	}
	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}

	switch config.DateTimeMode {
	case DateTimeModeComputed, DateTimeModeFixed:
	default:
		return fmt.Errorf("DATE_TIME_MODE must be %q or %q", DateTimeModeComputed, DateTimeModeFixed)
	}

	switch config.TokenCache {
	case TokenCacheNone, TokenCacheMemory:
	case TokenCacheRedis:
		if config.RedisServerAddress == "" {
			return fmt.Errorf("REDIS_SERVER_ADDRESS is required when TOKEN_CACHE is %q", TokenCacheRedis)
		}
	default:
		return fmt.Errorf("TOKEN_CACHE must be one of %q, %q, %q", TokenCacheNone, TokenCacheMemory, TokenCacheRedis)
	}

	if config.HTTPClientTimeout < 0 {
		return fmt.Errorf("HTTP_CLIENT_TIMEOUT must not be negative")
	}
	if config.TokenCacheExpirySkew < 0 {
		return fmt.Errorf("TOKEN_CACHE_EXPIRY_SKEW must not be negative")
	}
	if config.TokenCache == TokenCacheMemory && config.TokenCacheCleanupInterval <= 0 {
		return fmt.Errorf("TOKEN_CACHE_CLEANUP_INTERVAL must be positive")
	}

	return nil
}
