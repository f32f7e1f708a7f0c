package main

import (
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katatrina/fcm-relay/api"
	"github.com/katatrina/fcm-relay/internal/fcm"
	"github.com/katatrina/fcm-relay/internal/notification"
	"github.com/katatrina/fcm-relay/internal/token"
	"github.com/katatrina/fcm-relay/internal/util"

	_ "github.com/katatrina/fcm-relay/docs"
)

//	@title			FCM Relay API
//	@version		1.0.0
//	@description	Relays transaction push notifications to Firebase Cloud Messaging using caller-supplied service-account credentials.

//	@host		localhost:3000
//	@BasePath	/
//	@schemes	http https
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config 😣")
	}

	level, _ := zerolog.ParseLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Info().Msg("configurations loaded successfully ✅")

	tokenCache, err := newTokenCache(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create access token cache 😣")
	}
	tokenSource := newTokenSource(config, tokenCache)

	dispatcher := newDispatcher(config)
	defer dispatcher.Close()
	log.Info().Str("base_url", config.FCMBaseURL).Msg("FCM dispatcher created successfully ✅")

	notificationService := notification.NewNotificationService(tokenSource, dispatcher, notification.MessageOptions{
		DateTimeMode:     notification.DateTimeMode(config.DateTimeMode),
		IncludeAPNSBlock: config.IncludeAPNSBlock,
	})

	runHTTPServer(config, notificationService)
}

func newTokenSource(config util.Config, cache token.Cache) token.Source {
	source := token.NewGoogleSource(config.GoogleTokenURL, &http.Client{Timeout: config.HTTPClientTimeout})
	if cache == nil {
		return source
	}

	return token.NewCachedSource(source, cache, config.TokenCacheExpirySkew)
}

// newTokenCache returns nil when access token caching is disabled.
func newTokenCache(config util.Config) (token.Cache, error) {
	switch config.TokenCache {
	case util.TokenCacheMemory:
		cache, err := token.NewMemoryCache(config.TokenCacheCleanupInterval)
		if err != nil {
			return nil, err
		}
		cache.Start()
		log.Info().Msg("in-memory access token cache started ✅")
		return cache, nil

	case util.TokenCacheRedis:
		redisDb := redis.NewClient(&redis.Options{
			Addr: config.RedisServerAddress,
		})
		log.Info().Str("addr", config.RedisServerAddress).Msg("redis access token cache configured ✅")
		return token.NewRedisCache(redisDb), nil
	}

	return nil, nil
}

func newDispatcher(config util.Config) *fcm.RestDispatcher {
	return fcm.NewRestDispatcher(config.FCMBaseURL, config.HTTPClientTimeout)
}

func runHTTPServer(config util.Config, notificationService *notification.NotificationService) {
	server := api.NewServer(&config, notificationService)

	log.Info().Str("address", config.HTTPServerAddress).Msg("🚀 HTTP server starting")
	err := server.Start(config.HTTPServerAddress)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server 😣")
	}
}
